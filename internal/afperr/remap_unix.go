//go:build unix

package afperr

import (
	"syscall"

	"github.com/pkg/xattr"
	"golang.org/x/sys/unix"
)

// errnoKinds is scanned in order; several errno names alias the same value
// on some hosts (ENOATTR/ENODATA, ENOTSUP/EOPNOTSUPP), so a map literal
// cannot hold them.
var errnoKinds = []struct {
	errno syscall.Errno
	kind  Kind
}{
	{unix.ENOENT, NotFound},
	{unix.ENOTDIR, NotFound},
	{xattr.ENOATTR, NoMetadata},
	{unix.ENODATA, NoMetadata},
	{unix.EILSEQ, DataCorrupt},
	{unix.EACCES, PermissionDenied},
	{unix.EPERM, PermissionDenied},
	{unix.EROFS, PermissionDenied},
	{unix.EBADF, BadDescriptor},
	{unix.EINVAL, InvalidArgument},
	{unix.EISDIR, InvalidArgument},
	{unix.ESPIPE, InvalidArgument},
	{unix.ENOTSUP, NotSupported},
	{unix.EOPNOTSUPP, NotSupported},
}

func remapErrno(errno syscall.Errno) (Kind, bool) {
	for _, m := range errnoKinds {
		if m.errno == errno {
			return m.kind, true
		}
	}
	return 0, false
}
