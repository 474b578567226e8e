//go:build unix

package afperr

import (
	"testing"

	"github.com/pkg/xattr"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestRemapErrno(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "ENOENT", err: unix.ENOENT, want: NotFound},
		{name: "ENOATTR", err: xattr.ENOATTR, want: NoMetadata},
		{name: "EACCES", err: unix.EACCES, want: PermissionDenied},
		{name: "EBADF", err: unix.EBADF, want: BadDescriptor},
		{name: "ENOTSUP", err: unix.ENOTSUP, want: NotSupported},
		{name: "EISDIR", err: unix.EISDIR, want: InvalidArgument},
		{name: "EIO", err: unix.EIO, want: Io},
		{name: "xattr error", err: &xattr.Error{Op: "xattr.fget", Name: "user.x", Err: xattr.ENOATTR}, want: NoMetadata},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
