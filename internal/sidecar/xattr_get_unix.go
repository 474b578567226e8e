//go:build linux || darwin || freebsd || netbsd

package sidecar

import (
	"os"

	"github.com/pkg/xattr"
	"golang.org/x/sys/unix"
)

// attrSize asks the kernel for the attribute length without reading it.
func attrSize(f *os.File, name string) (int, error) {
	n, err := unix.Fgetxattr(int(f.Fd()), name, nil)
	if err != nil {
		return 0, &xattr.Error{Op: "xattr.fsize", Path: f.Name(), Name: name, Err: err}
	}
	return n, nil
}

// attrGet reads the attribute into dest; a dest shorter than the value fails
// with ERANGE.
func attrGet(f *os.File, name string, dest []byte) (int, error) {
	n, err := unix.Fgetxattr(int(f.Fd()), name, dest)
	if err != nil {
		return 0, &xattr.Error{Op: "xattr.fget", Path: f.Name(), Name: name, Err: err}
	}
	return n, nil
}
