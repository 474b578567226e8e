//go:build !linux && !darwin && !freebsd && !netbsd

package sidecar

import (
	"os"
	"syscall"

	"github.com/pkg/xattr"
)

func attrSize(f *os.File, name string) (int, error) {
	value, err := xattr.FGet(f, name)
	if err != nil {
		return 0, err
	}
	return len(value), nil
}

func attrGet(f *os.File, name string, dest []byte) (int, error) {
	value, err := xattr.FGet(f, name)
	if err != nil {
		return 0, err
	}
	if len(value) > len(dest) {
		return 0, &xattr.Error{Op: "xattr.fget", Path: f.Name(), Name: name, Err: syscall.ERANGE}
	}
	return copy(dest, value), nil
}
