//go:build !unix && !windows

package afperr

import "syscall"

func remapErrno(errno syscall.Errno) (Kind, bool) {
	return 0, false
}
