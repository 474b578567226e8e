//go:build windows

package afperr

import (
	"syscall"

	"golang.org/x/sys/windows"
)

var errnoKinds = map[syscall.Errno]Kind{
	windows.ERROR_FILE_NOT_FOUND:       NotFound,
	windows.ERROR_PATH_NOT_FOUND:       NotFound,
	windows.ERROR_INVALID_DRIVE:        NotFound,
	windows.ERROR_BAD_NETPATH:          NotFound,
	windows.ERROR_INVALID_HANDLE:       BadDescriptor,
	windows.ERROR_ACCESS_DENIED:        PermissionDenied,
	windows.ERROR_SHARING_VIOLATION:    PermissionDenied,
	windows.ERROR_LOCK_VIOLATION:       PermissionDenied,
	windows.ERROR_WRITE_PROTECT:        PermissionDenied,
	windows.ERROR_CANNOT_MAKE:          PermissionDenied,
	windows.ERROR_INVALID_PARAMETER:    InvalidArgument,
	windows.ERROR_NEGATIVE_SEEK:        InvalidArgument,
	windows.ERROR_DIRECTORY:            InvalidArgument,
	windows.ERROR_NOT_SUPPORTED:        NotSupported,
	windows.ERROR_INVALID_FUNCTION:     NotSupported,
	windows.ERROR_CANTOPEN:             Io,
	windows.ERROR_CANTREAD:             Io,
	windows.ERROR_CANTWRITE:            Io,
	windows.ERROR_READ_FAULT:           Io,
	windows.ERROR_WRITE_FAULT:          Io,
	windows.ERROR_SEEK:                 Io,
	windows.ERROR_INVALID_DATA:         DataCorrupt,
	windows.ERROR_FILE_CORRUPT:         DataCorrupt,
	windows.ERROR_DISK_CORRUPT:         DataCorrupt,
	windows.ERROR_ALREADY_EXISTS:       Io,
	windows.ERROR_BUFFER_OVERFLOW:      InvalidArgument,
	windows.ERROR_FILENAME_EXCED_RANGE: InvalidArgument,
}

func remapErrno(errno syscall.Errno) (Kind, bool) {
	kind, ok := errnoKinds[errno]
	return kind, ok
}
