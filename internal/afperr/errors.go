// Package afperr defines the portable error kinds reported by the Finder info
// and resource fork packages, and the translation of host error codes into them.
package afperr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// Kind is a portable error classification. A Kind is itself an error so that
// callers can test with errors.Is(err, afperr.NoMetadata).
type Kind int

const (
	// Io is a generic OS-level failure.
	Io Kind = iota + 1

	// NotFound means the base file does not exist.
	NotFound

	// NoMetadata means the side-car attribute or stream does not exist.
	NoMetadata

	// DataCorrupt means a side-car record has the wrong size or a bad envelope.
	DataCorrupt

	// PermissionDenied means the operation is forbidden by the open mode or the OS.
	PermissionDenied

	// BadDescriptor means the handle is closed or was never opened.
	BadDescriptor

	// InvalidArgument covers negative offsets and out-of-range values.
	InvalidArgument

	// NotSupported means the host has no side-car primitive for the request.
	NotSupported
)

var kindNames = map[Kind]string{
	Io:               "i/o error",
	NotFound:         "no such file",
	NoMetadata:       "no metadata",
	DataCorrupt:      "data corrupt",
	PermissionDenied: "permission denied",
	BadDescriptor:    "bad descriptor",
	InvalidArgument:  "invalid argument",
	NotSupported:     "not supported",
}

func (k Kind) Error() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("error kind %d", int(k))
}

// String returns the same text as Error.
func (k Kind) String() string {
	return k.Error()
}

// Error is the error type returned at every public boundary of the core packages.
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Kind.Error()
	if e.Err != nil && e.Err.Error() != e.Kind.Error() {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches a bare Kind target against the error's kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// New returns an error of the given kind with no underlying cause.
func New(op, path string, kind Kind) error {
	return &Error{Op: op, Path: path, Kind: kind}
}

// Wrap classifies err with KindOf and attaches op and path. An err that is
// already an *Error keeps its kind; the result is a copy and err itself is
// not modified. Wrap returns nil for a nil err.
func Wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		wrapped := *e
		if wrapped.Op == "" {
			wrapped.Op = op
		}
		if wrapped.Path == "" {
			wrapped.Path = path
		}
		return &wrapped
	}
	return &Error{Op: op, Path: path, Kind: KindOf(err), Err: err}
}

// WrapKind attaches an explicit kind to err.
func WrapKind(op, path string, kind Kind, err error) error {
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}

// KindOf classifies any error into a portable kind. Errors without a
// recognizable cause are Io.
func KindOf(err error) Kind {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if kind, ok := remapErrno(errno); ok {
			return kind
		}
	}
	switch {
	case errors.Is(err, os.ErrClosed):
		return BadDescriptor
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, fs.ErrInvalid):
		return InvalidArgument
	}
	return Io
}

// IsKind reports whether err classifies as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
