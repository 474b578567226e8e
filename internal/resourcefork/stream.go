// Package resourcefork exposes a file's resource fork as a seekable byte
// stream.
//
// Two backends implement the stream. The native backend passes every call to
// an OS descriptor on a fork path or alternate data stream. The blob backend
// emulates a stream over a single extended attribute value, so every mutation
// is a whole-value read-modify-write and concurrent writers follow
// last-full-write-wins.
package resourcefork

import (
	"io"

	"github.com/deploymenttheory/go-afp/internal/afperr"
	"github.com/deploymenttheory/go-afp/internal/interfaces"
	"github.com/deploymenttheory/go-afp/internal/sidecar"
	"github.com/deploymenttheory/go-afp/internal/types"
)

// Option configures how a Stream is opened.
type Option func(*options)

type options struct {
	platform sidecar.Platform
	backend  types.BackendKind
	opener   interfaces.AttributeOpener
}

// WithPlatform overrides the host side-car conventions.
func WithPlatform(p sidecar.Platform) Option {
	return func(o *options) {
		o.platform = p
	}
}

// WithBackend forces the native or blob backend. BackendAuto follows the
// platform.
func WithBackend(k types.BackendKind) Option {
	return func(o *options) {
		o.backend = k
	}
}

// WithAttributeOpener replaces the extended attribute primitive used by the
// blob backend.
func WithAttributeOpener(open interfaces.AttributeOpener) Option {
	return func(o *options) {
		o.opener = open
	}
}

func newOptions(opts []Option) options {
	o := options{
		platform: sidecar.Host(),
		opener:   sidecar.OpenAttributes,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Stream is an open resource fork. It is not safe for concurrent use.
type Stream struct {
	backend interfaces.ForkBackend
	mode    types.OpenMode
	path    string
}

// Open opens the resource fork of the regular file at path.
func Open(path string, mode types.OpenMode, opts ...Option) (*Stream, error) {
	s := &Stream{}
	if err := s.Open(path, mode, opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Open binds s to the resource fork of path, closing any fork it had open.
// The backend is chosen here and does not change until Close.
func (s *Stream) Open(path string, mode types.OpenMode, opts ...Option) error {
	const op = "open"

	_ = s.Close()

	if !mode.Valid() {
		return afperr.New(op, path, afperr.InvalidArgument)
	}

	o := newOptions(opts)
	backend, err := openBackend(o, path, mode)
	if err != nil {
		return err
	}

	s.backend = backend
	s.mode = mode
	s.path = path
	return nil
}

func openBackend(o options, path string, mode types.OpenMode) (interfaces.ForkBackend, error) {
	key := o.platform.ResourceFork

	kind := o.backend
	if kind == types.BackendAuto {
		switch key.Kind {
		case types.SidecarStream:
			kind = types.BackendNative
		case types.SidecarXattr:
			kind = types.BackendBlob
		default:
			return nil, afperr.New("open", path, afperr.NotSupported)
		}
	}

	switch kind {
	case types.BackendNative:
		return openNative(path, key, mode)
	case types.BackendBlob:
		name := o.platform.ResourceForkAttr
		if key.Kind == types.SidecarXattr {
			name = key.Name
		}
		if name == "" {
			return nil, afperr.New("open", path, afperr.NotSupported)
		}
		return openBlob(o.opener, path, name)
	default:
		return nil, afperr.New("open", path, afperr.InvalidArgument)
	}
}

// Read reads from the current offset. At the end of the fork it returns 0 and
// io.EOF.
func (s *Stream) Read(p []byte) (int, error) {
	if s.backend == nil {
		return 0, afperr.New("read", s.path, afperr.BadDescriptor)
	}
	if !s.mode.CanRead() {
		return 0, afperr.New("read", s.path, afperr.PermissionDenied)
	}
	return s.backend.Read(p)
}

// Write writes p at the current offset.
func (s *Stream) Write(p []byte) (int, error) {
	if s.backend == nil {
		return 0, afperr.New("write", s.path, afperr.BadDescriptor)
	}
	if !s.mode.CanWrite() {
		return 0, afperr.New("write", s.path, afperr.PermissionDenied)
	}
	return s.backend.Write(p)
}

// Seek sets the offset for the next Read or Write.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s.backend == nil {
		return 0, afperr.New("seek", s.path, afperr.BadDescriptor)
	}
	return s.backend.Seek(offset, whence)
}

// Truncate sets the fork length, zero-extending when it grows.
func (s *Stream) Truncate(size int64) error {
	if s.backend == nil {
		return afperr.New("truncate", s.path, afperr.BadDescriptor)
	}
	if !s.mode.CanWrite() {
		return afperr.New("truncate", s.path, afperr.PermissionDenied)
	}
	if size < 0 {
		return afperr.New("truncate", s.path, afperr.InvalidArgument)
	}
	return s.backend.Truncate(size)
}

// Size returns the fork length.
func (s *Stream) Size() (int64, error) {
	if s.backend == nil {
		return 0, afperr.New("size", s.path, afperr.BadDescriptor)
	}
	return s.backend.Size()
}

// Kind reports the backend in use, or BackendAuto on a closed stream.
func (s *Stream) Kind() types.BackendKind {
	if s.backend == nil {
		return types.BackendAuto
	}
	return s.backend.Kind()
}

// Mode returns the mode the stream was opened with.
func (s *Stream) Mode() types.OpenMode {
	return s.mode
}

// Close releases the fork. Later calls are no-ops.
func (s *Stream) Close() error {
	if s.backend == nil {
		return nil
	}
	err := s.backend.Close()
	s.backend = nil
	return err
}

var _ io.ReadWriteSeeker = (*Stream)(nil)
var _ io.Closer = (*Stream)(nil)
