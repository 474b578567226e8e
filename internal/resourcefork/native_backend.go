package resourcefork

import (
	"errors"
	"io"
	"os"

	"github.com/deploymenttheory/go-afp/internal/afperr"
	"github.com/deploymenttheory/go-afp/internal/interfaces"
	"github.com/deploymenttheory/go-afp/internal/sidecar"
	"github.com/deploymenttheory/go-afp/internal/types"
)

// nativeBackend passes every call through to an OS descriptor on the fork.
type nativeBackend struct {
	f    *os.File
	path string
}

func openNative(path string, key sidecar.Key, mode types.OpenMode) (*nativeBackend, error) {
	flag := os.O_RDONLY
	switch mode {
	case types.WriteOnly:
		flag = os.O_WRONLY | os.O_CREATE
	case types.ReadWrite:
		flag = os.O_RDWR | os.O_CREATE
	}

	f, err := sidecar.OpenStream(path, key, flag)
	if err != nil {
		return nil, err
	}
	return &nativeBackend{f: f, path: path}, nil
}

func (b *nativeBackend) Read(p []byte) (int, error) {
	n, err := b.f.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, afperr.Wrap("read", b.path, err)
	}
	return n, err
}

func (b *nativeBackend) Write(p []byte) (int, error) {
	n, err := b.f.Write(p)
	if err != nil {
		return n, afperr.Wrap("write", b.path, err)
	}
	return n, nil
}

func (b *nativeBackend) Seek(offset int64, whence int) (int64, error) {
	pos, err := b.f.Seek(offset, whence)
	if err != nil {
		return pos, afperr.Wrap("seek", b.path, err)
	}
	return pos, nil
}

// Truncate leaves the file offset where it was.
func (b *nativeBackend) Truncate(size int64) error {
	if err := b.f.Truncate(size); err != nil {
		return afperr.Wrap("truncate", b.path, err)
	}
	return nil
}

func (b *nativeBackend) Size() (int64, error) {
	fi, err := b.f.Stat()
	if err != nil {
		return 0, afperr.Wrap("size", b.path, err)
	}
	return fi.Size(), nil
}

func (b *nativeBackend) Close() error {
	if err := b.f.Close(); err != nil {
		return afperr.Wrap("close", b.path, err)
	}
	return nil
}

func (b *nativeBackend) Kind() types.BackendKind {
	return types.BackendNative
}

var _ interfaces.ForkBackend = (*nativeBackend)(nil)
