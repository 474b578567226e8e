package resourcefork

import (
	"errors"
	"io"
	"syscall"

	"github.com/deploymenttheory/go-afp/internal/afperr"
	"github.com/deploymenttheory/go-afp/internal/interfaces"
	"github.com/deploymenttheory/go-afp/internal/types"
)

// maxBlobSize caps the length of a fork kept in an extended attribute. It is
// far above what any filesystem accepts as a single attribute value, so it only
// rejects offsets that would otherwise exhaust memory.
const maxBlobSize = 64 << 20

// blobBackend emulates a stream over one whole-value extended attribute. The
// offset is tracked here; the attribute itself has no notion of position.
type blobBackend struct {
	attrs  interfaces.AttributeHandle
	name   string
	path   string
	offset int64
}

func openBlob(open interfaces.AttributeOpener, path, name string) (*blobBackend, error) {
	attrs, err := open(path)
	if err != nil {
		return nil, afperr.Wrap("open", path, err)
	}
	return &blobBackend{attrs: attrs, name: name, path: path}, nil
}

// fetch returns the complete attribute value. A missing attribute is an empty
// fork. If the value grows between the size query and the read the fetch is
// retried once.
func (b *blobBackend) fetch(op string) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		size, err := b.attrs.AttrSize(b.name)
		if err != nil {
			if afperr.IsKind(err, afperr.NoMetadata) {
				return nil, nil
			}
			return nil, afperr.Wrap(op, b.path, err)
		}
		if size == 0 {
			return nil, nil
		}

		buf := make([]byte, size)
		n, err := b.attrs.GetAttr(b.name, buf)
		switch {
		case err == nil:
			return buf[:n], nil
		case afperr.IsKind(err, afperr.NoMetadata):
			return nil, nil
		case errors.Is(err, syscall.ERANGE) && attempt == 0:
			continue
		default:
			return nil, afperr.Wrap(op, b.path, err)
		}
	}
}

func (b *blobBackend) store(op string, value []byte) error {
	if err := b.attrs.SetAttr(b.name, value); err != nil {
		return afperr.Wrap(op, b.path, err)
	}
	return nil
}

func (b *blobBackend) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	value, err := b.fetch("read")
	if err != nil {
		return 0, err
	}
	if b.offset >= int64(len(value)) {
		return 0, io.EOF
	}
	n := copy(p, value[b.offset:])
	b.offset += int64(n)
	return n, nil
}

// Write appends p to the value, zero-filling up to the offset first when the
// offset is past the end. Bytes before the end are never overwritten.
func (b *blobBackend) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if b.offset > maxBlobSize-int64(len(p)) {
		return 0, afperr.New("write", b.path, afperr.InvalidArgument)
	}
	value, err := b.fetch("write")
	if err != nil {
		return 0, err
	}
	if gap := b.offset - int64(len(value)); gap > 0 {
		value = append(value, make([]byte, gap)...)
	}
	value = append(value, p...)
	if err := b.store("write", value); err != nil {
		return 0, err
	}
	b.offset += int64(len(p))
	return len(p), nil
}

func (b *blobBackend) Seek(offset int64, whence int) (int64, error) {
	const op = "seek"
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = b.offset
	case io.SeekEnd:
		size, err := b.Size()
		if err != nil {
			return 0, err
		}
		base = size
	default:
		return 0, afperr.New(op, b.path, afperr.InvalidArgument)
	}

	pos := base + offset
	if pos < 0 {
		return 0, afperr.New(op, b.path, afperr.InvalidArgument)
	}
	b.offset = pos
	return pos, nil
}

// Truncate to zero removes the attribute. Any other size rewrites the value
// at exactly that length. The offset moves to size in both cases.
func (b *blobBackend) Truncate(size int64) error {
	const op = "truncate"
	if size > maxBlobSize {
		return afperr.New(op, b.path, afperr.InvalidArgument)
	}
	if size == 0 {
		if err := b.attrs.RemoveAttr(b.name); err != nil && !afperr.IsKind(err, afperr.NoMetadata) {
			return afperr.Wrap(op, b.path, err)
		}
		b.offset = 0
		return nil
	}

	value, err := b.fetch(op)
	if err != nil {
		return err
	}
	if int64(len(value)) >= size {
		value = value[:size]
	} else {
		value = append(value, make([]byte, size-int64(len(value)))...)
	}
	if err := b.store(op, value); err != nil {
		return err
	}
	b.offset = size
	return nil
}

func (b *blobBackend) Size() (int64, error) {
	size, err := b.attrs.AttrSize(b.name)
	if err != nil {
		if afperr.IsKind(err, afperr.NoMetadata) {
			return 0, nil
		}
		return 0, afperr.Wrap("size", b.path, err)
	}
	return int64(size), nil
}

func (b *blobBackend) Close() error {
	if err := b.attrs.Close(); err != nil {
		return afperr.Wrap("close", b.path, err)
	}
	return nil
}

func (b *blobBackend) Kind() types.BackendKind {
	return types.BackendBlob
}

var _ interfaces.ForkBackend = (*blobBackend)(nil)
