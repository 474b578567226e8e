package sidecar

import (
	"io"
	"os"

	"github.com/deploymenttheory/go-afp/internal/afperr"
	"github.com/deploymenttheory/go-afp/internal/interfaces"
	"github.com/deploymenttheory/go-afp/internal/types"
)

// maxRecordRead bounds how much of a stream side-car is read when looking for
// a Finder info record. Anything this long is already the wrong size.
const maxRecordRead = 4096

// CheckRegularFile verifies that path exists and is a regular file.
func CheckRegularFile(path string) error {
	const op = "open"
	fi, err := os.Stat(path)
	if err != nil {
		return afperr.Wrap(op, path, err)
	}
	if fi.IsDir() {
		return afperr.WrapKind(op, path, afperr.InvalidArgument, errIsDirectory)
	}
	if !fi.Mode().IsRegular() {
		return afperr.WrapKind(op, path, afperr.InvalidArgument, errNotRegular)
	}
	return nil
}

// OpenStream opens the stream side-car named by key on the regular file at
// path. A missing stream is reported as afperr.NoMetadata.
func OpenStream(path string, key Key, flag int) (*os.File, error) {
	const op = "open"
	if key.Kind != types.SidecarStream {
		return nil, afperr.New(op, path, afperr.NotSupported)
	}
	if err := CheckRegularFile(path); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(StreamPath(path, key), flag, 0o666)
	if err != nil {
		if afperr.KindOf(err) == afperr.NotFound {
			return nil, afperr.WrapKind(op, path, afperr.NoMetadata, err)
		}
		return nil, afperr.Wrap(op, path, err)
	}
	return f, nil
}

// streamRecord keeps a Finder info record in a stream side-car.
type streamRecord struct {
	f *os.File
}

func (r *streamRecord) ReadRecord() ([]byte, error) {
	if r.f == nil {
		return nil, afperr.New("read", "", afperr.BadDescriptor)
	}
	data, err := io.ReadAll(io.NewSectionReader(r.f, 0, maxRecordRead))
	if err != nil {
		return nil, afperr.Wrap("read", r.f.Name(), err)
	}
	return data, nil
}

func (r *streamRecord) WriteRecord(data []byte) error {
	const op = "write"
	if r.f == nil {
		return afperr.New(op, "", afperr.BadDescriptor)
	}
	if _, err := r.f.Seek(0, io.SeekStart); err != nil {
		return afperr.Wrap(op, r.f.Name(), err)
	}
	if _, err := r.f.Write(data); err != nil {
		return afperr.Wrap(op, r.f.Name(), err)
	}
	if err := r.f.Truncate(int64(len(data))); err != nil {
		return afperr.Wrap(op, r.f.Name(), err)
	}
	return nil
}

func (r *streamRecord) Close() error {
	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	return err
}

var _ interfaces.RecordSidecar = (*streamRecord)(nil)
