package resourcefork

import (
	"io"

	"github.com/deploymenttheory/go-afp/internal/afperr"
	"github.com/deploymenttheory/go-afp/internal/types"
)

// Size returns the resource fork length of path. A file without a fork
// reports NoMetadata on the native backend and zero on the blob backend.
func Size(path string, opts ...Option) (int64, error) {
	s, err := Open(path, types.ReadOnly, opts...)
	if err != nil {
		return 0, err
	}
	defer s.Close()
	return s.Size()
}

// ReadAll returns the complete resource fork of path.
func ReadAll(path string, opts ...Option) ([]byte, error) {
	s, err := Open(path, types.ReadOnly, opts...)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	size, err := s.Size()
	if err != nil {
		return nil, err
	}

	// One read fills the buffer; the blob backend fetches the whole value on
	// every Read.
	data := make([]byte, size)
	n, err := io.ReadFull(s, data)
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return data[:n], nil
	case err != nil:
		return nil, afperr.Wrap("read", path, err)
	}

	// The fork may have grown since Size.
	rest, err := io.ReadAll(s)
	if err != nil {
		return nil, afperr.Wrap("read", path, err)
	}
	return append(data, rest...), nil
}

// WriteAll replaces the resource fork of path with data.
func WriteAll(path string, data []byte, opts ...Option) error {
	s, err := Open(path, types.WriteOnly, opts...)
	if err != nil {
		return err
	}
	if err := s.Truncate(0); err != nil {
		s.Close()
		return err
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		s.Close()
		return err
	}
	if len(data) > 0 {
		if _, err := s.Write(data); err != nil {
			s.Close()
			return err
		}
	}
	return s.Close()
}
