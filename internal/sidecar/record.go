package sidecar

import (
	"errors"
	"os"

	"github.com/deploymenttheory/go-afp/internal/afperr"
	"github.com/deploymenttheory/go-afp/internal/interfaces"
	"github.com/deploymenttheory/go-afp/internal/types"
)

var (
	errIsDirectory = errors.New("is a directory")
	errNotRegular  = errors.New("not a regular file")
)

// OpenRecord opens the Finder info side-car of path for mode. The record is
// always opened readable, even for WriteOnly, so that callers can preserve
// fields they do not change. Only WriteOnly creates a missing stream.
func OpenRecord(p Platform, path string, mode types.OpenMode) (interfaces.RecordSidecar, error) {
	const op = "open"
	if !mode.Valid() {
		return nil, afperr.New(op, path, afperr.InvalidArgument)
	}

	switch p.FinderInfo.Kind {
	case types.SidecarXattr:
		file, err := OpenXattrFile(path)
		if err != nil {
			return nil, err
		}
		return &xattrRecord{file: file, name: p.FinderInfo.Name}, nil

	case types.SidecarStream:
		flag := os.O_RDONLY
		switch mode {
		case types.ReadWrite:
			flag = os.O_RDWR
		case types.WriteOnly:
			flag = os.O_RDWR | os.O_CREATE
		}
		f, err := OpenStream(path, p.FinderInfo, flag)
		if err != nil {
			return nil, err
		}
		return &streamRecord{f: f}, nil

	default:
		return nil, afperr.New(op, path, afperr.NotSupported)
	}
}

// xattrRecord keeps a Finder info record in an extended attribute.
type xattrRecord struct {
	file *XattrFile
	name string
}

func (r *xattrRecord) ReadRecord() ([]byte, error) {
	if r.file == nil {
		return nil, afperr.New("read", "", afperr.BadDescriptor)
	}
	data, err := r.file.Value(r.name)
	if err != nil {
		return nil, afperr.Wrap("read", r.file.Name(), err)
	}
	return data, nil
}

func (r *xattrRecord) WriteRecord(data []byte) error {
	if r.file == nil {
		return afperr.New("write", "", afperr.BadDescriptor)
	}
	if err := r.file.SetAttr(r.name, data); err != nil {
		return afperr.Wrap("write", r.file.Name(), err)
	}
	return nil
}

func (r *xattrRecord) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

var _ interfaces.RecordSidecar = (*xattrRecord)(nil)
