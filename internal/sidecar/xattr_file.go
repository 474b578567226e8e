package sidecar

import (
	"os"

	"github.com/pkg/xattr"

	"github.com/deploymenttheory/go-afp/internal/afperr"
	"github.com/deploymenttheory/go-afp/internal/interfaces"
)

// XattrFile is a read-only descriptor on a regular file used to get and set
// its extended attributes. Attributes can be changed through a read-only
// descriptor; access is governed by the file's ownership.
type XattrFile struct {
	f *os.File
}

// OpenXattrFile opens the regular file at path for attribute access.
func OpenXattrFile(path string) (*XattrFile, error) {
	const op = "open"
	if !xattr.XATTR_SUPPORTED {
		return nil, afperr.New(op, path, afperr.NotSupported)
	}
	if err := CheckRegularFile(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, afperr.Wrap(op, path, err)
	}
	return &XattrFile{f: f}, nil
}

// OpenAttributes is an interfaces.AttributeOpener backed by OpenXattrFile.
func OpenAttributes(path string) (interfaces.AttributeHandle, error) {
	file, err := OpenXattrFile(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// Name returns the path the file was opened with.
func (x *XattrFile) Name() string {
	if x.f == nil {
		return ""
	}
	return x.f.Name()
}

// AttrSize returns the length of the named attribute.
func (x *XattrFile) AttrSize(name string) (int, error) {
	if x.f == nil {
		return 0, os.ErrClosed
	}
	return attrSize(x.f, name)
}

// GetAttr copies the named attribute into dest.
func (x *XattrFile) GetAttr(name string, dest []byte) (int, error) {
	if x.f == nil {
		return 0, os.ErrClosed
	}
	return attrGet(x.f, name, dest)
}

// Value returns the complete value of the named attribute.
func (x *XattrFile) Value(name string) ([]byte, error) {
	if x.f == nil {
		return nil, os.ErrClosed
	}
	return xattr.FGet(x.f, name)
}

// SetAttr replaces the named attribute.
func (x *XattrFile) SetAttr(name string, data []byte) error {
	if x.f == nil {
		return os.ErrClosed
	}
	return xattr.FSet(x.f, name, data)
}

// RemoveAttr deletes the named attribute.
func (x *XattrFile) RemoveAttr(name string) error {
	if x.f == nil {
		return os.ErrClosed
	}
	return xattr.FRemove(x.f, name)
}

// Close releases the descriptor. Later calls are no-ops.
func (x *XattrFile) Close() error {
	if x.f == nil {
		return nil
	}
	err := x.f.Close()
	x.f = nil
	return err
}

var _ interfaces.AttributeHandle = (*XattrFile)(nil)
