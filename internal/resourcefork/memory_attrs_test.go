package resourcefork

import (
	"os"
	"syscall"

	"github.com/deploymenttheory/go-afp/internal/afperr"
	"github.com/deploymenttheory/go-afp/internal/interfaces"
)

// memoryFS is an in-memory extended attribute store shared by every handle
// it opens.
type memoryFS struct {
	values map[string]map[string][]byte

	// growTimes makes that many following GetAttr calls see a value one byte
	// longer than the preceding AttrSize reported.
	growTimes int
	gets      int
	opens     int
	closes    int
}

func newMemoryFS() *memoryFS {
	return &memoryFS{values: map[string]map[string][]byte{}}
}

func (m *memoryFS) open(path string) (interfaces.AttributeHandle, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	if m.values[path] == nil {
		m.values[path] = map[string][]byte{}
	}
	m.opens++
	return &memoryAttrs{fs: m, attrs: m.values[path]}, nil
}

func (m *memoryFS) value(path, name string) ([]byte, bool) {
	v, ok := m.values[path][name]
	return v, ok
}

type memoryAttrs struct {
	fs     *memoryFS
	attrs  map[string][]byte
	closed bool
}

func errMissing() error {
	return afperr.New("getxattr", "", afperr.NoMetadata)
}

func (a *memoryAttrs) AttrSize(name string) (int, error) {
	if a.closed {
		return 0, os.ErrClosed
	}
	v, ok := a.attrs[name]
	if !ok {
		return 0, errMissing()
	}
	return len(v), nil
}

func (a *memoryAttrs) GetAttr(name string, dest []byte) (int, error) {
	if a.closed {
		return 0, os.ErrClosed
	}
	v, ok := a.attrs[name]
	if !ok {
		return 0, errMissing()
	}
	a.fs.gets++
	if a.fs.growTimes > 0 {
		a.fs.growTimes--
		v = append(v, '!')
		a.attrs[name] = v
	}
	if len(v) > len(dest) {
		return 0, syscall.ERANGE
	}
	return copy(dest, v), nil
}

func (a *memoryAttrs) SetAttr(name string, data []byte) error {
	if a.closed {
		return os.ErrClosed
	}
	a.attrs[name] = append([]byte(nil), data...)
	return nil
}

func (a *memoryAttrs) RemoveAttr(name string) error {
	if a.closed {
		return os.ErrClosed
	}
	if _, ok := a.attrs[name]; !ok {
		return errMissing()
	}
	delete(a.attrs, name)
	return nil
}

func (a *memoryAttrs) Close() error {
	if !a.closed {
		a.closed = true
		a.fs.closes++
	}
	return nil
}
