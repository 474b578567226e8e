// File: internal/interfaces/sidecar.go
package interfaces

// RecordSidecar stores one small Finder info record alongside a file.
type RecordSidecar interface {
	// ReadRecord returns the complete stored value. A missing side-car is
	// reported with the afperr.NoMetadata kind.
	ReadRecord() ([]byte, error)

	// WriteRecord replaces the stored value, starting from its first byte.
	WriteRecord(data []byte) error

	// Close releases the underlying descriptor. It is safe to call more than once.
	Close() error
}

// AttributeHandle is a whole-value extended attribute primitive bound to one
// open base file. There is no partial read or write.
type AttributeHandle interface {
	// AttrSize returns the current length of the named attribute.
	AttrSize(name string) (int, error)

	// GetAttr copies the attribute value into dest and returns its length.
	// If dest is too small it fails with ERANGE.
	GetAttr(name string, dest []byte) (int, error)

	// SetAttr replaces the attribute value in one call.
	SetAttr(name string, data []byte) error

	// RemoveAttr deletes the attribute.
	RemoveAttr(name string) error

	// Close releases the base file descriptor.
	Close() error
}

// AttributeOpener opens an AttributeHandle on the regular file at path.
type AttributeOpener func(path string) (AttributeHandle, error)
