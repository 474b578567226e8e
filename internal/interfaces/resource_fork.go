// File: internal/interfaces/resource_fork.go
package interfaces

import (
	"io"

	"github.com/deploymenttheory/go-afp/internal/types"
)

// ForkBackend is the storage strategy behind a resource fork stream. Exactly
// two implementations exist: one over a native file descriptor and one over a
// whole-value extended attribute.
type ForkBackend interface {
	io.Reader
	io.Writer
	io.Seeker

	// Truncate sets the fork length, zero-extending when it grows.
	Truncate(size int64) error

	// Size returns the current fork length.
	Size() (int64, error)

	// Close releases the descriptor.
	Close() error

	// Kind reports which backend this is.
	Kind() types.BackendKind
}
