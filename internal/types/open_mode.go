package types

import (
	"fmt"
	"strings"
)

// OpenMode selects how a Finder info record or resource fork is opened.
// The numeric values match the historical afp open_mode constants.
type OpenMode int

const (
	// ReadOnly opens for reading; the side-car must already exist.
	ReadOnly OpenMode = 1

	// WriteOnly opens for writing, creating the side-car when it is missing.
	WriteOnly OpenMode = 2

	// ReadWrite opens for reading and writing.
	ReadWrite OpenMode = 3
)

// Valid reports whether m is one of the three defined modes.
func (m OpenMode) Valid() bool {
	return m == ReadOnly || m == WriteOnly || m == ReadWrite
}

// CanRead reports whether reads are permitted in this mode.
func (m OpenMode) CanRead() bool {
	return m == ReadOnly || m == ReadWrite
}

// CanWrite reports whether writes and truncation are permitted in this mode.
func (m OpenMode) CanWrite() bool {
	return m == WriteOnly || m == ReadWrite
}

func (m OpenMode) String() string {
	switch m {
	case ReadOnly:
		return "read_only"
	case WriteOnly:
		return "write_only"
	case ReadWrite:
		return "read_write"
	default:
		return fmt.Sprintf("OpenMode(%d)", int(m))
	}
}

// ParseOpenMode accepts the names produced by String as well as the short
// forms "r", "w" and "rw".
func ParseOpenMode(s string) (OpenMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "read_only", "read-only", "ro":
		return ReadOnly, nil
	case "w", "write_only", "write-only", "wo":
		return WriteOnly, nil
	case "rw", "read_write", "read-write":
		return ReadWrite, nil
	default:
		return 0, fmt.Errorf("unknown open mode %q", s)
	}
}
