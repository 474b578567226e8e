package types

import (
	"fmt"
	"strings"
)

// SidecarKind identifies the host primitive that holds per-file metadata.
type SidecarKind int

const (
	// SidecarNone means the host offers no usable primitive.
	SidecarNone SidecarKind = iota

	// SidecarXattr is a named extended attribute with whole-value get/set only.
	SidecarXattr

	// SidecarStream is a separately openable stream addressed by a path suffix
	// (an NTFS alternate data stream or the Darwin "..namedfork" path).
	SidecarStream
)

func (k SidecarKind) String() string {
	switch k {
	case SidecarXattr:
		return "xattr"
	case SidecarStream:
		return "stream"
	default:
		return "none"
	}
}

// RecordFormat is the serialized layout of a Finder info side-car.
type RecordFormat int

const (
	// FormatAuto uses whatever the host platform expects.
	FormatAuto RecordFormat = iota

	// FormatPlain is the bare 32-byte Finder info record.
	FormatPlain

	// FormatEnvelope is the 60-byte AFP_AfpInfo envelope.
	FormatEnvelope
)

func (f RecordFormat) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatEnvelope:
		return "envelope"
	default:
		return "auto"
	}
}

// ParseRecordFormat parses "auto", "plain" or "envelope".
func ParseRecordFormat(s string) (RecordFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "plain":
		return FormatPlain, nil
	case "envelope", "afpinfo":
		return FormatEnvelope, nil
	default:
		return FormatAuto, fmt.Errorf("unknown finder info format %q", s)
	}
}

// BackendKind selects the resource fork stream implementation.
type BackendKind int

const (
	// BackendAuto picks the backend matching the host's resource fork primitive.
	BackendAuto BackendKind = iota

	// BackendNative passes operations through to an OS file descriptor.
	BackendNative

	// BackendBlob emulates a stream over a whole-value extended attribute.
	BackendBlob
)

func (k BackendKind) String() string {
	switch k {
	case BackendNative:
		return "native"
	case BackendBlob:
		return "blob"
	default:
		return "auto"
	}
}

// ParseBackendKind parses "auto", "native" or "blob".
func ParseBackendKind(s string) (BackendKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return BackendAuto, nil
	case "native":
		return BackendNative, nil
	case "blob", "xattr":
		return BackendBlob, nil
	default:
		return BackendAuto, fmt.Errorf("unknown fork backend %q", s)
	}
}
