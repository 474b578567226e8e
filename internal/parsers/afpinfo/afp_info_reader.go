package afpinfo

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-afp/internal/types"
)

var (
	// ErrInvalidSize is returned when the envelope is not exactly AFPInfoSize bytes.
	ErrInvalidSize = errors.New("invalid AFP_AfpInfo size")

	// ErrInvalidMagic is returned when the envelope signature does not match.
	ErrInvalidMagic = errors.New("invalid AFP_AfpInfo magic")

	// ErrInvalidVersion is returned for any version other than 1.0.
	ErrInvalidVersion = errors.New("unsupported AFP_AfpInfo version")
)

// endian is the byte order of the envelope as written by SMB servers and the
// Windows AFP client.
var endian = binary.LittleEndian

// NewAFPInfo returns a default envelope: valid magic and version, no backup
// date, and an all-zero Finder info record.
func NewAFPInfo() types.AFPInfoT {
	return types.AFPInfoT{
		Magic:      types.AFPInfoMagic,
		Version:    types.AFPInfoVersion,
		BackupDate: types.AFPInfoBackupDateInvalid,
	}
}

// ParseAFPInfo decodes an AFP_AfpInfo envelope. The data must be exactly
// AFPInfoSize bytes and carry the expected magic and version.
func ParseAFPInfo(data []byte) (*types.AFPInfoT, error) {
	if len(data) != types.AFPInfoSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSize, len(data), types.AFPInfoSize)
	}

	info := &types.AFPInfoT{}

	info.Magic = endian.Uint32(data[types.AFPInfoMagicOffset:])
	info.Version = endian.Uint32(data[types.AFPInfoVersionOffset:])
	info.FileID = endian.Uint32(data[types.AFPInfoFileIDOffset:])
	info.BackupDate = endian.Uint32(data[types.AFPInfoBackupDateOffset:])
	copy(info.FinderInfo[:], data[types.AFPInfoFinderInfoOffset:types.AFPInfoProDOSFileTypeOffset])
	info.ProDOSFileType = endian.Uint16(data[types.AFPInfoProDOSFileTypeOffset:])
	info.ProDOSAuxType = endian.Uint32(data[types.AFPInfoProDOSAuxTypeOffset:])
	copy(info.Reserved[:], data[types.AFPInfoReservedOffset:])

	if err := VerifyAFPInfo(info); err != nil {
		return nil, err
	}

	return info, nil
}

// VerifyAFPInfo checks the envelope signature and version.
func VerifyAFPInfo(info *types.AFPInfoT) error {
	if info == nil {
		return fmt.Errorf("%w: nil envelope", ErrInvalidSize)
	}
	if info.Magic != types.AFPInfoMagic {
		return fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, info.Magic)
	}
	if info.Version != types.AFPInfoVersion {
		return fmt.Errorf("%w: 0x%08x", ErrInvalidVersion, info.Version)
	}
	return nil
}

// SerializeAFPInfo encodes info into a new AFPInfoSize-byte buffer.
func SerializeAFPInfo(info *types.AFPInfoT) []byte {
	data := make([]byte, types.AFPInfoSize)

	endian.PutUint32(data[types.AFPInfoMagicOffset:], info.Magic)
	endian.PutUint32(data[types.AFPInfoVersionOffset:], info.Version)
	endian.PutUint32(data[types.AFPInfoFileIDOffset:], info.FileID)
	endian.PutUint32(data[types.AFPInfoBackupDateOffset:], info.BackupDate)
	copy(data[types.AFPInfoFinderInfoOffset:], info.FinderInfo[:])
	endian.PutUint16(data[types.AFPInfoProDOSFileTypeOffset:], info.ProDOSFileType)
	endian.PutUint32(data[types.AFPInfoProDOSAuxTypeOffset:], info.ProDOSAuxType)
	copy(data[types.AFPInfoReservedOffset:], info.Reserved[:])

	return data
}
