package types

// Finder Info
// Classic Mac OS stores a 32-byte Finder info record per file. The first eight
// bytes carry the four-character file type and creator codes; the remaining
// 24 bytes are Finder flags, icon position and extended Finder info, which
// this module treats as opaque.

const (
	// FinderInfoSize is the size of a raw Finder info record.
	FinderInfoSize = 32

	// FinderTypeCreatorSize is the size of the type + creator prefix.
	FinderTypeCreatorSize = 8
)

// FinderInfoT is a raw Finder info record.
type FinderInfoT [FinderInfoSize]byte

// TypeCreatorT is the 8-byte type/creator prefix of a Finder info record.
type TypeCreatorT [FinderTypeCreatorSize]byte

func (c TypeCreatorT) String() string {
	return string(c[:])
}

// AFP_AfpInfo
// Hosts without extended attributes (SMB/NTFS) store Finder info in an
// "AFP_AfpInfo" alternate data stream wrapped in a fixed 60-byte envelope.
// All multi-byte fields are little-endian.

const (
	// AFPInfoSize is the exact on-disk size of an AFP_AfpInfo envelope.
	AFPInfoSize = 60

	// AFPInfoMagic is the envelope signature ("AFP\0" read as little-endian).
	AFPInfoMagic uint32 = 0x00504641

	// AFPInfoVersion is the only supported envelope version (1.0).
	AFPInfoVersion uint32 = 0x00010000

	// AFPInfoBackupDateInvalid marks a file that has never been backed up.
	AFPInfoBackupDateInvalid uint32 = 0x80000000

	// AFPInfoReservedSize is the trailing padding after the ProDOS aux type.
	AFPInfoReservedSize = 6
)

// Envelope field offsets.
const (
	AFPInfoMagicOffset          = 0
	AFPInfoVersionOffset        = 4
	AFPInfoFileIDOffset         = 8
	AFPInfoBackupDateOffset     = 12
	AFPInfoFinderInfoOffset     = 16
	AFPInfoProDOSFileTypeOffset = 48
	AFPInfoProDOSAuxTypeOffset  = 50
	AFPInfoReservedOffset       = 54
)

// AFPInfoT is the decoded AFP_AfpInfo envelope.
type AFPInfoT struct {
	// Always AFPInfoMagic.
	Magic uint32

	// Always AFPInfoVersion.
	Version uint32

	// The catalog node ID of the file, or zero.
	FileID uint32

	// Seconds since the Mac epoch, or AFPInfoBackupDateInvalid.
	BackupDate uint32

	// The wrapped Finder info record.
	FinderInfo FinderInfoT

	// ProDOS file type. Only the low byte is meaningful.
	ProDOSFileType uint16

	// ProDOS aux type. Only the low 16 bits are meaningful.
	ProDOSAuxType uint32

	// Reserved padding, zero on write.
	Reserved [AFPInfoReservedSize]byte
}
