// Package finderinfo reads and writes the Finder info record kept alongside a
// file, and keeps its type/creator code in step with the ProDOS file type and
// aux type shadow fields.
package finderinfo

import (
	"encoding/binary"
	"errors"

	"github.com/deploymenttheory/go-afp/internal/afperr"
	"github.com/deploymenttheory/go-afp/internal/interfaces"
	"github.com/deploymenttheory/go-afp/internal/parsers/afpinfo"
	"github.com/deploymenttheory/go-afp/internal/sidecar"
	"github.com/deploymenttheory/go-afp/internal/typecodec"
	"github.com/deploymenttheory/go-afp/internal/types"
)

var errRecordSize = errors.New("finder info record has the wrong size")

// Option configures a Store.
type Option func(*Store)

// WithPlatform overrides the host side-car conventions.
func WithPlatform(p sidecar.Platform) Option {
	return func(s *Store) {
		s.platform = p
	}
}

// WithFormat forces the record layout. FormatAuto keeps the platform's layout.
func WithFormat(f types.RecordFormat) Option {
	return func(s *Store) {
		s.format = f
	}
}

// Store holds one Finder info record and the side-car it came from.
//
// A Store is not safe for concurrent use.
type Store struct {
	platform sidecar.Platform
	format   types.RecordFormat

	side interfaces.RecordSidecar
	mode types.OpenMode
	path string

	info types.AFPInfoT
}

// NewStore returns a closed store holding the default record.
func NewStore(opts ...Option) *Store {
	s := &Store{
		platform: sidecar.Host(),
		info:     afpinfo.NewAFPInfo(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open reads the record stored for path.
//
// A missing or malformed record fails unless mode is WriteOnly, in which case
// the store starts from the default record. A ReadOnly store releases the
// side-car as soon as the record is read.
func (s *Store) Open(path string, mode types.OpenMode) error {
	const op = "open"

	_ = s.Close()
	s.Clear()

	if !mode.Valid() {
		return afperr.New(op, path, afperr.InvalidArgument)
	}

	side, err := sidecar.OpenRecord(s.effectivePlatform(), path, mode)
	if err != nil {
		return err
	}

	data, err := side.ReadRecord()
	switch {
	case err == nil:
		if decodeErr := s.decode(data); decodeErr != nil {
			if mode != types.WriteOnly {
				side.Close()
				s.Clear()
				return afperr.WrapKind(op, path, afperr.DataCorrupt, decodeErr)
			}
			s.Clear()
		}
	case afperr.IsKind(err, afperr.NoMetadata) && mode == types.WriteOnly:
	default:
		side.Close()
		return afperr.Wrap(op, path, err)
	}

	s.path = path
	s.mode = mode
	if mode == types.ReadOnly {
		return side.Close()
	}
	s.side = side
	return nil
}

// Read opens path read-only.
func (s *Store) Read(path string) error {
	return s.Open(path, types.ReadOnly)
}

// Write persists the record through the open side-car.
func (s *Store) Write() error {
	if s.side == nil {
		return afperr.New("write", s.path, afperr.BadDescriptor)
	}
	if err := s.side.WriteRecord(s.encode()); err != nil {
		return afperr.Wrap("write", s.path, err)
	}
	return nil
}

// WritePath persists the record to path through a fresh write-only side-car.
// The store's own handle is left alone.
func (s *Store) WritePath(path string) error {
	side, err := sidecar.OpenRecord(s.effectivePlatform(), path, types.WriteOnly)
	if err != nil {
		return err
	}
	if err := side.WriteRecord(s.encode()); err != nil {
		side.Close()
		return afperr.Wrap("write", path, err)
	}
	return side.Close()
}

// Close releases the side-car. Calling Close on a closed store is a no-op.
func (s *Store) Close() error {
	if s.side == nil {
		return nil
	}
	err := s.side.Close()
	s.side = nil
	if err != nil {
		return afperr.Wrap("close", s.path, err)
	}
	return nil
}

// Clear resets the record to its default contents. The side-car is untouched.
func (s *Store) Clear() {
	s.info = afpinfo.NewAFPInfo()
}

// Path returns the path passed to the last successful Open.
func (s *Store) Path() string {
	return s.path
}

// Format returns the record layout in use.
func (s *Store) Format() types.RecordFormat {
	return s.effectivePlatform().FinderInfoFormat
}

// SetProDOSFileType sets the ProDOS file type and keeps the current aux type.
func (s *Store) SetProDOSFileType(fileType uint8) {
	s.SetProDOSFileTypeAux(fileType, uint16(s.info.ProDOSAuxType))
}

// SetProDOSFileTypeAux sets the ProDOS file type and aux type and re-encodes
// the Finder type/creator code from them.
func (s *Store) SetProDOSFileTypeAux(fileType uint8, auxType uint16) {
	s.info.ProDOSFileType = uint16(fileType)
	s.info.ProDOSAuxType = uint32(auxType)
	code := typecodec.EncodeProDOS(fileType, auxType)
	copy(s.info.FinderInfo[:types.FinderTypeCreatorSize], code[:])
}

// SetFileType replaces the Finder type code.
func (s *Store) SetFileType(fileType uint32) {
	binary.BigEndian.PutUint32(s.info.FinderInfo[0:4], fileType)
	s.syncProDOS()
}

// SetCreatorType replaces the Finder creator code.
func (s *Store) SetCreatorType(creator uint32) {
	binary.BigEndian.PutUint32(s.info.FinderInfo[4:8], creator)
	s.syncProDOS()
}

// SetData replaces the whole Finder info record.
func (s *Store) SetData(data types.FinderInfoT) {
	s.info.FinderInfo = data
	s.syncProDOS()
}

// Data returns a copy of the Finder info record.
func (s *Store) Data() types.FinderInfoT {
	return s.info.FinderInfo
}

// TypeCreator returns the first eight bytes of the record: the type code
// followed by the creator code.
func (s *Store) TypeCreator() types.TypeCreatorT {
	var code types.TypeCreatorT
	copy(code[:], s.info.FinderInfo[:types.FinderTypeCreatorSize])
	return code
}

// FileType returns the Finder type code.
func (s *Store) FileType() uint32 {
	return binary.BigEndian.Uint32(s.info.FinderInfo[0:4])
}

// CreatorType returns the Finder creator code.
func (s *Store) CreatorType() uint32 {
	return binary.BigEndian.Uint32(s.info.FinderInfo[4:8])
}

// ProDOSFileType returns the ProDOS file type shadow field.
func (s *Store) ProDOSFileType() uint16 {
	return s.info.ProDOSFileType
}

// ProDOSAuxType returns the ProDOS aux type shadow field.
func (s *Store) ProDOSAuxType() uint32 {
	return s.info.ProDOSAuxType
}

// IsText reports whether the file holds text: a TEXT type code, or a ProDOS
// TXT or SRC file type.
func (s *Store) IsText() bool {
	if string(s.info.FinderInfo[0:4]) == "TEXT" {
		return true
	}
	switch s.info.ProDOSFileType {
	case 0x04, 0xB0:
		return true
	}
	return false
}

// IsBinary reports whether the file carries any non-text type information.
func (s *Store) IsBinary() bool {
	if s.IsText() {
		return false
	}
	if s.info.ProDOSFileType != 0 || s.info.ProDOSAuxType != 0 {
		return true
	}
	for _, b := range s.info.FinderInfo[:types.FinderTypeCreatorSize] {
		if b != 0 {
			return true
		}
	}
	return false
}

func (s *Store) effectivePlatform() sidecar.Platform {
	return s.platform.WithFinderInfoFormat(s.format)
}

// syncProDOS re-derives the ProDOS shadow fields from the Finder code. They
// are left alone when the code has no ProDOS equivalent.
func (s *Store) syncProDOS() {
	if fileType, auxType, ok := typecodec.Decode(s.TypeCreator()); ok {
		s.info.ProDOSFileType = uint16(fileType)
		s.info.ProDOSAuxType = uint32(auxType)
	}
}

func (s *Store) decode(data []byte) error {
	if s.Format() == types.FormatEnvelope {
		info, err := afpinfo.ParseAFPInfo(data)
		if err != nil {
			return err
		}
		s.info = *info
		if s.info.ProDOSFileType == 0 && s.info.ProDOSAuxType == 0 {
			s.syncProDOS()
		}
		return nil
	}

	if len(data) != types.FinderInfoSize {
		return errRecordSize
	}
	copy(s.info.FinderInfo[:], data)
	s.syncProDOS()
	return nil
}

func (s *Store) encode() []byte {
	if s.Format() == types.FormatEnvelope {
		return afpinfo.SerializeAFPInfo(&s.info)
	}
	data := make([]byte, types.FinderInfoSize)
	copy(data, s.info.FinderInfo[:])
	return data
}
