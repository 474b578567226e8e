package finderinfo

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-afp/internal/afperr"
	"github.com/deploymenttheory/go-afp/internal/parsers/afpinfo"
	"github.com/deploymenttheory/go-afp/internal/sidecar"
	"github.com/deploymenttheory/go-afp/internal/testutil"
	"github.com/deploymenttheory/go-afp/internal/types"
)

// streamPlatform keeps the record in a sibling "<file>:FinderInfo" file so the
// tests behave the same on every filesystem.
var streamPlatform = sidecar.Platform{
	GOOS:             "test",
	FinderInfo:       sidecar.Key{Kind: types.SidecarStream, Name: ":FinderInfo"},
	FinderInfoFormat: types.FormatPlain,
}

func newTestStore(opts ...Option) *Store {
	return NewStore(append([]Option{WithPlatform(streamPlatform)}, opts...)...)
}

func sidecarPath(path string) string {
	return sidecar.StreamPath(path, streamPlatform.FinderInfo)
}

func TestOpenMissingRecord(t *testing.T) {
	path := testutil.TempFile(t, []byte("hello"))

	tests := []struct {
		name    string
		mode    types.OpenMode
		wantErr afperr.Kind
	}{
		{"read only", types.ReadOnly, afperr.NoMetadata},
		{"read write", types.ReadWrite, afperr.NoMetadata},
		{"write only", types.WriteOnly, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			defer s.Close()

			err := s.Open(path, tt.mode)
			if tt.wantErr != 0 {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, types.FinderInfoT{}, s.Data())
			assert.Zero(t, s.ProDOSFileType())
			assert.Zero(t, s.ProDOSAuxType())
			assert.False(t, s.IsText())
			assert.False(t, s.IsBinary())
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	s := newTestStore()
	err := s.Open(testutil.MissingPath(t), types.WriteOnly)
	assert.True(t, errors.Is(err, afperr.NotFound), "got %v", err)

	err = s.Open(t.TempDir(), types.ReadOnly)
	assert.True(t, errors.Is(err, afperr.InvalidArgument), "got %v", err)
}

func TestWriteAndReadBack(t *testing.T) {
	path := testutil.TempFile(t, nil)

	s := newTestStore()
	require.NoError(t, s.Open(path, types.WriteOnly))
	s.SetProDOSFileTypeAux(0x06, 0x2000)
	require.NoError(t, s.Write())
	require.NoError(t, s.Close())

	raw, err := os.ReadFile(sidecarPath(path))
	require.NoError(t, err)
	require.Len(t, raw, types.FinderInfoSize)
	assert.Equal(t, []byte{'p', 0x06, 0x20, 0x00, 'p', 'd', 'o', 's'}, raw[:8])

	r := newTestStore()
	require.NoError(t, r.Read(path))
	assert.Equal(t, uint16(0x06), r.ProDOSFileType())
	assert.Equal(t, uint32(0x2000), r.ProDOSAuxType())
	assert.Equal(t, uint32(0x70062000), r.FileType())
	assert.Equal(t, uint32(0x70646f73), r.CreatorType())
	assert.True(t, r.IsBinary())

	err = r.Write()
	assert.True(t, errors.Is(err, afperr.BadDescriptor), "read-only store released its handle, got %v", err)
}

func TestOpenCorruptRecord(t *testing.T) {
	path := testutil.TempFile(t, nil)
	require.NoError(t, os.WriteFile(sidecarPath(path), []byte("short"), 0o644))

	s := newTestStore()
	err := s.Open(path, types.ReadOnly)
	assert.True(t, errors.Is(err, afperr.DataCorrupt), "got %v", err)

	err = s.Open(path, types.ReadWrite)
	assert.True(t, errors.Is(err, afperr.DataCorrupt), "got %v", err)

	require.NoError(t, s.Open(path, types.WriteOnly))
	assert.Equal(t, types.FinderInfoT{}, s.Data())
	s.SetProDOSFileType(0x04)
	require.NoError(t, s.Write())
	require.NoError(t, s.Close())

	raw, err := os.ReadFile(sidecarPath(path))
	require.NoError(t, err)
	assert.Len(t, raw, types.FinderInfoSize)
	assert.Equal(t, "TEXTpdos", string(raw[:8]))
}

func TestReadWritePreservesFlags(t *testing.T) {
	path := testutil.TempFile(t, nil)

	record := make([]byte, types.FinderInfoSize)
	copy(record, "APPLMACS")
	record[8] = 0x20
	record[31] = 0xAA
	require.NoError(t, os.WriteFile(sidecarPath(path), record, 0o644))

	s := newTestStore()
	require.NoError(t, s.Open(path, types.ReadWrite))
	assert.Zero(t, s.ProDOSFileType(), "APPLMACS has no ProDOS equivalent")

	s.SetProDOSFileType(0xFF)
	require.NoError(t, s.Write())
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	raw, err := os.ReadFile(sidecarPath(path))
	require.NoError(t, err)
	assert.Equal(t, "PSYSpdos", string(raw[:8]))
	assert.Equal(t, byte(0x20), raw[8])
	assert.Equal(t, byte(0xAA), raw[31])
}

func TestWritePath(t *testing.T) {
	path := testutil.TempFile(t, nil)

	s := newTestStore()
	s.SetProDOSFileType(0xB3)
	require.NoError(t, s.WritePath(path))

	r := newTestStore()
	require.NoError(t, r.Read(path))
	assert.Equal(t, "PS16pdos", r.TypeCreator().String())
	assert.Equal(t, uint16(0xB3), r.ProDOSFileType())

	assert.True(t, errors.Is(s.WritePath(testutil.MissingPath(t)), afperr.NotFound))
}

func TestEnvelopeFormat(t *testing.T) {
	path := testutil.TempFile(t, nil)

	s := newTestStore(WithFormat(types.FormatEnvelope))
	require.NoError(t, s.Open(path, types.WriteOnly))
	s.SetProDOSFileTypeAux(0xE0, 0x0005)
	require.NoError(t, s.Write())
	require.NoError(t, s.Close())

	raw, err := os.ReadFile(sidecarPath(path))
	require.NoError(t, err)
	info, err := afpinfo.ParseAFPInfo(raw)
	require.NoError(t, err)
	assert.Equal(t, "dImgdCpy", string(info.FinderInfo[:8]))
	assert.Equal(t, uint16(0xE0), info.ProDOSFileType)
	assert.Equal(t, uint32(0x0005), info.ProDOSAuxType)
	assert.Equal(t, types.AFPInfoBackupDateInvalid, info.BackupDate)

	r := newTestStore(WithFormat(types.FormatEnvelope))
	require.NoError(t, r.Read(path))
	assert.Equal(t, uint16(0xE0), r.ProDOSFileType())

	plain := newTestStore()
	err = plain.Read(path)
	assert.True(t, errors.Is(err, afperr.DataCorrupt), "60-byte record is not a plain record, got %v", err)
}

func TestEnvelopeAdoptsDecodedType(t *testing.T) {
	path := testutil.TempFile(t, nil)

	info := afpinfo.NewAFPInfo()
	info.FileID = 42
	copy(info.FinderInfo[:], "TEXTpdos")
	require.NoError(t, os.WriteFile(sidecarPath(path), afpinfo.SerializeAFPInfo(&info), 0o644))

	s := newTestStore(WithFormat(types.FormatEnvelope))
	require.NoError(t, s.Open(path, types.ReadWrite))
	assert.Equal(t, uint16(0x04), s.ProDOSFileType())
	assert.True(t, s.IsText())

	s.SetCreatorType(0x74747874) // ttxt
	require.NoError(t, s.Write())
	require.NoError(t, s.Close())

	raw, err := os.ReadFile(sidecarPath(path))
	require.NoError(t, err)
	got, err := afpinfo.ParseAFPInfo(raw)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), got.FileID)
	assert.Equal(t, "TEXTttxt", string(got.FinderInfo[:8]))
}

func TestEnvelopeBadMagic(t *testing.T) {
	path := testutil.TempFile(t, nil)

	info := afpinfo.NewAFPInfo()
	info.Magic = 0xDEADBEEF
	require.NoError(t, os.WriteFile(sidecarPath(path), afpinfo.SerializeAFPInfo(&info), 0o644))

	s := newTestStore(WithFormat(types.FormatEnvelope))
	err := s.Read(path)
	assert.True(t, errors.Is(err, afperr.DataCorrupt), "got %v", err)
}

func TestIsTextAndIsBinary(t *testing.T) {
	s := newTestStore()

	s.SetProDOSFileType(0xB0)
	assert.True(t, s.IsText())
	assert.False(t, s.IsBinary())

	s.SetProDOSFileType(0x06)
	assert.False(t, s.IsText())
	assert.True(t, s.IsBinary())

	s.SetProDOSFileType(0x00)
	assert.Equal(t, "BINApdos", s.TypeCreator().String())
	assert.False(t, s.IsText())
	assert.True(t, s.IsBinary())

	s.Clear()
	s.SetFileType(0x54455854) // TEXT
	assert.True(t, s.IsText())
	assert.Zero(t, s.ProDOSFileType(), "TEXT without the pdos creator leaves the shadow fields")

	s.Clear()
	assert.False(t, s.IsText())
	assert.False(t, s.IsBinary())
}

func TestSetFileTypeDerivesProDOS(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantType uint16
		wantAux  uint32
	}{
		{"generic", "p\x10\x12\x34pdos", 0x10, 0x1234},
		{"system", "PSYSpdos", 0xFF, 0},
		{"midi any creator", "MIDIxxxx", 0xD7, 0},
		{"aiff-c", "AIFCxxxx", 0xD8, 1},
		{"disk copy", "dImgdCpy", 0xE0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data types.FinderInfoT
			copy(data[:], tt.code)

			s := newTestStore()
			s.SetData(data)
			assert.Equal(t, tt.wantType, s.ProDOSFileType())
			assert.Equal(t, tt.wantAux, s.ProDOSAuxType())
		})
	}
}

func TestOpenInvalidMode(t *testing.T) {
	s := newTestStore()
	err := s.Open(testutil.TempFile(t, nil), types.OpenMode(0))
	assert.True(t, errors.Is(err, afperr.InvalidArgument), "got %v", err)
}

func TestOpenUnsupportedPlatform(t *testing.T) {
	s := NewStore(WithPlatform(sidecar.Lookup("plan9")))
	err := s.Open(testutil.TempFile(t, nil), types.ReadOnly)
	assert.True(t, errors.Is(err, afperr.NotSupported), "got %v", err)
}

func TestSetProDOSFileTypeKeepsAuxType(t *testing.T) {
	s := newTestStore()

	s.SetProDOSFileTypeAux(0x06, 0x2000)
	s.SetProDOSFileType(0x06)
	assert.Equal(t, uint16(0x06), s.ProDOSFileType())
	assert.Equal(t, uint32(0x2000), s.ProDOSAuxType())
	assert.Equal(t, types.TypeCreatorT{'p', 0x06, 0x20, 0x00, 'p', 'd', 'o', 's'}, s.TypeCreator())

	s.SetProDOSFileType(0xC1)
	assert.Equal(t, uint32(0x2000), s.ProDOSAuxType())
	assert.Equal(t, types.TypeCreatorT{'p', 0xC1, 0x20, 0x00, 'p', 'd', 'o', 's'}, s.TypeCreator())

	path := testutil.TempFile(t, nil)
	require.NoError(t, s.WritePath(path))

	r := newTestStore()
	require.NoError(t, r.Read(path))
	assert.Equal(t, uint16(0xC1), r.ProDOSFileType())
	assert.Equal(t, uint32(0x2000), r.ProDOSAuxType())
}

func TestXattrRecord(t *testing.T) {
	path := testutil.TempFile(t, nil)
	testutil.RequireXattrs(t, path)

	p := sidecar.Platform{
		GOOS:             "test",
		FinderInfo:       sidecar.Key{Kind: types.SidecarXattr, Name: "user.go-afp.test.FinderInfo"},
		FinderInfoFormat: types.FormatPlain,
	}

	s := NewStore(WithPlatform(p))
	require.NoError(t, s.Open(path, types.WriteOnly))
	s.SetProDOSFileType(0x04)
	require.NoError(t, s.Write())
	require.NoError(t, s.Close())

	r := NewStore(WithPlatform(p))
	require.NoError(t, r.Read(path))
	assert.True(t, r.IsText())
	assert.Equal(t, "TEXTpdos", r.TypeCreator().String())
}
