// Package typecodec maps between ProDOS file type/aux type pairs and the
// 8-byte Finder type/creator encoding.
//
// The mapping follows Apple Tech Note PT515 and the System 6.0 Programmer's
// Reference:
//
//	ProDOS              Macintosh
//	Type  Aux           Creator  Type
//	$00   $0000         'pdos'   'BINA'
//	$04   $0000         'pdos'   'TEXT'
//	$FF   (any)         'pdos'   'PSYS'
//	$B3   (any)         'pdos'   'PS16'
//	$D7   $0000         'pdos'   'MIDI'
//	$D8   $0000         'pdos'   'AIFF'
//	$D8   $0001         'pdos'   'AIFC'
//	$E0   $0005         'dCpy'   'dImg'
//	$uv   $wxyz         'pdos'   'p' $uv $wx $yz
//
// MPW tools wrote an older form, the type byte as two hex digits followed by
// two spaces, which Decode still accepts.
package typecodec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-afp/internal/types"
)

// ErrTypeOutOfRange is returned by Encode when the file type exceeds 0xFF or
// the aux type exceeds 0xFFFF.
var ErrTypeOutOfRange = errors.New("prodos type out of range")

// CreatorProDOS is the creator code used for ProDOS files.
const CreatorProDOS = "pdos"

type mapping struct {
	code     string
	fileType uint8
	auxType  uint16
}

// exactMappings is consulted by Encode for exact (type, aux) matches.
var exactMappings = []mapping{
	{"BINApdos", 0x00, 0x0000},
	{"TEXTpdos", 0x04, 0x0000},
	{"PSYSpdos", 0xFF, 0x0000},
	{"PS16pdos", 0xB3, 0x0000},
	{"MIDIpdos", 0xD7, 0x0000},
	{"AIFFpdos", 0xD8, 0x0000},
	{"AIFCpdos", 0xD8, 0x0001},
	{"dImgdCpy", 0xE0, 0x0005},
}

// decodeMappings is scanned in order after the 'pdos' creator rules. Entries
// with a four-byte code match the file type under any creator.
var decodeMappings = []mapping{
	{"TEXTpdos", 0x04, 0x0000},
	{"BINApdos", 0x00, 0x0000},
	{"dImgdCpy", 0xE0, 0x0005},
	{"MIDI", 0xD7, 0x0000},
	{"AIFF", 0xD8, 0x0000},
	{"AIFC", 0xD8, 0x0001},
}

// Decode translates a Finder type/creator pair into a ProDOS file type and
// aux type. ok is false when no mapping applies, in which case the caller
// should leave any existing ProDOS values untouched.
func Decode(code types.TypeCreatorT) (fileType uint8, auxType uint16, ok bool) {
	if string(code[4:8]) == CreatorProDOS {
		switch {
		case code[0] == 'p':
			return code[1], uint16(code[2])<<8 | uint16(code[3]), true
		case string(code[0:4]) == "PSYS":
			return 0xFF, 0x0000, true
		case string(code[0:4]) == "PS16":
			return 0xB3, 0x0000, true
		case !isHexDigit(code[0]) && isHexDigit(code[1]) && code[2] == ' ' && code[3] == ' ':
			// Legacy MPW hex pair. The digit test is kept exactly as shipped.
			return hexValue(code[0])<<4 | hexValue(code[1]), 0x0000, true
		}
	}

	for _, m := range decodeMappings {
		if bytes.Equal(code[:len(m.code)], []byte(m.code)) {
			return m.fileType, m.auxType, true
		}
	}

	return 0, 0, false
}

// Encode translates a ProDOS file type and aux type into a Finder
// type/creator pair. The arguments are wider than their legal ranges to
// match the on-disk shadow fields; values above 0xFF or 0xFFFF fail with
// ErrTypeOutOfRange.
func Encode(fileType uint16, auxType uint32) (types.TypeCreatorT, error) {
	if fileType > 0xFF || auxType > 0xFFFF {
		return types.TypeCreatorT{}, fmt.Errorf("%w: type $%X aux $%X", ErrTypeOutOfRange, fileType, auxType)
	}
	return EncodeProDOS(uint8(fileType), uint16(auxType)), nil
}

// EncodeProDOS is Encode restricted to its valid domain; it cannot fail.
func EncodeProDOS(fileType uint8, auxType uint16) types.TypeCreatorT {
	var code types.TypeCreatorT

	for _, m := range exactMappings {
		if m.fileType == fileType && m.auxType == auxType {
			copy(code[:], m.code)
			return code
		}
	}

	code[0] = 'p'
	code[1] = fileType
	code[2] = byte(auxType >> 8)
	code[3] = byte(auxType)
	copy(code[4:], CreatorProDOS)
	return code
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// hexValue returns the value of a hex digit, or zero for anything else.
func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
