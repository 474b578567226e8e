package typecodec

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// prodosNames are the conventional three-letter ProDOS file type mnemonics.
var prodosNames = map[uint8]string{
	0x00: "NON",
	0x01: "BAD",
	0x04: "TXT",
	0x06: "BIN",
	0x0F: "DIR",
	0x19: "ADB",
	0x1A: "AWP",
	0x1B: "ASP",
	0xB0: "SRC",
	0xB3: "S16",
	0xB5: "EXE",
	0xB6: "PIF",
	0xB8: "NDA",
	0xB9: "CDA",
	0xBA: "TOL",
	0xBC: "LDF",
	0xC0: "PNT",
	0xC1: "PIC",
	0xC8: "FNT",
	0xD7: "MDI",
	0xD8: "SND",
	0xE0: "LBR",
	0xE2: "ATK",
	0xEF: "PAS",
	0xF0: "CMD",
	0xFA: "INT",
	0xFB: "IVR",
	0xFC: "BAS",
	0xFD: "VAR",
	0xFE: "REL",
	0xFF: "SYS",
}

// FileTypeName returns the ProDOS mnemonic for fileType, or "$XX" when the
// type has no conventional name.
func FileTypeName(fileType uint8) string {
	if name, ok := prodosNames[fileType]; ok {
		return name
	}
	return fmt.Sprintf("$%02X", fileType)
}

// ParseFileType accepts a mnemonic ("TXT"), a "$XX" or "0xXX" hex value, or a
// decimal value.
func ParseFileType(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	upper := strings.ToUpper(s)
	for t, name := range prodosNames {
		if name == upper {
			return t, nil
		}
	}
	v, err := parseNumber(s, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid prodos file type %q: %w", s, err)
	}
	return uint8(v), nil
}

// ParseAuxType accepts a "$XXXX" or "0xXXXX" hex value, or a decimal value.
func ParseAuxType(s string) (uint16, error) {
	v, err := parseNumber(strings.TrimSpace(s), 16)
	if err != nil {
		return 0, fmt.Errorf("invalid prodos aux type %q: %w", s, err)
	}
	return uint16(v), nil
}

func parseNumber(s string, bits int) (uint64, error) {
	switch {
	case strings.HasPrefix(s, "$"):
		return strconv.ParseUint(s[1:], 16, bits)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return strconv.ParseUint(s[2:], 16, bits)
	default:
		return strconv.ParseUint(s, 10, bits)
	}
}

// FourCC renders a type or creator code for display. Printable ASCII is
// shown as-is; anything else is escaped as \xNN.
func FourCC(code uint32) string {
	var raw [4]byte
	binary.BigEndian.PutUint32(raw[:], code)

	var sb strings.Builder
	for _, c := range raw {
		if c >= 0x20 && c < 0x7F && c != '\\' {
			sb.WriteByte(c)
		} else {
			fmt.Fprintf(&sb, "\\x%02x", c)
		}
	}
	return sb.String()
}

// ParseFourCC is the inverse of FourCC. It accepts exactly four bytes after
// \xNN escapes are expanded.
func ParseFourCC(s string) (uint32, error) {
	var raw []byte
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && s[i+1] == 'x' {
			v, err := strconv.ParseUint(s[i+2:i+4], 16, 8)
			if err != nil {
				return 0, fmt.Errorf("invalid escape in code %q: %w", s, err)
			}
			raw = append(raw, byte(v))
			i += 3
			continue
		}
		raw = append(raw, s[i])
	}
	if len(raw) != 4 {
		return 0, fmt.Errorf("code %q must be exactly four characters", s)
	}
	return binary.BigEndian.Uint32(raw), nil
}
