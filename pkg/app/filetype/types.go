package filetype

import (
	"github.com/deploymenttheory/go-afp/internal/typecodec"
	"github.com/deploymenttheory/go-afp/pkg/services"
)

// Request represents a Finder info update. Exactly one of ProDOS, the
// FileType/Creator pair, or Clear is used.
type Request struct {
	Path string

	// ProDOS is "TYPE" or "TYPE/AUX", e.g. "TXT", "$FF/$2000" or "6/0x0800"
	ProDOS string

	// FileType and Creator are four-character Finder codes. Either may be
	// omitted to keep the stored value.
	FileType string
	Creator  string

	Clear bool

	// Parsed by Validate
	prodosType uint8
	prodosAux  uint16
	typeCode   *uint32
	creator    *uint32
}

// Response represents the record after the update
type Response struct {
	Path           string `json:"path" yaml:"path"`
	Action         string `json:"action" yaml:"action"`
	FileType       string `json:"file_type" yaml:"file_type"`
	Creator        string `json:"creator" yaml:"creator"`
	ProDOSType     string `json:"prodos_type" yaml:"prodos_type"`
	ProDOSFileType uint16 `json:"prodos_file_type" yaml:"prodos_file_type"`
	ProDOSAuxType  uint32 `json:"prodos_aux_type" yaml:"prodos_aux_type"`
	IsText         bool   `json:"is_text" yaml:"is_text"`
}

// Actions
const (
	ActionSetProDOS      = "set-prodos"
	ActionSetTypeCreator = "set-type-creator"
	ActionClear          = "clear"
)

func newResponse(action string, info *services.FinderInfo) *Response {
	return &Response{
		Path:           info.Path,
		Action:         action,
		FileType:       typecodec.FourCC(info.FileType),
		Creator:        typecodec.FourCC(info.CreatorType),
		ProDOSType:     typecodec.FileTypeName(uint8(info.ProDOSFileType)),
		ProDOSFileType: info.ProDOSFileType,
		ProDOSAuxType:  info.ProDOSAuxType,
		IsText:         info.IsText,
	}
}
