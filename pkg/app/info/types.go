package info

import (
	"github.com/deploymenttheory/go-afp/internal/typecodec"
	"github.com/deploymenttheory/go-afp/pkg/services"
)

// Request represents a metadata inspection request
type Request struct {
	Paths     []string
	Recursive bool
}

// Response represents inspection results
type Response struct {
	Files      []FileResult  `json:"files" yaml:"files"`
	Failures   []FileFailure `json:"failures,omitempty" yaml:"failures,omitempty"`
	TotalFound int           `json:"total_found" yaml:"total_found"`
}

// FileResult represents the legacy metadata of one file
type FileResult struct {
	Path             string `json:"path" yaml:"path"`
	HasFinderInfo    bool   `json:"has_finder_info" yaml:"has_finder_info"`
	FileType         string `json:"file_type" yaml:"file_type"`
	Creator          string `json:"creator" yaml:"creator"`
	ProDOSType       string `json:"prodos_type" yaml:"prodos_type"`
	ProDOSFileType   uint16 `json:"prodos_file_type" yaml:"prodos_file_type"`
	ProDOSAuxType    uint32 `json:"prodos_aux_type" yaml:"prodos_aux_type"`
	Class            string `json:"class" yaml:"class"`
	ResourceForkSize int64  `json:"resource_fork_size" yaml:"resource_fork_size"`
}

// FileFailure records a path that could not be inspected
type FileFailure struct {
	Path  string `json:"path" yaml:"path"`
	Code  string `json:"code" yaml:"code"`
	Error string `json:"error" yaml:"error"`
}

// Classification labels
const (
	ClassText    = "text"
	ClassBinary  = "binary"
	ClassUntyped = "untyped"
)

// NewFileResult converts service metadata into a displayable result
func NewFileResult(meta *services.FileMetadata) FileResult {
	result := FileResult{
		Path:             meta.Path,
		HasFinderInfo:    meta.Present,
		ResourceForkSize: meta.ResourceForkSize,
		Class:            ClassUntyped,
	}
	if !meta.Present {
		return result
	}

	result.FileType = typecodec.FourCC(meta.FileType)
	result.Creator = typecodec.FourCC(meta.CreatorType)
	result.ProDOSFileType = meta.ProDOSFileType
	result.ProDOSAuxType = meta.ProDOSAuxType
	result.ProDOSType = typecodec.FileTypeName(uint8(meta.ProDOSFileType))

	switch {
	case meta.IsText:
		result.Class = ClassText
	case meta.IsBinary:
		result.Class = ClassBinary
	}
	return result
}
