package filetype

import (
	"strings"

	"github.com/deploymenttheory/go-afp/internal/typecodec"
	"github.com/deploymenttheory/go-afp/pkg/app"
)

// Validate validates an update request and parses its codes
func (r *Request) Validate() error {
	if r.Path == "" {
		return app.NewError(app.ErrCodeInvalidInput, "path is required", nil)
	}

	modes := 0
	if r.ProDOS != "" {
		modes++
	}
	if r.FileType != "" || r.Creator != "" {
		modes++
	}
	if r.Clear {
		modes++
	}
	switch modes {
	case 0:
		return app.NewError(app.ErrCodeInvalidInput, "one of --prodos, --type/--creator or clear is required", nil)
	case 1:
	default:
		return app.NewError(app.ErrCodeInvalidInput, "--prodos, --type/--creator and clear are mutually exclusive", nil)
	}

	if r.ProDOS != "" {
		typePart, auxPart, hasAux := strings.Cut(r.ProDOS, "/")
		t, err := typecodec.ParseFileType(typePart)
		if err != nil {
			return app.NewError(app.ErrCodeInvalidInput, "invalid prodos type", err)
		}
		r.prodosType = t
		r.prodosAux = 0
		if hasAux {
			a, err := typecodec.ParseAuxType(auxPart)
			if err != nil {
				return app.NewError(app.ErrCodeInvalidInput, "invalid prodos aux type", err)
			}
			r.prodosAux = a
		}
	}

	if r.FileType != "" {
		v, err := typecodec.ParseFourCC(r.FileType)
		if err != nil {
			return app.NewError(app.ErrCodeInvalidInput, "invalid file type", err)
		}
		r.typeCode = &v
	}
	if r.Creator != "" {
		v, err := typecodec.ParseFourCC(r.Creator)
		if err != nil {
			return app.NewError(app.ErrCodeInvalidInput, "invalid creator", err)
		}
		r.creator = &v
	}

	return nil
}
