package info

import (
	"github.com/deploymenttheory/go-afp/pkg/app"
)

// Validate validates an inspection request
func (r *Request) Validate() error {
	if len(r.Paths) == 0 {
		return app.NewError(app.ErrCodeInvalidInput, "at least one path is required", nil)
	}
	for _, p := range r.Paths {
		if p == "" {
			return app.NewError(app.ErrCodeInvalidInput, "path must not be empty", nil)
		}
	}
	return nil
}
