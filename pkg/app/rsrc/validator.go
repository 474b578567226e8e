package rsrc

import (
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-afp/pkg/app"
)

// Validate validates a resource fork request
func (r *Request) Validate() error {
	if r.Path == "" {
		return app.NewError(app.ErrCodeInvalidInput, "path is required", nil)
	}

	switch r.Op {
	case OpCat:
		if r.Output == nil {
			return app.NewError(app.ErrCodeInvalidInput, "cat requires an output", nil)
		}
	case OpPut:
		if r.Input == nil {
			return app.NewError(app.ErrCodeInvalidInput, "put requires an input", nil)
		}
	case OpSize:
	case OpTruncate:
		size, err := parseSize(r.Size)
		if err != nil {
			return app.NewError(app.ErrCodeInvalidInput, "invalid size", err)
		}
		r.size = size
	default:
		return app.NewError(app.ErrCodeInvalidInput, "unknown operation "+strconv.Quote(r.Op), nil)
	}
	return nil
}

// parseSize accepts a non-negative decimal or a "$"/"0x" hex length
func parseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s, base = s[1:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, strconv.ErrRange
	}
	return v, nil
}
