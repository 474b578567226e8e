package rsrc

import (
	"fmt"

	"github.com/deploymenttheory/go-afp/pkg/app"
)

// Handle processes a resource fork request
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	svc, err := ctx.Services.ResourceForkService()
	if err != nil {
		return nil, app.WrapError("initializing services", err)
	}

	response := &Response{Path: req.Path, Op: req.Op}

	switch req.Op {
	case OpCat:
		n, err := svc.CopyOut(ctx, req.Path, req.Output)
		if err != nil {
			return nil, app.WrapError("reading resource fork", err)
		}
		response.Bytes = n
		response.Size = n

	case OpPut:
		n, err := svc.Replace(ctx, req.Path, req.Input)
		if err != nil {
			return nil, app.WrapError("writing resource fork", err)
		}
		ctx.Log(fmt.Sprintf("Wrote %d bytes to the resource fork of %s", n, req.Path))
		response.Bytes = n
		response.Size = n

	case OpSize:
		size, err := svc.Size(ctx, req.Path)
		if err != nil {
			return nil, app.WrapError("reading resource fork size", err)
		}
		response.Size = size

	case OpTruncate:
		if err := svc.Truncate(ctx, req.Path, req.size); err != nil {
			return nil, app.WrapError("truncating resource fork", err)
		}
		response.Size = req.size
	}

	return response, nil
}
