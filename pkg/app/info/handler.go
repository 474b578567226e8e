package info

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/deploymenttheory/go-afp/pkg/app"
)

// Handle processes an inspection request. Paths that fail are collected in
// the response; only a request-level problem returns an error.
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	svc, err := ctx.Services.InspectionService()
	if err != nil {
		return nil, app.WrapError("initializing services", err)
	}

	response := &Response{Files: []FileResult{}}
	platform := ctx.Services.Config().ResolvedPlatform()

	inspect := func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		meta, err := svc.Inspect(ctx, path)
		if err != nil {
			response.Failures = append(response.Failures, FileFailure{
				Path:  path,
				Code:  app.ErrorCode(err),
				Error: err.Error(),
			})
			ctx.Warn(fmt.Sprintf("skipping %s: %v", path, err))
			return nil
		}
		response.Files = append(response.Files, NewFileResult(meta))
		return nil
	}

	for _, root := range req.Paths {
		fi, err := os.Stat(root)
		if err != nil || !fi.IsDir() {
			if err := inspect(root); err != nil {
				return nil, app.WrapError("inspecting files", err)
			}
			continue
		}
		if !req.Recursive {
			response.Failures = append(response.Failures, FileFailure{
				Path:  root,
				Code:  app.ErrCodeInvalidInput,
				Error: "is a directory (use --recursive)",
			})
			continue
		}

		ctx.Log(fmt.Sprintf("walking %s", root))
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				response.Failures = append(response.Failures, FileFailure{
					Path:  path,
					Code:  app.ErrorCode(walkErr),
					Error: walkErr.Error(),
				})
				ctx.Warn(fmt.Sprintf("skipping %s: %v", path, walkErr))
				return nil
			}
			if !d.Type().IsRegular() || platform.IsSidecarPath(path) {
				return nil
			}
			return inspect(path)
		})
		if err != nil {
			return nil, app.WrapError("inspecting files", err)
		}
	}

	response.TotalFound = len(response.Files)
	return response, nil
}
