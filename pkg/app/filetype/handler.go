package filetype

import (
	"fmt"

	"github.com/deploymenttheory/go-afp/pkg/app"
	"github.com/deploymenttheory/go-afp/pkg/services"
)

// Handle processes a Finder info update request
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	svc, err := ctx.Services.FinderInfoService()
	if err != nil {
		return nil, app.WrapError("initializing services", err)
	}

	switch {
	case req.Clear:
		ctx.Log(fmt.Sprintf("Clearing finder info of %s", req.Path))
		if err := svc.Clear(ctx, req.Path); err != nil {
			return nil, app.WrapError("clearing finder info", err)
		}
		return newResponse(ActionClear, &services.FinderInfo{Path: req.Path}), nil

	case req.ProDOS != "":
		ctx.Log(fmt.Sprintf("Setting ProDOS type $%02X/$%04X on %s", req.prodosType, req.prodosAux, req.Path))
		info, err := svc.SetProDOSType(ctx, req.Path, req.prodosType, req.prodosAux)
		if err != nil {
			return nil, app.WrapError("setting prodos type", err)
		}
		return newResponse(ActionSetProDOS, info), nil

	default:
		typeCode, creator := req.typeCode, req.creator
		if typeCode == nil || creator == nil {
			current, err := svc.Read(ctx, req.Path)
			if err != nil {
				return nil, app.WrapError("reading finder info", err)
			}
			if typeCode == nil {
				typeCode = &current.FileType
			}
			if creator == nil {
				creator = &current.CreatorType
			}
		}
		ctx.Log(fmt.Sprintf("Setting type/creator on %s", req.Path))
		info, err := svc.SetTypeCreator(ctx, req.Path, *typeCode, *creator)
		if err != nil {
			return nil, app.WrapError("setting type and creator", err)
		}
		return newResponse(ActionSetTypeCreator, info), nil
	}
}
