package services

import (
	"context"
)

// inspectionService implements the InspectionService interface
type inspectionService struct {
	finderInfo   FinderInfoService
	resourceFork ResourceForkService
	config       Config
}

// NewInspectionService creates a new inspection service on top of the
// Finder info and resource fork services
func NewInspectionService(config Config, finderInfo FinderInfoService, resourceFork ResourceForkService) InspectionService {
	return &inspectionService{
		finderInfo:   finderInfo,
		resourceFork: resourceFork,
		config:       config,
	}
}

// Inspect reports the Finder info and resource fork size of path
func (s *inspectionService) Inspect(ctx context.Context, path string) (*FileMetadata, error) {
	info, err := s.finderInfo.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	size, err := s.resourceFork.Size(ctx, path)
	if err != nil {
		return nil, err
	}

	return &FileMetadata{
		FinderInfo:       *info,
		ResourceForkSize: size,
		ForkBackend:      s.config.ResolvedBackend().String(),
	}, nil
}
