package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/deploymenttheory/go-afp/internal/afperr"
	"github.com/deploymenttheory/go-afp/internal/finderinfo"
	"github.com/deploymenttheory/go-afp/internal/types"
)

// finderInfoService implements the FinderInfoService interface
type finderInfoService struct {
	config Config
	log    logrus.FieldLogger
}

// NewFinderInfoService creates a new Finder info service instance
func NewFinderInfoService(config Config) FinderInfoService {
	return &finderInfoService{
		config: config,
		log:    config.logger().WithField("service", "finderinfo"),
	}
}

func (s *finderInfoService) newStore() *finderinfo.Store {
	opts := []finderinfo.Option{finderinfo.WithFormat(s.config.Format)}
	if s.config.Platform != nil {
		opts = append(opts, finderinfo.WithPlatform(*s.config.Platform))
	}
	return finderinfo.NewStore(opts...)
}

// Read returns the Finder info of path
func (s *finderInfoService) Read(ctx context.Context, path string) (*FinderInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	store := s.newStore()
	err := store.Read(path)
	if afperr.IsKind(err, afperr.NoMetadata) {
		s.log.WithField("path", path).Debug("no finder info")
		return &FinderInfo{Path: path}, nil
	}
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"path":   path,
		"format": store.Format().String(),
	}).Debug("read finder info")

	return snapshot(path, store), nil
}

// SetProDOSType stores a ProDOS file type and aux type
func (s *finderInfoService) SetProDOSType(ctx context.Context, path string, fileType uint8, auxType uint16) (*FinderInfo, error) {
	return s.update(ctx, path, func(store *finderinfo.Store) {
		store.SetProDOSFileTypeAux(fileType, auxType)
	})
}

// SetTypeCreator stores raw Finder type and creator codes
func (s *finderInfoService) SetTypeCreator(ctx context.Context, path string, fileType, creator uint32) (*FinderInfo, error) {
	return s.update(ctx, path, func(store *finderinfo.Store) {
		store.SetFileType(fileType)
		store.SetCreatorType(creator)
	})
}

// Clear replaces the record with the default one
func (s *finderInfoService) Clear(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	store := s.newStore()
	if err := store.WritePath(path); err != nil {
		return err
	}
	s.log.WithField("path", path).Debug("cleared finder info")
	return nil
}

// update opens path write-only so that a missing or corrupt record is
// replaced, applies mutate and writes the result back
func (s *finderInfoService) update(ctx context.Context, path string, mutate func(*finderinfo.Store)) (*FinderInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	store := s.newStore()
	if err := store.Open(path, types.WriteOnly); err != nil {
		return nil, err
	}
	defer store.Close()

	mutate(store)

	if err := store.Write(); err != nil {
		return nil, err
	}
	if err := store.Close(); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"path":        path,
		"prodos_type": store.ProDOSFileType(),
		"prodos_aux":  store.ProDOSAuxType(),
	}).Debug("wrote finder info")

	return snapshot(path, store), nil
}

func snapshot(path string, store *finderinfo.Store) *FinderInfo {
	return &FinderInfo{
		Path:           path,
		Present:        true,
		FileType:       store.FileType(),
		CreatorType:    store.CreatorType(),
		ProDOSFileType: store.ProDOSFileType(),
		ProDOSAuxType:  store.ProDOSAuxType(),
		IsText:         store.IsText(),
		IsBinary:       store.IsBinary(),
	}
}
