package services

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/deploymenttheory/go-afp/internal/afperr"
	"github.com/deploymenttheory/go-afp/internal/resourcefork"
	"github.com/deploymenttheory/go-afp/internal/types"
)

// resourceForkService implements the ResourceForkService interface
type resourceForkService struct {
	config Config
	log    logrus.FieldLogger
}

// NewResourceForkService creates a new resource fork service instance
func NewResourceForkService(config Config) ResourceForkService {
	return &resourceForkService{
		config: config,
		log:    config.logger().WithField("service", "resourcefork"),
	}
}

func (s *resourceForkService) open(path string, mode types.OpenMode) (*resourcefork.Stream, error) {
	stream, err := resourcefork.Open(path, mode, s.config.forkOptions()...)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"path":    path,
		"mode":    mode.String(),
		"backend": stream.Kind().String(),
	}).Debug("opened resource fork")
	return stream, nil
}

// Size returns the fork length
func (s *resourceForkService) Size(ctx context.Context, path string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	stream, err := s.open(path, types.ReadOnly)
	if afperr.IsKind(err, afperr.NoMetadata) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	defer stream.Close()

	return stream.Size()
}

// CopyOut streams the fork of path to w
func (s *resourceForkService) CopyOut(ctx context.Context, path string, w io.Writer) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	stream, err := s.open(path, types.ReadOnly)
	if afperr.IsKind(err, afperr.NoMetadata) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	defer stream.Close()

	n, err := io.CopyBuffer(w, &contextReader{ctx: ctx, r: stream}, make([]byte, s.config.bufferSize()))
	if err != nil {
		return n, err
	}
	return n, stream.Close()
}

// Replace overwrites the fork of path with the contents of r
func (s *resourceForkService) Replace(ctx context.Context, path string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	stream, err := s.open(path, types.WriteOnly)
	if err != nil {
		return 0, err
	}
	defer stream.Close()

	if err := stream.Truncate(0); err != nil {
		return 0, err
	}
	if _, err := stream.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	n, err := io.CopyBuffer(stream, &contextReader{ctx: ctx, r: r}, make([]byte, s.config.bufferSize()))
	if err != nil {
		return n, err
	}

	s.log.WithFields(logrus.Fields{"path": path, "bytes": n}).Debug("replaced resource fork")
	return n, stream.Close()
}

// Truncate sets the fork length
func (s *resourceForkService) Truncate(ctx context.Context, path string, size int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stream, err := s.open(path, types.WriteOnly)
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := stream.Truncate(size); err != nil {
		return err
	}
	return stream.Close()
}

// contextReader stops a copy once ctx is done
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
