package services

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/deploymenttheory/go-afp/internal/config"
	"github.com/deploymenttheory/go-afp/internal/resourcefork"
	"github.com/deploymenttheory/go-afp/internal/sidecar"
	"github.com/deploymenttheory/go-afp/internal/types"
)

// Config carries the settings every service is built with
type Config struct {
	// Backend forces the resource fork backend; BackendAuto follows the host
	Backend types.BackendKind

	// Format forces the Finder info layout; FormatAuto follows the host
	Format types.RecordFormat

	// Platform overrides the host side-car conventions when set
	Platform *sidecar.Platform

	// BufferSize is the chunk size used when copying resource forks
	BufferSize int

	// Logger receives debug entries; nil discards them
	Logger logrus.FieldLogger
}

// ConfigFrom converts the loaded application configuration
func ConfigFrom(cfg *config.Config, logger logrus.FieldLogger) Config {
	return Config{
		Backend:    cfg.Backend(),
		Format:     cfg.RecordFormat(),
		BufferSize: cfg.CopyBufferSize,
		Logger:     logger,
	}
}

func (c Config) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}

func (c Config) bufferSize() int {
	if c.BufferSize > 0 {
		return c.BufferSize
	}
	return config.DefaultCopyBufferSize
}

// ResolvedPlatform returns the configured platform or the host conventions
func (c Config) ResolvedPlatform() sidecar.Platform {
	if c.Platform != nil {
		return *c.Platform
	}
	return sidecar.Host()
}

func (c Config) forkOptions() []resourcefork.Option {
	opts := []resourcefork.Option{resourcefork.WithBackend(c.Backend)}
	if c.Platform != nil {
		opts = append(opts, resourcefork.WithPlatform(*c.Platform))
	}
	return opts
}

// ResolvedBackend reports which resource fork backend BackendAuto selects on
// the configured platform, or BackendAuto when the host has none.
func (c Config) ResolvedBackend() types.BackendKind {
	if c.Backend != types.BackendAuto {
		return c.Backend
	}
	switch c.ResolvedPlatform().ResourceFork.Kind {
	case types.SidecarStream:
		return types.BackendNative
	case types.SidecarXattr:
		return types.BackendBlob
	default:
		return types.BackendAuto
	}
}

// ServiceFactory provides a centralized way to create and share services
type ServiceFactory struct {
	config Config

	finderInfoService   FinderInfoService
	resourceForkService ResourceForkService
	inspectionService   InspectionService
	mu                  sync.Mutex
	initialized         bool
}

// NewServiceFactory creates a new service factory instance
func NewServiceFactory(config Config) *ServiceFactory {
	return &ServiceFactory{config: config}
}

// Initialize initializes all services with their dependencies
func (sf *ServiceFactory) Initialize() error {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.initLocked()
}

func (sf *ServiceFactory) initLocked() error {
	if sf.initialized {
		return nil
	}

	if sf.config.Platform != nil && sf.config.Platform.GOOS == "" {
		return fmt.Errorf("%w: platform has no GOOS", ErrInvalidConfig)
	}

	sf.finderInfoService = NewFinderInfoService(sf.config)
	sf.resourceForkService = NewResourceForkService(sf.config)
	sf.inspectionService = NewInspectionService(sf.config, sf.finderInfoService, sf.resourceForkService)

	sf.config.logger().WithFields(logrus.Fields{
		"platform": sf.config.ResolvedPlatform().GOOS,
		"backend":  sf.config.ResolvedBackend().String(),
		"format":   sf.config.ResolvedPlatform().WithFinderInfoFormat(sf.config.Format).FinderInfoFormat.String(),
	}).Debug("services initialized")

	sf.initialized = true
	return nil
}

// FinderInfoService returns the Finder info service instance
func (sf *ServiceFactory) FinderInfoService() (FinderInfoService, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	if err := sf.initLocked(); err != nil {
		return nil, err
	}
	return sf.finderInfoService, nil
}

// ResourceForkService returns the resource fork service instance
func (sf *ServiceFactory) ResourceForkService() (ResourceForkService, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	if err := sf.initLocked(); err != nil {
		return nil, err
	}
	return sf.resourceForkService, nil
}

// InspectionService returns the inspection service instance
func (sf *ServiceFactory) InspectionService() (InspectionService, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	if err := sf.initLocked(); err != nil {
		return nil, err
	}
	return sf.inspectionService, nil
}

// Config returns the configuration the factory builds services with
func (sf *ServiceFactory) Config() Config {
	return sf.config
}

// Shutdown releases all services
func (sf *ServiceFactory) Shutdown() error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.finderInfoService = nil
	sf.resourceForkService = nil
	sf.inspectionService = nil
	sf.initialized = false

	return nil
}

// IsInitialized returns whether the factory has been initialized
func (sf *ServiceFactory) IsInitialized() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.initialized
}

// ServiceInfo represents information about a service
type ServiceInfo struct {
	Name        string
	Description string
	Available   bool
}

// ListAvailableServices returns information about all services on this host
func (sf *ServiceFactory) ListAvailableServices() []ServiceInfo {
	p := sf.config.ResolvedPlatform()
	return []ServiceInfo{
		{
			Name:        "finderinfo",
			Description: "Finder type/creator and ProDOS type records",
			Available:   p.FinderInfo.Kind != types.SidecarNone,
		},
		{
			Name:        "resourcefork",
			Description: "Resource fork streams over native forks or extended attributes",
			Available:   sf.config.ResolvedBackend() != types.BackendAuto,
		},
		{
			Name:        "inspection",
			Description: "Combined Finder info and resource fork report",
			Available:   p.FinderInfo.Kind != types.SidecarNone,
		},
	}
}

// Common errors
var (
	ErrInvalidConfig = fmt.Errorf("invalid service configuration")
)
