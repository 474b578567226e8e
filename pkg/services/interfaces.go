package services

import (
	"context"
	"io"
)

// FinderInfo represents the decoded Finder info record of one file
type FinderInfo struct {
	Path           string `json:"path" yaml:"path"`
	Present        bool   `json:"present" yaml:"present"`
	FileType       uint32 `json:"file_type" yaml:"file_type"`
	CreatorType    uint32 `json:"creator_type" yaml:"creator_type"`
	ProDOSFileType uint16 `json:"prodos_file_type" yaml:"prodos_file_type"`
	ProDOSAuxType  uint32 `json:"prodos_aux_type" yaml:"prodos_aux_type"`
	IsText         bool   `json:"is_text" yaml:"is_text"`
	IsBinary       bool   `json:"is_binary" yaml:"is_binary"`
}

// FileMetadata combines the Finder info and resource fork state of one file
type FileMetadata struct {
	FinderInfo

	ResourceForkSize int64  `json:"resource_fork_size" yaml:"resource_fork_size"`
	ForkBackend      string `json:"fork_backend" yaml:"fork_backend"`
}

// FinderInfoService provides Finder info operations
type FinderInfoService interface {
	// Read returns the Finder info of path. A file without a record is
	// reported with Present set to false rather than an error.
	Read(ctx context.Context, path string) (*FinderInfo, error)

	// SetProDOSType stores a ProDOS file type and aux type, keeping the
	// remaining Finder flags of an existing record
	SetProDOSType(ctx context.Context, path string, fileType uint8, auxType uint16) (*FinderInfo, error)

	// SetTypeCreator stores raw Finder type and creator codes
	SetTypeCreator(ctx context.Context, path string, fileType, creator uint32) (*FinderInfo, error)

	// Clear replaces the record with the default one
	Clear(ctx context.Context, path string) error
}

// ResourceForkService provides resource fork operations
type ResourceForkService interface {
	// Size returns the fork length; a file without a fork has size zero
	Size(ctx context.Context, path string) (int64, error)

	// CopyOut streams the fork of path to w
	CopyOut(ctx context.Context, path string, w io.Writer) (int64, error)

	// Replace overwrites the fork of path with the contents of r
	Replace(ctx context.Context, path string, r io.Reader) (int64, error)

	// Truncate sets the fork length
	Truncate(ctx context.Context, path string, size int64) error
}

// InspectionService reports all legacy metadata of a file at once
type InspectionService interface {
	Inspect(ctx context.Context, path string) (*FileMetadata, error)
}
