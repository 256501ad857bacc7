package ports

import (
	"context"

	"go.trai.ch/ship/internal/core/domain"
)

// ArchiveLayout locates the inputs and output of a bundle archive.
type ArchiveLayout struct {
	// OutputRoot contains the artifacts and receives the archive.
	OutputRoot string
	// DataDir is the staged shared data directory.
	DataDir string
	// Ext is the archive file extension including the dot.
	Ext string
}

// Packager produces bundle archives.
//
//go:generate mockgen -source=packager.go -destination=mocks/mock_packager.go -package=mocks
type Packager interface {
	// PackageWithData archives the artifact and the shared data directory.
	PackageWithData(ctx context.Context, layout ArchiveLayout, artifactRelPath, bundleName string) (*domain.ArchiveResult, error)

	// PackageWithoutData archives the artifact alone.
	PackageWithoutData(ctx context.Context, layout ArchiveLayout, artifactRelPath, bundleName string) (*domain.ArchiveResult, error)
}
