package ports

import (
	"context"

	"go.trai.ch/ship/internal/core/domain"
)

// BuildEngine is the opaque external player build call.
//
//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type BuildEngine interface {
	// Build produces player binaries for the request.
	//
	// A non-empty diagnostic means the engine rejected the build; the error is
	// reserved for failures to reach the engine at all.
	Build(ctx context.Context, req domain.BuildRequest) (diagnostic string, err error)
}

// TargetSwitcher owns the engine's active build target.
type TargetSwitcher interface {
	// ActiveTarget returns the currently active target.
	ActiveTarget(ctx context.Context) (domain.BuildTarget, error)

	// SwitchActiveTarget makes target the active one. It may block for a long time.
	SwitchActiveTarget(ctx context.Context, target domain.BuildTarget) error
}
