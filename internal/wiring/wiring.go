// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ship/internal/adapters/archive"
	_ "go.trai.ch/ship/internal/adapters/config"
	_ "go.trai.ch/ship/internal/adapters/env"
	_ "go.trai.ch/ship/internal/adapters/fs"
	_ "go.trai.ch/ship/internal/adapters/ledger"
	_ "go.trai.ch/ship/internal/adapters/logger"
	_ "go.trai.ch/ship/internal/adapters/telemetry"
	_ "go.trai.ch/ship/internal/adapters/template"
	_ "go.trai.ch/ship/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/ship/internal/app"
)
