package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ship/internal/adapters/archive"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/env"       //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/ledger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/template"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			env.NodeID,
			fs.WalkerNodeID,
			fs.CopierNodeID,
			template.NodeID,
			archive.NodeID,
			ledger.NodeID,
			telemetry.TracerNodeID,
			watcher.WatcherNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			envLoader, err := graft.Dep[ports.EnvironmentLoader](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[ports.FileWalker](ctx)
			if err != nil {
				return nil, err
			}
			copier, err := graft.Dep[ports.DirectoryCopier](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := graft.Dep[ports.TemplateRenderer](ctx)
			if err != nil {
				return nil, err
			}
			packager, err := graft.Dep[ports.Packager](ctx)
			if err != nil {
				return nil, err
			}
			records, err := graft.Dep[ports.RecordStore](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, envLoader, walker, copier, renderer, packager, records, tracer, w, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}
