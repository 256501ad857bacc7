// Package app implements the application layer for ship.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/ship/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/engine"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/ship/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	envLoader    ports.EnvironmentLoader
	walker       ports.FileWalker
	copier       ports.DirectoryCopier
	renderer     ports.TemplateRenderer
	packager     ports.Packager
	records      ports.RecordStore
	tracer       ports.Tracer
	watcher      ports.Watcher
	logger       ports.Logger
	clock        clockwork.Clock
	workDir      string
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	envLoader ports.EnvironmentLoader,
	walker ports.FileWalker,
	copier ports.DirectoryCopier,
	renderer ports.TemplateRenderer,
	packager ports.Packager,
	records ports.RecordStore,
	tracer ports.Tracer,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		envLoader:    envLoader,
		walker:       walker,
		copier:       copier,
		renderer:     renderer,
		packager:     packager,
		records:      records,
		tracer:       tracer,
		watcher:      w,
		logger:       log,
		clock:        clockwork.NewRealClock(),
		workDir:      ".",
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithWorkDir sets the directory the project file is searched from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithClock replaces the clock used for build numbers and records.
func (a *App) WithClock(clock clockwork.Clock) *App {
	a.clock = clock
	return a
}

// WithDebounce sets the window watch mode waits for further changes.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// SetLogFormat switches the logger between pretty and JSON output.
// An empty or "auto" format is detected from the terminal and CI environment.
func (a *App) SetLogFormat(format string) {
	setter, ok := a.logger.(interface{ SetJSON(enable bool) })
	if !ok {
		return
	}
	resolved := detector.ResolveFormat(detector.DetectEnvironment(), format)
	setter.SetJSON(resolved == detector.FormatJSON)
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	Target string
	// Active builds the currently active target instead of Target.
	Active bool
	// Scenes overrides the enabled scenes of the project file.
	Scenes []string
}

// Build dispatches a player build and packages its output.
func (a *App) Build(ctx context.Context, opts BuildOptions) (*pipeline.Result, error) {
	s, err := a.open()
	if err != nil {
		return nil, err
	}

	entries := opts.Scenes
	if len(entries) == 0 {
		entries = s.project.EntryPoints()
	}

	var res *pipeline.Result
	switch {
	case opts.Active:
		res, err = s.dispatcher.DispatchActive(ctx, entries)
	case opts.Target == "":
		return nil, domain.ErrNoTargetSpecified
	default:
		target, perr := domain.ParseTarget(opts.Target)
		if perr != nil {
			return nil, perr
		}
		res, err = s.dispatcher.Dispatch(ctx, target, entries)
	}
	if err != nil {
		return res, err
	}

	a.reportResult(res)
	return res, nil
}

// PreProcess renders the project templates without building.
func (a *App) PreProcess(ctx context.Context) (pipeline.Stamp, error) {
	s, err := a.open()
	if err != nil {
		return pipeline.Stamp{}, err
	}
	return s.hooks.PreProcess(ctx, s.project.OutputRoot)
}

// Package stages and packages the existing output of target.
func (a *App) Package(ctx context.Context, target string) (*pipeline.Result, error) {
	t, err := domain.ParseTarget(target)
	if err != nil {
		return nil, err
	}

	s, err := a.open()
	if err != nil {
		return nil, err
	}

	res, err := s.dispatcher.Package(ctx, t)
	if err != nil {
		return res, err
	}

	a.reportResult(res)
	return res, nil
}

// Targets returns the dispatch table of the project.
func (a *App) Targets(_ context.Context) ([]pipeline.Profile, error) {
	project, err := a.loadProject()
	if err != nil {
		return nil, err
	}
	return pipeline.Profiles(project.AppName), nil
}

// Status is the persisted state of a project's output root.
type Status struct {
	OutputRoot string
	// Active is empty when no target has been selected yet.
	Active  domain.BuildTarget
	Records []domain.BuildRecord
}

// Status reports the active target and the last build of every target.
func (a *App) Status(ctx context.Context) (*Status, error) {
	s, err := a.open()
	if err != nil {
		return nil, err
	}

	status := &Status{OutputRoot: s.project.OutputRoot}

	active, err := s.switcher.ActiveTarget(ctx)
	switch {
	case err == nil:
		status.Active = active
	case !errors.Is(err, domain.ErrNoActiveTarget):
		return nil, err
	}

	status.Records, err = a.records.List(s.project.OutputRoot)
	if err != nil {
		return nil, err
	}
	return status, nil
}

// Watch renders the templates once and again whenever files below the
// template root change, until ctx is canceled. Renders never overlap.
func (a *App) Watch(ctx context.Context) error {
	s, err := a.open()
	if err != nil {
		return err
	}

	if _, err := s.hooks.PreProcess(ctx, s.project.OutputRoot); err != nil {
		return err
	}

	skip := []string{s.project.VCSMarker}
	if err := a.watcher.Start(ctx, s.project.TemplateRoot, skip); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()
	a.logger.Info("watching " + s.project.TemplateRoot)

	changed := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		a.logger.Info(fmt.Sprintf("%d template file(s) changed", len(paths)))
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for change := range a.watcher.Changes() {
			if fs.MatchesAny(change.Path, skip) {
				continue
			}
			debouncer.Add(change.Path)
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-changed:
				if _, err := s.hooks.PreProcess(ctx, s.project.OutputRoot); err != nil {
					if ctx.Err() != nil {
						return nil
					}
					a.logger.Error(err)
				}
			}
		}
	})

	return g.Wait()
}

func (a *App) reportResult(res *pipeline.Result) {
	if res.Archive == nil {
		a.logger.Info(fmt.Sprintf("%s build %s finished without packaging", res.Target, res.Stamp.Name))
		return
	}
	a.logger.Info(fmt.Sprintf("%s build %s ready: %s (%s)",
		res.Target, res.Stamp.Name, res.Archive.Path, humanize.Bytes(uint64(res.Archive.Size)))) //nolint:gosec // sizes are non-negative
}

func (a *App) loadProject() (*domain.Project, error) {
	project, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}

// session holds the per-project collaborators of one command.
type session struct {
	project    *domain.Project
	hooks      *pipeline.Hooks
	switcher   *engine.Switcher
	dispatcher *pipeline.Dispatcher
}

func (a *App) open() (*session, error) {
	project, err := a.loadProject()
	if err != nil {
		return nil, err
	}

	environment, err := a.envLoader.Load(project.Root)
	if err != nil {
		return nil, err
	}
	environ := environment.Environ()

	hooks := pipeline.NewHooks(project, environment, a.walker, a.renderer, a.clock, a.logger)
	switcher := engine.NewSwitcher(project.OutputRoot, project.Engine, project.Root, environ, a.logger)

	dispatcher := pipeline.NewDispatcher(pipeline.Dependencies{
		Project:  project,
		Switcher: switcher,
		Engine:   engine.NewProcess(project.Engine, project.Root, environ, a.logger),
		Copier:   a.copier,
		Packager: a.packager,
		Records:  a.records,
		Hooks:    hooks,
		Tracer:   a.tracer,
		Logger:   a.logger,
		Clock:    a.clock,
	})

	return &session{
		project:    project,
		hooks:      hooks,
		switcher:   switcher,
		dispatcher: dispatcher,
	}, nil
}
