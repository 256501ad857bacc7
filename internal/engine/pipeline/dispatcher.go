// Package pipeline implements the build dispatch state machine.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dependencies are the collaborators of a Dispatcher.
type Dependencies struct {
	Project  *domain.Project
	Switcher ports.TargetSwitcher
	Engine   ports.BuildEngine
	Copier   ports.DirectoryCopier
	Packager ports.Packager
	Records  ports.RecordStore
	Hooks    *Hooks
	Tracer   ports.Tracer
	Logger   ports.Logger
	Clock    clockwork.Clock
}

// Result describes a finished dispatch.
type Result struct {
	RunID    string
	Target   domain.BuildTarget
	State    domain.State
	Options  domain.BuildOptions
	FirstRun bool
	Stamp    Stamp
	// Archive is nil when the target is not packaged.
	Archive *domain.ArchiveResult
}

// Dispatcher drives one target at a time through switch, options, pre-process,
// build, post-process, staging and packaging. It is the only user of the
// target switcher.
type Dispatcher struct {
	project  *domain.Project
	switcher ports.TargetSwitcher
	engine   ports.BuildEngine
	copier   ports.DirectoryCopier
	packager ports.Packager
	records  ports.RecordStore
	hooks    *Hooks
	tracer   ports.Tracer
	logger   ports.Logger
	clock    clockwork.Clock
	newRunID func() string

	state domain.State
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(deps Dependencies) *Dispatcher {
	return &Dispatcher{
		project:  deps.Project,
		switcher: deps.Switcher,
		engine:   deps.Engine,
		copier:   deps.Copier,
		packager: deps.Packager,
		records:  deps.Records,
		hooks:    deps.Hooks,
		tracer:   deps.Tracer,
		logger:   deps.Logger,
		clock:    deps.Clock,
		newRunID: uuid.NewString,
		state:    domain.StateIdle,
	}
}

// State returns the state reached by the last dispatch.
func (d *Dispatcher) State() domain.State {
	return d.state
}

// Dispatch builds and packages target from entryPoints.
func (d *Dispatcher) Dispatch(ctx context.Context, target domain.BuildTarget, entryPoints []string) (*Result, error) {
	profile, err := ProfileFor(target, d.project.AppName)
	if err != nil {
		return nil, err
	}

	req := domain.BuildRequest{
		Target:                   target,
		EntryPoints:              slices.Clone(entryPoints),
		OutputPath:               resolve(d.project.OutputRoot, profile.OutputPath),
		Options:                  domain.OptionsNone,
		OverrideWithUserSettings: profile.Override,
	}

	return d.run(ctx, req, profile)
}

// DispatchActive dispatches the currently active target.
func (d *Dispatcher) DispatchActive(ctx context.Context, entryPoints []string) (*Result, error) {
	target, err := d.switcher.ActiveTarget(ctx)
	if err != nil {
		return nil, err
	}
	return d.Dispatch(ctx, target, entryPoints)
}

// Package stages and packages the existing output of target without building.
func (d *Dispatcher) Package(ctx context.Context, target domain.BuildTarget) (*Result, error) {
	profile, err := ProfileFor(target, d.project.AppName)
	if err != nil {
		return nil, err
	}

	res := &Result{RunID: d.newRunID(), Target: target, State: domain.StatePostProcessed, Stamp: d.hooks.Stamp()}
	ctx, span := d.tracer.Start(ctx, "package "+target.String(),
		ports.WithAttribute("target", target.String()),
		ports.WithAttribute("run_id", res.RunID),
	)
	defer span.End()

	if err := d.finish(ctx, res, profile, resolve(d.project.OutputRoot, profile.OutputPath)); err != nil {
		span.RecordError(err)
		d.transition(res, domain.StateFailed)
		return res, err
	}
	return res, nil
}

func (d *Dispatcher) run(ctx context.Context, req domain.BuildRequest, profile Profile) (res *Result, err error) {
	d.state = domain.StateIdle
	res = &Result{RunID: d.newRunID(), Target: req.Target, State: domain.StateIdle}

	ctx, span := d.tracer.Start(ctx, "dispatch "+req.Target.String(),
		ports.WithAttribute("target", req.Target.String()),
		ports.WithAttribute("run_id", res.RunID),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			d.transition(res, domain.StateFailed)
		}
		span.End()
	}()

	if err := d.ensureActiveTarget(ctx, req.Target); err != nil {
		return res, err
	}
	d.transition(res, domain.StateTargetSelected)

	parent := filepath.Dir(req.OutputPath)
	if err := os.MkdirAll(parent, domain.DirPerm); err != nil {
		return res, errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrOutputParentCreate.Error()), "path", parent))
	}

	res.FirstRun = !exists(req.OutputPath)
	if req.OverrideWithUserSettings {
		req.Options = domain.ResolveOptions(req.Options, d.project.Settings, res.FirstRun)
	}
	res.Options = req.Options
	span.SetAttribute("first_run", res.FirstRun)
	span.SetAttribute("options", req.Options.Names())
	d.logger.Info("build options: " + req.Options.String())
	d.transition(res, domain.StateOptionsResolved)

	res.Stamp, err = d.preProcess(ctx, parent)
	if err != nil {
		return res, err
	}
	d.transition(res, domain.StatePreProcessed)

	if err := d.build(ctx, req); err != nil {
		return res, err
	}
	d.transition(res, domain.StateBuilt)

	d.hooks.PostProcess(ctx, parent)
	d.transition(res, domain.StatePostProcessed)

	if err := d.finish(ctx, res, profile, req.OutputPath); err != nil {
		return res, err
	}
	return res, nil
}

// finish stages, packages and records a built target.
func (d *Dispatcher) finish(ctx context.Context, res *Result, profile Profile, outputPath string) error {
	if err := d.stage(ctx, profile); err != nil {
		return err
	}

	archive, err := d.pack(ctx, profile)
	if err != nil {
		return err
	}
	res.Archive = archive
	d.transition(res, domain.StatePackaged)

	d.record(res, profile, outputPath)
	return nil
}

func (d *Dispatcher) transition(res *Result, to domain.State) {
	d.state = to
	res.State = to
}

func (d *Dispatcher) ensureActiveTarget(ctx context.Context, target domain.BuildTarget) error {
	current, err := d.switcher.ActiveTarget(ctx)
	if err != nil && !errors.Is(err, domain.ErrNoActiveTarget) {
		return errors.Join(domain.ErrTargetSwitch, err)
	}
	if err == nil && current == target {
		return nil
	}

	ctx, span := d.tracer.Start(ctx, "switch", ports.WithAttribute("target", target.String()))
	defer span.End()

	if err := d.switcher.SwitchActiveTarget(ctx, target); err != nil {
		span.RecordError(err)
		return errors.Join(domain.ErrTargetSwitch, err)
	}
	return nil
}

func (d *Dispatcher) preProcess(ctx context.Context, targetDir string) (Stamp, error) {
	ctx, span := d.tracer.Start(ctx, "preprocess")
	defer span.End()

	stamp, err := d.hooks.PreProcess(ctx, targetDir)
	if err != nil {
		span.RecordError(err)
		return stamp, err
	}
	span.SetAttribute("build_number", stamp.Number)
	return stamp, nil
}

func (d *Dispatcher) build(ctx context.Context, req domain.BuildRequest) error {
	ctx, span := d.tracer.Start(ctx, "build",
		ports.WithAttribute("output", req.OutputPath),
		ports.WithAttribute("entry_points", len(req.EntryPoints)),
	)
	defer span.End()

	diagnostic, err := d.engine.Build(ctx, req)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if diagnostic != "" {
		engineErr := domain.NewEngineError(diagnostic)
		span.RecordError(engineErr)
		return engineErr
	}
	return nil
}

func (d *Dispatcher) stage(ctx context.Context, profile Profile) error {
	if !profile.StageData && profile.Extra == nil {
		return nil
	}

	_, span := d.tracer.Start(ctx, "stage")
	defer span.End()

	if profile.StageData {
		dst := resolve(d.project.OutputRoot, domain.DataEntryPrefix)
		if err := d.copier.CopyTree(d.project.DataDir, dst, d.project.IgnorePatterns); err != nil {
			span.RecordError(err)
			return err
		}
	}

	if extra := profile.Extra; extra != nil {
		src := resolve(d.project.Root, extra.From)
		if !exists(src) {
			d.logger.Info("nothing to stage from " + extra.From)
			return nil
		}
		if err := d.copier.CopyTree(src, resolve(d.project.OutputRoot, extra.To), d.project.IgnorePatterns); err != nil {
			span.RecordError(err)
			return err
		}
	}

	return nil
}

func (d *Dispatcher) pack(ctx context.Context, profile Profile) (*domain.ArchiveResult, error) {
	if profile.Packaging == domain.PackageNone {
		return nil, nil
	}

	ctx, span := d.tracer.Start(ctx, "package",
		ports.WithAttribute("bundle", profile.Bundle),
		ports.WithAttribute("policy", profile.Packaging.String()),
	)
	defer span.End()

	layout := ports.ArchiveLayout{
		OutputRoot: d.project.OutputRoot,
		DataDir:    resolve(d.project.OutputRoot, domain.DataEntryPrefix),
		Ext:        d.project.ArchiveExt,
	}

	packageFn := d.packager.PackageWithoutData
	if profile.Packaging == domain.PackageWithData {
		packageFn = d.packager.PackageWithData
	}

	archive, err := packageFn(ctx, layout, profile.Artifact, profile.Bundle)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("size", archive.Size)
	return archive, nil
}

// record stores the build record. A failure is reported but does not fail the dispatch.
func (d *Dispatcher) record(res *Result, profile Profile, outputPath string) {
	rec := domain.BuildRecord{
		Target:      res.Target,
		RunID:       res.RunID,
		BuildNumber: res.Stamp.Number,
		BuildName:   res.Stamp.Name,
		Options:     res.Options.Names(),
		OutputPath:  outputPath,
		Timestamp:   d.clock.Now(),
	}
	if res.Archive != nil {
		rec.Bundle = profile.Bundle
		rec.ArchivePath = res.Archive.Path
		rec.ArchiveSize = res.Archive.Size
		rec.Checksum = res.Archive.Checksum
	}

	if err := d.records.Put(d.project.OutputRoot, rec); err != nil {
		d.logger.Warn(fmt.Sprintf("could not record build of %s: %v", res.Target, err))
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
