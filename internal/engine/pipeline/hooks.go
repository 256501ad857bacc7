package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
)

// Stamp identifies a build in rendered templates and build records.
type Stamp struct {
	Number string
	Name   string
	ID     string
}

// Substitutions returns the template placeholders of the stamp.
func (s Stamp) Substitutions() map[string]string {
	return map[string]string{
		domain.KeyBuildNumber: s.Number,
		domain.KeyBuildName:   s.Name,
		domain.KeyBuildID:     s.ID,
	}
}

// Hooks runs the steps around the external build.
type Hooks struct {
	project  *domain.Project
	env      ports.Environment
	walker   ports.FileWalker
	renderer ports.TemplateRenderer
	clock    clockwork.Clock
	logger   ports.Logger
}

// NewHooks creates the pre- and post-process hooks of project.
func NewHooks(
	project *domain.Project,
	env ports.Environment,
	walker ports.FileWalker,
	renderer ports.TemplateRenderer,
	clock clockwork.Clock,
	logger ports.Logger,
) *Hooks {
	return &Hooks{
		project:  project,
		env:      env,
		walker:   walker,
		renderer: renderer,
		clock:    clock,
		logger:   logger,
	}
}

// Stamp derives the build stamp from the environment.
// BUILD_NUMBER falls back to the current time. BUILD_NAME carries the user
// unless the user is unset or the automation account.
func (h *Hooks) Stamp() Stamp {
	number, ok := h.env.Lookup(domain.EnvBuildNumber)
	if !ok {
		number = h.clock.Now().Format(domain.BuildNumberLayout)
	}

	name := number
	if user, ok := h.env.Lookup(domain.EnvUser); ok && user != "" && user != h.project.AutomationUser {
		name += "_" + user
	}

	id, _ := h.env.Lookup(domain.EnvBuildID)

	return Stamp{Number: number, Name: name, ID: id}
}

// PreProcess logs the environment and renders every template below the
// template root into the project root.
func (h *Hooks) PreProcess(ctx context.Context, targetDir string) (Stamp, error) {
	h.logger.Info("pre-process " + targetDir)
	for _, entry := range h.env.Environ() {
		h.logger.Info(entry)
	}

	stamp := h.Stamp()
	subs := stamp.Substitutions()

	for path, err := range h.walker.WalkFiles(h.project.TemplateRoot, []string{h.project.VCSMarker}) {
		if err != nil {
			return stamp, err
		}
		if err := ctx.Err(); err != nil {
			return stamp, err
		}

		written, err := h.renderer.Render(domain.TemplateJob{
			TemplateRoot:  h.project.TemplateRoot,
			Path:          path,
			Substitutions: subs,
			OutputDir:     h.project.Root,
			Strict:        h.project.StrictTemplates,
		})
		if err != nil {
			return stamp, err
		}

		h.logger.Info(fmt.Sprintf("generated %s from %s", h.rel(written), h.rel(h.project.TemplateRoot)))
	}

	return stamp, nil
}

// PostProcess runs after a successful build and before packaging.
func (h *Hooks) PostProcess(_ context.Context, targetDir string) {
	h.logger.Info("post-process " + targetDir)
}

func (h *Hooks) rel(path string) string {
	if rel, err := filepath.Rel(h.project.Root, path); err == nil {
		return rel
	}
	return path
}
