package engine

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TargetSwitcher = (*Switcher)(nil)

// Switcher implements ports.TargetSwitcher with a file under the output root's
// state directory and an optional switch command.
type Switcher struct {
	path    string
	command []string
	dir     string
	env     []string
	logger  ports.Logger
}

// NewSwitcher creates a Switcher persisting the active target below outputRoot.
func NewSwitcher(outputRoot string, cfg domain.EngineConfig, dir string, env []string, logger ports.Logger) *Switcher {
	return &Switcher{
		path:    domain.ActiveTargetPath(outputRoot),
		command: slices.Clone(cfg.SwitchCommand),
		dir:     dir,
		env:     env,
		logger:  logger,
	}
}

// ActiveTarget returns the persisted active target.
func (s *Switcher) ActiveTarget(_ context.Context) (domain.BuildTarget, error) {
	// #nosec G304 -- path is derived from the configured output root
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.ErrNoActiveTarget
		}
		return "", errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrActiveTargetRead.Error()), "path", s.path))
	}

	target, err := domain.ParseTarget(strings.TrimSpace(string(data)))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrActiveTargetRead.Error()), "path", s.path)
	}
	return target, nil
}

// SwitchActiveTarget runs the switch command, if any, and persists target.
// Nothing is persisted when the command fails.
func (s *Switcher) SwitchActiveTarget(ctx context.Context, target domain.BuildTarget) error {
	if len(s.command) > 0 {
		args := append(slices.Clone(s.command[1:]), target.String())
		cmd := exec.CommandContext(ctx, s.command[0], args...) //nolint:gosec // user provided command
		cmd.Dir = s.dir
		cmd.Env = s.env

		out, err := cmd.CombinedOutput()
		if err != nil {
			return zerr.With(zerr.Wrap(err, "switch command failed"), "output", strings.TrimSpace(string(out)))
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return s.writeError(err)
	}
	if err := os.WriteFile(s.path, []byte(target.String()+"\n"), domain.FilePerm); err != nil {
		return s.writeError(err)
	}

	s.logger.Info("active target is now " + target.String())
	return nil
}

func (s *Switcher) writeError(err error) error {
	return errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrActiveTargetWrite.Error()), "path", s.path))
}
