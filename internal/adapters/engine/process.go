// Package engine runs the external player build engine as a child process.
package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"slices"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.BuildEngine = (*Process)(nil)

// Process implements ports.BuildEngine by invoking a configured command.
type Process struct {
	command []string
	dir     string
	env     []string
	logger  ports.Logger
}

// NewProcess creates a Process running cfg.Command in dir with env.
// A nil env inherits the current process environment.
func NewProcess(cfg domain.EngineConfig, dir string, env []string, logger ports.Logger) *Process {
	return &Process{
		command: slices.Clone(cfg.Command),
		dir:     dir,
		env:     env,
		logger:  logger,
	}
}

// Arguments returns the engine arguments describing req.
func Arguments(req domain.BuildRequest) []string {
	args := []string{"--target", req.Target.String(), "--output", req.OutputPath}
	if req.Options != domain.OptionsNone {
		args = append(args, "--options", strings.Join(req.Options.Names(), ","))
	}
	args = append(args, "--")
	return append(args, req.EntryPoints...)
}

// Build runs the engine and returns its diagnostic. A zero exit status yields
// an empty diagnostic. Errors are reserved for failures to run the engine at all.
func (p *Process) Build(ctx context.Context, req domain.BuildRequest) (string, error) {
	if len(p.command) == 0 {
		return "", domain.ErrEngineNotConfigured
	}

	args := append(slices.Clone(p.command[1:]), Arguments(req)...)
	cmd := exec.CommandContext(ctx, p.command[0], args...) //nolint:gosec // user provided command
	cmd.Dir = p.dir
	cmd.Env = p.env

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", p.launchError(err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", p.launchError(err)
	}

	if err := cmd.Start(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", p.launchError(err)
	}

	var captured bytes.Buffer
	g := new(errgroup.Group)
	g.Go(func() error {
		return pump(stdout, &logWriter{logger: p.logger, level: levelInfo})
	})
	g.Go(func() error {
		return pump(stderr, &logWriter{logger: p.logger, level: levelWarn, tee: &captured})
	})

	pumpErr := g.Wait()
	waitErr := cmd.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return "", p.launchError(waitErr)
		}
		if diagnostic := strings.TrimSpace(captured.String()); diagnostic != "" {
			return diagnostic, nil
		}
		return fmt.Sprintf("engine exited with code %d", exitErr.ExitCode()), nil
	}

	if pumpErr != nil {
		return "", errors.Join(domain.ErrIO, zerr.Wrap(pumpErr, "failed to read build engine output"))
	}

	return "", nil
}

func (p *Process) launchError(err error) error {
	return errors.Join(
		domain.ErrIO,
		zerr.With(zerr.Wrap(err, domain.ErrEngineLaunchFailed.Error()), "command", p.command[0]),
	)
}

func pump(r io.Reader, w *logWriter) error {
	_, err := io.Copy(w, r)
	w.Close()
	return err
}

const (
	levelInfo = "info"
	levelWarn = "warn"
)

// logWriter forwards complete lines to the logger and optionally keeps a copy.
type logWriter struct {
	logger ports.Logger
	level  string
	tee    *bytes.Buffer
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	if w.tee != nil {
		w.tee.Write(p)
	}
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing partial line.
func (w *logWriter) Close() {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if w.level == levelInfo {
		w.logger.Info(msg)
	} else {
		w.logger.Warn(msg)
	}
}
