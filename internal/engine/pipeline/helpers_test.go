package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/archive"
	"go.trai.ch/ship/internal/adapters/env"
	"go.trai.ch/ship/internal/adapters/fs"
	"go.trai.ch/ship/internal/adapters/template"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/ship/internal/core/ports/mocks"
	"go.trai.ch/ship/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

var buildTime = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
}

// newProject returns a project rooted in a fresh temporary directory with default layout.
func newProject(t *testing.T) *domain.Project {
	t.Helper()
	root := t.TempDir()
	return &domain.Project{
		Root:           root,
		AppName:        "App",
		OutputRoot:     filepath.Join(root, domain.DefaultOutputRoot),
		DataDir:        filepath.Join(root, domain.DefaultDataDir),
		TemplateRoot:   filepath.Join(root, domain.DefaultTemplateRoot),
		IgnorePatterns: []string{domain.DefaultVCSMarker},
		VCSMarker:      domain.DefaultVCSMarker,
		AutomationUser: domain.DefaultAutomationUser,
		ArchiveExt:     domain.DefaultArchiveExt,
	}
}

// quietLogger accepts any log call.
func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

// permissiveTracer returns a tracer whose spans accept any call.
func permissiveTracer(ctrl *gomock.Controller) *mocks.MockTracer {
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()
	return tracer
}

// newHooks wires the real walker and renderer with a fixed environment.
func newHooks(project *domain.Project, environ []string, log ports.Logger) *pipeline.Hooks {
	return pipeline.NewHooks(
		project,
		env.NewSnapshot(environ),
		fs.NewWalker(),
		template.NewRenderer(),
		clockwork.NewFakeClockAt(buildTime),
		log,
	)
}

func newArchivePackager(clock clockwork.Clock, log ports.Logger) *archive.Packager {
	return archive.NewPackager(clock, fs.NewHasher(), log)
}

func archiveEntries(t *testing.T, path string) []string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names
}

func topLevel(names []string) []string {
	var top []string
	for _, n := range names {
		first, _, _ := strings.Cut(n, "/")
		if !slices.Contains(top, first) {
			top = append(top, first)
		}
	}
	return top
}
