package app_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/archive"
	"go.trai.ch/ship/internal/adapters/config"
	"go.trai.ch/ship/internal/adapters/env"
	"go.trai.ch/ship/internal/adapters/fs"
	"go.trai.ch/ship/internal/adapters/ledger"
	"go.trai.ch/ship/internal/adapters/logger"
	"go.trai.ch/ship/internal/adapters/telemetry"
	"go.trai.ch/ship/internal/adapters/template"
	"go.trai.ch/ship/internal/adapters/watcher"
	"go.trai.ch/ship/internal/app"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/ship/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// buildScript records its arguments and writes a player executable at the output path.
const buildScript = `printf "%s\n" "$@" > engine.args; mkdir -p "$(dirname "$4")"; printf MZ > "$4"`

const shipfile = `
app: App
scenes:
  - path: Scene1
    enabled: true
  - path: Debug
    enabled: false
  - path: Scene2
    enabled: true
engine:
  command:
    - sh
    - -c
    - '%s'
    - engine
`

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
}

func quietLogger(t *testing.T) ports.Logger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

// newProject writes a project using script as the engine command and returns its root.
func newProject(t *testing.T, script string) string {
	t.Helper()
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		domain.ConfigFileName:                  fmt.Sprintf(shipfile, script),
		"Data/levels/one.bin":                  "one",
		"Data/.svn/entries":                    "svn",
		"EditorTemplates/Config/version.txt":   "number=$BUILD_NUMBER$ name=$BUILD_NAME$",
		"EditorTemplates/.svn/text-base/x.txt": "ignored",
	})
	return root
}

func newApp(t *testing.T, root string, log ports.Logger) *app.App {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC))

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	return app.New(
		&config.Loader{Logger: log, UserSettingsPath: func() string { return "" }},
		env.NewLoaderFrom([]string{"BUILD_NUMBER=42", "USER=alice"}),
		fs.NewWalker(),
		fs.NewCopier(),
		template.NewRenderer(),
		archive.NewPackager(clock, fs.NewHasher(), log),
		ledger.NewStore(),
		telemetry.NewNoOpTracer(),
		w,
		log,
	).WithWorkDir(root).WithClock(clock).WithDebounce(10 * time.Millisecond)
}

func TestApp_Build(t *testing.T) {
	root := newProject(t, buildScript)
	a := newApp(t, root, quietLogger(t))

	res, err := a.Build(context.Background(), app.BuildOptions{Target: "windows64"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatePackaged, res.State)
	assert.True(t, res.FirstRun)
	require.NotNil(t, res.Archive)
	assert.Equal(t, filepath.Join(root, "target", "App_win64.archive"), res.Archive.Path)
	assert.FileExists(t, res.Archive.Path)

	args, err := os.ReadFile(filepath.Join(root, "engine.args"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"--target", "windows64",
		"--output", filepath.Join(root, "target", "App_win64", "App.exe"),
		"--", "Scene1", "Scene2",
	}, strings.Fields(string(args)))

	rendered, err := os.ReadFile(filepath.Join(root, "Config", "version.txt"))
	require.NoError(t, err)
	assert.Equal(t, "number=42 name=42_alice", string(rendered))
	assert.NoDirExists(t, filepath.Join(root, ".svn"))

	assert.FileExists(t, filepath.Join(root, "target", "Data", "levels", "one.bin"))
	assert.NoDirExists(t, filepath.Join(root, "target", "Data", ".svn"))
}

func TestApp_Build_SceneOverride(t *testing.T) {
	root := newProject(t, buildScript)
	a := newApp(t, root, quietLogger(t))

	_, err := a.Build(context.Background(), app.BuildOptions{Target: "android", Scenes: []string{"Only", "Only"}})
	require.NoError(t, err)

	args, err := os.ReadFile(filepath.Join(root, "engine.args"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(args), "--\nOnly\nOnly\n"))
}

func TestApp_Build_Active(t *testing.T) {
	root := newProject(t, buildScript)
	a := newApp(t, root, quietLogger(t))

	_, err := a.Build(context.Background(), app.BuildOptions{Active: true})
	require.ErrorIs(t, err, domain.ErrNoActiveTarget)

	_, err = a.Build(context.Background(), app.BuildOptions{Target: "android"})
	require.NoError(t, err)

	res, err := a.Build(context.Background(), app.BuildOptions{Active: true})
	require.NoError(t, err)
	assert.Equal(t, domain.TargetAndroid, res.Target)
	assert.False(t, res.FirstRun)
	assert.Nil(t, res.Archive)
}

func TestApp_Build_InvalidTarget(t *testing.T) {
	root := newProject(t, buildScript)
	a := newApp(t, root, quietLogger(t))

	_, err := a.Build(context.Background(), app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrNoTargetSpecified)

	_, err = a.Build(context.Background(), app.BuildOptions{Target: "dreamcast"})
	assert.ErrorContains(t, err, domain.ErrUnknownTarget.Error())
	assert.NoFileExists(t, filepath.Join(root, "engine.args"))
}

func TestApp_Build_EngineDiagnostic(t *testing.T) {
	root := newProject(t, `echo "Scene ''X'' missing" >&2; exit 1`)
	a := newApp(t, root, quietLogger(t))

	res, err := a.Build(context.Background(), app.BuildOptions{Target: "windows64"})

	require.ErrorIs(t, err, domain.ErrBuildEngine)
	var engineErr *domain.EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, "Scene 'X' missing", engineErr.Diagnostic)
	assert.Equal(t, domain.StateFailed, res.State)
	assert.NoFileExists(t, filepath.Join(root, "target", "App_win64.archive"))
}

func TestApp_Build_ConfigNotFound(t *testing.T) {
	a := newApp(t, t.TempDir(), quietLogger(t))

	_, err := a.Build(context.Background(), app.BuildOptions{Target: "web"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load configuration")
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestApp_PreProcess(t *testing.T) {
	root := newProject(t, buildScript)
	a := newApp(t, root, quietLogger(t))

	stamp, err := a.PreProcess(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "42_alice", stamp.Name)
	assert.FileExists(t, filepath.Join(root, "Config", "version.txt"))
	assert.NoFileExists(t, filepath.Join(root, "engine.args"))
}

func TestApp_Package(t *testing.T) {
	root := newProject(t, buildScript)
	a := newApp(t, root, quietLogger(t))
	writeFiles(t, root, map[string]string{"target/App_lin64/App": "elf"})

	res, err := a.Package(context.Background(), "linux64")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "target", "App_lin64.archive"), res.Archive.Path)
	assert.NoFileExists(t, filepath.Join(root, "engine.args"))

	_, err = a.Package(context.Background(), "dreamcast")
	assert.ErrorContains(t, err, domain.ErrUnknownTarget.Error())
}

func TestApp_Targets(t *testing.T) {
	root := newProject(t, buildScript)

	profiles, err := newApp(t, root, quietLogger(t)).Targets(context.Background())
	require.NoError(t, err)

	require.Len(t, profiles, len(domain.AllTargets()))
	for _, p := range profiles {
		if p.Target == domain.TargetWeb {
			assert.Equal(t, "App_webp", p.Bundle)
		}
	}
}

func TestApp_Status(t *testing.T) {
	root := newProject(t, buildScript)
	a := newApp(t, root, quietLogger(t))

	status, err := a.Status(context.Background())
	require.NoError(t, err)
	assert.Empty(t, status.Active)
	assert.Empty(t, status.Records)

	_, err = a.Build(context.Background(), app.BuildOptions{Target: "windows64"})
	require.NoError(t, err)

	status, err = a.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "target"), status.OutputRoot)
	assert.Equal(t, domain.TargetWindows64, status.Active)
	require.Len(t, status.Records, 1)
	assert.Equal(t, "App_win64", status.Records[0].Bundle)
	assert.Equal(t, "42", status.Records[0].BuildNumber)
}

func TestApp_Watch(t *testing.T) {
	root := newProject(t, buildScript)
	a := newApp(t, root, quietLogger(t))
	rendered := filepath.Join(root, "Config", "version.txt")
	tmpl := filepath.Join(root, "EditorTemplates", "Config", "version.txt")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Watch(ctx) }()

	assert.Eventually(t, func() bool {
		_ = os.WriteFile(tmpl, []byte("v2 $BUILD_NUMBER$"), 0o600)
		got, err := os.ReadFile(rendered)
		return err == nil && string(got) == "v2 42"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestApp_Watch_MissingTemplateRoot(t *testing.T) {
	root := newProject(t, buildScript)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "EditorTemplates")))

	err := newApp(t, root, quietLogger(t)).Watch(context.Background())

	assert.ErrorContains(t, err, domain.ErrWatchFailed.Error())
}

func TestApp_SetLogFormat(t *testing.T) {
	var buf bytes.Buffer
	log, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	log.SetOutput(&buf)

	a := newApp(t, t.TempDir(), log)
	a.SetLogFormat("json")
	log.Info("hello")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
