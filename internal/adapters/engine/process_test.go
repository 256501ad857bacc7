package engine_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/engine"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// script returns an engine command running body with sh; engine arguments become $1...
func script(body string) domain.EngineConfig {
	return domain.EngineConfig{Command: []string{"sh", "-c", body, "engine"}}
}

func windowsRequest(outputRoot string) domain.BuildRequest {
	return domain.BuildRequest{
		Target:      domain.TargetWindows64,
		EntryPoints: []string{"Assets/Menu.unity", "Assets/Menu.unity"},
		OutputPath:  filepath.Join(outputRoot, "App_win64", "App.exe"),
		Options:     domain.Development.With(domain.AllowDebugging),
	}
}

func TestArguments(t *testing.T) {
	tests := []struct {
		name string
		req  domain.BuildRequest
		want []string
	}{
		{
			name: "options and duplicate entry points",
			req:  windowsRequest("/out"),
			want: []string{
				"--target", "windows64",
				"--output", "/out/App_win64/App.exe",
				"--options", "development,allow-debugging",
				"--", "Assets/Menu.unity", "Assets/Menu.unity",
			},
		},
		{
			name: "no options and no entry points",
			req:  domain.BuildRequest{Target: domain.TargetWeb, OutputPath: "target/App"},
			want: []string{"--target", "web", "--output", "target/App", "--"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Arguments(tt.req))
		})
	}
}

func TestProcess_Build_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("args: --target windows64 --output /out/App_win64/App.exe " +
		"--options development,allow-debugging -- Assets/Menu.unity Assets/Menu.unity").Times(1)
	log.EXPECT().Info("done").Times(1)

	p := engine.NewProcess(script(`echo "args: $*"; echo done`), t.TempDir(), nil, log)

	diagnostic, err := p.Build(context.Background(), windowsRequest("/out"))
	require.NoError(t, err)
	assert.Empty(t, diagnostic)
}

func TestProcess_Build_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("part1part2").Times(1)

	p := engine.NewProcess(script("printf part1; sleep 0.1; echo part2"), t.TempDir(), nil, log)

	diagnostic, err := p.Build(context.Background(), windowsRequest("/out"))
	require.NoError(t, err)
	assert.Empty(t, diagnostic)
}

func TestProcess_Build_DiagnosticFromStderr(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("compiling").Times(1)
	log.EXPECT().Warn("Scene 'Assets/Menu.unity' could not be found").Times(1)
	log.EXPECT().Warn("aborting").Times(1)

	p := engine.NewProcess(
		script(`echo compiling; echo "Scene '$8' could not be found" >&2; echo aborting >&2; exit 3`),
		t.TempDir(), nil, log,
	)

	diagnostic, err := p.Build(context.Background(), windowsRequest("/out"))
	require.NoError(t, err)
	assert.Equal(t, "Scene 'Assets/Menu.unity' could not be found\naborting", diagnostic)
}

func TestProcess_Build_DiagnosticFromExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	p := engine.NewProcess(script("exit 4"), t.TempDir(), nil, log)

	diagnostic, err := p.Build(context.Background(), windowsRequest("/out"))
	require.NoError(t, err)
	assert.Equal(t, "engine exited with code 4", diagnostic)
}

func TestProcess_Build_UsesEnvironmentAndDir(t *testing.T) {
	dir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("42 " + resolved).Times(1)

	env := []string{"BUILD_NUMBER=42", "PATH=/usr/bin:/bin"}
	p := engine.NewProcess(script(`echo "$BUILD_NUMBER $(pwd -P)"`), dir, env, log)

	_, err = p.Build(context.Background(), windowsRequest("/out"))
	require.NoError(t, err)
}

func TestProcess_Build_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := engine.NewProcess(domain.EngineConfig{}, t.TempDir(), nil, mocks.NewMockLogger(ctrl))

	_, err := p.Build(context.Background(), windowsRequest("/out"))

	assert.ErrorIs(t, err, domain.ErrEngineNotConfigured)
}

func TestProcess_Build_LaunchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := domain.EngineConfig{Command: []string{filepath.Join(t.TempDir(), "missing-engine")}}
	p := engine.NewProcess(cfg, t.TempDir(), nil, mocks.NewMockLogger(ctrl))

	diagnostic, err := p.Build(context.Background(), windowsRequest("/out"))

	require.Error(t, err)
	assert.Empty(t, diagnostic)
	assert.ErrorIs(t, err, domain.ErrIO)
	assert.ErrorContains(t, err, domain.ErrEngineLaunchFailed.Error())
}

func TestProcess_Build_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := engine.NewProcess(script("sleep 5"), t.TempDir(), nil, mocks.NewMockLogger(ctrl))

	_, err := p.Build(ctx, windowsRequest("/out"))

	assert.ErrorIs(t, err, context.Canceled)
}
