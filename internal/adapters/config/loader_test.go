package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/config"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newLoader(t *testing.T, userSettings string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	return &config.Loader{
		Logger:           log,
		UserSettingsPath: func() string { return userSettings },
	}
}

func TestLoader_Load_Defaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), `
version: "1"
app: Voyager
scenes:
  - path: Assets/Scenes/Menu.unity
    enabled: true
  - path: Assets/Scenes/Debug.unity
    enabled: false
  - path: Assets/Scenes/Level1.unity
    enabled: true
`)

	project, err := newLoader(t, "").Load(root)
	require.NoError(t, err)

	assert.Equal(t, root, project.Root)
	assert.Equal(t, "Voyager", project.AppName)
	assert.Equal(t, filepath.Join(root, "target"), project.OutputRoot)
	assert.Equal(t, filepath.Join(root, "Data"), project.DataDir)
	assert.Equal(t, filepath.Join(root, "EditorTemplates"), project.TemplateRoot)
	assert.Equal(t, []string{".svn"}, project.IgnorePatterns)
	assert.Equal(t, ".svn", project.VCSMarker)
	assert.Equal(t, "jenkins", project.AutomationUser)
	assert.Equal(t, ".archive", project.ArchiveExt)
	assert.False(t, project.StrictTemplates)
	assert.Equal(t, []string{"Assets/Scenes/Menu.unity", "Assets/Scenes/Level1.unity"}, project.EntryPoints())
}

func TestLoader_Load_Overrides(t *testing.T) {
	root := t.TempDir()
	shared := filepath.Join(t.TempDir(), "shared")
	writeFile(t, filepath.Join(root, domain.ConfigFileName), `
app: Voyager
output: build/out
vcs_marker: .git
automation_user: ci
data:
  dir: `+shared+`
  ignore: [".git", "Temp"]
templates:
  root: Templates
  strict: true
archive:
  ext: tar
engine:
  command: ["unity", "-batchmode"]
  switch_command: ["unity", "-switch"]
settings:
  development: true
`)

	project, err := newLoader(t, "").Load(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "build", "out"), project.OutputRoot)
	assert.Equal(t, shared, project.DataDir)
	assert.Equal(t, filepath.Join(root, "Templates"), project.TemplateRoot)
	assert.Equal(t, []string{".git", "Temp"}, project.IgnorePatterns)
	assert.Equal(t, ".git", project.VCSMarker)
	assert.Equal(t, "ci", project.AutomationUser)
	assert.Equal(t, ".tar", project.ArchiveExt)
	assert.True(t, project.StrictTemplates)
	assert.Equal(t, []string{"unity", "-batchmode"}, project.Engine.Command)
	assert.Equal(t, []string{"unity", "-switch"}, project.Engine.SwitchCommand)
	assert.True(t, project.Settings.Development)
}

func TestLoader_Load_EmptyIgnoreListCopiesEverything(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "app: Voyager\ndata:\n  ignore: []\n")

	project, err := newLoader(t, "").Load(root)
	require.NoError(t, err)

	assert.NotNil(t, project.IgnorePatterns)
	assert.Empty(t, project.IgnorePatterns)
}

func TestLoader_Load_Discovery(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "app: Voyager\n")
	nested := filepath.Join(root, "Assets", "Scripts", "Editor")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	project, err := newLoader(t, "").Load(nested)
	require.NoError(t, err)

	assert.Equal(t, root, project.Root)
}

func TestLoader_Load_RootRelativeToConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ci", domain.ConfigFileName), "app: Voyager\nroot: ..\n")

	project, err := newLoader(t, "").Load(filepath.Join(root, "ci"))
	require.NoError(t, err)

	assert.Equal(t, root, project.Root)
	assert.Equal(t, filepath.Join(root, "target"), project.OutputRoot)
}

func TestLoader_Load_NotFound(t *testing.T) {
	_, err := newLoader(t, "").Load(t.TempDir())

	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestLoader_Load_MissingAppName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "version: \"1\"\n")

	_, err := newLoader(t, "").Load(root)

	assert.ErrorContains(t, err, domain.ErrMissingAppName.Error())
}

func TestLoader_Load_ParseError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "app: [unterminated\n")

	_, err := newLoader(t, "").Load(root)

	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_MergesUserSettings(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "app: Voyager\nsettings:\n  development: true\n")
	userPath := filepath.Join(t.TempDir(), "settings.yaml")
	writeFile(t, userPath, "settings:\n  connect_profiler: true\n  development: false\n")

	project, err := newLoader(t, userPath).Load(root)
	require.NoError(t, err)

	assert.True(t, project.Settings.Development)
	assert.True(t, project.Settings.ConnectProfiler)
	assert.False(t, project.Settings.AllowDebugging)
}

func TestLoader_Load_InvalidUserSettingsAreIgnored(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "app: Voyager\n")
	userPath := filepath.Join(t.TempDir(), "settings.yaml")
	writeFile(t, userPath, "settings: [\n")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	loader := &config.Loader{Logger: log, UserSettingsPath: func() string { return userPath }}
	project, err := loader.Load(root)
	require.NoError(t, err)

	assert.Equal(t, domain.BuildSettings{}, project.Settings)
}

func TestNewLoader_UsesXDGConfigHome(t *testing.T) {
	configHome := t.TempDir()
	setConfigHome(t, configHome)
	writeFile(t, filepath.Join(configHome, filepath.FromSlash(domain.UserSettingsFile)), "settings:\n  allow_debugging: true\n")

	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "app: Voyager\n")

	ctrl := gomock.NewController(t)
	project, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(root)
	require.NoError(t, err)

	assert.True(t, project.Settings.AllowDebugging)
}
