// Package config provides the configuration loader for ship.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	// UserSettingsPath returns the user settings file, or "" when there is none.
	UserSettingsPath func() string
}

// NewLoader creates a new Loader that reads user settings from the XDG config home.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:           logger,
		UserSettingsPath: searchUserSettings,
	}
}

func searchUserSettings() string {
	p, err := xdg.SearchConfigFile(domain.UserSettingsFile)
	if err != nil {
		return ""
	}
	return p
}

// Load finds ship.yaml in cwd or the nearest parent and resolves it into a Project.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, err := findShipfile(cwd)
	if err != nil {
		return nil, err
	}

	var shipfile Shipfile
	if err := readAndUnmarshalYAML(configPath, &shipfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	project, err := buildProject(configPath, &shipfile)
	if err != nil {
		return nil, err
	}

	if l.UserSettingsPath != nil {
		if userPath := l.UserSettingsPath(); userPath != "" {
			var user UserSettings
			if err := readAndUnmarshalYAML(userPath, &user); err != nil {
				l.Logger.Warn(fmt.Sprintf("ignoring user settings %s: %v", userPath, err))
			} else {
				project.Settings = project.Settings.Merge(user.Settings)
			}
		}
	}

	return project, nil
}

func findShipfile(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func buildProject(configPath string, s *Shipfile) (*domain.Project, error) {
	if strings.TrimSpace(s.App) == "" {
		return nil, zerr.With(domain.ErrMissingAppName, "path", configPath)
	}

	root := resolvePath(filepath.Dir(configPath), s.Root)
	marker := withDefault(s.VCSMarker, domain.DefaultVCSMarker)

	ignore := s.Data.Ignore
	if ignore == nil {
		ignore = []string{marker}
	}

	ext := withDefault(s.Archive.Ext, domain.DefaultArchiveExt)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return &domain.Project{
		Root:            root,
		AppName:         s.App,
		OutputRoot:      resolvePath(root, withDefault(s.Output, domain.DefaultOutputRoot)),
		DataDir:         resolvePath(root, withDefault(s.Data.Dir, domain.DefaultDataDir)),
		TemplateRoot:    resolvePath(root, withDefault(s.Templates.Root, domain.DefaultTemplateRoot)),
		IgnorePatterns:  ignore,
		VCSMarker:       marker,
		AutomationUser:  withDefault(s.AutomationUser, domain.DefaultAutomationUser),
		ArchiveExt:      ext,
		StrictTemplates: s.Templates.Strict,
		Scenes:          s.Scenes,
		Engine:          s.Engine,
		Settings:        s.Settings,
	}, nil
}

// resolvePath returns p when absolute, and p joined to base otherwise.
func resolvePath(base, p string) string {
	if p == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by the caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.Wrap(err, domain.ErrConfigNotFound.Error())
		}
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
