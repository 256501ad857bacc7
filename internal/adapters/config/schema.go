package config

import "go.trai.ch/ship/internal/core/domain"

// Shipfile represents the structure of the ship.yaml configuration file.
type Shipfile struct {
	Version        string               `yaml:"version"`
	Root           string               `yaml:"root"`
	App            string               `yaml:"app"`
	Output         string               `yaml:"output"`
	VCSMarker      string               `yaml:"vcs_marker"`
	AutomationUser string               `yaml:"automation_user"`
	Data           DataDTO              `yaml:"data"`
	Templates      TemplatesDTO         `yaml:"templates"`
	Archive        ArchiveDTO           `yaml:"archive"`
	Scenes         []domain.Scene       `yaml:"scenes"`
	Engine         domain.EngineConfig  `yaml:"engine"`
	Settings       domain.BuildSettings `yaml:"settings"`
}

// DataDTO configures the shared data directory.
type DataDTO struct {
	Dir    string   `yaml:"dir"`
	Ignore []string `yaml:"ignore"`
}

// TemplatesDTO configures template discovery and rendering.
type TemplatesDTO struct {
	Root   string `yaml:"root"`
	Strict bool   `yaml:"strict"`
}

// ArchiveDTO configures bundle archives.
type ArchiveDTO struct {
	Ext string `yaml:"ext"`
}

// UserSettings represents the user-level settings file.
type UserSettings struct {
	Settings domain.BuildSettings `yaml:"settings"`
}
