package domain

// BuildRequest describes a single invocation of the external build engine.
type BuildRequest struct {
	Target BuildTarget
	// EntryPoints keeps insertion order and may contain duplicates.
	EntryPoints []string
	OutputPath  string
	Options     BuildOptions
	// OverrideWithUserSettings resolves Options against the user's build settings.
	OverrideWithUserSettings bool
}

// PackagingPolicy selects how a target's output is packaged.
type PackagingPolicy uint8

const (
	// PackageNone skips packaging.
	PackageNone PackagingPolicy = iota
	// PackageWithoutData archives the artifact alone.
	PackageWithoutData
	// PackageWithData archives the artifact and the shared data directory.
	PackageWithData
)

func (p PackagingPolicy) String() string {
	switch p {
	case PackageWithoutData:
		return "without-data"
	case PackageWithData:
		return "with-data"
	default:
		return "none"
	}
}

// PackagingSpec determines the contents of a bundle archive.
type PackagingSpec struct {
	// ArtifactPath is relative to the output root and may name a file or a directory.
	ArtifactPath string
	BundleName   string
	// DataDir is the shared data directory; empty when the bundle carries no data.
	DataDir string
}

// TemplateJob is one template file discovered under the template root.
type TemplateJob struct {
	TemplateRoot string
	// Path is the template file; it must lie below TemplateRoot.
	Path          string
	Substitutions map[string]string
	// OutputDir receives the rendered file at Path relative to TemplateRoot.
	OutputDir string
	// Strict rejects placeholders that have no substitution.
	Strict bool
}

// Scene is a configured entry point.
type Scene struct {
	Path    string `yaml:"path"`
	Enabled bool   `yaml:"enabled"`
}

// EngineConfig describes how to invoke the external build engine.
type EngineConfig struct {
	Command       []string `yaml:"command"`
	SwitchCommand []string `yaml:"switch_command"`
}

// Project is the resolved orchestration configuration.
type Project struct {
	// Root is the absolute project directory; relative paths below resolve against it.
	Root            string
	AppName         string
	OutputRoot      string
	DataDir         string
	TemplateRoot    string
	IgnorePatterns  []string
	VCSMarker       string
	AutomationUser  string
	ArchiveExt      string
	StrictTemplates bool
	Scenes          []Scene
	Engine          EngineConfig
	Settings        BuildSettings
}

// EntryPoints returns the paths of the enabled scenes in configuration order.
func (p *Project) EntryPoints() []string {
	entries := make([]string, 0, len(p.Scenes))
	for _, s := range p.Scenes {
		if s.Enabled {
			entries = append(entries, s.Path)
		}
	}
	return entries
}
