package domain

import "strings"

// BuildOptions is a bitset of independent player build flags.
type BuildOptions uint32

// OptionsNone is the empty option set.
const OptionsNone BuildOptions = 0

const (
	// AcceptExternalModifications preserves manual edits to a previously generated project.
	AcceptExternalModifications BuildOptions = 1 << iota
	// BuildAdditionalStreamedScenes streams scenes after the first one.
	BuildAdditionalStreamedScenes
	// OfflineDeployment bundles the player runtime for offline use.
	OfflineDeployment
	// Development produces a development build.
	Development
	// ConnectWithProfiler connects the player to the profiler on start.
	ConnectWithProfiler
	// AllowDebugging allows script debuggers to attach.
	AllowDebugging
	// AppendToProject appends to an existing generated project.
	AppendToProject
	// InstallInBuildFolder installs the player into the engine's build folder.
	InstallInBuildFolder
)

var optionNames = []struct {
	flag BuildOptions
	name string
}{
	{AcceptExternalModifications, "accept-external-modifications"},
	{BuildAdditionalStreamedScenes, "streamed-scenes"},
	{OfflineDeployment, "offline-deployment"},
	{Development, "development"},
	{ConnectWithProfiler, "connect-profiler"},
	{AllowDebugging, "allow-debugging"},
	{AppendToProject, "append-project"},
	{InstallInBuildFolder, "install-in-build-folder"},
}

// Has reports whether every flag in f is set.
func (o BuildOptions) Has(f BuildOptions) bool {
	return o&f == f
}

// With returns o with the flags in f added.
func (o BuildOptions) With(f BuildOptions) BuildOptions {
	return o | f
}

// Names returns the names of the set flags in declaration order.
func (o BuildOptions) Names() []string {
	names := make([]string, 0, len(optionNames))
	for _, n := range optionNames {
		if o.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return names
}

func (o BuildOptions) String() string {
	if o == OptionsNone {
		return "none"
	}
	return strings.Join(o.Names(), ",")
}

// BuildSettings is a snapshot of the user's build configuration.
type BuildSettings struct {
	StreamedScenes       bool `yaml:"streamed_scenes" json:"streamed_scenes,omitzero"`
	OfflineDeployment    bool `yaml:"offline_deployment" json:"offline_deployment,omitzero"`
	Development          bool `yaml:"development" json:"development,omitzero"`
	ConnectProfiler      bool `yaml:"connect_profiler" json:"connect_profiler,omitzero"`
	AllowDebugging       bool `yaml:"allow_debugging" json:"allow_debugging,omitzero"`
	AppendProject        bool `yaml:"append_project" json:"append_project,omitzero"`
	InstallInBuildFolder bool `yaml:"install_in_build_folder" json:"install_in_build_folder,omitzero"`
}

// Merge returns the settings with every flag enabled in either s or other.
func (s BuildSettings) Merge(other BuildSettings) BuildSettings {
	return BuildSettings{
		StreamedScenes:       s.StreamedScenes || other.StreamedScenes,
		OfflineDeployment:    s.OfflineDeployment || other.OfflineDeployment,
		Development:          s.Development || other.Development,
		ConnectProfiler:      s.ConnectProfiler || other.ConnectProfiler,
		AllowDebugging:       s.AllowDebugging || other.AllowDebugging,
		AppendProject:        s.AppendProject || other.AppendProject,
		InstallInBuildFolder: s.InstallInBuildFolder || other.InstallInBuildFolder,
	}
}

// ResolveOptions derives the final option set from base, the settings snapshot,
// and whether this is the first build into the output location.
//
// Flags are only ever added. AcceptExternalModifications is added on every run
// after the first so manual edits to a generated project survive rebuilds.
func ResolveOptions(base BuildOptions, settings BuildSettings, firstRun bool) BuildOptions {
	opts := base
	if !firstRun {
		opts |= AcceptExternalModifications
	}

	for _, m := range []struct {
		enabled bool
		flag    BuildOptions
	}{
		{settings.StreamedScenes, BuildAdditionalStreamedScenes},
		{settings.OfflineDeployment, OfflineDeployment},
		{settings.Development, Development},
		{settings.ConnectProfiler, ConnectWithProfiler},
		{settings.AllowDebugging, AllowDebugging},
		{settings.AppendProject, AppendToProject},
		{settings.InstallInBuildFolder, InstallInBuildFolder},
	} {
		if m.enabled {
			opts |= m.flag
		}
	}

	return opts
}
