package pipeline

import (
	"path/filepath"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/zerr"
)

// Profile is the per-target row of the dispatch table. Paths are slash
// separated and relative to the output root unless noted otherwise.
type Profile struct {
	Target domain.BuildTarget
	// OutputPath is handed to the build engine.
	OutputPath string
	// Artifact is packaged; empty when the target is not packaged.
	Artifact  string
	Bundle    string
	StageData bool
	Packaging domain.PackagingPolicy
	// Override resolves build options against the user's settings.
	Override bool
	// Extra is copied after staging, when its source exists.
	Extra *ExtraCopy
}

// ExtraCopy is an additional directory staged next to a target's artifact.
type ExtraCopy struct {
	// From is relative to the project root.
	From string
	To   string
}

// appToken is replaced with the application name.
const appToken = "{app}"

// actionScriptStaging is where the engine leaves converted ActionScript sources.
const actionScriptStaging = "Temp/StagingArea/Data/ConvertedDotNetCode"

var profiles = []Profile{
	{
		Target: domain.TargetMacOS, OutputPath: "{app}.app", Artifact: "{app}.app", Bundle: "{app}_mac",
		StageData: true, Packaging: domain.PackageWithData, Override: true,
	},
	{
		Target: domain.TargetLinux32, OutputPath: "{app}_lin32/{app}", Artifact: "{app}_lin32", Bundle: "{app}_lin32",
		Packaging: domain.PackageWithoutData, Override: true,
	},
	{
		Target: domain.TargetLinux64, OutputPath: "{app}_lin64/{app}", Artifact: "{app}_lin64", Bundle: "{app}_lin64",
		Packaging: domain.PackageWithoutData, Override: true,
	},
	{
		Target: domain.TargetWindows32, OutputPath: "{app}_win32/{app}.exe", Artifact: "{app}_win32", Bundle: "{app}_win32",
		StageData: true, Packaging: domain.PackageWithData, Override: true,
	},
	{
		Target: domain.TargetWindows64, OutputPath: "{app}_win64/{app}.exe", Artifact: "{app}_win64", Bundle: "{app}_win64",
		StageData: true, Packaging: domain.PackageWithData, Override: true,
	},
	{
		Target: domain.TargetWeb, OutputPath: "{app}", Artifact: "{app}", Bundle: "{app}_webp",
		StageData: true, Packaging: domain.PackageWithoutData, Override: true,
	},
	{
		Target: domain.TargetBrowserPlugin, OutputPath: "{app}/{app}.swf", Artifact: "{app}", Bundle: "{app}_flash",
		Packaging: domain.PackageWithoutData, Override: true,
		Extra: &ExtraCopy{From: actionScriptStaging, To: "{app}/ActionScript"},
	},
	{
		Target: domain.TargetIOS, OutputPath: "{app}_ios", Artifact: "{app}_ios", Bundle: "{app}_ios",
		Packaging: domain.PackageWithoutData, Override: true,
	},
	{
		Target: domain.TargetAndroid, OutputPath: "{app}.apk",
		Packaging: domain.PackageNone,
	},
}

// ProfileFor returns the dispatch table row of target with app substituted.
func ProfileFor(target domain.BuildTarget, app string) (Profile, error) {
	for _, p := range profiles {
		if p.Target != target {
			continue
		}
		expand := func(s string) string { return strings.ReplaceAll(s, appToken, app) }
		p.OutputPath = expand(p.OutputPath)
		p.Artifact = expand(p.Artifact)
		p.Bundle = expand(p.Bundle)
		if p.Extra != nil {
			p.Extra = &ExtraCopy{From: p.Extra.From, To: expand(p.Extra.To)}
		}
		return p, nil
	}
	return Profile{}, zerr.With(domain.ErrUnknownTarget, "target", target.String())
}

// Profiles returns the rows of every known target in table order.
func Profiles(app string) []Profile {
	result := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		expanded, _ := ProfileFor(p.Target, app)
		result = append(result, expanded)
	}
	return result
}

// resolve returns the slash-separated rel joined to base.
func resolve(base, rel string) string {
	return filepath.Join(base, filepath.FromSlash(rel))
}
