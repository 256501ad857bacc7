package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// BuildTarget identifies the platform a player build is produced for.
type BuildTarget string

const (
	// TargetMacOS is the standalone macOS player.
	TargetMacOS BuildTarget = "macos"
	// TargetLinux32 is the 32-bit standalone Linux player.
	TargetLinux32 BuildTarget = "linux32"
	// TargetLinux64 is the 64-bit standalone Linux player.
	TargetLinux64 BuildTarget = "linux64"
	// TargetWindows32 is the 32-bit standalone Windows player.
	TargetWindows32 BuildTarget = "windows32"
	// TargetWindows64 is the 64-bit standalone Windows player.
	TargetWindows64 BuildTarget = "windows64"
	// TargetWeb is the web player.
	TargetWeb BuildTarget = "web"
	// TargetIOS is the iOS project export.
	TargetIOS BuildTarget = "ios"
	// TargetAndroid is the Android package.
	TargetAndroid BuildTarget = "android"
	// TargetBrowserPlugin is the browser plugin player.
	TargetBrowserPlugin BuildTarget = "browser-plugin"
)

var allTargets = []BuildTarget{
	TargetMacOS,
	TargetLinux32,
	TargetLinux64,
	TargetWindows32,
	TargetWindows64,
	TargetWeb,
	TargetIOS,
	TargetAndroid,
	TargetBrowserPlugin,
}

// AllTargets returns every known build target in a stable order.
func AllTargets() []BuildTarget {
	return slices.Clone(allTargets)
}

// ParseTarget returns the BuildTarget named by s.
func ParseTarget(s string) (BuildTarget, error) {
	t := BuildTarget(s)
	if !slices.Contains(allTargets, t) {
		return "", zerr.With(ErrUnknownTarget, "target", s)
	}
	return t, nil
}

func (t BuildTarget) String() string {
	return string(t)
}
