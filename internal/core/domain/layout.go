package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "ship.yaml"

	// EnvFileName is the name of the optional dotenv file at the project root.
	EnvFileName = ".env"

	// UserSettingsFile is the user-level settings file relative to the XDG config home.
	UserSettingsFile = "ship/settings.yaml"

	// DefaultOutputRoot is the directory all player builds are written under.
	DefaultOutputRoot = "target"

	// DefaultDataDir is the shared data directory staged next to player builds.
	DefaultDataDir = "Data"

	// DataEntryPrefix is the archive entry prefix of the shared data directory.
	DataEntryPrefix = "Data"

	// DefaultTemplateRoot is the directory scanned for templates at pre-process time.
	DefaultTemplateRoot = "EditorTemplates"

	// DefaultVCSMarker is the version control marker skipped during discovery and copies.
	DefaultVCSMarker = ".svn"

	// DefaultAutomationUser is the account name that does not get a BUILD_NAME suffix.
	DefaultAutomationUser = "jenkins"

	// DefaultArchiveExt is the file extension of bundle archives.
	DefaultArchiveExt = ".archive"

	// StateDirName is the orchestration state directory under the output root.
	StateDirName = ".ship"

	// RecordsDirName holds one build record per target.
	RecordsDirName = "records"

	// ActiveTargetFile persists the active build target.
	ActiveTargetFile = "active_target"

	// BuildNumberLayout is the sortable timestamp used when BUILD_NUMBER is unset.
	BuildNumberLayout = "20060102150405"

	// ArchiveCommentLayout is the human-readable timestamp in archive comments.
	ArchiveCommentLayout = "2006-01-02 15:04:05"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Environment variables read at pre-process time.
const (
	EnvBuildNumber = "BUILD_NUMBER"
	EnvBuildID     = "BUILD_ID"
	EnvUser        = "USER"
)

// Substitution keys available to templates.
const (
	KeyBuildNumber = "BUILD_NUMBER"
	KeyBuildName   = "BUILD_NAME"
	KeyBuildID     = "BUILD_ID"
)

// StatePath returns the orchestration state directory for an output root.
func StatePath(outputRoot string) string {
	return filepath.Join(outputRoot, StateDirName)
}

// RecordsPath returns the build record directory for an output root.
func RecordsPath(outputRoot string) string {
	return filepath.Join(outputRoot, StateDirName, RecordsDirName)
}

// ActiveTargetPath returns the file that persists the active target.
func ActiveTargetPath(outputRoot string) string {
	return filepath.Join(outputRoot, StateDirName, ActiveTargetFile)
}
