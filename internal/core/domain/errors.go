package domain

import "go.trai.ch/zerr"

// Error classes. Components attach one of these with errors.Join so callers can
// classify a failure with errors.Is regardless of the wrapped cause.
var (
	// ErrIO marks filesystem failures during copy, read, or write.
	ErrIO = zerr.New("i/o error")

	// ErrTemplate marks malformed or unresolved template references.
	ErrTemplate = zerr.New("template error")

	// ErrBuildEngine marks a non-empty diagnostic returned by the external build engine.
	ErrBuildEngine = zerr.New("build engine failed")

	// ErrTargetSwitch marks a failure to switch the active build target.
	ErrTargetSwitch = zerr.New("failed to switch active build target")
)

var (
	// ErrSourceNotFound is returned when the source of a tree copy does not exist.
	ErrSourceNotFound = zerr.New("copy source does not exist")

	// ErrCopyFailed is returned when copying a file or directory fails mid-copy.
	ErrCopyFailed = zerr.New("failed to copy directory tree")

	// ErrWalkFailed is returned when a directory below a walked root cannot be read.
	ErrWalkFailed = zerr.New("failed to walk directory")

	// ErrOutputParentCreate is returned when the parent of an output path cannot be created.
	ErrOutputParentCreate = zerr.New("failed to create output parent directory")

	// ErrTemplateRead is returned when a template file cannot be read.
	ErrTemplateRead = zerr.New("failed to read template")

	// ErrTemplateWrite is returned when a rendered template cannot be written.
	ErrTemplateWrite = zerr.New("failed to write rendered template")

	// ErrTemplateOutsideRoot is returned when a template path is not under the template root.
	ErrTemplateOutsideRoot = zerr.New("template path is outside the template root")

	// ErrTemplateUnresolved is returned in strict mode when a placeholder has no substitution.
	ErrTemplateUnresolved = zerr.New("unresolved template placeholder")

	// ErrArtifactNotFound is returned when the artifact to package does not exist.
	ErrArtifactNotFound = zerr.New("build artifact not found")

	// ErrArchiveCreate is returned when the archive file cannot be created.
	ErrArchiveCreate = zerr.New("failed to create archive")

	// ErrArchiveWrite is returned when an entry cannot be added to the archive.
	ErrArchiveWrite = zerr.New("failed to write archive entry")

	// ErrArchiveFinalize is returned when the archive cannot be flushed, closed, or moved into place.
	ErrArchiveFinalize = zerr.New("failed to finalize archive")

	// ErrUnknownTarget is returned when a target name does not match any known platform.
	ErrUnknownTarget = zerr.New("unknown build target")

	// ErrNoTargetSpecified is returned when a build names neither a target nor the active one.
	ErrNoTargetSpecified = zerr.New("no build target specified")

	// ErrNoActiveTarget is returned when the active build target has never been set.
	ErrNoActiveTarget = zerr.New("no active build target")

	// ErrActiveTargetRead is returned when the persisted active target cannot be read.
	ErrActiveTargetRead = zerr.New("failed to read active build target")

	// ErrActiveTargetWrite is returned when the active target cannot be persisted.
	ErrActiveTargetWrite = zerr.New("failed to persist active build target")

	// ErrEngineNotConfigured is returned when no engine command is configured.
	ErrEngineNotConfigured = zerr.New("build engine command is not configured")

	// ErrEngineLaunchFailed is returned when the engine process cannot be started.
	ErrEngineLaunchFailed = zerr.New("failed to launch build engine")

	// ErrConfigNotFound is returned when no configuration file can be found.
	ErrConfigNotFound = zerr.New("could not find ship.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingAppName is returned when the configuration does not name the application.
	ErrMissingAppName = zerr.New("missing app name")

	// ErrEnvFileLoadFailed is returned when the .env file exists but cannot be parsed.
	ErrEnvFileLoadFailed = zerr.New("failed to load env file")

	// ErrRecordReadFailed is returned when a build record cannot be read.
	ErrRecordReadFailed = zerr.New("failed to read build record")

	// ErrRecordUnmarshalFailed is returned when a build record cannot be decoded.
	ErrRecordUnmarshalFailed = zerr.New("failed to unmarshal build record")

	// ErrRecordMarshalFailed is returned when a build record cannot be encoded.
	ErrRecordMarshalFailed = zerr.New("failed to marshal build record")

	// ErrRecordWriteFailed is returned when a build record cannot be written.
	ErrRecordWriteFailed = zerr.New("failed to write build record")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrWatchFailed is returned when the template watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch template root")
)

// EngineError carries the diagnostic returned by the external build engine verbatim.
type EngineError struct {
	Diagnostic string
}

// NewEngineError returns an EngineError for the given diagnostic.
func NewEngineError(diagnostic string) *EngineError {
	return &EngineError{Diagnostic: diagnostic}
}

func (e *EngineError) Error() string {
	return ErrBuildEngine.Error() + ": " + e.Diagnostic
}

// Is reports whether target is ErrBuildEngine.
func (e *EngineError) Is(target error) bool {
	return target == ErrBuildEngine
}
