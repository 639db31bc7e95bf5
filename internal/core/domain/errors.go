package domain

import "go.trai.ch/zerr"

var (
	// ErrEmitSkipped is returned when the compiler service declines to produce output for a file.
	ErrEmitSkipped = zerr.New("file not found")

	// ErrUnknownCompiler is returned when the requested compiler strategy is not registered.
	ErrUnknownCompiler = zerr.New("unknown compiler")

	// ErrServiceUnavailable is returned when an instance has no working compiler service.
	ErrServiceUnavailable = zerr.New("compiler service unavailable")

	// ErrNoEntryPoints is returned when a build is requested without entry points.
	ErrNoEntryPoints = zerr.New("no entry points specified")

	// ErrProjectConfigNotFound is returned when an explicit project config file does not exist.
	ErrProjectConfigNotFound = zerr.New("project config file not found")

	// ErrProjectConfigReadFailed is returned when a project config file cannot be read.
	ErrProjectConfigReadFailed = zerr.New("failed to read project config file")

	// ErrProjectConfigParseFailed is returned when a project config file is not valid JSON.
	ErrProjectConfigParseFailed = zerr.New("failed to parse project config file")

	// ErrProjectConfigCycle is returned when project configs extend each other in a cycle.
	ErrProjectConfigCycle = zerr.New("circular extends in project config")

	// ErrInvalidIncludePattern is returned when an include or exclude pattern is malformed.
	ErrInvalidIncludePattern = zerr.New("invalid include pattern")

	// ErrConfigReadFailed is returned when the tool config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the tool config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidBuildOption is returned when a build option has an unsupported value.
	ErrInvalidBuildOption = zerr.New("invalid build option")

	// ErrStoreCreateFailed is returned when the emit cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create emit cache directory")

	// ErrStoreReadFailed is returned when a cached emit entry cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read emit cache entry")

	// ErrStoreUnmarshalFailed is returned when a cached emit entry cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal emit cache entry")

	// ErrStoreMarshalFailed is returned when an emit entry cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal emit cache entry")

	// ErrStoreWriteFailed is returned when an emit entry cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write emit cache entry")

	// ErrCheckerFailed is returned when the external type checker cannot be run.
	ErrCheckerFailed = zerr.New("type checker failed")

	// ErrBuildFailed is returned when a build finishes with errors.
	ErrBuildFailed = zerr.New("build failed")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start file watcher")
)
