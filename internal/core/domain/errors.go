package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyPackageReq is returned when a requirement string is blank.
	ErrEmptyPackageReq = zerr.New("empty package requirement")

	// ErrInvalidVersionConstraint is returned when a requirement carries an unparseable version constraint.
	ErrInvalidVersionConstraint = zerr.New("invalid version constraint")

	// ErrLockfileReadFailed is returned when the lockfile backing the install tree cannot be read.
	ErrLockfileReadFailed = zerr.New("failed to read lockfile")

	// ErrLockfileUnmarshalFailed is returned when the lockfile contents cannot be unmarshaled.
	ErrLockfileUnmarshalFailed = zerr.New("failed to unmarshal lockfile")

	// ErrLockfileMarshalFailed is returned when the lockfile cannot be marshaled.
	ErrLockfileMarshalFailed = zerr.New("failed to marshal lockfile")

	// ErrLockfileWriteFailed is returned when the lockfile cannot be written.
	ErrLockfileWriteFailed = zerr.New("failed to write lockfile")

	// ErrPromptUnavailable is returned when a confirmation is needed but no interactive surface exists.
	ErrPromptUnavailable = zerr.New("no interactive terminal available for confirmation")

	// ErrPromptFailed is returned when reading the user's answer to a confirmation fails.
	ErrPromptFailed = zerr.New("failed to read confirmation answer")

	// ErrConfigReadFailed is returned when the project manifest cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project manifest")

	// ErrConfigParseFailed is returned when the project manifest cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse project manifest")

	// ErrMissingProjectName is returned when a project manifest has no package name.
	ErrMissingProjectName = zerr.New("missing package name in project manifest")

	// ErrInvalidProjectName is returned when a project name contains invalid characters.
	ErrInvalidProjectName = zerr.New("package name can only contain alphanumeric characters, hyphens and underscores")

	// ErrInvalidLabel is returned when a project label contains punctuation.
	ErrInvalidLabel = zerr.New("labels must not contain punctuation")

	// ErrProjectExists is returned when project creation is declined because the target already has a manifest.
	ErrProjectExists = zerr.New("cancelled creation of project (already exists)")

	// ErrRockNotFound is returned when the registry has no rock for a requirement.
	ErrRockNotFound = zerr.New("rock not found in registry")

	// ErrNoMatchingVersion is returned when the registry has the rock but no published version satisfies the constraint.
	ErrNoMatchingVersion = zerr.New("no published version satisfies constraint")

	// ErrRegistryUnavailable is returned when the registry cannot be queried.
	ErrRegistryUnavailable = zerr.New("registry unavailable")

	// ErrInstallFailed is returned when carrying out an install spec fails.
	ErrInstallFailed = zerr.New("install failed")

	// ErrNoRequirements is returned when an install is requested with nothing to install.
	ErrNoRequirements = zerr.New("no requirements specified")
)
