package domain

import "go.trai.ch/zerr"

var (
	// ErrToolNotFound is returned when the package manager or container engine cannot be located.
	ErrToolNotFound = zerr.New("tool not found")

	// ErrMalformedSpec is returned when a dependency document does not have the expected shape.
	ErrMalformedSpec = zerr.New("malformed dependency spec")

	// ErrNoSigil is returned when a lockfile does not carry an environment hash marker.
	ErrNoSigil = zerr.New("no environment hash found in lockfile")

	// ErrUnsupportedPlatform is returned when a platform name is not one of the known platforms.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrUnsupportedPlatformPair is returned when no freeze procedure exists for an execution/target pair.
	ErrUnsupportedPlatformPair = zerr.New("unsupported platform pair")

	// ErrExternalCommandFailed is returned when a spawned process exits non-zero.
	ErrExternalCommandFailed = zerr.New("external command failed")

	// ErrInvalidLock is returned when a resolved document is missing requested packages.
	ErrInvalidLock = zerr.New("invalid lockfile")

	// ErrHashMismatch is returned when a lockfile hash does not match the dependency spec hash.
	ErrHashMismatch = zerr.New("hashes do not match")

	// ErrSpecReadFailed is returned when the dependency spec file cannot be read.
	ErrSpecReadFailed = zerr.New("failed to read dependency spec")

	// ErrLockfileReadFailed is returned when a lockfile cannot be read.
	ErrLockfileReadFailed = zerr.New("failed to read lockfile")

	// ErrLockfileWriteFailed is returned when a lockfile cannot be written.
	ErrLockfileWriteFailed = zerr.New("failed to write lockfile")

	// ErrExportParseFailed is returned when an exported environment cannot be parsed or serialized.
	ErrExportParseFailed = zerr.New("failed to normalize exported environment")

	// ErrScratchDirFailed is returned when the isolated scratch directory cannot be prepared.
	ErrScratchDirFailed = zerr.New("failed to prepare scratch directory")

	// ErrInstallRootNotSet is returned when the environment installation root cannot be determined.
	ErrInstallRootNotSet = zerr.New("environment installation root is not set")

	// ErrNoLockfilesFound is returned when lockfile discovery yields no files.
	ErrNoLockfilesFound = zerr.New("no lockfiles found")

	// ErrLockfileInstallFailed is returned when a lockfile cannot be embedded into an environment.
	ErrLockfileInstallFailed = zerr.New("failed to embed lockfile into environment")
)
