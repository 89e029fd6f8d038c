package domain

import "path/filepath"

const (
	// DefaultSpecFile is the dependency spec read when none is given.
	DefaultSpecFile = "deps.yml"

	// LockfileGlob matches the per-platform lockfiles in a directory.
	LockfileGlob = "deps.*.lock.yml"

	// EmbeddedLockfileName is the lockfile copied into an installed environment.
	EmbeddedLockfileName = "deps.lock.yml"

	// EnvsDirName is the directory under the installation root holding environments.
	EnvsDirName = "envs"

	// ScratchEnvName is the environment name used while resolving on the same host.
	// It must not collide with any user environment.
	ScratchEnvName = "___conda_lockfile_temp"

	// StagedSpecName is the dependency spec copy inside the container scratch directory.
	StagedSpecName = "deps.yml"

	// StagedEnvNameFile holds the environment name for the container build script.
	StagedEnvNameFile = "env_name"

	// StagedExportName is the export the container build script writes back.
	StagedExportName = "deps.lock.yml"

	// ArtifactsMount is where the scratch directory is mounted inside the builder container.
	ArtifactsMount = "/app/artifacts"

	// ScratchDirPattern is the os.MkdirTemp pattern for container scratch directories.
	ScratchDirPattern = "conda_lockfile-"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultLockfile returns the lockfile name for a target platform, e.g. deps.Linux.lock.yml.
func DefaultLockfile(p Platform) string {
	return "deps." + p.String() + ".lock.yml"
}

// EnvPrefix returns the installation directory of a named environment under root.
func EnvPrefix(root, name string) string {
	return filepath.Join(root, EnvsDirName, name)
}

// EmbeddedLockfilePath returns the lockfile location inside an installed environment.
func EmbeddedLockfilePath(prefix string) string {
	return filepath.Join(prefix, EmbeddedLockfileName)
}
