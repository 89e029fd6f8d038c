package domain

// Settings carries tool locations and platform information into components,
// so nothing below the app layer reads the process environment.
type Settings struct {
	// CondaExe is the package manager executable. Empty means not found.
	CondaExe string

	// CondaRoot is the environment installation root. Empty means ask the package manager.
	CondaRoot string

	// ContainerEngine is the container CLI used for cross-platform freezes.
	ContainerEngine string

	// BuilderImage is the repository name of the builder image.
	BuilderImage string

	// ScratchRoot is the parent directory of container scratch directories.
	// It must be shareable with the container engine.
	ScratchRoot string

	// Platform is the execution platform.
	Platform Platform
}
