package ports

import "context"

// PackageManager drives the conda installation on this host.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// CreateFromSpec creates (or replaces) the environment name from the dependency spec at specPath.
	CreateFromSpec(ctx context.Context, specPath, name string) error

	// Export returns the exported document of the environment name.
	Export(ctx context.Context, name string) ([]byte, error)

	// Remove deletes the environment name.
	Remove(ctx context.Context, name string) error

	// CreateFromLockfile creates the environment name from a lockfile.
	CreateFromLockfile(ctx context.Context, lockPath, name string) error

	// EnvPrefix returns the installation directory of the environment name.
	EnvPrefix(ctx context.Context, name string) (string, error)
}
