// Package conda provides the package manager adapter backed by the conda CLI.
package conda

import (
	"context"
	"path/filepath"

	"github.com/tidwall/gjson"
	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageManager = (*Manager)(nil)

// Manager implements ports.PackageManager by shelling out to conda.
type Manager struct {
	runner   ports.CommandRunner
	settings *domain.Settings
}

// NewManager creates a new Manager.
func NewManager(runner ports.CommandRunner, settings *domain.Settings) *Manager {
	return &Manager{
		runner:   runner,
		settings: settings,
	}
}

// CreateFromSpec creates the environment name from the dependency spec, replacing any
// environment of that name.
func (m *Manager) CreateFromSpec(ctx context.Context, specPath, name string) error {
	_, err := m.run(ctx, "env", "create", "-f", specPath, "-n", name, "--yes")
	return err
}

// Export returns `conda env export` output for the environment name.
func (m *Manager) Export(ctx context.Context, name string) ([]byte, error) {
	res, err := m.run(ctx, "env", "export", "-n", name)
	if err != nil {
		return nil, err
	}
	return res.Stdout, nil
}

// Remove deletes the environment name.
func (m *Manager) Remove(ctx context.Context, name string) error {
	_, err := m.run(ctx, "env", "remove", "-n", name, "--yes")
	return err
}

// CreateFromLockfile creates the environment name from a pinned lockfile.
func (m *Manager) CreateFromLockfile(ctx context.Context, lockPath, name string) error {
	_, err := m.run(ctx, "env", "create", "--yes", "-q", "--json", "--name", name, "-f", lockPath)
	return err
}

// EnvPrefix returns where the environment name is installed. The configured
// installation root wins; otherwise the first envs directory reported by
// `conda info --json` is used.
func (m *Manager) EnvPrefix(ctx context.Context, name string) (string, error) {
	if m.settings.CondaRoot != "" {
		return domain.EnvPrefix(m.settings.CondaRoot, name), nil
	}

	res, err := m.run(ctx, "info", "--json")
	if err != nil {
		return "", err
	}

	if !gjson.ValidBytes(res.Stdout) {
		return "", zerr.Wrap(domain.ErrInstallRootNotSet, "conda info returned invalid JSON")
	}
	envsDir := gjson.GetBytes(res.Stdout, "envs_dirs.0")
	if !envsDir.Exists() || envsDir.String() == "" {
		return "", zerr.Wrap(domain.ErrInstallRootNotSet, "conda info reported no envs directory")
	}

	return filepath.Join(envsDir.String(), name), nil
}

func (m *Manager) run(ctx context.Context, args ...string) (*domain.CommandResult, error) {
	if m.settings.CondaExe == "" {
		return nil, zerr.Wrap(domain.ErrToolNotFound, "conda executable not set (CONDA_EXE or _CONDA_EXE)")
	}
	return m.runner.Run(ctx, domain.Command{
		Name: m.settings.CondaExe,
		Args: args,
	})
}
