package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/condalock/internal/adapters/config"
	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONDA_EXE", "_CONDA_EXE", "CONDA_ROOT",
		"CONDALOCK_CONTAINER_ENGINE", "CONDALOCK_BUILDER_IMAGE",
		"CONDALOCK_SCRATCH_ROOT", "CONDALOCK_PLATFORM",
	} {
		t.Setenv(key, "")
	}
}

func TestSettingsLoader_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := config.NewSettingsLoader(config.WithSearchDirs(t.TempDir())).Load()
	require.NoError(t, err)

	assert.Empty(t, s.CondaExe)
	assert.Empty(t, s.CondaRoot)
	assert.Equal(t, "docker", s.ContainerEngine)
	assert.Equal(t, "lock_file_maker", s.BuilderImage)
	assert.Equal(t, "/tmp", s.ScratchRoot)
}

func TestSettingsLoader_CondaExeFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("_CONDA_EXE", "/opt/conda/bin/conda")

	s, err := config.NewSettingsLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "/opt/conda/bin/conda", s.CondaExe)

	t.Setenv("CONDA_EXE", "/usr/local/bin/conda")
	s, err = config.NewSettingsLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/conda", s.CondaExe)
}

func TestSettingsLoader_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := `
conda_root: /srv/conda
container_engine: podman
platform: linux
`
	if err := os.WriteFile(filepath.Join(dir, ".condalock.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	s, err := config.NewSettingsLoader(config.WithSearchDirs(dir)).Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/conda", s.CondaRoot)
	assert.Equal(t, "podman", s.ContainerEngine)
	assert.Equal(t, domain.PlatformLinux, s.Platform)

	// Environment beats the file.
	t.Setenv("CONDALOCK_CONTAINER_ENGINE", "nerdctl")
	s, err = config.NewSettingsLoader(config.WithSearchDirs(dir)).Load()
	require.NoError(t, err)
	assert.Equal(t, "nerdctl", s.ContainerEngine)
}

func TestSettingsLoader_ExplicitFileMissing(t *testing.T) {
	clearEnv(t)

	_, err := config.NewSettingsLoader(config.WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))).Load()
	require.Error(t, err)
}

func TestSettingsLoader_InvalidPlatform(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONDALOCK_PLATFORM", "Windows")

	_, err := config.NewSettingsLoader().Load()
	require.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
}

func TestLoadSettings(t *testing.T) {
	t.Run("passes settings through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		loader := mocks.NewMockSettingsLoader(ctrl)
		want := &domain.Settings{ContainerEngine: "podman", ScratchRoot: "/var/tmp"}
		loader.EXPECT().Load().Return(want, nil)

		got, err := config.LoadSettings(loader)
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("wraps loader errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		loader := mocks.NewMockSettingsLoader(ctrl)
		loader.EXPECT().Load().Return(nil, domain.ErrUnsupportedPlatform)

		_, err := config.LoadSettings(loader)
		require.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
		assert.Contains(t, err.Error(), "failed to load settings")
	})

	t.Run("rejects blanked required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		loader := mocks.NewMockSettingsLoader(ctrl)
		loader.EXPECT().Load().Return(&domain.Settings{ContainerEngine: "docker"}, nil)

		_, err := config.LoadSettings(loader)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scratch_root")
	})
}
