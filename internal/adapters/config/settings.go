package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Settings keys as they appear in the config file.
const (
	KeyCondaExe        = "conda_exe"
	KeyCondaRoot       = "conda_root"
	KeyContainerEngine = "container_engine"
	KeyBuilderImage    = "builder_image"
	KeyScratchRoot     = "scratch_root"
	KeyPlatform        = "platform"
)

const (
	// ConfigEnvVar names an explicit config file.
	ConfigEnvVar = "CONDALOCK_CONFIG"

	configName = ".condalock"
	configType = "yaml"

	defaultContainerEngine = "docker"
	defaultBuilderImage    = "lock_file_maker"
	defaultScratchRoot     = "/tmp"
)

var _ ports.SettingsLoader = (*SettingsLoader)(nil)

// SettingsLoader reads Settings from defaults, an optional YAML file and the
// process environment, in increasing priority.
type SettingsLoader struct {
	configFile string
	searchDirs []string
}

// SettingsOption configures a SettingsLoader.
type SettingsOption func(*SettingsLoader)

// WithConfigFile reads settings from an explicit file. A missing file is an error.
func WithConfigFile(path string) SettingsOption {
	return func(l *SettingsLoader) {
		l.configFile = path
	}
}

// WithSearchDirs sets the directories searched for .condalock.yaml.
func WithSearchDirs(dirs ...string) SettingsOption {
	return func(l *SettingsLoader) {
		l.searchDirs = dirs
	}
}

// NewSettingsLoader creates a new SettingsLoader.
func NewSettingsLoader(opts ...SettingsOption) *SettingsLoader {
	l := &SettingsLoader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DefaultSettingsOptions returns the options used by the CLI: the file named by
// CONDALOCK_CONFIG, else .condalock.yaml in the working or home directory.
func DefaultSettingsOptions() []SettingsOption {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return []SettingsOption{WithConfigFile(path)}
	}

	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return []SettingsOption{WithSearchDirs(dirs...)}
}

// LoadSettings runs loader and rejects a result without the fields every
// command relies on.
func LoadSettings(loader ports.SettingsLoader) (*domain.Settings, error) {
	settings, err := loader.Load()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}
	if settings.ContainerEngine == "" || settings.ScratchRoot == "" {
		return nil, zerr.New("settings are missing container_engine or scratch_root")
	}
	return settings, nil
}

// Load resolves the settings.
func (l *SettingsLoader) Load() (*domain.Settings, error) {
	v := viper.New()

	v.SetDefault(KeyContainerEngine, defaultContainerEngine)
	v.SetDefault(KeyBuilderImage, defaultBuilderImage)
	v.SetDefault(KeyScratchRoot, defaultScratchRoot)

	// The first variable that is set wins.
	bindings := map[string][]string{
		KeyCondaExe:        {"CONDA_EXE", "_CONDA_EXE"},
		KeyCondaRoot:       {"CONDA_ROOT"},
		KeyContainerEngine: {"CONDALOCK_CONTAINER_ENGINE"},
		KeyBuilderImage:    {"CONDALOCK_BUILDER_IMAGE"},
		KeyScratchRoot:     {"CONDALOCK_SCRATCH_ROOT"},
		KeyPlatform:        {"CONDALOCK_PLATFORM"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to bind environment"), "key", key)
		}
	}

	if err := l.readConfig(v); err != nil {
		return nil, err
	}

	settings := &domain.Settings{
		CondaExe:        v.GetString(KeyCondaExe),
		CondaRoot:       v.GetString(KeyCondaRoot),
		ContainerEngine: v.GetString(KeyContainerEngine),
		BuilderImage:    v.GetString(KeyBuilderImage),
		ScratchRoot:     v.GetString(KeyScratchRoot),
	}

	if name := v.GetString(KeyPlatform); name != "" {
		p, err := domain.ParsePlatform(name)
		if err != nil {
			return nil, zerr.With(err, "key", KeyPlatform)
		}
		settings.Platform = p
	} else if p, err := domain.CurrentPlatform(); err == nil {
		// Left empty on unsupported hosts. Only freezing needs it.
		settings.Platform = p
	}

	return settings, nil
}

func (l *SettingsLoader) readConfig(v *viper.Viper) error {
	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
		v.SetConfigType(configType)
		if err := v.ReadInConfig(); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read config file"), "path", l.configFile)
		}
		return nil
	}

	if len(l.searchDirs) == 0 {
		return nil
	}
	for _, dir := range l.searchDirs {
		v.AddConfigPath(dir)
	}
	v.SetConfigName(configName)
	v.SetConfigType(configType)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return zerr.Wrap(err, "failed to parse config file")
	}
	return nil
}
