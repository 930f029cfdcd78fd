package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/workspace-labs/create-workspace/internal/branding"
	"github.com/workspace-labs/create-workspace/internal/logging"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	// KeyYarn selects yarn as the default package manager.
	KeyYarn = "yarn"
	// KeyRegistry is exported to install subprocesses as npm_config_registry.
	KeyRegistry = "registry"
	// KeySandboxDir is the parent directory for temporary sandboxes.
	KeySandboxDir = "sandbox_dir"
	// KeyDebug enables debug logging on stderr.
	KeyDebug = "debug"
)

// Settings is the resolved view of the user configuration.
type Settings struct {
	Yarn       bool
	Registry   string
	SandboxDir string
	Debug      bool
}

// Dir returns the path to the config directory (~/.create-workspace/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyYarn, false)
	viper.SetDefault(KeyDebug, false)

	if err := viper.ReadInConfig(); err != nil && !isMissing(err) {
		logging.UserWarning("Ignoring config file %s: %v", FilePath(), err)
	}
}

// isMissing reports whether err only says that no config file exists yet.
func isMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value by key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Current returns the settings resolved by the last Load.
func Current() Settings {
	return Settings{
		Yarn:       GetBool(KeyYarn),
		Registry:   Get(KeyRegistry),
		SandboxDir: Get(KeySandboxDir),
		Debug:      GetBool(KeyDebug),
	}
}
