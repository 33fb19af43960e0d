package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ali98nadhum/node-setup/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known keys.
const (
	KeyNpmBin        = "npm_bin"
	KeyMinNpmVersion = "min_npm_version"
)

// Defaults for known keys.
const (
	DefaultNpmBin        = "npm"
	DefaultMinNpmVersion = ">= 7.0.0"
)

// Keys lists every key accepted by Set.
var Keys = []string{KeyNpmBin, KeyMinNpmVersion}

// Dir returns the path to the config directory (~/.setup-node/).
// SETUP_NODE_HOME overrides it.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
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

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyNpmBin, DefaultNpmBin)
	viper.SetDefault(KeyMinNpmVersion, DefaultMinNpmVersion)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// NpmBin returns the configured npm executable name or path.
func NpmBin() string {
	if v := Get(KeyNpmBin); v != "" {
		return v
	}
	return DefaultNpmBin
}

// MinNpmVersion returns the semver constraint npm must satisfy.
func MinNpmVersion() string {
	if v := Get(KeyMinNpmVersion); v != "" {
		return v
	}
	return DefaultMinNpmVersion
}

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
