package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/oneclick-labs/ymp/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyLogLevel = "log_level"
	KeyLang     = "lang"
	KeyOutput   = "output"
)

// Output formats accepted by the output key.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

var defaults = map[string]string{
	KeyLogLevel: "warn",
	KeyLang:     "",
	KeyOutput:   OutputTable,
}

// Dir returns the path to the config directory (~/.ymp/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.ymp/config.yaml).
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

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if key == KeyOutput && !ValidOutput(value) {
		return fmt.Errorf("invalid output format %q (want %s, %s or %s)", value, OutputTable, OutputJSON, OutputYAML)
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

// Keys returns the known configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LogLevel returns the configured log level name.
func LogLevel() string { return Get(KeyLogLevel) }

// Lang returns the locale used to render localized fields. Empty means
// the default-locale value.
func Lang() string { return Get(KeyLang) }

// Output returns the configured output format, falling back to table for
// unknown values.
func Output() string {
	out := Get(KeyOutput)
	if !ValidOutput(out) {
		return OutputTable
	}
	return out
}

// ValidOutput reports whether s names a supported output format.
func ValidOutput(s string) bool {
	switch s {
	case OutputTable, OutputJSON, OutputYAML:
		return true
	}
	return false
}
