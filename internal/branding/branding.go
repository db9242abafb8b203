// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a rebrand is a one-file edit.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "ymp",
			DisplayName: "YMP",
			Description: "Inspect One Click Install repository descriptions",
			HomeDir:     ".ymp",
			EnvPrefix:   "YMP",
			GoModule:    "github.com/oneclick-labs/ymp",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "ymp").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".ymp").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "YMP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("lang") → "YMP_LANG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
