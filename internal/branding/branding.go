// Package branding provides compile-time identity values for the CLI.
//
// Values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or partial file.
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
	ToolVersion string `yaml:"tool_version"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "create-workspace",
			DisplayName: "Nx",
			Description: "Create a new Nx workspace",
			HomeDir:     ".create-workspace",
			EnvPrefix:   "CREATE_WORKSPACE",
			ToolVersion: "6.0.0",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-workspace").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the product name used in console banners (e.g., "Nx").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".create-workspace").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CREATE_WORKSPACE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ToolVersion returns the schematics version pinned when the binary was built
// without a release version (e.g., a "dev" build).
func ToolVersion() string { load(); return defaults.ToolVersion }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("yarn") → "CREATE_WORKSPACE_YARN".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
