package am

import (
	"fmt"

	"github.com/spf13/viper"
)

// File and directory names
const (
	ProjectConfigName = "scaffold.toml"
	UserConfigDir     = ".scaffold"
	UserConfigName    = "config.toml"
	EnvPrefix         = "SCAFFOLD"

	DefaultDirPermissions = 0o755
)

// Default values
const (
	DefaultBaseDir       = "src/components/organisms"
	DefaultTier          = "organism"
	DefaultBanner        = "God-Tier Development Protocol 2025"
	DefaultLastUpdated   = "November 7, 2025"
	DefaultParamsType    = "OrganismParameters"
	DefaultParamsImport  = "@/types/parameters"
	DefaultContextImport = "@/context/parameters/ParameterContext"
	DefaultImportBase    = "@/components/organisms"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Output
	v.SetDefault("output.base_dir", DefaultBaseDir)
	v.SetDefault("output.overwrite", OverwriteAlways)
	v.SetDefault("output.create_dirs", false)
	v.SetDefault("output.format_command", "")

	// Catalog
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.select", []string{})

	// Render
	v.SetDefault("render.tier", DefaultTier)
	v.SetDefault("render.banner", DefaultBanner)
	v.SetDefault("render.last_updated", DefaultLastUpdated)
	v.SetDefault("render.params_type", DefaultParamsType)
	v.SetDefault("render.params_import", DefaultParamsImport)
	v.SetDefault("render.context_import", DefaultContextImport)
	v.SetDefault("render.import_base", DefaultImportBase)

	// Log
	v.SetDefault("log.json", false)
}

// Keys lists every known configuration key in display order
func Keys() []string {
	return []string{
		"output.base_dir",
		"output.overwrite",
		"output.create_dirs",
		"output.format_command",
		"catalog.path",
		"catalog.select",
		"render.tier",
		"render.banner",
		"render.last_updated",
		"render.params_type",
		"render.params_import",
		"render.context_import",
		"render.import_base",
		"log.json",
	}
}

// IsKnownKey reports whether key is a configuration key
func IsKnownKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Output: {BaseDir: %s, Overwrite: %s}, Catalog: {Path: %q}, Render: {Tier: %s}}",
		c.Output.BaseDir, c.Output.Overwrite, c.Catalog.Path, c.Render.Tier)
}
