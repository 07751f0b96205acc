package am

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/teranos/scaffold/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.BaseDir) == "" {
		return errors.NewInvalidConfigError("output.base_dir cannot be empty")
	}

	if !IsOverwritePolicy(c.Output.Overwrite) {
		err := errors.NewInvalidConfigError("output.overwrite must be one of %s, got %q",
			strings.Join(OverwritePolicies, ", "), c.Output.Overwrite)
		return errors.WithHint(err, "skip keeps existing files, prompt asks before replacing edited ones")
	}

	for _, pattern := range c.Catalog.Select {
		if !doublestar.ValidatePattern(pattern) {
			return errors.NewInvalidConfigError("catalog.select has invalid glob %q", pattern)
		}
	}

	// Tier and params type end up in identifiers and headings
	if strings.TrimSpace(c.Render.Tier) == "" {
		return errors.NewInvalidConfigError("render.tier cannot be empty")
	}
	if strings.TrimSpace(c.Render.ParamsType) == "" {
		return errors.NewInvalidConfigError("render.params_type cannot be empty")
	}

	return nil
}

// IsOverwritePolicy reports whether p is an accepted output.overwrite value
func IsOverwritePolicy(p string) bool {
	for _, known := range OverwritePolicies {
		if p == known {
			return true
		}
	}
	return false
}
