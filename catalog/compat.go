package catalog

import (
	"github.com/Masterminds/semver/v3"

	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/version"
)

// SupportedSchema is the range of catalog schema versions this build reads.
const SupportedSchema = "^1"

// CheckCompatibility verifies the catalog's schema version and its optional
// generator constraint against generatorVersion.
// Development builds skip the requires check.
func (c *Catalog) CheckCompatibility(generatorVersion string) error {
	if c == nil {
		return nil
	}

	if c.SchemaVersion != "" {
		schemaVer, err := semver.NewVersion(c.SchemaVersion)
		if err != nil {
			return errors.Mark(errors.Wrapf(err, "invalid schema_version %q", c.SchemaVersion), errors.ErrInvalidCatalog)
		}
		supported, _ := semver.NewConstraint(SupportedSchema)
		if !supported.Check(schemaVer) {
			err := errors.Newf("catalog schema %s is not supported (want %s)", c.SchemaVersion, SupportedSchema)
			return errors.Mark(err, errors.ErrIncompatibleCatalog)
		}
	}

	if c.Requires == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(c.Requires)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "invalid requires constraint %q", c.Requires), errors.ErrInvalidCatalog)
	}

	if !(version.Info{Version: generatorVersion}).IsRelease() {
		return nil
	}
	genVer, err := semver.NewVersion(generatorVersion)
	if err != nil {
		err := errors.Newf("scaffold version %q is not a semantic version", generatorVersion)
		return errors.Mark(err, errors.ErrIncompatibleCatalog)
	}

	if !constraint.Check(genVer) {
		err := errors.Newf("catalog requires scaffold %s, but running %s", c.Requires, generatorVersion)
		return errors.WithHint(errors.Mark(err, errors.ErrIncompatibleCatalog), "upgrade scaffold or relax the catalog's requires field")
	}
	return nil
}
