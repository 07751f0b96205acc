// Package catalog holds the component table that drives
// generation: its data model, validation, file formats, selection and
// remote sources.
//
// A catalog is an ordered list; generation visits components in the order
// they appear in the file.
package catalog

import (
	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/scaffold/util"
)

// CurrentSchemaVersion is written into exported catalogs.
const CurrentSchemaVersion = "1.0.0"

// ComponentSpec describes one component to scaffold.
type ComponentSpec struct {
	Name        string   `yaml:"name" json:"name" toml:"name"`
	Description string   `yaml:"description" json:"description" toml:"description"`
	Compose     string   `yaml:"compose" json:"compose" toml:"compose"`
	Props       []string `yaml:"props" json:"props" toml:"props"`
}

// Catalog is the ordered component table plus the metadata that travels with it.
type Catalog struct {
	// SchemaVersion is the catalog format version (semver, "" means current)
	SchemaVersion string `yaml:"schema_version" json:"schema_version" toml:"schema_version"`

	// Requires is an optional semver constraint on the generator version, e.g. ">= 1.2"
	Requires string `yaml:"requires,omitempty" json:"requires,omitempty" toml:"requires,omitempty"`

	// Tier overrides render.tier for every component in this catalog
	Tier string `yaml:"tier,omitempty" json:"tier,omitempty" toml:"tier,omitempty"`

	Components []ComponentSpec `yaml:"components" json:"components" toml:"components"`
}

// Len returns the number of components
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Components)
}

// Names returns component names in catalog order
func (c *Catalog) Names() []string {
	names := make([]string, 0, c.Len())
	if c == nil {
		return names
	}
	for _, spec := range c.Components {
		names = append(names, spec.Name)
	}
	return names
}

// Lookup returns the component with the given name
func (c *Catalog) Lookup(name string) (ComponentSpec, bool) {
	if c == nil {
		return ComponentSpec{}, false
	}
	for _, spec := range c.Components {
		if spec.Name == name {
			return spec, true
		}
	}
	return ComponentSpec{}, false
}

// Validate checks that every component has a usable, unique name.
// Names become TypeScript identifiers and directory names, so they must be
// PascalCase ASCII identifiers.
func (c *Catalog) Validate() error {
	if c == nil {
		return nil
	}

	seen := make(map[string]int, len(c.Components))
	for i, spec := range c.Components {
		if spec.Name == "" {
			return errors.NewInvalidCatalogError("component #%d has an empty name", i+1)
		}
		if !util.IsPascalIdentifier(spec.Name) {
			err := errors.NewInvalidCatalogError("component #%d name %q is not a PascalCase identifier", i+1, spec.Name)
			return errors.WithHint(err, "names must start with an uppercase ASCII letter and contain only letters and digits")
		}
		if first, dup := seen[spec.Name]; dup {
			err := errors.Newf("component %q declared twice (#%d and #%d)", spec.Name, first, i+1)
			return errors.Mark(errors.Mark(err, errors.ErrDuplicateComponent), errors.ErrInvalidCatalog)
		}
		seen[spec.Name] = i + 1
	}
	return nil
}
