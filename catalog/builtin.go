package catalog

import (
	_ "embed"
	"sync"
)

//go:embed organisms.yaml
var builtinYAML []byte

var (
	builtinOnce sync.Once
	builtin     *Catalog
)

// BuiltinName is how the embedded table is referred to in logs and reports.
const BuiltinName = "builtin:organisms"

// Builtin returns a fresh copy of the embedded organism table.
// The embedded file is covered by tests, so a decode failure is a build defect.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		cat, err := Decode(builtinYAML, FormatYAML, "organisms.yaml")
		if err != nil {
			panic(err)
		}
		if err := cat.Validate(); err != nil {
			panic(err)
		}
		builtin = cat
	})
	return builtin.Clone()
}

// Clone returns a deep copy
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := *c
	out.Components = make([]ComponentSpec, len(c.Components))
	for i, spec := range c.Components {
		spec.Props = append([]string(nil), spec.Props...)
		out.Components[i] = spec
	}
	return &out
}
