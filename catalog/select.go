package catalog

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/teranos/scaffold/errors"
)

// Select returns a catalog restricted to components whose name matches at
// least one glob pattern (e.g. "Facebook*", "{CMSBlock,CMSPage}").
// Catalog order is preserved. An empty pattern list selects everything.
// A pattern that matches nothing is an error so typos do not silently
// generate zero files.
func (c *Catalog) Select(patterns []string) (*Catalog, error) {
	if c == nil {
		return nil, nil
	}
	out := c.Clone()
	if len(patterns) == 0 {
		return out, nil
	}

	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Newf("invalid select pattern %q", p)
		}
	}

	hits := make([]int, len(patterns))
	all := out.Components
	out.Components = make([]ComponentSpec, 0, len(all))

	for _, spec := range all {
		matched := false
		for i, p := range patterns {
			ok, _ := doublestar.Match(p, spec.Name)
			if ok {
				hits[i]++
				matched = true
			}
		}
		if matched {
			out.Components = append(out.Components, spec)
		}
	}

	for i, p := range patterns {
		if hits[i] == 0 {
			err := errors.Newf("select pattern %q matched no components", p)
			return nil, errors.WithHint(err, "run 'scaffold catalog list' to see available names")
		}
	}
	return out, nil
}
