package catalog

import (
	"os"

	"github.com/teranos/scaffold/errors"
)

// Load reads, decodes and validates the catalog at path.
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return LoadAs(path, format)
}

// LoadAs reads a catalog with an explicit format, ignoring the extension.
func LoadAs(path string, format Format) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Wrapf(err, "catalog %s not found", path)
			return nil, errors.WithHint(err, "run 'scaffold catalog export -o <file>' to start from the built-in table")
		}
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}

	cat, err := Decode(data, format, path)
	if err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return cat, nil
}
