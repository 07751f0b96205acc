package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"sort"
	"strings"

	btoml "github.com/BurntSushi/toml"
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/scaffold/errors"
)

// Format is a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatCUE  Format = "cue"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".cue":
		return FormatCUE, nil
	default:
		err := errors.NewInvalidCatalogError("cannot infer catalog format from %q", path)
		return "", errors.WithHint(err, "use a .yaml, .yml, .toml, .json or .cue extension")
	}
}

// ParseFormat normalizes a user-supplied format name ("yml" -> yaml).
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "cue":
		return FormatCUE, nil
	default:
		return "", errors.NewInvalidCatalogError("unsupported catalog format: %s (supported: yaml, toml, json, cue)", name)
	}
}

// Decode parses catalog data. Unknown keys are rejected in every format so
// that typos like "compositon" fail loudly instead of rendering empty text.
// The result is not validated; call Validate.
func Decode(data []byte, format Format, filename string) (*Catalog, error) {
	var cat Catalog
	var err error

	switch format {
	case FormatYAML:
		err = decodeYAML(data, &cat)
	case FormatTOML:
		err = decodeTOML(data, &cat)
	case FormatJSON:
		err = decodeJSON(data, &cat)
	case FormatCUE:
		err = decodeCUE(data, filename, &cat)
	default:
		return nil, errors.NewInvalidCatalogError("unsupported catalog format: %s", format)
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to decode %s catalog %s", format, filename), errors.ErrInvalidCatalog)
	}
	return &cat, nil
}

func decodeYAML(data []byte, cat *Catalog) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cat); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func decodeJSON(data []byte, cat *Catalog) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cat)
}

func decodeTOML(data []byte, cat *Catalog) error {
	md, err := btoml.Decode(string(data), cat)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return errors.Newf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// decodeCUE evaluates a CUE document and decodes its concrete value as
// JSON, so unknown fields are rejected the same way.
func decodeCUE(data []byte, filename string, cat *Catalog) error {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return err
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	js, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	return decodeJSON(js, cat)
}

// Encode serializes a catalog. CUE output is not supported; export to JSON
// and import it with `cue import` instead.
func Encode(cat *Catalog, format Format) ([]byte, error) {
	out := *cat
	if out.SchemaVersion == "" {
		out.SchemaVersion = CurrentSchemaVersion
	}

	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(&out); err != nil {
			return nil, errors.Wrap(err, "failed to encode catalog as YAML")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "failed to encode catalog as YAML")
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(&out)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode catalog as TOML")
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(&out, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode catalog as JSON")
		}
		return append(data, '\n'), nil
	case FormatCUE:
		err := errors.New("encoding catalogs as CUE is not supported")
		return nil, errors.WithHint(err, "export as json and run 'cue import'")
	default:
		return nil, errors.Newf("unsupported catalog format: %s", format)
	}
}
