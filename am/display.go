package am

import (
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/scaffold/errors"
)

// Marshal renders cfg as toml, json or yaml
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "toml":
		return toml.Marshal(cfg)
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		return yaml.Marshal(cfg)
	default:
		return nil, errors.Newf("unsupported format %q (supported: toml, json, yaml)", format)
	}
}
