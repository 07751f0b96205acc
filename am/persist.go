package am

import (
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/logger"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before modifying config
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil
	}

	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		logger.Warnw("Failed to delete old config backup", logger.FieldPath, back3, logger.FieldError, err)
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}
	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(back1, content, 0o644); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}
	return nil
}

// WriteProjectConfig writes cfg as TOML to path. An existing file is only
// replaced when force is set, and is backed up first.
func WriteProjectConfig(path string, cfg *Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		err := errors.Newf("%s already exists", path)
		return errors.WithHint(err, "pass --force to replace it (a .back1 copy is kept)")
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := createBackup(path); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.ClassifyIO(err, path)
	}
	return nil
}

// SetProjectValue sets one dotted key in the TOML file at path, creating the
// file when missing. raw is parsed according to the key's type.
func SetProjectValue(path, key, raw string) error {
	if !IsKnownKey(key) {
		err := errors.NewInvalidConfigError("unknown config key %q", key)
		return errors.WithHint(err, "run 'scaffold am show' to list keys")
	}

	value, err := parseValue(key, raw)
	if err != nil {
		return err
	}

	doc := make(map[string]interface{})
	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return errors.Wrapf(err, "failed to parse %s", path)
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to read %s", path)
	}

	section, field, _ := strings.Cut(key, ".")
	table, ok := doc[section].(map[string]interface{})
	if !ok {
		table = make(map[string]interface{})
	}
	table[field] = value
	doc[section] = table

	// Reject values that would make the file unloadable
	probe := &Config{}
	if err := decodeMap(doc, probe); err != nil {
		return err
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := createBackup(path); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.ClassifyIO(err, path)
	}
	return nil
}

func parseValue(key, raw string) (interface{}, error) {
	switch key {
	case "output.create_dirs", "log.json":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.NewInvalidConfigError("%s expects true or false, got %q", key, raw)
		}
		return b, nil
	case "catalog.select":
		var patterns []string
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		return patterns, nil
	case "output.overwrite":
		if !IsOverwritePolicy(raw) {
			return nil, errors.NewInvalidConfigError("output.overwrite must be one of %s, got %q",
				strings.Join(OverwritePolicies, ", "), raw)
		}
		return raw, nil
	default:
		return raw, nil
	}
}

// decodeMap round-trips a generic document through TOML into cfg
func decodeMap(doc map[string]interface{}, cfg *Config) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return errors.Mark(errors.Wrap(err, "resulting config is invalid"), errors.ErrInvalidConfig)
	}
	return nil
}
