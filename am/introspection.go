package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigSource represents where a configuration value came from
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceUser        ConfigSource = "user"        // ~/.scaffold/config.toml
	SourceProject     ConfigSource = "project"     // scaffold.toml found upward from cwd
	SourceEnvironment ConfigSource = "environment" // SCAFFOLD_* env vars
	SourceFlag        ConfigSource = "flag"
)

// SourceInfo tracks where a configuration value originated
type SourceInfo struct {
	Source ConfigSource
	Path   string // file path or environment variable name
}

// SettingInfo contains metadata about a configuration setting
type SettingInfo struct {
	Key        string       `json:"key" yaml:"key"`
	Value      interface{}  `json:"value" yaml:"value"`
	Source     ConfigSource `json:"source" yaml:"source"`
	SourcePath string       `json:"source_path,omitempty" yaml:"source_path,omitempty"`
}

// ConfigSources maps dotted keys to the file that last set them.
// Filled while config files are merged.
var ConfigSources = make(map[string]SourceInfo)

var (
	usedFiles    []string
	loadWarnings []error
)

func resetSources() {
	ConfigSources = make(map[string]SourceInfo)
	usedFiles = nil
	loadWarnings = nil
}

// UsedFiles returns the config files merged, lowest precedence first
func UsedFiles() []string {
	return append([]string(nil), usedFiles...)
}

// LoadWarnings returns problems with config files that were skipped
func LoadWarnings() []error {
	return append([]error(nil), loadWarnings...)
}

func sourceForPath(path string) ConfigSource {
	if filepath.Base(path) == ProjectConfigName {
		return SourceProject
	}
	return SourceUser
}

// markSettingsFromSource records source for every leaf key in settings
func markSettingsFromSource(settings map[string]interface{}, prefix string, source ConfigSource, path string, sourceMap map[string]SourceInfo) {
	for key, value := range settings {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			markSettingsFromSource(nested, fullKey, source, path, sourceMap)
			continue
		}
		sourceMap[fullKey] = SourceInfo{Source: source, Path: path}
	}
}

// EnvVarName returns the environment variable that overrides key
func EnvVarName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Introspect lists every known key, in Keys order, with its effective value
// and origin.
// Flags changed on the command line are reported when bound through v.
func Introspect(v *viper.Viper, changedFlags map[string]bool) []SettingInfo {
	settings := make([]SettingInfo, 0, len(Keys()))

	for _, key := range Keys() {
		info := SourceInfo{Source: SourceDefault, Path: "built-in default"}
		if si, ok := ConfigSources[key]; ok {
			info = si
		}
		if env := EnvVarName(key); os.Getenv(env) != "" {
			info = SourceInfo{Source: SourceEnvironment, Path: env}
		}
		if changedFlags[key] {
			info = SourceInfo{Source: SourceFlag}
		}

		settings = append(settings, SettingInfo{
			Key:        key,
			Value:      v.Get(key),
			Source:     info.Source,
			SourcePath: info.Path,
		})
	}

	return settings
}
