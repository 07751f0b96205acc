package am

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/teranos/scaffold/errors"
)

var (
	mu            sync.Mutex
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the scaffold configuration using Viper
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	config, err := LoadWithViper(initViperLocked())
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance for flag binding and direct access
func GetViper() *viper.Viper {
	mu.Lock()
	defer mu.Unlock()
	return initViperLocked()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path, on top of defaults only
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configPath)
	}
	return config, nil
}

// Reset clears the cached configuration so the next Load re-reads every source
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
	viperInstance = nil
	resetSources()
}

func initViperLocked() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}
	homeDir, _ := os.UserHomeDir()

	viperInstance = NewViper(workDir, homeDir)
	return viperInstance
}

// NewViper builds a Viper instance with defaults, config files found from
// workDir and homeDir, and SCAFFOLD_* environment bindings.
// Precedence (lowest to highest): defaults < user < project < env vars.
// Flags bound by the CLI sit above all of them.
func NewViper(workDir, homeDir string) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	resetSources()
	mergeConfigFiles(v, ConfigPaths(workDir, homeDir))
	return v
}

// ConfigPaths returns candidate config files in merge order. Files that do
// not exist are skipped.
func ConfigPaths(workDir, homeDir string) []string {
	var paths []string
	if homeDir != "" {
		paths = append(paths, filepath.Join(homeDir, UserConfigDir, UserConfigName))
	}
	if project := FindProjectConfig(workDir); project != "" {
		paths = append(paths, project)
	}
	return paths
}

// FindProjectConfig searches for scaffold.toml by walking up from dir.
// Returns the path to the first file found, or "" if none.
func FindProjectConfig(dir string) string {
	if dir == "" {
		return ""
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, ProjectConfigName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// mergeConfigFiles merges config files as config layers (MergeConfigMap),
// leaving env vars and flags above them.
func mergeConfigFiles(v *viper.Viper, paths []string) {
	for _, configPath := range paths {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(configPath)
		tempViper.SetConfigType("toml")
		if err := tempViper.ReadInConfig(); err != nil {
			loadWarnings = append(loadWarnings, errors.Wrapf(err, "ignoring unreadable config %s", configPath))
			continue
		}

		settings := tempViper.AllSettings()
		if err := v.MergeConfigMap(settings); err != nil {
			loadWarnings = append(loadWarnings, errors.Wrapf(err, "failed to merge config %s", configPath))
			continue
		}
		markSettingsFromSource(settings, "", sourceForPath(configPath), configPath, ConfigSources)
		usedFiles = append(usedFiles, configPath)
	}
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return GetViper().Get(key)
}

// GetString returns a configuration value as string using dot notation
func GetString(key string) string {
	return GetViper().GetString(key)
}

// GetBool returns a configuration value as bool using dot notation
func GetBool(key string) bool {
	return GetViper().GetBool(key)
}
