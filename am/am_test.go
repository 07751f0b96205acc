package am

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/teranos/scaffold/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseDir, cfg.Output.BaseDir)
	assert.Equal(t, OverwriteAlways, cfg.Output.Overwrite)
	assert.False(t, cfg.Output.CreateDirs)
	assert.Empty(t, cfg.Output.FormatCommand)
	assert.Empty(t, cfg.Catalog.Path)
	assert.Empty(t, cfg.Catalog.Select)
	assert.Equal(t, "organism", cfg.Render.Tier)
	assert.Equal(t, "God-Tier Development Protocol 2025", cfg.Render.Banner)
	assert.Equal(t, "November 7, 2025", cfg.Render.LastUpdated)
	assert.Equal(t, "OrganismParameters", cfg.Render.ParamsType)
	assert.Equal(t, "@/types/parameters", cfg.Render.ParamsImport)
	assert.Equal(t, "@/context/parameters/ParameterContext", cfg.Render.ContextImport)
	assert.Equal(t, "@/components/organisms", cfg.Render.ImportBase)
	assert.False(t, cfg.Log.JSON)
	assert.NoError(t, cfg.Validate())
}

func TestNewViper_Precedence(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	nested := filepath.Join(project, "packages", "web")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	writeFile(t, filepath.Join(home, UserConfigDir, UserConfigName), `
[output]
base_dir = "from-user"
overwrite = "skip"

[render]
banner = "User Banner"
`)
	writeFile(t, filepath.Join(project, ProjectConfigName), `
[output]
base_dir = "from-project"
`)
	t.Setenv("SCAFFOLD_RENDER_TIER", "molecule")

	v := NewViper(nested, home)
	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, "from-project", cfg.Output.BaseDir, "project overrides user")
	assert.Equal(t, "skip", cfg.Output.Overwrite, "user value survives when project is silent")
	assert.Equal(t, "User Banner", cfg.Render.Banner)
	assert.Equal(t, "molecule", cfg.Render.Tier, "env overrides files")

	assert.Equal(t, []string{
		filepath.Join(home, UserConfigDir, UserConfigName),
		filepath.Join(project, ProjectConfigName),
	}, UsedFiles())

	assert.Equal(t, SourceProject, ConfigSources["output.base_dir"].Source)
	assert.Equal(t, SourceUser, ConfigSources["output.overwrite"].Source)
}

func TestNewViper_EnvBeatsProjectFile(t *testing.T) {
	project := t.TempDir()
	writeFile(t, filepath.Join(project, ProjectConfigName), "[output]\nbase_dir = \"from-project\"\n")
	t.Setenv("SCAFFOLD_OUTPUT_BASE_DIR", "from-env")

	cfg, err := LoadWithViper(NewViper(project, ""))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Output.BaseDir)
}

func TestNewViper_UnreadableFileIsWarning(t *testing.T) {
	project := t.TempDir()
	writeFile(t, filepath.Join(project, ProjectConfigName), "[output\nbroken")

	cfg, err := LoadWithViper(NewViper(project, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseDir, cfg.Output.BaseDir)
	require.Len(t, LoadWarnings(), 1)
	assert.Empty(t, UsedFiles())
}

func TestFindProjectConfig(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	assert.Empty(t, FindProjectConfig(deep))

	writeFile(t, filepath.Join(root, "a", ProjectConfigName), "")
	assert.Equal(t, filepath.Join(root, "a", ProjectConfigName), FindProjectConfig(deep))

	// a directory with the same name is not a config file
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b", ProjectConfigName), 0o755))
	assert.Equal(t, filepath.Join(root, "a", ProjectConfigName), FindProjectConfig(deep))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, `
[catalog]
path = "catalogs/shop.yaml"
select = ["Facebook*", "Video"]
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "catalogs/shop.yaml", cfg.Catalog.Path)
	assert.Equal(t, []string{"Facebook*", "Video"}, cfg.Catalog.Select)
	assert.Equal(t, DefaultBaseDir, cfg.Output.BaseDir)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		v := viper.New()
		SetDefaults(v)
		cfg, err := LoadWithViper(v)
		require.NoError(t, err)
		return *cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "prompt is valid", mutate: func(c *Config) { c.Output.Overwrite = OverwritePrompt }},
		{name: "empty base dir", mutate: func(c *Config) { c.Output.BaseDir = "  " }, wantErr: "output.base_dir"},
		{name: "unknown policy", mutate: func(c *Config) { c.Output.Overwrite = "merge" }, wantErr: "output.overwrite"},
		{name: "invalid select glob", mutate: func(c *Config) { c.Catalog.Select = []string{"[Video"} }, wantErr: "catalog.select"},
		{name: "empty tier", mutate: func(c *Config) { c.Render.Tier = "" }, wantErr: "render.tier"},
		{name: "empty params type", mutate: func(c *Config) { c.Render.ParamsType = "" }, wantErr: "render.params_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
		})
	}
}

func TestIntrospect(t *testing.T) {
	project := t.TempDir()
	writeFile(t, filepath.Join(project, ProjectConfigName), "[render]\nbanner = \"Project Banner\"\n")
	t.Setenv("SCAFFOLD_OUTPUT_OVERWRITE", "skip")

	v := NewViper(project, "")
	settings := Introspect(v, map[string]bool{"output.base_dir": true})
	require.Len(t, settings, len(Keys()))

	byKey := make(map[string]SettingInfo)
	for _, s := range settings {
		byKey[s.Key] = s
	}

	assert.Equal(t, "output.base_dir", settings[0].Key)
	assert.Equal(t, SourceFlag, byKey["output.base_dir"].Source)
	assert.Equal(t, SourceEnvironment, byKey["output.overwrite"].Source)
	assert.Equal(t, "SCAFFOLD_OUTPUT_OVERWRITE", byKey["output.overwrite"].SourcePath)
	assert.Equal(t, "skip", byKey["output.overwrite"].Value)
	assert.Equal(t, SourceProject, byKey["render.banner"].Source)
	assert.Equal(t, "Project Banner", byKey["render.banner"].Value)
	assert.Equal(t, SourceDefault, byKey["render.tier"].Source)
}

func TestEnvVarName(t *testing.T) {
	assert.Equal(t, "SCAFFOLD_OUTPUT_BASE_DIR", EnvVarName("output.base_dir"))
	assert.Equal(t, "SCAFFOLD_LOG_JSON", EnvVarName("log.json"))
}

func TestMarshal(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	data, err := Marshal(cfg, "toml")
	require.NoError(t, err)
	var fromTOML Config
	require.NoError(t, toml.Unmarshal(data, &fromTOML))
	assert.Equal(t, cfg.Render, fromTOML.Render)

	data, err = Marshal(cfg, "json")
	require.NoError(t, err)
	var fromJSON Config
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, cfg.Output, fromJSON.Output)

	data, err = Marshal(cfg, "yaml")
	require.NoError(t, err)
	var fromYAML Config
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Equal(t, cfg.Render.Banner, fromYAML.Render.Banner)

	_, err = Marshal(cfg, "ini")
	assert.Error(t, err)
}

func TestWriteProjectConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigName)
	cfg := &Config{Output: OutputConfig{BaseDir: "web/organisms", Overwrite: OverwriteSkip}}

	require.NoError(t, WriteProjectConfig(path, cfg, false))
	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "web/organisms", loaded.Output.BaseDir)
	assert.Equal(t, OverwriteSkip, loaded.Output.Overwrite)

	err = WriteProjectConfig(path, cfg, false)
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "--force")

	cfg.Output.BaseDir = "other"
	require.NoError(t, WriteProjectConfig(path, cfg, true))
	assert.FileExists(t, path+".back1")
}

func TestSetProjectValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigName)

	require.NoError(t, SetProjectValue(path, "output.base_dir", "app/organisms"))
	require.NoError(t, SetProjectValue(path, "output.create_dirs", "true"))
	require.NoError(t, SetProjectValue(path, "catalog.select", "Facebook*, Video"))
	require.NoError(t, SetProjectValue(path, "render.banner", "Custom"))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "app/organisms", cfg.Output.BaseDir)
	assert.True(t, cfg.Output.CreateDirs)
	assert.Equal(t, []string{"Facebook*", "Video"}, cfg.Catalog.Select)
	assert.Equal(t, "Custom", cfg.Render.Banner)

	// three rewrites of an existing file keep three backups
	assert.FileExists(t, path+".back1")
	assert.FileExists(t, path+".back2")
	assert.FileExists(t, path+".back3")
}

func TestSetProjectValue_Rejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigName)

	err := SetProjectValue(path, "output.nope", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))

	err = SetProjectValue(path, "log.json", "maybe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "true or false")

	err = SetProjectValue(path, "output.overwrite", "merge")
	require.Error(t, err)

	assert.NoFileExists(t, path)
}

func TestReset(t *testing.T) {
	Reset()
	cfg1, err := Load()
	require.NoError(t, err)
	cfg2, err := Load()
	require.NoError(t, err)
	assert.Same(t, cfg1, cfg2, "Load caches")

	Reset()
	cfg3, err := Load()
	require.NoError(t, err)
	assert.NotSame(t, cfg1, cfg3)
	Reset()
}
