package am

// Config represents the scaffold generator configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Catalog CatalogConfig `mapstructure:"catalog" toml:"catalog" json:"catalog" yaml:"catalog"`
	Render  RenderConfig  `mapstructure:"render" toml:"render" json:"render" yaml:"render"`
	Log     LogConfig     `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// OutputConfig controls where and how files are written
type OutputConfig struct {
	BaseDir string `mapstructure:"base_dir" toml:"base_dir" json:"base_dir" yaml:"base_dir"`

	// Overwrite is one of overwrite, skip, prompt
	Overwrite string `mapstructure:"overwrite" toml:"overwrite" json:"overwrite" yaml:"overwrite"`

	// CreateDirs creates missing directories; when false a missing base dir is fatal
	CreateDirs bool `mapstructure:"create_dirs" toml:"create_dirs" json:"create_dirs" yaml:"create_dirs"`

	// FormatCommand runs once after generation with every written path appended
	FormatCommand string `mapstructure:"format_command" toml:"format_command" json:"format_command" yaml:"format_command"`
}

// CatalogConfig selects the component table
type CatalogConfig struct {
	// Path is a file or go-getter source; "" means the built-in organisms
	Path   string   `mapstructure:"path" toml:"path" json:"path" yaml:"path"`
	Select []string `mapstructure:"select" toml:"select" json:"select" yaml:"select"`
}

// RenderConfig holds the literal text stamped into generated files
type RenderConfig struct {
	Tier          string `mapstructure:"tier" toml:"tier" json:"tier" yaml:"tier"`
	Banner        string `mapstructure:"banner" toml:"banner" json:"banner" yaml:"banner"`
	LastUpdated   string `mapstructure:"last_updated" toml:"last_updated" json:"last_updated" yaml:"last_updated"`
	ParamsType    string `mapstructure:"params_type" toml:"params_type" json:"params_type" yaml:"params_type"`
	ParamsImport  string `mapstructure:"params_import" toml:"params_import" json:"params_import" yaml:"params_import"`
	ContextImport string `mapstructure:"context_import" toml:"context_import" json:"context_import" yaml:"context_import"`
	ImportBase    string `mapstructure:"import_base" toml:"import_base" json:"import_base" yaml:"import_base"`
}

// LogConfig configures logger output
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
}

// Overwrite policies
const (
	OverwriteAlways = "overwrite"
	OverwriteSkip   = "skip"
	OverwritePrompt = "prompt"
)

// OverwritePolicies lists accepted output.overwrite values
var OverwritePolicies = []string{OverwriteAlways, OverwriteSkip, OverwritePrompt}
