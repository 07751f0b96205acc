package scaffold

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/teranos/scaffold/am"
	"github.com/teranos/scaffold/catalog"
	"github.com/teranos/scaffold/scaffold/util"
)

// RenderOptions holds the literal text stamped into every artifact
type RenderOptions struct {
	Tier          string
	Banner        string
	LastUpdated   string
	ParamsType    string
	ParamsImport  string
	ContextImport string
	ImportBase    string
}

// DefaultRenderOptions returns the options matching the configuration defaults
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Tier:          am.DefaultTier,
		Banner:        am.DefaultBanner,
		LastUpdated:   am.DefaultLastUpdated,
		ParamsType:    am.DefaultParamsType,
		ParamsImport:  am.DefaultParamsImport,
		ContextImport: am.DefaultContextImport,
		ImportBase:    am.DefaultImportBase,
	}
}

// RenderOptionsFromConfig maps the render section of the config
func RenderOptionsFromConfig(cfg am.RenderConfig) RenderOptions {
	return RenderOptions{
		Tier:          cfg.Tier,
		Banner:        cfg.Banner,
		LastUpdated:   cfg.LastUpdated,
		ParamsType:    cfg.ParamsType,
		ParamsImport:  cfg.ParamsImport,
		ContextImport: cfg.ContextImport,
		ImportBase:    cfg.ImportBase,
	}
}

// WithTier returns a copy using tier when it is non-empty
func (o RenderOptions) WithTier(tier string) RenderOptions {
	if tier != "" {
		o.Tier = tier
	}
	return o
}

// TemplateData is the typed record every renderer receives
type TemplateData struct {
	// Name is the component identifier, e.g. "ProductSlider"
	Name string
	// Kebab is the hyphenated form used for test IDs and CSS classes, e.g. "product-slider"
	Kebab string

	Description string
	Compose     string
	Props       []string

	// Tier is the lowercase taxonomy level ("organism"), TierTitle its heading form ("Organism")
	Tier      string
	TierTitle string

	Banner        string
	LastUpdated   string
	ParamsType    string
	ParamsImport  string
	ContextImport string
	ImportBase    string
}

// NewTemplateData builds the render record for spec
func NewTemplateData(spec catalog.ComponentSpec, opts RenderOptions) *TemplateData {
	tier := strings.ToLower(strings.TrimSpace(opts.Tier))
	return &TemplateData{
		Name:          spec.Name,
		Kebab:         util.ToKebabCase(spec.Name),
		Description:   spec.Description,
		Compose:       spec.Compose,
		Props:         append([]string(nil), spec.Props...),
		Tier:          tier,
		TierTitle:     cases.Title(language.English).String(tier),
		Banner:        opts.Banner,
		LastUpdated:   opts.LastUpdated,
		ParamsType:    opts.ParamsType,
		ParamsImport:  opts.ParamsImport,
		ContextImport: opts.ContextImport,
		ImportBase:    strings.TrimSuffix(opts.ImportBase, "/"),
	}
}
