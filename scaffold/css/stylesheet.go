// Package css renders the CSS module of a component.
package css

import (
	"embed"

	"github.com/teranos/scaffold/scaffold"
)

//go:embed templates/module.css.tmpl
var templateFS embed.FS

var stylesheetTemplate = scaffold.MustParseTemplate(templateFS, "templates/module.css.tmpl")

// StylesheetRenderer renders <Name>.module.css with one base rule on the
// kebab-case class plus narrow-viewport, dark-mode and reduced-motion blocks.
type StylesheetRenderer struct{}

// NewStylesheetRenderer creates a stylesheet renderer
func NewStylesheetRenderer() *StylesheetRenderer {
	return &StylesheetRenderer{}
}

func (r *StylesheetRenderer) Kind() scaffold.Kind { return scaffold.KindStylesheet }

func (r *StylesheetRenderer) FileName(name string) string { return name + ".module.css" }

func (r *StylesheetRenderer) Render(data *scaffold.TemplateData) (string, error) {
	return scaffold.ExecuteTemplate(stylesheetTemplate, data)
}
