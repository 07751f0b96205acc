// Package markdown renders the README of a component.
package markdown

import (
	"embed"

	"github.com/teranos/scaffold/scaffold"
)

//go:embed templates/readme.md.tmpl
var templateFS embed.FS

var readmeTemplate = scaffold.MustParseTemplate(templateFS, "templates/readme.md.tmpl")

// ReadmeRenderer renders README.md
type ReadmeRenderer struct{}

// NewReadmeRenderer creates a readme renderer
func NewReadmeRenderer() *ReadmeRenderer {
	return &ReadmeRenderer{}
}

func (r *ReadmeRenderer) Kind() scaffold.Kind { return scaffold.KindReadme }

func (r *ReadmeRenderer) FileName(string) string { return "README.md" }

// Render emits overview, composition, checklists, usage and the prop table.
// A "Planned Props" list is added when the spec names any props.
func (r *ReadmeRenderer) Render(data *scaffold.TemplateData) (string, error) {
	return scaffold.ExecuteTemplate(readmeTemplate, data)
}
