// Package typescript renders the TypeScript artifacts of a component: its
// props declaration file and the index.ts entry point.
package typescript

import (
	"embed"

	"github.com/teranos/scaffold/scaffold"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var typesTemplate = scaffold.MustParseTemplate(templateFS, "templates/types.ts.tmpl")

// TypesRenderer renders <Name>.types.ts
type TypesRenderer struct{}

// NewTypesRenderer creates a types renderer
func NewTypesRenderer() *TypesRenderer {
	return &TypesRenderer{}
}

func (r *TypesRenderer) Kind() scaffold.Kind { return scaffold.KindTypes }

func (r *TypesRenderer) FileName(name string) string { return name + ".types.ts" }

// Render declares <Name>Props extending the shared parameters type, with the
// open data field, className override and a data-testid defaulting to the
// kebab-case name.
func (r *TypesRenderer) Render(data *scaffold.TemplateData) (string, error) {
	return scaffold.ExecuteTemplate(typesTemplate, data)
}
