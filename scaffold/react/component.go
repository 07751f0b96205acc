// Package react renders the React artifacts of a component: the component
// stub and its Jest test suite.
package react

import (
	"embed"

	"github.com/teranos/scaffold/scaffold"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	componentTemplate = scaffold.MustParseTemplate(templateFS, "templates/component.tsx.tmpl")
	testTemplate      = scaffold.MustParseTemplate(templateFS, "templates/test.tsx.tmpl")
)

// ComponentRenderer renders <Name>.tsx
type ComponentRenderer struct{}

// NewComponentRenderer creates a component renderer
func NewComponentRenderer() *ComponentRenderer {
	return &ComponentRenderer{}
}

func (r *ComponentRenderer) Kind() scaffold.Kind { return scaffold.KindComponent }

func (r *ComponentRenderer) FileName(name string) string { return name + ".tsx" }

// Render emits a client component that merges context parameters with its
// props (props win), builds its class list from the CSS module class plus
// className, and renders a heading and description placeholder.
func (r *ComponentRenderer) Render(data *scaffold.TemplateData) (string, error) {
	return scaffold.ExecuteTemplate(componentTemplate, data)
}
