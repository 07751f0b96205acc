package typescript

import (
	"fmt"
	"strings"

	"github.com/teranos/scaffold/scaffold"
)

// IndexRenderer renders the index.ts barrel for one component
type IndexRenderer struct{}

// NewIndexRenderer creates an index renderer
func NewIndexRenderer() *IndexRenderer {
	return &IndexRenderer{}
}

func (r *IndexRenderer) Kind() scaffold.Kind { return scaffold.KindIndex }

func (r *IndexRenderer) FileName(string) string { return "index.ts" }

// Render re-exports the component, its default export and both prop types
func (r *IndexRenderer) Render(data *scaffold.TemplateData) (string, error) {
	var sb strings.Builder

	// Header
	sb.WriteString("/**\n")
	sb.WriteString(fmt.Sprintf(" * %s %s - Public API\n", data.Name, data.TierTitle))
	sb.WriteString(fmt.Sprintf(" * %s\n", data.Banner))
	sb.WriteString(" */\n\n")

	// Value exports
	sb.WriteString(fmt.Sprintf("export { %s, default } from './%s';\n", data.Name, data.Name))

	// Type exports
	sb.WriteString("export type {\n")
	for _, typeName := range ExportedTypeNames(data.Name) {
		sb.WriteString(fmt.Sprintf("  %s,\n", typeName))
	}
	sb.WriteString(fmt.Sprintf("} from './%s.types';\n", data.Name))

	return sb.String(), nil
}

// ExportedTypeNames lists the type names declared in <Name>.types.ts
func ExportedTypeNames(name string) []string {
	return []string{name + "Props", name + "Component"}
}
