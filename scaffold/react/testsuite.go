package react

import (
	"github.com/teranos/scaffold/scaffold"
)

// TestSuiteRenderer renders <Name>.test.tsx. The battery is fixed; it only
// varies by component name and test ID.
type TestSuiteRenderer struct{}

// NewTestSuiteRenderer creates a test suite renderer
func NewTestSuiteRenderer() *TestSuiteRenderer {
	return &TestSuiteRenderer{}
}

func (r *TestSuiteRenderer) Kind() scaffold.Kind { return scaffold.KindTests }

func (r *TestSuiteRenderer) FileName(name string) string { return name + ".test.tsx" }

func (r *TestSuiteRenderer) Render(data *scaffold.TemplateData) (string, error) {
	return scaffold.ExecuteTemplate(testTemplate, data)
}
