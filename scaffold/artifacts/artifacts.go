// Package artifacts assembles the default set of six component artifacts.
package artifacts

import (
	"github.com/teranos/scaffold/scaffold"
	"github.com/teranos/scaffold/scaffold/css"
	"github.com/teranos/scaffold/scaffold/markdown"
	"github.com/teranos/scaffold/scaffold/react"
	"github.com/teranos/scaffold/scaffold/typescript"
)

// Renderers returns the default renderers in write order: types, component,
// stylesheet, tests, readme, index.
func Renderers() []scaffold.Renderer {
	return []scaffold.Renderer{
		typescript.NewTypesRenderer(),
		react.NewComponentRenderer(),
		css.NewStylesheetRenderer(),
		react.NewTestSuiteRenderer(),
		markdown.NewReadmeRenderer(),
		typescript.NewIndexRenderer(),
	}
}

// NewGenerator returns a generator using the default renderers
func NewGenerator(opts scaffold.RenderOptions) *scaffold.Generator {
	g, err := scaffold.NewGenerator(opts, Renderers()...)
	if err != nil {
		// the default set is fixed and covered by tests
		panic(err)
	}
	return g
}
