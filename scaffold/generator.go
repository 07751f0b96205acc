// Package scaffold renders and writes component scaffolds.
//
// # Architecture
//
// The package uses a two-layer design:
//  1. Artifact renderers (typescript/, react/, css/, markdown/) are pure
//     functions from TemplateData to file text
//  2. The Generator drives them over a catalog and hands the rendered files to
//     a Writer, which applies the overwrite policy and reports per-file status
//
// The default artifact set lives in scaffold/artifacts so renderer packages
// can depend on this one without a cycle.
//
// # Design Decisions
//
// - Output is deterministic: no timestamps, the date string is configuration
// - Components are processed sequentially in catalog order
// - The first I/O failure aborts the run; there is no partial-success mode
package scaffold

import (
	"path/filepath"

	"github.com/teranos/scaffold/catalog"
	"github.com/teranos/scaffold/errors"
)

// Kind identifies one of the artifacts produced per component
type Kind int

const (
	KindTypes Kind = iota
	KindComponent
	KindStylesheet
	KindTests
	KindReadme
	KindIndex
)

var kindNames = map[Kind]string{
	KindTypes:      "types",
	KindComponent:  "component",
	KindStylesheet: "stylesheet",
	KindTests:      "tests",
	KindReadme:     "readme",
	KindIndex:      "index",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Renderer produces one artifact for a component.
// Implementations must be pure: the same data yields the same text.
type Renderer interface {
	// Kind returns the artifact kind this renderer produces
	Kind() Kind

	// FileName returns the file name for component name (e.g. "Video.tsx", "README.md")
	FileName(name string) string

	// Render returns the file content
	Render(data *TemplateData) (string, error)
}

// File is one rendered artifact ready to be written
type File struct {
	Component string
	Kind      Kind
	Path      string
	Content   string
}

// Generator renders components with a fixed set of renderers
type Generator struct {
	renderers []Renderer
	opts      RenderOptions
}

// NewGenerator creates a generator. Renderer kinds and file names must be unique.
func NewGenerator(opts RenderOptions, renderers ...Renderer) (*Generator, error) {
	if len(renderers) == 0 {
		return nil, errors.New("generator needs at least one renderer")
	}

	kinds := make(map[Kind]bool, len(renderers))
	names := make(map[string]Kind, len(renderers))
	for _, r := range renderers {
		if kinds[r.Kind()] {
			return nil, errors.Newf("duplicate renderer for %s", r.Kind())
		}
		kinds[r.Kind()] = true

		// Probe with a fixed name; file names only vary by component name
		fn := r.FileName("Probe")
		if other, dup := names[fn]; dup {
			return nil, errors.Newf("renderers %s and %s both write %s", other, r.Kind(), fn)
		}
		names[fn] = r.Kind()
	}

	return &Generator{renderers: renderers, opts: opts}, nil
}

// FilesPerComponent returns how many files each component produces
func (g *Generator) FilesPerComponent() int {
	return len(g.renderers)
}

// Options returns the render options in use
func (g *Generator) Options() RenderOptions {
	return g.opts
}

// ComponentDir returns <baseDir>/<name>
func ComponentDir(baseDir, name string) string {
	return filepath.Join(baseDir, name)
}

// RenderComponent renders every artifact for spec. Paths are rooted at baseDir.
func (g *Generator) RenderComponent(spec catalog.ComponentSpec, tier, baseDir string) ([]File, error) {
	data := NewTemplateData(spec, g.opts.WithTier(tier))
	dir := ComponentDir(baseDir, spec.Name)

	files := make([]File, 0, len(g.renderers))
	for _, r := range g.renderers {
		content, err := r.Render(data)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render %s for %s", r.Kind(), spec.Name)
		}
		files = append(files, File{
			Component: spec.Name,
			Kind:      r.Kind(),
			Path:      filepath.Join(dir, r.FileName(spec.Name)),
			Content:   content,
		})
	}
	return files, nil
}

// RenderCatalog renders every component in catalog order
func (g *Generator) RenderCatalog(cat *catalog.Catalog, baseDir string) ([]File, error) {
	files := make([]File, 0, cat.Len()*len(g.renderers))
	if cat == nil {
		return files, nil
	}
	for _, spec := range cat.Components {
		rendered, err := g.RenderComponent(spec, cat.Tier, baseDir)
		if err != nil {
			return nil, err
		}
		files = append(files, rendered...)
	}
	return files, nil
}
