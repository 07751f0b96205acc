package scaffold

import (
	"fmt"
	"testing"

	"github.com/teranos/scaffold/catalog"
	"github.com/teranos/scaffold/errors"
)

type fakeRenderer struct {
	kind   Kind
	suffix string
	fail   bool
}

func (f fakeRenderer) Kind() Kind                  { return f.kind }
func (f fakeRenderer) FileName(name string) string { return name + f.suffix }
func (f fakeRenderer) Render(d *TemplateData) (string, error) {
	if f.fail {
		return "", errors.New("boom")
	}
	return fmt.Sprintf("%s %s %s %s\n", f.kind, d.Name, d.Kebab, d.TierTitle), nil
}

func fakeRenderers() []Renderer {
	return []Renderer{
		fakeRenderer{kind: KindTypes, suffix: ".types.ts"},
		fakeRenderer{kind: KindComponent, suffix: ".tsx"},
	}
}

func newFakeGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(DefaultRenderOptions(), fakeRenderers()...)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return g
}

func testCatalog(names ...string) *catalog.Catalog {
	cat := &catalog.Catalog{}
	for _, n := range names {
		cat.Components = append(cat.Components, catalog.ComponentSpec{Name: n, Description: n + " description"})
	}
	return cat
}
