package scaffold

import (
	"io/fs"
	"strings"
	"text/template"

	"github.com/teranos/scaffold/errors"
)

// Delimiters used by artifact templates. The generated TSX is full of
// "{{ }}" object literals, so the standard delimiters cannot be used.
const (
	LeftDelim  = "[["
	RightDelim = "]]"
)

// MustParseTemplate parses name from fsys or panics. Templates are embedded,
// so a parse failure is a build defect caught by tests.
func MustParseTemplate(fsys fs.FS, name string) *template.Template {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		panic(errors.Wrapf(err, "reading template %s", name))
	}

	tmpl, err := template.New(name).
		Delims(LeftDelim, RightDelim).
		Option("missingkey=error").
		Parse(string(data))
	if err != nil {
		panic(errors.Wrapf(err, "parsing template %s", name))
	}
	return tmpl
}

// ExecuteTemplate renders tmpl with data
func ExecuteTemplate(tmpl *template.Template, data *TemplateData) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", errors.Wrapf(err, "executing template %s", tmpl.Name())
	}
	return sb.String(), nil
}
