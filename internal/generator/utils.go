package generator

import (
	"bytes"
	"text/template"

	"github.com/mkarray/mkarray/internal/templates"
)

// executeTemplate loads a template, parses it with the provided funcMap, and
// returns the rendered bytes.
func executeTemplate(tmplName string, data interface{}, funcMap template.FuncMap) ([]byte, error) {
	t, err := templates.Parse(tmplName, funcMap)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
