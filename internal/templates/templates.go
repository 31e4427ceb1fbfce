package templates

import (
	"embed"
	"fmt"
	"text/template"
)

//go:embed *.tmpl
var templatesFS embed.FS

// partials are parsed alongside every top-level template.
var partials = []string{"banner.tmpl"}

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Parse loads the named template together with the shared partials.
// The returned template executes the named file.
func Parse(name string, funcMap template.FuncMap) (*template.Template, error) {
	if _, err := Get(name); err != nil {
		return nil, err
	}
	if funcMap == nil {
		funcMap = template.FuncMap{}
	}
	patterns := append([]string{name}, partials...)
	t, err := template.New(name).Funcs(funcMap).ParseFS(templatesFS, patterns...)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return t, nil
}
