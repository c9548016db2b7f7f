// Package scaffold provides templates for CRUD scaffolding.
package scaffold

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed controllers/*.tmpl views/*.tmpl views/components/menu/*.tmpl fields/*.tmpl
var scaffoldTemplates embed.FS

// GetTemplate returns the content of a scaffold template, e.g. "views/show.html.erb".
func GetTemplate(name string) (string, error) {
	content, err := scaffoldTemplates.ReadFile(name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// GetFieldTemplate returns the form fragment template for a layout.
func GetFieldTemplate(layout string) (string, error) {
	return GetTemplate("fields/" + layout + ".html.erb")
}

// TemplateFuncs returns the template function map for scaffold templates.
func TemplateFuncs(humanize func(string) string) template.FuncMap {
	return template.FuncMap{
		"toLower":  strings.ToLower,
		"toUpper":  strings.ToUpper,
		"join":     strings.Join,
		"humanize": humanize,
		"indent":   indent,
		"symbols":  formatSymbols,
	}
}

// indent prefixes every non-empty line of s with n spaces.
func indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}

// formatSymbols formats names as a Ruby symbol list.
// e.g., ["id", "name"] -> ":id, :name"
func formatSymbols(names []string) string {
	syms := make([]string, len(names))
	for i, n := range names {
		syms[i] = ":" + n
	}
	return strings.Join(syms, ", ")
}
