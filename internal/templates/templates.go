// Package templates embeds the files written by the init and frontend generators.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"
)

//go:embed all:init all:frontend
var generatorTemplates embed.FS

const templateExt = ".tmpl"

// Data is the context shared by init and frontend templates.
type Data struct {
	AppName          string
	SourceCodeDir    string
	PackageManager   string
	ScopeOwnerColumn string
	ScopeOwner       string
}

// File is a rendered template with its path relative to the rendered tree.
type File struct {
	Path    string
	Content string
}

// Render renders a single template, e.g. "frontend/gemfile.rb".
func Render(name string, data Data) (string, error) {
	content, err := generatorTemplates.ReadFile(name + templateExt)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return execute(name, string(content), data)
}

// RenderTree renders every template below dir. Paths are relative to dir
// with the template extension stripped, sorted.
func RenderTree(dir string, data Data) ([]File, error) {
	var files []File
	err := fs.WalkDir(generatorTemplates, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, templateExt) {
			return nil
		}
		content, err := generatorTemplates.ReadFile(p)
		if err != nil {
			return err
		}
		rendered, err := execute(p, string(content), data)
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimSuffix(p, templateExt), dir+"/")
		files = append(files, File{Path: rel, Content: rendered})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", dir, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// Exists reports whether a template or template directory is embedded.
func Exists(name string) bool {
	if _, err := fs.Stat(generatorTemplates, name+templateExt); err == nil {
		return true
	}
	info, err := fs.Stat(generatorTemplates, path.Clean(name))
	return err == nil && info.IsDir()
}

func execute(name, content string, data Data) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
