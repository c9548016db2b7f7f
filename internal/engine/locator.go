// Package engine resolves the main application or a named engine to the
// paths that scaffolding reads from and writes to.
package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/example/sunsword/internal/ports/secondary"
	"github.com/example/sunsword/internal/scaffold"
)

// CandidateDirs are the parent directories probed for an engine, in order.
// The empty entry probes <name> at the project root.
var CandidateDirs = []string{"engines", "components", "gems", ""}

// MainRoutesHeader opens the main application's routes file.
const MainRoutesHeader = "Rails.application.routes.draw do\n"

// Paths are project-relative locations for a scaffolding target.
type Paths struct {
	Engine          string // empty for the main application
	Root            string // "" or "components/admin"
	AppRoot         string
	ViewsRoot       string
	ControllersRoot string
	RoutesFile      string
	StructuresDir   string
	EngineClass     string // "Admin", empty for the main application
}

// IsEngine reports whether the paths point into an engine.
func (p *Paths) IsEngine() bool {
	return p.Engine != ""
}

// RoutesHeader returns the draw line that opens the routes file.
func (p *Paths) RoutesHeader() string {
	if p.IsEngine() {
		return p.EngineClass + "::Engine.routes.draw do\n"
	}
	return MainRoutesHeader
}

// SidebarFile returns the sidebar partial that menu links are injected into.
func (p *Paths) SidebarFile() string {
	return filepath.Join(p.ViewsRoot, "components", "layouts", "_sidebar.html.erb")
}

// MainPaths returns the paths of the main application.
func MainPaths() *Paths {
	return pathsFor("", "")
}

func pathsFor(name, root string) *Paths {
	app := filepath.Join(root, "app")
	p := &Paths{
		Engine:          name,
		Root:            root,
		AppRoot:         app,
		ViewsRoot:       filepath.Join(app, "views"),
		ControllersRoot: filepath.Join(app, "controllers"),
		RoutesFile:      filepath.Join(root, "config", "routes.rb"),
		StructuresDir:   filepath.Join(root, scaffold.StructureDir),
	}
	if name != "" {
		p.EngineClass = scaffold.Camelize(name)
	}
	return p
}

// Locator probes the project tree for engines and structure files.
type Locator struct {
	workspace secondary.WorkspaceAdapter
}

// NewLocator creates a Locator over a project workspace.
func NewLocator(workspace secondary.WorkspaceAdapter) *Locator {
	return &Locator{workspace: workspace}
}

// Resolve returns the paths for an engine, or the main application when name is empty.
func (l *Locator) Resolve(ctx context.Context, name string) (*Paths, error) {
	if name == "" {
		return MainPaths(), nil
	}

	root, err := l.detectEngineRoot(ctx, name)
	if err != nil {
		return nil, err
	}
	if root == "" {
		available, err := l.AvailableEngines(ctx)
		if err != nil {
			return nil, err
		}
		return nil, &EngineNotFoundError{Name: name, Available: available}
	}
	return pathsFor(name, root), nil
}

// detectEngineRoot returns the first candidate directory holding <name>.gemspec.
func (l *Locator) detectEngineRoot(ctx context.Context, name string) (string, error) {
	for _, dir := range CandidateDirs {
		root := filepath.Join(dir, name)
		ok, err := l.workspace.DirectoryExists(ctx, root)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		ok, err = l.workspace.FileExists(ctx, filepath.Join(root, name+".gemspec"))
		if err != nil {
			return "", err
		}
		if ok {
			return root, nil
		}
	}
	return "", nil
}

// ResolveStructureRoot returns the first candidate root for name that has a
// structures directory. The structure engine need not carry a gemspec.
func (l *Locator) ResolveStructureRoot(ctx context.Context, name string) (string, error) {
	var searched []string
	for _, dir := range CandidateDirs {
		root := filepath.Join(dir, name)
		structures := filepath.Join(root, scaffold.StructureDir)
		searched = append(searched, structures)
		ok, err := l.workspace.DirectoryExists(ctx, structures)
		if err != nil {
			return "", err
		}
		if ok {
			return root, nil
		}
	}
	return "", &StructureNotFoundError{Name: name, Searched: searched}
}

// StructureFilePath returns the structure file for an identifier. The engine
// named by engineStructure, or engine when that is empty, holds the file;
// with neither it comes from the main application.
func (l *Locator) StructureFilePath(ctx context.Context, structure, engine, engineStructure string) (string, error) {
	owner := engineStructure
	if owner == "" {
		owner = engine
	}

	root := ""
	if owner != "" {
		r, err := l.ResolveStructureRoot(ctx, owner)
		if err != nil {
			return "", err
		}
		root = r
	}

	path := scaffold.StructurePath(root, structure)
	ok, err := l.workspace.FileExists(ctx, path)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &StructureNotFoundError{Name: structure, Searched: []string{path}}
	}
	return path, nil
}

// AvailableEngines lists every directory under the candidate parents, the
// project root included, that carries a matching gemspec. Names are
// deduplicated by basename and sorted.
func (l *Locator) AvailableEngines(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	for _, dir := range CandidateDirs {
		names, err := l.workspace.ListDirectories(ctx, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to list engines in %s: %w", dir, err)
		}
		for _, name := range names {
			if seen[name] {
				continue
			}
			ok, err := l.workspace.FileExists(ctx, filepath.Join(dir, name, name+".gemspec"))
			if err != nil {
				return nil, err
			}
			if ok {
				seen[name] = true
			}
		}
	}

	engines := make([]string, 0, len(seen))
	for name := range seen {
		engines = append(engines, name)
	}
	sort.Strings(engines)
	return engines, nil
}

// Engine is a discovered engine and where it lives.
type Engine struct {
	Name          string
	Root          string
	HasStructures bool
	HasRoutes     bool
}

// Describe returns details for every available engine, for listing.
func (l *Locator) Describe(ctx context.Context) ([]Engine, error) {
	names, err := l.AvailableEngines(ctx)
	if err != nil {
		return nil, err
	}

	engines := make([]Engine, 0, len(names))
	for _, name := range names {
		p, err := l.Resolve(ctx, name)
		if err != nil {
			return nil, err
		}
		structures, err := l.workspace.DirectoryExists(ctx, p.StructuresDir)
		if err != nil {
			return nil, err
		}
		routes, err := l.workspace.FileExists(ctx, p.RoutesFile)
		if err != nil {
			return nil, err
		}
		engines = append(engines, Engine{Name: name, Root: p.Root, HasStructures: structures, HasRoutes: routes})
	}
	return engines, nil
}
