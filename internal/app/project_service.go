package app

import (
	"context"
	"fmt"

	"github.com/example/sunsword/internal/config"
	corefrontend "github.com/example/sunsword/internal/core/frontend"
	"github.com/example/sunsword/internal/engine"
	"github.com/example/sunsword/internal/ports/primary"
	"github.com/example/sunsword/internal/ports/secondary"
	"github.com/example/sunsword/internal/scaffold"
)

// ProjectServiceImpl implements the ProjectService interface.
type ProjectServiceImpl struct {
	workspace secondary.WorkspaceAdapter
	locator   *engine.Locator
	runner    secondary.CommandRunner
}

// NewProjectService creates a new ProjectService with injected dependencies.
func NewProjectService(workspace secondary.WorkspaceAdapter, runner secondary.CommandRunner) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		workspace: workspace,
		locator:   engine.NewLocator(workspace),
		runner:    runner,
	}
}

// ListEngines lists the engines found under the candidate directories.
func (s *ProjectServiceImpl) ListEngines(ctx context.Context) ([]primary.EngineInfo, error) {
	engines, err := s.locator.Describe(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]primary.EngineInfo, len(engines))
	for i, e := range engines {
		infos[i] = primary.EngineInfo{
			Name:          e.Name,
			Root:          e.Root,
			HasStructures: e.HasStructures,
			HasRoutes:     e.HasRoutes,
		}
	}
	return infos, nil
}

type fileCheck struct {
	name    string
	path    string
	dir     bool
	missing string // status when absent
	hint    string
}

// Diagnose checks that the project is ready for generation.
func (s *ProjectServiceImpl) Diagnose(ctx context.Context) ([]primary.Check, error) {
	settings, err := config.Load(s.workspace.Root())
	if err != nil {
		return []primary.Check{{Name: "settings", Status: primary.CheckFail, Details: err.Error()}}, nil
	}

	paths := engine.MainPaths()
	files := []fileCheck{
		{"Gemfile", corefrontend.GemfilePath, false, primary.CheckFail, "not a Rails project root"},
		{"routes", paths.RoutesFile, false, primary.CheckFail, "config/routes.rb is required for route injection"},
		{"initializer", config.InitializerPath, false, primary.CheckWarn, "run sunsword init"},
		{"settings", config.SettingsPath, false, primary.CheckWarn, "run sunsword init, defaults are used"},
		{"structures", paths.StructuresDir, true, primary.CheckWarn, "create structure files under " + scaffold.StructureDir},
		{"sidebar", paths.SidebarFile(), false, primary.CheckWarn, "run sunsword frontend --setup, menu links are skipped"},
	}

	var checks []primary.Check
	for _, f := range files {
		c, err := s.checkPath(ctx, f)
		if err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}

	c, err := s.checkColumns(ctx, settings)
	if err != nil {
		return nil, err
	}
	checks = append(checks, c)

	for _, tool := range []string{settings.PackageManager, "bundle", "rails"} {
		checks = append(checks, s.checkTool(tool))
	}
	return checks, nil
}

func (s *ProjectServiceImpl) checkPath(ctx context.Context, f fileCheck) (primary.Check, error) {
	exists := s.workspace.FileExists
	if f.dir {
		exists = s.workspace.DirectoryExists
	}
	ok, err := exists(ctx, f.path)
	if err != nil {
		return primary.Check{}, err
	}
	if ok {
		return primary.Check{Name: f.name, Status: primary.CheckOK}, nil
	}
	return primary.Check{Name: f.name, Status: f.missing, Details: fmt.Sprintf("%s not found: %s", f.path, f.hint)}, nil
}

func (s *ProjectServiceImpl) checkColumns(ctx context.Context, settings *config.Settings) (primary.Check, error) {
	for _, path := range []string{settings.DatabasePath, settings.SchemaPath} {
		if path == "" {
			continue
		}
		ok, err := s.workspace.FileExists(ctx, path)
		if err != nil {
			return primary.Check{}, err
		}
		if ok {
			return primary.Check{Name: "columns", Status: primary.CheckOK}, nil
		}
	}
	return primary.Check{
		Name:    "columns",
		Status:  primary.CheckWarn,
		Details: fmt.Sprintf("neither %s nor %s found: forms need declared form_fields", settings.DatabasePath, settings.SchemaPath),
	}, nil
}

func (s *ProjectServiceImpl) checkTool(name string) primary.Check {
	if _, err := s.runner.LookPath(name); err != nil {
		return primary.Check{Name: name, Status: primary.CheckWarn, Details: fmt.Sprintf("%s not on PATH", name)}
	}
	return primary.Check{Name: name, Status: primary.CheckOK}
}

// Ensure ProjectServiceImpl implements the interface
var _ primary.ProjectService = (*ProjectServiceImpl)(nil)
