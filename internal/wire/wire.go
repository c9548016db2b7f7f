// Package wire provides dependency injection for the sunsword application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	cliadapter "github.com/example/sunsword/internal/adapters/cli"
	"github.com/example/sunsword/internal/adapters/columns"
	"github.com/example/sunsword/internal/adapters/filesystem"
	"github.com/example/sunsword/internal/adapters/shell"
	"github.com/example/sunsword/internal/app"
	"github.com/example/sunsword/internal/config"
	"github.com/example/sunsword/internal/ports/primary"
	"github.com/example/sunsword/internal/ports/secondary"
)

var (
	projectRoot = "."

	scaffoldService primary.ScaffoldService
	frontendService primary.FrontendService
	initService     primary.InitService
	projectService  primary.ProjectService
	once            sync.Once
)

// SetProjectRoot sets the Rails project the services operate on.
// It has no effect once a service has been requested.
func SetProjectRoot(dir string) {
	projectRoot = dir
}

// ScaffoldService returns the singleton ScaffoldService instance.
func ScaffoldService() primary.ScaffoldService {
	once.Do(initServices)
	return scaffoldService
}

// FrontendService returns the singleton FrontendService instance.
func FrontendService() primary.FrontendService {
	once.Do(initServices)
	return frontendService
}

// InitService returns the singleton InitService instance.
func InitService() primary.InitService {
	once.Do(initServices)
	return initService
}

// ProjectService returns the singleton ProjectService instance.
func ProjectService() primary.ProjectService {
	once.Do(initServices)
	return projectService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	root, err := filepath.Abs(projectRoot)
	if err != nil {
		log.Fatalf("failed to resolve project root: %v", err)
	}

	// Create secondary adapters rooted at the project
	workspace, err := filesystem.NewWorkspaceAdapter(root)
	if err != nil {
		log.Fatalf("failed to open project: %v", err)
	}
	runner := shell.NewRunner(root)
	columnSources := func(ctx context.Context, settings *config.Settings) (secondary.ColumnSource, func() error, error) {
		chain, closeFn, err := columns.ForProject(ctx, workspace, settings)
		if err != nil {
			return nil, closeFn, err
		}
		return chain, closeFn, nil
	}

	// Create effect executor reporting to stdout
	executor := app.NewEffectExecutor(workspace, runner, cliadapter.NewReporter(os.Stdout))

	// Create services (primary ports implementation)
	scaffoldService = app.NewScaffoldService(workspace, columnSources, executor)
	frontendService = app.NewFrontendService(workspace, executor)
	initService = app.NewInitService(workspace, executor)
	projectService = app.NewProjectService(workspace, runner)
}

// ScaffoldAdapter returns a new ScaffoldAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ScaffoldAdapter() *cliadapter.ScaffoldAdapter {
	return ScaffoldAdapterWithOutput(os.Stdout)
}

// ScaffoldAdapterWithOutput returns a new ScaffoldAdapter writing to the given output.
func ScaffoldAdapterWithOutput(out io.Writer) *cliadapter.ScaffoldAdapter {
	return cliadapter.NewScaffoldAdapter(ScaffoldService(), out)
}

// FrontendAdapter returns a new FrontendAdapter writing to stdout.
func FrontendAdapter() *cliadapter.FrontendAdapter {
	return cliadapter.NewFrontendAdapter(FrontendService(), os.Stdout)
}

// InitAdapter returns a new InitAdapter writing to stdout.
func InitAdapter() *cliadapter.InitAdapter {
	return cliadapter.NewInitAdapter(InitService(), os.Stdout)
}

// ProjectAdapter returns a new ProjectAdapter writing to stdout.
func ProjectAdapter() *cliadapter.ProjectAdapter {
	return cliadapter.NewProjectAdapter(ProjectService(), os.Stdout)
}
