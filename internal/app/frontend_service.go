package app

import (
	"context"
	"fmt"

	"github.com/example/sunsword/internal/config"
	corefrontend "github.com/example/sunsword/internal/core/frontend"
	"github.com/example/sunsword/internal/engine"
	"github.com/example/sunsword/internal/ports/primary"
	"github.com/example/sunsword/internal/ports/secondary"
	"github.com/example/sunsword/internal/templates"
)

// FrontendServiceImpl implements the FrontendService interface.
type FrontendServiceImpl struct {
	workspace secondary.WorkspaceAdapter
	executor  EffectExecutor
}

// NewFrontendService creates a new FrontendService with injected dependencies.
func NewFrontendService(workspace secondary.WorkspaceAdapter, executor EffectExecutor) *FrontendServiceImpl {
	return &FrontendServiceImpl{
		workspace: workspace,
		executor:  executor,
	}
}

// Setup installs Vite, Stimulus and Turbo into the main app.
func (s *FrontendServiceImpl) Setup(ctx context.Context, req primary.FrontendRequest) (*primary.FrontendResponse, error) {
	// 1. Guard check
	if result := corefrontend.CanSetup(corefrontend.SetupContext{Setup: req.Setup, Engine: req.Engine}); !result.Allowed {
		return nil, result.Error()
	}

	// 2. Load settings
	settings, err := config.Load(s.workspace.Root())
	if err != nil {
		return nil, err
	}

	// 3. Probe the project
	input, err := s.probe(ctx)
	if err != nil {
		return nil, err
	}
	input.PackageManager = settings.PackageManager
	input.RoutesHeader = engine.MainRoutesHeader

	appName, err := s.appName(ctx)
	if err != nil {
		return nil, err
	}

	// 4. Render templates
	data := templates.Data{
		AppName:        appName,
		SourceCodeDir:  corefrontend.SourceCodeDir,
		PackageManager: settings.PackageManager,
	}
	if err := renderSetup(&input, data); err != nil {
		return nil, err
	}

	// 5. Plan
	plan := corefrontend.GenerateSetupPlan(input)
	resp := &primary.FrontendResponse{
		AppName:        appName,
		PackageManager: settings.PackageManager,
		Steps:          plan.StepNames(),
		Actions:        plannedActions(plan.Effects()),
		DryRun:         req.DryRun,
	}
	if req.DryRun {
		return resp, nil
	}

	// 6. Execute
	if err := s.executor.Execute(ctx, plan.Effects()); err != nil {
		return nil, fmt.Errorf("frontend setup failed: %w", err)
	}
	return resp, nil
}

func (s *FrontendServiceImpl) probe(ctx context.Context) (corefrontend.PlanInput, error) {
	var input corefrontend.PlanInput
	var err error

	input.AssetsExist, err = s.workspace.DirectoryExists(ctx, corefrontend.AssetsDir)
	if err != nil {
		return input, err
	}
	input.ApplicationJSExists, err = s.workspace.FileExists(ctx, corefrontend.ApplicationJSPath)
	if err != nil {
		return input, err
	}
	return input, nil
}

// appName reads the application module from config/application.rb.
func (s *FrontendServiceImpl) appName(ctx context.Context) (string, error) {
	exists, err := s.workspace.FileExists(ctx, corefrontend.ApplicationRBPath)
	if err != nil {
		return "", err
	}
	if !exists {
		return corefrontend.DefaultAppName, nil
	}
	data, err := s.workspace.ReadFile(ctx, corefrontend.ApplicationRBPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", corefrontend.ApplicationRBPath, err)
	}
	return corefrontend.AppName(string(data)), nil
}

func renderSetup(input *corefrontend.PlanInput, data templates.Data) error {
	var err error
	if input.Manifest, err = templates.Render("frontend/assets/config/manifest.js", data); err != nil {
		return err
	}
	if input.GemfileBlock, err = templates.Render("frontend/gemfile.rb", data); err != nil {
		return err
	}
	if input.RoutesBlock, err = templates.Render("frontend/routes.rb", data); err != nil {
		return err
	}

	trees := []struct {
		dir  string
		dest *[]templates.File
	}{
		{"frontend/root", &input.Root},
		{"frontend/app", &input.Frontend},
		{"frontend/tests", &input.Tests},
		{"frontend/components", &input.Components},
		{"frontend/layouts", &input.Layouts},
	}
	for _, tree := range trees {
		files, err := templates.RenderTree(tree.dir, data)
		if err != nil {
			return err
		}
		*tree.dest = files
	}
	return nil
}

// Ensure FrontendServiceImpl implements the interface
var _ primary.FrontendService = (*FrontendServiceImpl)(nil)
