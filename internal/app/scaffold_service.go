package app

import (
	"context"
	"fmt"

	"github.com/example/sunsword/internal/config"
	"github.com/example/sunsword/internal/core/effects"
	coreresource "github.com/example/sunsword/internal/core/resource"
	"github.com/example/sunsword/internal/engine"
	"github.com/example/sunsword/internal/inject"
	"github.com/example/sunsword/internal/ports/primary"
	"github.com/example/sunsword/internal/ports/secondary"
	"github.com/example/sunsword/internal/scaffold"
)

// ColumnSourceFactory opens the column source for a project. The returned
// func releases it.
type ColumnSourceFactory func(ctx context.Context, settings *config.Settings) (secondary.ColumnSource, func() error, error)

// ScaffoldServiceImpl implements the ScaffoldService interface.
type ScaffoldServiceImpl struct {
	workspace secondary.WorkspaceAdapter
	locator   *engine.Locator
	columns   ColumnSourceFactory
	generator *scaffold.Generator
	executor  EffectExecutor
}

// NewScaffoldService creates a new ScaffoldService with injected dependencies.
func NewScaffoldService(
	workspace secondary.WorkspaceAdapter,
	columns ColumnSourceFactory,
	executor EffectExecutor,
) *ScaffoldServiceImpl {
	return &ScaffoldServiceImpl{
		workspace: workspace,
		locator:   engine.NewLocator(workspace),
		columns:   columns,
		generator: scaffold.NewGenerator(),
		executor:  executor,
	}
}

// Scaffold renders a resource and wires it into the routes file and sidebar.
// Every failure happens before the first write.
func (s *ScaffoldServiceImpl) Scaffold(ctx context.Context, req primary.ScaffoldRequest) (*primary.ScaffoldResponse, error) {
	// 1. Load settings
	settings, err := config.Load(s.workspace.Root())
	if err != nil {
		return nil, err
	}

	// 2. Guard check
	initialized, err := s.workspace.FileExists(ctx, config.InitializerPath)
	if err != nil {
		return nil, err
	}
	guardCtx := coreresource.ScaffoldContext{
		Structure:         req.Structure,
		InitializerPath:   config.InitializerPath,
		InitializerExists: initialized,
	}
	if result := coreresource.CanScaffold(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	// 3. Resolve the target paths
	paths, err := s.locator.Resolve(ctx, req.Engine)
	if err != nil {
		return nil, err
	}

	// 4. Load the structure
	structure, err := s.loadStructure(ctx, req, settings)
	if err != nil {
		return nil, err
	}

	// 5. Introspect columns
	columns, sourceName, warnings, err := s.introspect(ctx, settings, structure.Table())
	if err != nil {
		return nil, err
	}

	// 6. Render
	domain := req.Domain
	if domain == "" {
		domain = req.EngineStructure
	}
	payload, err := s.generator.BuildPayload(structure, columns, scaffold.PayloadOptions{
		AppRoot:    paths.AppRoot,
		Domain:     domain,
		ScopeOwner: settings.ScopeOwner,
	})
	if err != nil {
		return nil, err
	}
	result, err := s.generator.GenerateResource(payload)
	if err != nil {
		return nil, err
	}

	// 7. Plan
	plan := coreresource.GenerateScaffoldPlan(coreresource.PlanInput{
		ScopePath:  structure.ScopePath,
		ViewDir:    payload.ViewDir(),
		Files:      result.Files,
		RoutesFile: paths.RoutesFile,
		Route: inject.RouteRequest{
			Header:    paths.RoutesHeader(),
			ScopePath: structure.ScopePath,
			Namespace: structure.RouteScope,
			Engine:    paths.IsEngine(),
		},
		SidebarFile: paths.SidebarFile(),
		Warnings:    warnings,
	})

	resp := &primary.ScaffoldResponse{
		ScopePath:    structure.ScopePath,
		Engine:       paths.Engine,
		Table:        structure.Table(),
		ColumnSource: sourceName,
		Actions:      plannedActions(plan.Effects()),
		Warnings:     warnings,
		NextSteps:    result.NextSteps,
		DryRun:       req.DryRun,
	}
	if req.DryRun {
		return resp, nil
	}

	// 8. Execute
	if err := s.executor.Execute(ctx, plan.Effects()); err != nil {
		return nil, fmt.Errorf("failed to scaffold %s: %w", structure.ScopePath, err)
	}
	return resp, nil
}

func (s *ScaffoldServiceImpl) loadStructure(ctx context.Context, req primary.ScaffoldRequest, settings *config.Settings) (*scaffold.ResourceStructure, error) {
	path, err := s.locator.StructureFilePath(ctx, req.Structure, req.Engine, req.EngineStructure)
	if err != nil {
		return nil, err
	}
	data, err := s.workspace.ReadFile(ctx, path)
	if err != nil {
		return nil, &scaffold.ConfigError{Path: path, Reason: "failed to read structure file", Err: err}
	}
	structure, err := scaffold.ParseStructure(path, data, settings)
	if err != nil {
		return nil, err
	}
	if req.RouteScope != "" {
		structure.WithRouteScope(req.RouteScope)
	}
	return structure, nil
}

// introspect asks the column source for the table. Missing columns are a
// warning, not an error: declared form fields still render.
func (s *ScaffoldServiceImpl) introspect(ctx context.Context, settings *config.Settings, table string) ([]scaffold.Column, string, []string, error) {
	source, closeFn, err := s.columns(ctx, settings)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to open column source: %w", err)
	}
	defer closeFn()

	var warnings []string
	columns, err := source.Columns(ctx, table)
	if err != nil {
		warnings = append(warnings, err.Error())
	}
	if len(columns) == 0 {
		warnings = append(warnings, fmt.Sprintf("no columns found for table %s (%s)", table, source.Name()))
	}
	return columns, source.Name(), warnings, nil
}

func plannedActions(effs []effects.Effect) []primary.PlannedAction {
	actions := make([]primary.PlannedAction, 0, len(effs))
	for _, eff := range effs {
		action, target := effects.Describe(eff)
		actions = append(actions, primary.PlannedAction{Action: action, Target: target})
	}
	return actions
}

// Ensure ScaffoldServiceImpl implements the interface
var _ primary.ScaffoldService = (*ScaffoldServiceImpl)(nil)
