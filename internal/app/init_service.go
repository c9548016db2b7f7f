package app

import (
	"context"
	"fmt"

	"github.com/example/sunsword/internal/config"
	"github.com/example/sunsword/internal/core/effects"
	"github.com/example/sunsword/internal/ports/primary"
	"github.com/example/sunsword/internal/ports/secondary"
	"github.com/example/sunsword/internal/templates"
)

// InitServiceImpl implements the InitService interface.
type InitServiceImpl struct {
	workspace secondary.WorkspaceAdapter
	executor  EffectExecutor
}

// NewInitService creates a new InitService with injected dependencies.
func NewInitService(workspace secondary.WorkspaceAdapter, executor EffectExecutor) *InitServiceImpl {
	return &InitServiceImpl{
		workspace: workspace,
		executor:  executor,
	}
}

// Init writes config/initializers/sun_sword.rb and config/sun_sword.yml.
// Existing files are kept unless req.Force is set.
func (s *InitServiceImpl) Init(ctx context.Context, req primary.InitRequest) (*primary.InitResponse, error) {
	settings := config.Default()
	settings.ScopeOwnerColumn = req.ScopeOwnerColumn
	settings.ScopeOwner = req.ScopeOwner
	if req.PackageManager != "" {
		settings.PackageManager = req.PackageManager
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	initializer, err := templates.Render("init/"+config.InitializerPath, templates.Data{
		ScopeOwnerColumn: settings.ScopeOwnerColumn,
		ScopeOwner:       settings.ScopeOwner,
	})
	if err != nil {
		return nil, err
	}
	yml, err := settings.Marshal()
	if err != nil {
		return nil, err
	}

	writes := []effects.FileEffect{
		effects.Write(config.InitializerPath, initializer),
		effects.Write(config.SettingsPath, string(yml)),
	}

	resp := &primary.InitResponse{}
	var effs []effects.Effect
	for _, w := range writes {
		exists, err := s.workspace.FileExists(ctx, w.Path)
		if err != nil {
			return nil, err
		}
		if exists && !req.Force {
			resp.Skipped = append(resp.Skipped, w.Path)
			w.SkipExisting = true
		} else {
			resp.Written = append(resp.Written, w.Path)
		}
		effs = append(effs, w)
	}

	if err := s.executor.Execute(ctx, effs); err != nil {
		return nil, fmt.Errorf("init failed: %w", err)
	}
	return resp, nil
}

// Ensure InitServiceImpl implements the interface
var _ primary.InitService = (*InitServiceImpl)(nil)
