// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/example/sunsword/internal/core/effects"
	"github.com/example/sunsword/internal/inject"
	"github.com/example/sunsword/internal/ports/secondary"
)

// Actions reported for file writes.
const (
	ActionCreate    = "create"
	ActionIdentical = "identical"
	ActionUpdate    = "update"
	ActionSkip      = "skip"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor implements EffectExecutor against a project workspace.
type DefaultEffectExecutor struct {
	workspace secondary.WorkspaceAdapter
	injector  *inject.Injector
	runner    secondary.CommandRunner
	reporter  Reporter
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
func NewEffectExecutor(
	workspace secondary.WorkspaceAdapter,
	runner secondary.CommandRunner,
	reporter Reporter,
) *DefaultEffectExecutor {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &DefaultEffectExecutor{
		workspace: workspace,
		injector:  inject.NewInjector(workspace),
		runner:    runner,
		reporter:  reporter,
	}
}

// Execute processes a slice of effects, executing each in sequence.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.FileEffect:
		return e.executeFile(ctx, typed)
	case effects.InjectEffect:
		return e.executeInject(ctx, typed)
	case effects.CommandEffect:
		return e.executeCommand(ctx, typed)
	case effects.CompositeEffect:
		return e.Execute(ctx, typed.Effects)
	case effects.NoEffect:
		return nil
	case effects.LogEffect:
		e.reporter.Log(typed.Level, typed.Message)
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeFile(ctx context.Context, eff effects.FileEffect) error {
	switch eff.Operation {
	case effects.FileMkdir:
		return e.workspace.CreateDirectory(ctx, eff.Path)
	case effects.FileWrite:
		return e.write(ctx, eff)
	case effects.FileRemoveDir:
		if err := e.workspace.RemoveDirectory(ctx, eff.Path); err != nil {
			return err
		}
		e.reporter.Action("remove", eff.Path)
		return nil
	case effects.FileChmod:
		if err := e.workspace.Chmod(ctx, eff.Path, fs.FileMode(eff.Mode)); err != nil {
			return err
		}
		e.reporter.Action("chmod", eff.Path)
		return nil
	default:
		return fmt.Errorf("unknown file operation: %s", eff.Operation)
	}
}

func (e *DefaultEffectExecutor) write(ctx context.Context, eff effects.FileEffect) error {
	exists, err := e.workspace.FileExists(ctx, eff.Path)
	if err != nil {
		return err
	}

	action := ActionCreate
	if exists {
		if eff.SkipExisting {
			e.reporter.Action(ActionSkip, eff.Path)
			return nil
		}
		current, err := e.workspace.ReadFile(ctx, eff.Path)
		if err != nil {
			return err
		}
		if bytes.Equal(current, eff.Content) {
			e.reporter.Action(ActionIdentical, eff.Path)
			return nil
		}
		action = ActionUpdate
	}

	mode := fs.FileMode(eff.Mode)
	if mode == 0 {
		mode = 0644
	}
	if err := e.workspace.WriteFile(ctx, eff.Path, eff.Content, mode); err != nil {
		return err
	}
	e.reporter.Action(action, eff.Path)
	return nil
}

func (e *DefaultEffectExecutor) executeInject(ctx context.Context, eff effects.InjectEffect) error {
	out, err := e.injector.Ensure(ctx, eff.Target)
	if err != nil {
		return err
	}
	if out.Warning != "" {
		e.reporter.Log(effects.LevelWarn, out.Warning)
		return nil
	}
	if out.Status != inject.StatusSkipped {
		e.reporter.Action(string(out.Status), out.Path)
	}
	return nil
}

// executeCommand runs an external tool. A failing tool is reported as a
// warning and the run continues.
func (e *DefaultEffectExecutor) executeCommand(ctx context.Context, eff effects.CommandEffect) error {
	e.reporter.Action("run", strings.TrimSpace(eff.Name+" "+strings.Join(eff.Args, " ")))
	if _, err := e.runner.Run(ctx, eff.Name, eff.Args...); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		e.reporter.Log(effects.LevelWarn, err.Error())
	}
	return nil
}

// Ensure DefaultEffectExecutor implements the interface
var _ EffectExecutor = (*DefaultEffectExecutor)(nil)
