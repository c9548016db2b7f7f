package resource

import (
	"github.com/example/sunsword/internal/core/effects"
	"github.com/example/sunsword/internal/inject"
	gen "github.com/example/sunsword/internal/scaffold"
)

// PlanInput contains pre-rendered data for a scaffold plan.
// All values must be gathered by the caller - no I/O in the planner.
type PlanInput struct {
	ScopePath   string
	ViewDir     string
	Files       []gen.GeneratedFile
	RoutesFile  string
	Route       inject.RouteRequest
	SidebarFile string
	Warnings    []string // non-fatal findings from loading, e.g. no columns
}

// Plan represents the planned effects for scaffolding a resource.
type Plan struct {
	ScopePath string
	Messages  []effects.LogEffect
	FileOps   []effects.FileEffect
	InjectOps []effects.InjectEffect
}

// Effects returns all effects as a flat slice for execution.
func (p Plan) Effects() []effects.Effect {
	result := make([]effects.Effect, 0, len(p.Messages)+len(p.FileOps)+len(p.InjectOps))
	for _, e := range p.Messages {
		result = append(result, e)
	}
	for _, e := range p.FileOps {
		result = append(result, e)
	}
	for _, e := range p.InjectOps {
		result = append(result, e)
	}
	return result
}

// GenerateScaffoldPlan creates a plan that writes the rendered files and
// wires the resource into the routes file and sidebar.
// This is a pure function - all input data must be pre-fetched.
func GenerateScaffoldPlan(input PlanInput) Plan {
	plan := Plan{ScopePath: input.ScopePath}

	for _, w := range input.Warnings {
		plan.Messages = append(plan.Messages, effects.Warn(w))
	}

	plan.FileOps = append(plan.FileOps, effects.FileEffect{
		Operation: effects.FileMkdir,
		Path:      input.ViewDir,
		Mode:      0755,
	})
	for _, f := range input.Files {
		plan.FileOps = append(plan.FileOps, effects.Write(f.Path, f.Content))
	}

	if input.RoutesFile != "" {
		plan.InjectOps = append(plan.InjectOps, effects.InjectEffect{
			Target: inject.RouteTarget(input.RoutesFile, input.Route),
		})
	}
	if input.SidebarFile != "" {
		plan.InjectOps = append(plan.InjectOps, effects.InjectEffect{
			Target: inject.SidebarTarget(input.SidebarFile, input.ScopePath),
		})
	}

	return plan
}

// Paths returns every path the plan touches, in order.
func (p Plan) Paths() []string {
	var paths []string
	for _, op := range p.FileOps {
		if op.Operation == effects.FileWrite {
			paths = append(paths, op.Path)
		}
	}
	for _, op := range p.InjectOps {
		paths = append(paths, op.Target.Path)
	}
	return paths
}
