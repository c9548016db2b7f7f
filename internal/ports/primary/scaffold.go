package primary

import "context"

// ScaffoldService defines the primary port for scaffolding a resource.
type ScaffoldService interface {
	// Scaffold renders a resource from its structure file and wires it into
	// the routes file and sidebar.
	Scaffold(ctx context.Context, req ScaffoldRequest) (*ScaffoldResponse, error)
}

// ScaffoldRequest contains parameters for scaffolding a resource.
type ScaffoldRequest struct {
	Structure       string // structure identifier, e.g. "user" for db/structures/user_structure.yaml
	RouteScope      string // optional, from scope:<name>
	Engine          string // optional target engine
	EngineStructure string // optional engine holding the structure file
	Domain          string // optional use case namespace
	DryRun          bool
}

// ScaffoldResponse contains the result of a scaffold.
type ScaffoldResponse struct {
	ScopePath    string
	Engine       string
	Table        string
	ColumnSource string
	Actions      []PlannedAction
	Warnings     []string
	NextSteps    []string
	DryRun       bool
}

// PlannedAction is one step of a generator run, for listings.
type PlannedAction struct {
	Action string // create, mkdir, inject, run, ...
	Target string
}
