package primary

import "context"

// ProjectService defines the primary port for inspecting the target project.
type ProjectService interface {
	// ListEngines lists the engines found under the candidate directories.
	ListEngines(ctx context.Context) ([]EngineInfo, error)

	// Diagnose checks that the project is ready for generation.
	Diagnose(ctx context.Context) ([]Check, error)
}

// EngineInfo describes a discovered engine.
type EngineInfo struct {
	Name          string
	Root          string
	HasStructures bool
	HasRoutes     bool
}

// Check statuses.
const (
	CheckOK   = "ok"
	CheckWarn = "warn"
	CheckFail = "fail"
)

// Check is the outcome of one project check.
type Check struct {
	Name    string
	Status  string
	Details string // empty when ok
}
