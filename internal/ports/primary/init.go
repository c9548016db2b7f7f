package primary

import "context"

// InitService defines the primary port for project initialization.
type InitService interface {
	// Init writes the initializer and the generator settings.
	Init(ctx context.Context, req InitRequest) (*InitResponse, error)
}

// InitRequest contains parameters for initializing a project.
type InitRequest struct {
	ScopeOwnerColumn string
	ScopeOwner       string
	PackageManager   string // optional, defaults to bun
	Force            bool   // overwrite existing files
}

// InitResponse contains the result of initialization.
type InitResponse struct {
	Written []string
	Skipped []string
}
