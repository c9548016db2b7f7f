package primary

import "context"

// FrontendService defines the primary port for the frontend setup.
type FrontendService interface {
	// Setup installs Vite, Stimulus and Turbo into the main app.
	Setup(ctx context.Context, req FrontendRequest) (*FrontendResponse, error)
}

// FrontendRequest contains parameters for the frontend setup.
type FrontendRequest struct {
	Setup  bool
	Engine string // rejected, setup only targets the main app
	DryRun bool
}

// FrontendResponse contains the result of the frontend setup.
type FrontendResponse struct {
	AppName        string
	PackageManager string
	Steps          []string
	Actions        []PlannedAction
	DryRun         bool
}
