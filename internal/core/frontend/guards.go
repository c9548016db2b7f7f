// Package frontend contains the pure business logic for the frontend setup.
package frontend

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// SetupContext provides context for frontend setup guards.
type SetupContext struct {
	Setup  bool
	Engine string
}

// CanSetup evaluates whether the frontend setup may run.
// Rules:
// - The --setup flag must be given
// - Setup only targets the main app, never an engine
func CanSetup(ctx SetupContext) GuardResult {
	if !ctx.Setup {
		return GuardResult{
			Allowed: false,
			Reason:  "The --setup option must be specified to create the domain structure.",
		}
	}

	if ctx.Engine != "" {
		return GuardResult{
			Allowed: false,
			Reason: "Frontend generator does not support --engine option. " +
				"Frontend setup must be done in the main app only. " +
				`Use "rails generate sun_sword:frontend --setup" without engine option.`,
		}
	}

	return GuardResult{Allowed: true}
}
