// Package resource contains the pure business logic for scaffolding a resource.
// Guards are pure functions that evaluate preconditions without side effects.
package resource

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

// ScaffoldContext provides context for scaffold guards.
type ScaffoldContext struct {
	Structure         string
	InitializerPath   string
	InitializerExists bool
}

// CanScaffold evaluates whether a resource can be scaffolded.
// Rules:
// - A structure identifier must be given
// - The project must have been initialized
func CanScaffold(ctx ScaffoldContext) GuardResult {
	if ctx.Structure == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "structure name is required (e.g. sunsword scaffold user)",
		}
	}

	if !ctx.InitializerExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s not found: run sunsword init first", ctx.InitializerPath),
		}
	}

	return GuardResult{Allowed: true}
}
