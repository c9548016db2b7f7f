package engine

import (
	"fmt"
	"strings"
)

// EngineNotFoundError reports an engine that matched no candidate layout.
type EngineNotFoundError struct {
	Name      string
	Available []string
}

func (e *EngineNotFoundError) Error() string {
	available := "none"
	if len(e.Available) > 0 {
		available = strings.Join(e.Available, ", ")
	}
	return fmt.Sprintf("Engine '%s' not found. Available engines: %s", e.Name, available)
}

// StructureNotFoundError reports a structure file that does not exist in any searched location.
type StructureNotFoundError struct {
	Name     string
	Searched []string
}

func (e *StructureNotFoundError) Error() string {
	return fmt.Sprintf("Structure file not found for '%s' (searched: %s)", e.Name, strings.Join(e.Searched, ", "))
}
