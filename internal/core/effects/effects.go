// Package effects defines effect types as data structures representing I/O operations.
// This is the foundation of the Functional Core / Imperative Shell pattern.
// Effects are pure data - they describe what should happen, not how.
package effects

import (
	"fmt"
	"strings"

	"github.com/example/sunsword/internal/inject"
)

// Effect is the base interface for all effects.
// Effects represent I/O operations as data that can be interpreted by the shell.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// Log levels.
const (
	LevelInfo = "info"
	LevelWarn = "warn"
)

// LogEffect represents a progress message shown to the user.
type LogEffect struct {
	Level   string
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// File operations.
const (
	FileWrite     = "write"
	FileMkdir     = "mkdir"
	FileRemoveDir = "remove_dir"
	FileChmod     = "chmod"
)

// FileEffect represents a file system operation.
type FileEffect struct {
	Operation string // write, mkdir, remove_dir, chmod
	Path      string // relative to the project root
	Content   []byte // For write operations
	Mode      uint32 // File permissions
	// SkipExisting leaves an existing file untouched instead of overwriting it.
	SkipExisting bool
}

func (e FileEffect) EffectType() string { return "file" }

// InjectEffect represents an idempotent edit of an existing file.
type InjectEffect struct {
	Target inject.Target
}

func (e InjectEffect) EffectType() string { return "inject" }

// CommandEffect represents running an external tool in the project root.
type CommandEffect struct {
	Name string   // e.g., "bun", "bin/rails"
	Args []string // Arguments
}

func (e CommandEffect) EffectType() string { return "command" }

// CompositeEffect holds multiple effects to be executed in sequence.
type CompositeEffect struct {
	Effects []Effect
}

func (e CompositeEffect) EffectType() string { return "composite" }

// NoEffect represents an operation that produces no side effects.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }

// Write is shorthand for a regular file write.
func Write(path, content string) FileEffect {
	return FileEffect{Operation: FileWrite, Path: path, Content: []byte(content), Mode: 0644}
}

// Info is shorthand for an informational log effect.
func Info(message string) LogEffect {
	return LogEffect{Level: LevelInfo, Message: message}
}

// Warn is shorthand for a warning log effect.
func Warn(message string) LogEffect {
	return LogEffect{Level: LevelWarn, Message: message}
}

// Describe returns the action word and target of an effect, for plan listings.
func Describe(eff Effect) (action, target string) {
	switch e := eff.(type) {
	case FileEffect:
		switch e.Operation {
		case FileWrite:
			return "create", e.Path
		case FileMkdir:
			return "mkdir", e.Path
		case FileRemoveDir:
			return "remove", e.Path
		case FileChmod:
			return "chmod", fmt.Sprintf("%s (%o)", e.Path, e.Mode)
		}
	case InjectEffect:
		return "inject", e.Target.Path
	case CommandEffect:
		return "run", strings.TrimSpace(e.Name + " " + strings.Join(e.Args, " "))
	case LogEffect:
		return e.Level, e.Message
	}
	return eff.EffectType(), ""
}

// Flatten expands composite effects and drops no-ops.
func Flatten(effs []Effect) []Effect {
	var out []Effect
	for _, eff := range effs {
		switch e := eff.(type) {
		case CompositeEffect:
			out = append(out, Flatten(e.Effects)...)
		case NoEffect:
		default:
			out = append(out, eff)
		}
	}
	return out
}
