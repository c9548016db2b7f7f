package inject

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/sunsword/internal/ports/secondary"
)

// MissingPolicy decides what happens when the target file does not exist.
type MissingPolicy int

const (
	// MissingWarn skips the file and reports a warning.
	MissingWarn MissingPolicy = iota
	// MissingSilent skips the file quietly.
	MissingSilent
	// MissingCreate starts from Target.Create.
	MissingCreate
)

// Target is a file and the edits to converge it to.
type Target struct {
	Path    string
	Edits   []Edit
	Missing MissingPolicy
	Create  string // initial content for MissingCreate
	Hint    string // appended to skip warnings
}

// RouteTarget returns the target for a resource route.
func RouteTarget(path string, req RouteRequest) Target {
	t := Target{
		Path:  path,
		Edits: RouteEdits(req),
		Hint:  fmt.Sprintf("add `%s` manually", strings.TrimSpace(ResourceLine(req.ScopePath))),
	}
	if req.Engine {
		t.Missing = MissingCreate
		t.Create = NewRoutesFile(req.Header)
	}
	return t
}

// SidebarTarget returns the target for a sidebar link. A missing sidebar is skipped silently.
func SidebarTarget(path, scopePath string) Target {
	return Target{
		Path:    path,
		Edits:   []Edit{SidebarEdit(scopePath)},
		Missing: MissingSilent,
		Hint:    "add the menu link manually",
	}
}

// Injector applies targets to files in a workspace.
type Injector struct {
	workspace secondary.WorkspaceAdapter
}

// NewInjector creates an Injector.
func NewInjector(workspace secondary.WorkspaceAdapter) *Injector {
	return &Injector{workspace: workspace}
}

// Ensure reads the target file, applies its edits and writes it back only when changed.
func (i *Injector) Ensure(ctx context.Context, t Target) (Outcome, error) {
	out := Outcome{Path: t.Path}

	exists, err := i.workspace.FileExists(ctx, t.Path)
	if err != nil {
		return out, err
	}

	var content string
	switch {
	case exists:
		data, err := i.workspace.ReadFile(ctx, t.Path)
		if err != nil {
			return out, fmt.Errorf("failed to read %s: %w", t.Path, err)
		}
		content = string(data)
	case t.Missing == MissingCreate:
		content = t.Create
	case t.Missing == MissingSilent:
		out.Status = StatusSkipped
		return out, nil
	default:
		out.Status = StatusSkipped
		out.Warning = t.warning(fmt.Sprintf("%s not found", t.Path))
		return out, nil
	}

	updated, status, missing := ApplyAll(content, t.Edits)
	out.Status = status
	if status == StatusSkipped {
		out.Warning = t.warning(fmt.Sprintf("%q not found in %s", strings.TrimSpace(missing), t.Path))
		return out, nil
	}
	if updated == content && exists {
		return out, nil
	}

	if err := i.workspace.WriteFile(ctx, t.Path, []byte(updated), 0644); err != nil {
		return out, err
	}
	return out, nil
}

// EnsureRoute adds a resource route to a routes file.
func (i *Injector) EnsureRoute(ctx context.Context, path string, req RouteRequest) (Outcome, error) {
	return i.Ensure(ctx, RouteTarget(path, req))
}

// EnsureSidebarLink adds a resource link to a sidebar partial.
func (i *Injector) EnsureSidebarLink(ctx context.Context, path, scopePath string) (Outcome, error) {
	return i.Ensure(ctx, SidebarTarget(path, scopePath))
}

func (t Target) warning(msg string) string {
	if t.Hint == "" {
		return msg
	}
	return msg + ", " + t.Hint
}
