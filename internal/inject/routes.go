package inject

import (
	"fmt"
	"strings"
)

// RouteRequest describes the route lines a scaffolded resource needs.
type RouteRequest struct {
	Header    string // draw line, e.g. "Rails.application.routes.draw do\n"
	ScopePath string // "test_models"
	Namespace string // optional route scope, e.g. "admin"
	Engine    bool   // create the file from Header when it is missing
}

// ResourceLine returns the resource declaration for a scope path.
func ResourceLine(scopePath string) string {
	return fmt.Sprintf("  resources :%s\n", scopePath)
}

// NamespaceMarker identifies an existing namespace block.
func NamespaceMarker(namespace string) string {
	return fmt.Sprintf("namespace :%s do", namespace)
}

// RouteEdits returns the edits for a route request. Both the namespace block
// and the resource line go directly after the draw header, so the resource
// line is not nested inside a namespace created here.
func RouteEdits(req RouteRequest) []Edit {
	var edits []Edit
	if req.Namespace != "" {
		edits = append(edits, Edit{
			Position: After,
			Anchor:   req.Header,
			Text:     fmt.Sprintf("  %s\n  end\n", NamespaceMarker(req.Namespace)),
			Marker:   NamespaceMarker(req.Namespace),
		})
	}
	edits = append(edits, Edit{
		Position: After,
		Anchor:   req.Header,
		Text:     ResourceLine(req.ScopePath),
	})
	return edits
}

// InjectRoute adds the resource route to routes file content.
func InjectRoute(content string, req RouteRequest) (string, Outcome) {
	updated, status, missing := ApplyAll(content, RouteEdits(req))
	out := Outcome{Status: status}
	if status == StatusSkipped {
		out.Warning = fmt.Sprintf("routes draw header %q not found, add `%s` manually",
			strings.TrimSpace(missing), strings.TrimSpace(ResourceLine(req.ScopePath)))
	}
	return updated, out
}

// NewRoutesFile returns the content of an empty routes file for a header.
func NewRoutesFile(header string) string {
	return header + "end\n"
}
