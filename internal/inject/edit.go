// Package inject splices generated lines into existing project files at
// exact string anchors. Every edit is idempotent: text already present is
// never inserted twice.
package inject

import "strings"

// Position says where an edit's text goes relative to its anchor.
type Position int

const (
	After Position = iota
	Before
	Append // end of file; Anchor is ignored
)

// Status is the result of applying edits to a file.
type Status string

const (
	StatusInjected       Status = "inject"
	StatusAlreadyPresent Status = "identical"
	StatusSkipped        Status = "skip"
)

// Edit is one marker-anchored insertion.
type Edit struct {
	Position Position
	Anchor   string
	Text     string
	// Marker is the presence check; Text is used when empty.
	Marker string
}

func (e Edit) marker() string {
	if e.Marker != "" {
		return e.Marker
	}
	return e.Text
}

// Outcome reports what happened to a file. A skipped injection is not an error.
type Outcome struct {
	Path    string
	Status  Status
	Warning string
}

// InjectAfter inserts text after the first occurrence of anchor.
func InjectAfter(content, anchor, text string) (string, Status) {
	return Apply(content, Edit{Position: After, Anchor: anchor, Text: text})
}

// InjectBefore inserts text before the first occurrence of anchor.
func InjectBefore(content, anchor, text string) (string, Status) {
	return Apply(content, Edit{Position: Before, Anchor: anchor, Text: text})
}

// AppendOnce appends text unless it is already present.
func AppendOnce(content, text string) (string, Status) {
	return Apply(content, Edit{Position: Append, Text: text})
}

// Apply applies a single edit. The content is returned unchanged when the
// marker is already present or the anchor cannot be found.
func Apply(content string, e Edit) (string, Status) {
	if strings.Contains(content, e.marker()) {
		return content, StatusAlreadyPresent
	}

	if e.Position == Append {
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		return content + e.Text, StatusInjected
	}

	i := strings.Index(content, e.Anchor)
	if e.Anchor == "" || i < 0 {
		return content, StatusSkipped
	}
	if e.Position == After {
		i += len(e.Anchor)
	}
	return content[:i] + e.Text + content[i:], StatusInjected
}

// ApplyAll applies edits in order. If any anchor is missing the original
// content is returned with StatusSkipped and the missing anchor.
func ApplyAll(content string, edits []Edit) (string, Status, string) {
	result := content
	status := StatusAlreadyPresent
	for _, e := range edits {
		next, s := Apply(result, e)
		switch s {
		case StatusSkipped:
			return content, StatusSkipped, e.Anchor
		case StatusInjected:
			status = StatusInjected
		}
		result = next
	}
	return result, status, ""
}
