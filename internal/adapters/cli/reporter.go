package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/sunsword/internal/app"
	"github.com/example/sunsword/internal/core/effects"
)

// Reporter prints generator progress as a right-aligned action column
// followed by the target, the layout Rails generators use.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Action prints one file or command step.
func (r *Reporter) Action(action, target string) {
	fmt.Fprintf(r.out, "%s  %s\n", actionColor(action).Sprintf("%12s", action), target)
}

// Log prints a progress message.
func (r *Reporter) Log(level, message string) {
	switch level {
	case effects.LevelWarn:
		fmt.Fprintln(r.out, color.New(color.FgYellow).Sprint(message))
	default:
		fmt.Fprintln(r.out, color.New(color.FgGreen).Sprint(message))
	}
}

func actionColor(action string) *color.Color {
	switch action {
	case app.ActionCreate, "inject", "run":
		return color.New(color.FgGreen, color.Bold)
	case app.ActionUpdate, "remove", "chmod":
		return color.New(color.FgYellow, color.Bold)
	case app.ActionSkip:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgBlue, color.Bold)
	}
}

// Ensure Reporter implements the interface
var _ app.Reporter = (*Reporter)(nil)
