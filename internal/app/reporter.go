package app

// Reporter receives progress from effect execution.
type Reporter interface {
	// Action reports a file or command step, e.g. ("create", "app/views/users/index.html.erb").
	Action(action, target string)
	// Log reports a message at a level from the effects package.
	Log(level, message string)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) Action(action, target string) {}
func (NopReporter) Log(level, message string)    {}
