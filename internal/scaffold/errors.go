package scaffold

import "fmt"

// ConfigError reports a missing or malformed structure file or precondition file.
type ConfigError struct {
	Path   string
	Reason string
	Hint   string // remediation shown to the user
	Err    error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }
