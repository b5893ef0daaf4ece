package verify

import (
	"fmt"
	"strings"
)

// AssertionError reports that the linter's actual behaviour diverged
// from the fixture's declared expectations. The message embeds the full
// combined linter output so failures can be triaged without rerunning.
type AssertionError struct {
	File   string
	Reason string
	Output string
}

func (e *AssertionError) Error() string {
	msg := e.Reason
	if e.Output != "" {
		msg += "\n\nOutput:\n" + strings.TrimRight(e.Output, "\n") + "\n"
	}
	return msg
}

// ToolError reports that the linter process could not be run at all
// (executable not found, spawn failure). It is distinct from
// AssertionError so callers can skip instead of fail when the external
// tool is unavailable.
type ToolError struct {
	Cmd []string
	Err error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("running %s: %v", strings.Join(e.Cmd, " "), e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }
