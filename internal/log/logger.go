// Package log carries the verbose progress channel of a fixture
// verification run, kept separate from the final report stream.
package log

import (
	"fmt"
	"io"
)

// Logger writes per-fixture progress lines when Enabled is true.
// Output goes to the configured writer (typically stderr), so progress
// chatter never mixes into the verification report on stdout.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// Verbose returns an enabled logger writing to w.
func Verbose(w io.Writer) *Logger {
	return &Logger{Enabled: true, W: w}
}

// Printf writes a formatted progress line to W when Enabled is true.
// It is a no-op when Enabled is false.
func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
