package state

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry is one block in the scrollable command log: the submitted
// command line plus everything it printed.
type LogEntry struct {
	// ID uniquely identifies the entry.
	ID string

	// Command is the submitted command line, empty for a bare prompt.
	Command string

	// Output holds the captured lines, stderr lines still carrying
	// their origin prefix.
	Output []string

	// Running is true while the command is in flight.
	Running bool

	// Cwd is the directory the command ran in.
	Cwd string

	// ExitCode is the process exit status, valid only when Exited is
	// true. A cancelled command finishes with Exited false.
	ExitCode int
	Exited   bool

	// Duration is the wall-clock runtime, zero until finished.
	Duration time.Duration

	started time.Time
}

// NewLogEntry creates a log entry.
func NewLogEntry(command, cwd string, running bool) *LogEntry {
	return &LogEntry{
		ID:      uuid.New().String(),
		Command: command,
		Cwd:     cwd,
		Running: running,
	}
}

// Append adds one output line to the entry.
func (e *LogEntry) Append(line string) {
	e.Output = append(e.Output, line)
}

// MarkStarted records the start time for duration tracking.
func (e *LogEntry) MarkStarted() {
	e.started = time.Now()
}

// Finish marks the entry as no longer running without an outcome, used
// for builtins and failed spawns.
func (e *LogEntry) Finish() {
	e.finish()
}

// FinishWithResult marks the entry finished with the command outcome.
func (e *LogEntry) FinishWithResult(exitCode int, exited bool) {
	e.ExitCode = exitCode
	e.Exited = exited
	e.finish()
}

func (e *LogEntry) finish() {
	e.Running = false
	if !e.started.IsZero() {
		e.Duration = time.Since(e.started)
	}
}

// Empty reports whether the entry is a bare prompt with no output.
func (e *LogEntry) Empty() bool {
	return e.Command == "" && len(e.Output) == 0
}
