package command

// UpdateKind discriminates the update variants.
type UpdateKind int

const (
	// UpdateLine carries one line of command output.
	UpdateLine UpdateKind = iota
	// UpdateFinished is the terminal event for a command.
	UpdateFinished
)

// String returns a human-readable kind name.
func (k UpdateKind) String() string {
	switch k {
	case UpdateLine:
		return "line"
	case UpdateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// StderrPrefix marks lines that originated on standard error, so a
// single ordered stream can still be attributed.
const StderrPrefix = "[stderr] "

// Update is one event emitted by a running command.
//
// For UpdateLine, Text holds the line with its newline stripped;
// stderr-origin lines carry StderrPrefix. For UpdateFinished, ExitCode
// holds the process exit status when Exited is true; a command that was
// killed rather than allowed to exit reports Exited false.
type Update struct {
	Kind     UpdateKind
	Text     string
	ExitCode int
	Exited   bool
}

// LineUpdate builds a Line update.
func LineUpdate(text string) Update {
	return Update{Kind: UpdateLine, Text: text}
}

// FinishedUpdate builds the terminal update for a process that exited
// on its own with the given status.
func FinishedUpdate(code int) Update {
	return Update{Kind: UpdateFinished, ExitCode: code, Exited: true}
}

// KilledUpdate builds the terminal update for a command that has no
// exit status to report.
func KilledUpdate() Update {
	return Update{Kind: UpdateFinished}
}
