package state

import (
	"os"
	"os/user"

	"github.com/halo-sh/halo/internal/completion"
	"github.com/halo-sh/halo/internal/theme"
)

// MaxLogEntries caps the command log; older entries are dropped from
// the front.
const MaxLogEntries = 100

// UIConfig holds the configurable UI glyphs.
type UIConfig struct {
	Prompt         string
	ScrollbarThumb string
}

// DefaultUIConfig returns the default glyphs.
func DefaultUIConfig() UIConfig {
	return UIConfig{Prompt: "❯", ScrollbarThumb: "█"}
}

// ThemeSelection is the interactive theme picker state.
type ThemeSelection struct {
	Active bool
	Names  []string
	Index  int
}

// State is the complete interaction state of a session.
type State struct {
	ShouldQuit  bool
	NeedsRedraw bool

	Username  string
	Cwd       string
	GitBranch string

	// Input is the editable line; Cursor is a rune index into it.
	Input  []rune
	Cursor int

	History      []string
	HistoryIndex int // -1 when not navigating

	Log          []*LogEntry
	ScrollOffset int

	Aliases map[string]string

	Theme     theme.Theme
	ThemeName string
	UI        UIConfig

	Selection  ThemeSelection
	Completion *completion.State
}

// New creates session state rooted at the current working directory,
// with a welcome entry in the log.
func New() (*State, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	username := "user"
	if u, err := user.Current(); err == nil && u.Username != "" {
		username = u.Username
	}

	s := &State{
		NeedsRedraw:  true,
		Username:     username,
		Cwd:          cwd,
		HistoryIndex: -1,
		Aliases:      make(map[string]string),
		Theme:        theme.Default(),
		ThemeName:    theme.DefaultName,
		UI:           DefaultUIConfig(),
		Completion:   completion.New(),
	}

	welcome := NewLogEntry("", cwd, false)
	welcome.Append("Welcome to Halo! A modern shell for a modern age.")
	s.Log = append(s.Log, welcome)

	return s, nil
}

// InputString returns the input line as a string.
func (s *State) InputString() string {
	return string(s.Input)
}

// SetInput replaces the input line and places the cursor at its end.
func (s *State) SetInput(text string) {
	s.Input = []rune(text)
	s.Cursor = len(s.Input)
}

// ClearInput empties the input line.
func (s *State) ClearInput() {
	s.Input = s.Input[:0]
	s.Cursor = 0
}

// InsertRune inserts r at the cursor.
func (s *State) InsertRune(r rune) {
	s.Input = append(s.Input, 0)
	copy(s.Input[s.Cursor+1:], s.Input[s.Cursor:])
	s.Input[s.Cursor] = r
	s.Cursor++
}

// Backspace deletes the rune before the cursor.
func (s *State) Backspace() {
	if s.Cursor > 0 {
		s.Input = append(s.Input[:s.Cursor-1], s.Input[s.Cursor:]...)
		s.Cursor--
	}
}

// MoveCursorLeft moves the cursor one rune left.
func (s *State) MoveCursorLeft() {
	if s.Cursor > 0 {
		s.Cursor--
	}
}

// MoveCursorRight moves the cursor one rune right.
func (s *State) MoveCursorRight() {
	if s.Cursor < len(s.Input) {
		s.Cursor++
	}
}

// ExitPreview resets log scrolling back to the live prompt.
func (s *State) ExitPreview() {
	s.ScrollOffset = 0
}

// AddLogEntry appends a running entry for a submitted command,
// trimming the log to MaxLogEntries.
func (s *State) AddLogEntry(command, cwd string) *LogEntry {
	entry := NewLogEntry(command, cwd, true)
	s.Log = append(s.Log, entry)
	if excess := len(s.Log) - MaxLogEntries; excess > 0 {
		s.Log = append(s.Log[:0:0], s.Log[excess:]...)
	}
	return entry
}

// LastLog returns the newest log entry, or nil for an empty log.
func (s *State) LastLog() *LogEntry {
	if len(s.Log) == 0 {
		return nil
	}
	return s.Log[len(s.Log)-1]
}

// AppendToLastLog adds an output line to the newest entry.
func (s *State) AppendToLastLog(line string) {
	if last := s.LastLog(); last != nil {
		last.Append(line)
		s.NeedsRedraw = true
	}
}

// FinishLastLog marks the newest entry as finished without an outcome.
func (s *State) FinishLastLog() {
	if last := s.LastLog(); last != nil {
		last.Finish()
		s.NeedsRedraw = true
	}
}

// FinishLastLogWithResult marks the newest entry finished with the
// command outcome.
func (s *State) FinishLastLogWithResult(exitCode int, exited bool) {
	if last := s.LastLog(); last != nil {
		last.FinishWithResult(exitCode, exited)
		s.NeedsRedraw = true
	}
}

// PushHistory appends line to history unless it repeats the previous
// entry.
func (s *State) PushHistory(line string) bool {
	if n := len(s.History); n > 0 && s.History[n-1] == line {
		return false
	}
	s.History = append(s.History, line)
	return true
}

// EnterThemeSelection opens the interactive theme picker.
func (s *State) EnterThemeSelection(names []string) {
	s.Selection = ThemeSelection{Active: true, Names: names}
	s.NeedsRedraw = true
}

// ExitThemeSelection closes the theme picker.
func (s *State) ExitThemeSelection() {
	s.Selection = ThemeSelection{}
	s.NeedsRedraw = true
}

// SelectionUp moves the theme picker selection up, stopping at the top.
func (s *State) SelectionUp() {
	if s.Selection.Active && s.Selection.Index > 0 {
		s.Selection.Index--
		s.NeedsRedraw = true
	}
}

// SelectionDown moves the theme picker selection down, wrapping.
func (s *State) SelectionDown() {
	if s.Selection.Active && len(s.Selection.Names) > 0 {
		s.Selection.Index = (s.Selection.Index + 1) % len(s.Selection.Names)
		s.NeedsRedraw = true
	}
}

// SelectedTheme returns the highlighted theme name, if any.
func (s *State) SelectedTheme() (string, bool) {
	if !s.Selection.Active || len(s.Selection.Names) == 0 {
		return "", false
	}
	return s.Selection.Names[s.Selection.Index], true
}
