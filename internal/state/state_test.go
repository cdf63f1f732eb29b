package state

import (
	"fmt"
	"testing"
)

func TestInputEditing(t *testing.T) {
	s := &State{HistoryIndex: -1}

	for _, r := range "helo" {
		s.InsertRune(r)
	}
	if s.InputString() != "helo" {
		t.Fatalf("input = %q", s.InputString())
	}

	// Fix the typo: move before 'o', insert 'l'.
	s.MoveCursorLeft()
	s.InsertRune('l')
	if s.InputString() != "hello" {
		t.Errorf("input = %q, want %q", s.InputString(), "hello")
	}
	if s.Cursor != 4 {
		t.Errorf("cursor = %d, want 4", s.Cursor)
	}

	s.MoveCursorRight()
	s.InsertRune('!')
	if s.InputString() != "hello!" {
		t.Errorf("input = %q, want %q", s.InputString(), "hello!")
	}

	s.Backspace()
	if s.InputString() != "hello" {
		t.Errorf("after backspace input = %q", s.InputString())
	}

	s.ClearInput()
	if s.InputString() != "" || s.Cursor != 0 {
		t.Errorf("clear left %q cursor %d", s.InputString(), s.Cursor)
	}

	// Boundary moves must not panic or move out of range.
	s.MoveCursorLeft()
	s.Backspace()
	if s.Cursor != 0 {
		t.Errorf("cursor escaped range: %d", s.Cursor)
	}
}

func TestInsertRuneMultibyte(t *testing.T) {
	s := &State{HistoryIndex: -1}
	for _, r := range "日本語" {
		s.InsertRune(r)
	}
	if s.InputString() != "日本語" {
		t.Errorf("input = %q", s.InputString())
	}
	if s.Cursor != 3 {
		t.Errorf("cursor counts runes, got %d", s.Cursor)
	}
}

func TestLogCap(t *testing.T) {
	s := &State{HistoryIndex: -1}
	for i := 0; i < MaxLogEntries+25; i++ {
		s.AddLogEntry(fmt.Sprintf("cmd-%d", i), "/tmp")
	}

	if len(s.Log) != MaxLogEntries {
		t.Fatalf("log length = %d, want %d", len(s.Log), MaxLogEntries)
	}
	if s.Log[0].Command != "cmd-25" {
		t.Errorf("oldest entries should be dropped, front is %q", s.Log[0].Command)
	}
	if s.LastLog().Command != fmt.Sprintf("cmd-%d", MaxLogEntries+24) {
		t.Errorf("newest entry is %q", s.LastLog().Command)
	}
}

func TestFinishLastLogWithResult(t *testing.T) {
	s := &State{HistoryIndex: -1}
	entry := s.AddLogEntry("true", "/tmp")
	entry.MarkStarted()

	s.AppendToLastLog("hi")
	s.FinishLastLogWithResult(0, true)

	last := s.LastLog()
	if last.Running {
		t.Error("entry still running after finish")
	}
	if !last.Exited || last.ExitCode != 0 {
		t.Errorf("outcome = exited:%v code:%d", last.Exited, last.ExitCode)
	}
	if len(last.Output) != 1 || last.Output[0] != "hi" {
		t.Errorf("output = %v", last.Output)
	}
	if last.Duration <= 0 {
		t.Error("duration should be tracked once started")
	}
}

func TestFinishKilled(t *testing.T) {
	s := &State{HistoryIndex: -1}
	s.AddLogEntry("sleep 100", "/tmp")
	s.FinishLastLogWithResult(0, false)

	if s.LastLog().Exited {
		t.Error("killed command must not report an exit code")
	}
}

func TestPushHistoryDeduplicates(t *testing.T) {
	s := &State{HistoryIndex: -1}

	if !s.PushHistory("ls") {
		t.Error("first push should append")
	}
	if s.PushHistory("ls") {
		t.Error("consecutive duplicate should be skipped")
	}
	if !s.PushHistory("pwd") {
		t.Error("different entry should append")
	}
	if !s.PushHistory("ls") {
		t.Error("non-consecutive repeat should append")
	}
	if len(s.History) != 3 {
		t.Errorf("history = %v", s.History)
	}
}

func TestThemeSelection(t *testing.T) {
	s := &State{HistoryIndex: -1}
	s.EnterThemeSelection([]string{"a", "b", "c"})

	if name, ok := s.SelectedTheme(); !ok || name != "a" {
		t.Fatalf("selected = %q %v", name, ok)
	}

	s.SelectionDown()
	s.SelectionDown()
	if name, _ := s.SelectedTheme(); name != "c" {
		t.Errorf("selected = %q, want c", name)
	}
	s.SelectionDown() // wraps
	if name, _ := s.SelectedTheme(); name != "a" {
		t.Errorf("selection should wrap, got %q", name)
	}

	s.SelectionUp() // stops at the top
	if name, _ := s.SelectedTheme(); name != "a" {
		t.Errorf("selection up at top should stay, got %q", name)
	}

	s.ExitThemeSelection()
	if _, ok := s.SelectedTheme(); ok {
		t.Error("selection should be inactive after exit")
	}
}

func TestNewLogEntryIDsUnique(t *testing.T) {
	a := NewLogEntry("x", "/", false)
	b := NewLogEntry("x", "/", false)
	if a.ID == b.ID || a.ID == "" {
		t.Errorf("entry IDs should be unique and non-empty: %q %q", a.ID, b.ID)
	}
}
