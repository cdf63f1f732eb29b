package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	entries := []string{"ls", "git status", "echo 'quoted arg'"}

	if err := Save(path, entries); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := Load(path)
	if len(got) != len(entries) {
		t.Fatalf("loaded %v, want %v", got, entries)
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Fatalf("loaded %v, want %v", got, entries)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if got := Load(filepath.Join(t.TempDir(), FileName)); got != nil {
		t.Errorf("missing file should load as empty, got %v", got)
	}
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Load(path); got != nil {
		t.Errorf("corrupt file should load as empty, got %v", got)
	}
}

func TestSaveAppliesLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	var entries []string
	for i := 0; i < Limit+10; i++ {
		entries = append(entries, fmt.Sprintf("cmd-%d", i))
	}
	if err := Save(path, entries); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := Load(path)
	if len(got) != Limit {
		t.Fatalf("saved %d entries, want %d", len(got), Limit)
	}
	if got[0] != "cmd-10" {
		t.Errorf("oldest entries should be trimmed, front is %q", got[0])
	}
	if got[len(got)-1] != fmt.Sprintf("cmd-%d", Limit+9) {
		t.Errorf("newest entry is %q", got[len(got)-1])
	}
}

func TestSaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := Save(path, nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("empty history should encode as an empty array, got %q", data)
	}
}
