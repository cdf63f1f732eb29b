package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	want := &Session{LastCwd: "/home/someone/projects", ThemeName: "gruvbox-dark"}

	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected a session")
	}
	if got.LastCwd != want.LastCwd || got.ThemeName != want.ThemeName {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
}

func TestLoadMissing(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("missing session should not error: %v", err)
	}
	if got != nil {
		t.Errorf("missing session should be nil, got %+v", got)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(":\n\t- bad"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("malformed session should not error: %v", err)
	}
	if got != nil {
		t.Errorf("malformed session should be nil, got %+v", got)
	}
}

func TestThemeOptional(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := Save(path, &Session{LastCwd: "/tmp"}); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil || got == nil {
		t.Fatalf("load: %v %v", got, err)
	}
	if got.ThemeName != "" {
		t.Errorf("theme should be empty, got %q", got.ThemeName)
	}
}
