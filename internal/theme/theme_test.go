package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  tcell.Color
		ok    bool
	}{
		{"hex six", "#64B5FF", tcell.NewRGBColor(100, 181, 255), true},
		{"hex three", "#FFF", tcell.NewRGBColor(255, 255, 255), true},
		{"hex lower", "#ff5555", tcell.NewRGBColor(255, 85, 85), true},
		{"rgb", "rgb(10, 20, 30)", tcell.NewRGBColor(10, 20, 30), true},
		{"rgb tight", "rgb(0,0,0)", tcell.NewRGBColor(0, 0, 0), true},
		{"ansi", "ansi:9", tcell.PaletteColor(9), true},
		{"index", "index:240", tcell.PaletteColor(240), true},
		{"named", "red", tcell.ColorRed, true},
		{"named mixed case", "Blue", tcell.ColorBlue, true},
		{"grey alias", "grey", tcell.ColorGray, true},
		{"whitespace", "  #64B5FF  ", tcell.NewRGBColor(100, 181, 255), true},
		{"empty", "", 0, false},
		{"garbage", "not-a-color", 0, false},
		{"bad hex", "#ZZZZZZ", 0, false},
		{"rgb out of range", "rgb(999,0,0)", 0, false},
		{"ansi out of range", "ansi:300", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestByNameFallsBack(t *testing.T) {
	if ByName("no-such-theme") != Default() {
		t.Error("unknown theme name should fall back to the default")
	}
	if ByName("dracula") == Default() {
		t.Error("dracula should differ from the default theme")
	}
}

func TestFromStrings(t *testing.T) {
	base := Default()
	got := FromStrings(map[string]string{
		"primary": "#000000",
		"bg":      "bogus",
	}, base)

	if got.Primary != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("primary not overridden: %v", got.Primary)
	}
	if got.Bg != base.Bg {
		t.Errorf("unparsable color should keep the base value")
	}
	if got.Accent != base.Accent {
		t.Errorf("unset keys should keep the base value")
	}
}

func TestExtractAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "themes")

	if err := ExtractDefaults(dir, false); err != nil {
		t.Fatalf("extract: %v", err)
	}

	names := Available(dir)
	want := []string{"cyber-nord", "dracula", "gruvbox-dark", "one-dark"}
	if len(names) != len(want) {
		t.Fatalf("Available() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Available() = %v, want %v", names, want)
		}
	}

	loaded, err := LoadFile(dir, "dracula")
	if err != nil {
		t.Fatalf("load dracula: %v", err)
	}
	if loaded != ByName("dracula") {
		t.Errorf("file-loaded dracula should match the built-in palette")
	}
}

func TestExtractSkipsNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "mine.toml")
	if err := os.WriteFile(custom, []byte("primary = \"#123456\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ExtractDefaults(dir, false); err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got := Available(dir); len(got) != 1 || got[0] != "mine" {
		t.Errorf("extract without force should keep user themes, got %v", got)
	}

	if err := ExtractDefaults(dir, true); err != nil {
		t.Fatalf("forced extract: %v", err)
	}
	if _, err := os.Stat(custom); !os.IsNotExist(err) {
		t.Error("forced extract should replace the directory")
	}
	if got := Available(dir); len(got) != 4 {
		t.Errorf("forced extract should restore the defaults, got %v", got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(t.TempDir(), "nope"); err == nil {
		t.Error("expected an error for a missing theme file")
	}
}
