package theme

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed themes/*.toml
var defaultThemes embed.FS

// fileColors mirrors the on-disk theme file layout.
type fileColors struct {
	Primary string `toml:"primary"`
	Accent  string `toml:"accent"`
	Warn    string `toml:"warn"`
	Error   string `toml:"error"`
	Success string `toml:"success"`
	Fg      string `toml:"fg"`
	Bg      string `toml:"bg"`
	Comment string `toml:"comment"`
}

func (f fileColors) strings() map[string]string {
	m := make(map[string]string, 8)
	for key, v := range map[string]string{
		"primary": f.Primary,
		"accent":  f.Accent,
		"warn":    f.Warn,
		"error":   f.Error,
		"success": f.Success,
		"fg":      f.Fg,
		"bg":      f.Bg,
		"comment": f.Comment,
	} {
		if v != "" {
			m[key] = v
		}
	}
	return m
}

// LoadFile loads a theme by name from dir, overlaying its colors onto
// the default palette.
func LoadFile(dir, name string) (Theme, error) {
	data, err := os.ReadFile(filepath.Join(dir, name+".toml"))
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", name, err)
	}

	var colors fileColors
	if err := toml.Unmarshal(data, &colors); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", name, err)
	}
	return FromStrings(colors.strings(), Default()), nil
}

// Available lists the theme names in dir, sorted.
func Available(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(entry.Name(), ".toml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ExtractDefaults writes the embedded default theme files into dir.
// Without force it is a no-op when dir already holds any entries; with
// force the directory is replaced wholesale.
func ExtractDefaults(dir string, force bool) error {
	if force {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("clear themes dir: %w", err)
		}
	} else if entries, err := os.ReadDir(dir); err == nil && len(entries) > 0 {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create themes dir: %w", err)
	}

	files, err := defaultThemes.ReadDir("themes")
	if err != nil {
		return fmt.Errorf("embedded themes: %w", err)
	}
	for _, f := range files {
		data, err := defaultThemes.ReadFile("themes/" + f.Name())
		if err != nil {
			return fmt.Errorf("embedded theme %s: %w", f.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(dir, f.Name()), data, 0o644); err != nil {
			return fmt.Errorf("write theme %s: %w", f.Name(), err)
		}
	}
	return nil
}
