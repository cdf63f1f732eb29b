package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file name inside the Halo config directory.
const FileName = "halo.toml"

// UI holds the configurable UI glyphs.
type UI struct {
	Prompt         string
	ScrollbarThumb string
}

// Config is the parsed halo.toml.
type Config struct {
	// ThemeName is set when the config selects a named theme
	// (theme = "dracula").
	ThemeName string

	// ThemeColors is set when the config defines colors inline under a
	// [theme] table. Mutually exclusive with ThemeName.
	ThemeColors map[string]string

	// Aliases maps alias names to their expansions.
	Aliases map[string]string

	// UI holds glyph overrides; empty fields mean "keep the default".
	UI UI
}

// ParseError reports an unreadable or malformed config file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DefaultDir returns the Halo config directory, creating it if needed.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	dir := filepath.Join(base, "halo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}

// Load reads and parses the config file at path. A missing file yields
// (nil, nil): the caller keeps its defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	cfg := &Config{Aliases: make(map[string]string)}

	switch theme := raw["theme"].(type) {
	case string:
		cfg.ThemeName = theme
	case map[string]any:
		cfg.ThemeColors = stringTable(theme)
	}

	if aliases, ok := raw["aliases"].(map[string]any); ok {
		cfg.Aliases = stringTable(aliases)
	}

	if ui, ok := raw["ui"].(map[string]any); ok {
		glyphs := stringTable(ui)
		cfg.UI.Prompt = glyphs["prompt"]
		cfg.UI.ScrollbarThumb = glyphs["scrollbar_thumb"]
	}

	return cfg, nil
}

// stringTable extracts the string-valued entries of a decoded table.
func stringTable(src map[string]any) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// starterConfig is written on first run so users have something to
// edit.
const starterConfig = `# Halo config - created on first run
# Set a named theme or define [theme] colors.
# Built-in names: cyber-nord, dracula, gruvbox-dark, one-dark

# theme = "cyber-nord"

[theme]
primary = "#64B5FF"
accent  = "#FF40A0"
warn    = "#E7D98C"
error   = "#FF5555"
fg      = "#DDE3EA"
bg      = "#171A22"
comment = "#5A6473"

[ui]
scrollbar_thumb = "█"
prompt = "❯"

# [aliases]
# ll = "ls -alF"
# gs = "git status"
`

// WriteStarter writes the starter config to path unless a file already
// exists there.
func WriteStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("write starter config: %w", err)
	}
	return nil
}
