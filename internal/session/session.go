// Package session persists the small bits of state restored between
// runs: the last working directory and the last selected theme.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the session file name inside the Halo config directory.
const FileName = "session.yaml"

// Session is the persisted end-of-run state.
type Session struct {
	LastCwd   string `yaml:"last_cwd"`
	ThemeName string `yaml:"last_theme,omitempty"`
}

// Load reads the session from path. A missing or malformed file yields
// (nil, nil); restoring a session is always optional.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, nil
	}
	return &s, nil
}

// Save writes the session to path.
func Save(path string, s *Session) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
