// Package history persists the command history as a JSON array, the
// format earlier Halo versions wrote, so existing history files keep
// working.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the history file name inside the Halo config directory.
const FileName = "history"

// Limit caps how many entries are persisted.
const Limit = 100

// Load reads history from path. A missing or unreadable file yields an
// empty history rather than an error; history is best-effort.
func Load(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return entries
}

// Save writes history to path, keeping at most Limit of the newest
// entries.
func Save(path string, entries []string) error {
	if excess := len(entries) - Limit; excess > 0 {
		entries = entries[excess:]
	}
	if entries == nil {
		entries = []string{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
