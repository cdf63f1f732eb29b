// Package config loads Halo's halo.toml: the theme selection (a named
// theme or an inline color table), command aliases, and UI glyphs. It
// also provides a file watcher so edits apply without restarting.
package config
