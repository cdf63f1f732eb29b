// Package ui renders the shell onto a tcell screen: the scrollable
// command log, the status bar, the bordered input line, and the
// completion and theme-picker popups. Layout is computed as styled
// lines first and painted cell by cell second, so the interesting
// logic stays independent of the terminal.
package ui
