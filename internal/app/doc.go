// Package app ties the shell together: it owns the session state, the
// command manager, persistence, and the event loop that multiplexes
// terminal input, command output, and config changes.
package app
