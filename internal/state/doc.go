// Package state holds the mutable interaction state of a Halo session:
// the input line, the command log, history navigation, scroll position,
// aliases, and the active theme. It is plain state mutation; all
// concurrency lives in the command package, and the app goroutine is
// the only writer.
package state
