// Package command implements Halo's asynchronous command execution:
// launching one external process at a time, draining its output streams
// into an ordered update feed, and cooperatively cancelling the
// in-flight command.
//
// The package is built from four pieces. The launcher starts a process
// with stdout and stderr captured as pipes. Two drainers, one per
// stream, convert the pipes into Line updates. The supervisor owns the
// process handle and races natural exit against cancellation, emitting
// exactly one Finished update per command. The Manager is the facade
// that wires the pieces together and holds the single cancellation
// slot for whichever command is currently active.
package command
