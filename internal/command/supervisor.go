package command

import (
	"context"
	"errors"
	"os/exec"
	"sync"
	"syscall"
)

// supervise owns the process handle and decides how the command ends:
// natural exit races against cancellation, and exactly one Finished
// update is emitted either way.
func (m *Manager) supervise(ctx context.Context, cancel context.CancelFunc, run *running, drained *sync.WaitGroup, updates chan<- Update) {
	defer cancel()

	// Wait must not run until both pipes have been fully read, so the
	// natural-exit arm doubles as a drain barrier: every Line update
	// reaches the channel before the Finished update does.
	exited := make(chan Update, 1)
	go func() {
		drained.Wait()
		exited <- waitOutcome(run.cmd.Wait())
	}()

	var done Update
	select {
	case done = <-exited:
	case <-ctx.Done():
		// Kill the whole process group. Failure means the process is
		// already gone, which is the goal anyway.
		if p := run.cmd.Process; p != nil {
			_ = syscall.Kill(-p.Pid, syscall.SIGKILL)
		}
		<-exited
		done = KilledUpdate()
	}

	select {
	case updates <- done:
	case <-m.closed:
	}
}

// waitOutcome translates a Wait result into the terminal update. A
// process reaped after a signal has no exit status to report.
func waitOutcome(err error) Update {
	if err == nil {
		return FinishedUpdate(0)
	}
	var xe *exec.ExitError
	if errors.As(err, &xe) {
		if ws, ok := xe.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return KilledUpdate()
		}
		return FinishedUpdate(xe.ExitCode())
	}
	// Wait itself failed; treat as an outcome with no status.
	return KilledUpdate()
}
