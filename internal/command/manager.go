package command

import (
	"context"
	"sync"
)

// Manager runs at most one cancellable external command at a time.
//
// Manager is the facade over the launcher, the two stream drainers, and
// the supervisor. It holds a single cancellation slot: each Spawn
// replaces the slot, so an earlier still-running command keeps running
// to completion (and still emits its own Finished update) but can no
// longer be killed. Callers serialize command submission; the Manager
// does not enforce single-flight beyond holding one slot.
type Manager struct {
	mu     sync.Mutex
	cancel context.CancelFunc

	closed    chan struct{}
	closeOnce sync.Once
}

// NewManager creates a Manager.
func NewManager() *Manager {
	return &Manager{closed: make(chan struct{})}
}

// Spawn starts program with args in cwd and returns immediately.
//
// On success the two drainers and the supervisor run as independent
// goroutines sharing updates: zero or more Line updates per stream,
// then exactly one Finished update. Line updates preserve source order
// within a stream; stdout and stderr interleave arbitrarily. On failure
// a *SpawnError is returned, nothing is left running, and no updates
// are emitted.
func (m *Manager) Spawn(program string, args []string, cwd string, updates chan<- Update) error {
	run, err := launch(program, args, cwd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.mu.Lock()
	m.cancel = cancel
	m.mu.Unlock()

	var drained sync.WaitGroup
	drained.Add(2)
	go func() {
		defer drained.Done()
		m.drain(run.stdout, "", updates)
	}()
	go func() {
		defer drained.Done()
		m.drain(run.stderr, StderrPrefix, updates)
	}()
	go m.supervise(ctx, cancel, run, &drained, updates)

	return nil
}

// KillRunning requests cancellation of the currently tracked command.
// It is a no-op when nothing is running or when the command has already
// finished, and it never fails from the caller's point of view.
func (m *Manager) KillRunning() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Close kills any in-flight command and releases its drainers and
// supervisor once the consumer stops draining updates. Close is safe to
// call more than once.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.closed)
	})
	m.KillRunning()
}
