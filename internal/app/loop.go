package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/halo-sh/halo/internal/command"
)

// tickInterval drives periodic refreshes of the git status bar.
const tickInterval = 100 * time.Millisecond

// Run drives the session until the user exits. It multiplexes terminal
// events, command output, config file changes, and a periodic tick,
// redrawing only when something changed.
func (a *App) Run(screen tcell.Screen) error {
	st := a.state

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	var configChanged <-chan struct{}
	if a.watcher != nil {
		configChanged = a.watcher.Changed
	}

	a.refreshGit()
	for !st.ShouldQuit {
		if st.NeedsRedraw {
			a.renderer.Draw(screen, st)
			screen.Show()
			st.NeedsRedraw = false
		}

		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.HandleEvent(ev)
		case update := <-a.updates:
			a.applyUpdate(update)
			a.drainUpdates()
		case <-configChanged:
			a.loadConfig()
			st.AppendToLastLog("[config reloaded]")
		case <-ticker.C:
			a.refreshGit()
		}
	}
	return nil
}

// applyUpdate folds one command update into the newest log entry.
func (a *App) applyUpdate(update command.Update) {
	switch update.Kind {
	case command.UpdateLine:
		a.state.AppendToLastLog(update.Text)
	case command.UpdateFinished:
		a.state.FinishLastLogWithResult(update.ExitCode, update.Exited)
		a.gitCache.Invalidate()
	}
	a.state.NeedsRedraw = true
}

// drainUpdates empties whatever else is already queued so a chatty
// command becomes one redraw, not one per line.
func (a *App) drainUpdates() {
	for {
		select {
		case update := <-a.updates:
			a.applyUpdate(update)
		default:
			return
		}
	}
}

// refreshGit updates the status bar branch, marking dirty work trees
// with an asterisk.
func (a *App) refreshGit() {
	branch := ""
	if status := a.gitCache.Status(a.state.Cwd); status != nil {
		branch = status.Branch
		if status.Dirty {
			branch += "*"
		} else {
			branch += " ✔"
		}
	}
	if branch != a.state.GitBranch {
		a.state.GitBranch = branch
		a.state.NeedsRedraw = true
	}
}
