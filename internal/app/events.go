package app

import (
	"github.com/gdamore/tcell/v2"
)

// scrollPage is how many entries PageUp/PageDown move at once.
const scrollPage = 5

// HandleEvent dispatches one terminal event.
func (a *App) HandleEvent(ev tcell.Event) {
	a.state.NeedsRedraw = true

	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	st := a.state

	if ev.Key() == tcell.KeyCtrlC {
		switch {
		case st.Completion.Active:
			st.Completion.Stop()
		case st.Selection.Active:
			a.cancelThemeSelection()
		default:
			a.killCommand()
		}
		return
	}

	if st.Selection.Active {
		a.handleSelectionKey(ev)
		return
	}

	if ev.Key() == tcell.KeyRune || isBackspace(ev.Key()) {
		st.ExitPreview()
	}

	if st.Completion.Active {
		a.handleCompletionKey(ev)
		return
	}
	a.handleNormalKey(ev)
}

func (a *App) handleSelectionKey(ev *tcell.EventKey) {
	st := a.state

	switch ev.Key() {
	case tcell.KeyUp:
		st.SelectionUp()
		a.previewSelectedTheme()
	case tcell.KeyDown:
		st.SelectionDown()
		a.previewSelectedTheme()
	case tcell.KeyEnter:
		a.confirmThemeSelection()
	case tcell.KeyEscape:
		a.cancelThemeSelection()
	}
}

func (a *App) previewSelectedTheme() {
	if name, ok := a.state.SelectedTheme(); ok {
		a.loadTheme(name)
	}
}

func (a *App) confirmThemeSelection() {
	st := a.state
	name, ok := st.SelectedTheme()
	st.ExitThemeSelection()
	if !ok {
		return
	}
	if a.loadTheme(name) {
		a.saveSession()
		st.AppendToLastLog("[theme set to " + name + "]")
	}
}

func (a *App) cancelThemeSelection() {
	st := a.state
	st.Theme = a.prevTheme
	st.ThemeName = a.prevThemeName
	st.ExitThemeSelection()
}

func (a *App) handleCompletionKey(ev *tcell.EventKey) {
	st := a.state

	switch ev.Key() {
	case tcell.KeyTab, tcell.KeyDown:
		st.Completion.Next()
	case tcell.KeyBacktab, tcell.KeyUp:
		st.Completion.Prev()
	case tcell.KeyEnter:
		if input, cursor, ok := st.Completion.Apply(st.InputString()); ok {
			st.SetInput(input)
			st.Cursor = cursor
		}
		st.Completion.Stop()
	case tcell.KeyEscape:
		st.Completion.Stop()
	default:
		st.Completion.Stop()
		a.handleNormalKey(ev)
	}
}

func (a *App) handleNormalKey(ev *tcell.EventKey) {
	st := a.state
	maxScroll := len(st.Log)

	switch {
	case ev.Key() == tcell.KeyRune:
		st.InsertRune(ev.Rune())
	case isBackspace(ev.Key()):
		st.Backspace()
	case ev.Key() == tcell.KeyLeft:
		st.MoveCursorLeft()
	case ev.Key() == tcell.KeyRight:
		st.MoveCursorRight()
	case ev.Key() == tcell.KeyUp:
		a.historyUp()
	case ev.Key() == tcell.KeyDown:
		a.historyDown()
	case ev.Key() == tcell.KeyEnter:
		a.Submit()
	case ev.Key() == tcell.KeyTab:
		st.Completion.Start(st.InputString(), st.Cwd)
	case ev.Key() == tcell.KeyPgUp:
		st.ScrollOffset = min(st.ScrollOffset+scrollPage, maxScroll)
	case ev.Key() == tcell.KeyPgDn:
		st.ScrollOffset = max(st.ScrollOffset-scrollPage, 0)
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	st := a.state

	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		st.ScrollOffset = min(st.ScrollOffset+1, len(st.Log))
	case ev.Buttons()&tcell.WheelDown != 0:
		st.ScrollOffset = max(st.ScrollOffset-1, 0)
	}
}

// historyUp walks back through history, starting from the newest
// entry. Disabled while previewing the log.
func (a *App) historyUp() {
	st := a.state
	if st.ScrollOffset > 0 || len(st.History) == 0 {
		return
	}
	switch {
	case st.HistoryIndex < 0:
		st.HistoryIndex = len(st.History) - 1
	case st.HistoryIndex > 0:
		st.HistoryIndex--
	}
	st.SetInput(st.History[st.HistoryIndex])
}

// historyDown walks forward, clearing the input once past the newest
// entry.
func (a *App) historyDown() {
	st := a.state
	if st.ScrollOffset > 0 || len(st.History) == 0 {
		return
	}
	if st.HistoryIndex >= 0 && st.HistoryIndex < len(st.History)-1 {
		st.HistoryIndex++
		st.SetInput(st.History[st.HistoryIndex])
		return
	}
	st.HistoryIndex = -1
	st.ClearInput()
}

func (a *App) killCommand() {
	a.manager.KillRunning()
	a.state.AppendToLastLog("[Process killed by user]")
}

func isBackspace(k tcell.Key) bool {
	return k == tcell.KeyBackspace || k == tcell.KeyBackspace2
}
