package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/halo-sh/halo/internal/history"
	"github.com/halo-sh/halo/internal/shellwords"
	"github.com/halo-sh/halo/internal/theme"
)

// Submit runs the current input line: builtins are handled in place,
// anything else is expanded through aliases and handed to the command
// manager.
func (a *App) Submit() {
	st := a.state
	input := strings.TrimSpace(st.InputString())
	st.ExitPreview()

	if input == "" {
		last := st.LastLog()
		if last == nil || !last.Empty() || last.Running {
			entry := st.AddLogEntry("", st.Cwd)
			entry.Running = false
		}
		return
	}

	st.AddLogEntry(input, st.Cwd)
	if st.PushHistory(input) {
		if err := history.Save(a.historyPath(), st.History); err != nil {
			st.AppendToLastLog(fmt.Sprintf("[history save error] %v", err))
		}
	}
	st.ClearInput()
	st.HistoryIndex = -1

	parts, err := shellwords.Split(input)
	if err != nil || len(parts) == 0 {
		st.AppendToLastLog("Error: Mismatched quotes.")
		st.FinishLastLog()
		return
	}

	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "exit":
		st.ShouldQuit = true
	case ":reload":
		a.loadConfig()
		st.AppendToLastLog("[config reloaded]")
	case "theme":
		a.themeBuiltin(args)
	case "alias":
		a.aliasBuiltin(args)
	case "cd":
		a.cdBuiltin(args)
	case "pwd":
		st.AppendToLastLog(st.Cwd)
	default:
		cmd, args = a.expandAlias(cmd, args)
		if last := st.LastLog(); last != nil {
			last.MarkStarted()
		}
		if err := a.manager.Spawn(cmd, args, st.Cwd, a.updates); err != nil {
			st.AppendToLastLog(fmt.Sprintf("%s: %v", cmd, err))
			st.FinishLastLog()
		}
		return
	}
	st.FinishLastLog()
}

// expandAlias rewrites the command through the alias table, re-splitting
// the expansion so multi-word aliases work.
func (a *App) expandAlias(cmd string, args []string) (string, []string) {
	expansion, ok := a.state.Aliases[cmd]
	if !ok {
		return cmd, args
	}

	combined := expansion
	if len(args) > 0 {
		combined += " " + strings.Join(args, " ")
	}
	parts, err := shellwords.Split(combined)
	if err != nil || len(parts) == 0 {
		return cmd, args
	}
	return parts[0], parts[1:]
}

func (a *App) themeBuiltin(args []string) {
	st := a.state

	if len(args) == 0 {
		st.AppendToLastLog("theme: " + st.ThemeName)
		return
	}

	switch args[0] {
	case "set":
		if len(args) < 2 {
			a.enterThemeSelection()
			return
		}
		name := args[1]
		if a.loadTheme(name) {
			a.saveSession()
			st.AppendToLastLog(fmt.Sprintf("[theme set to %s]", name))
		} else {
			st.AppendToLastLog(fmt.Sprintf("[error: theme '%s' not found]", name))
		}
	case "list":
		st.AppendToLastLog("Available themes:")
		for _, name := range theme.Available(a.themesDir()) {
			st.AppendToLastLog("  " + name)
		}
	case "refresh":
		if err := theme.ExtractDefaults(a.themesDir(), true); err != nil {
			st.AppendToLastLog(fmt.Sprintf("[error: failed to refresh themes: %v]", err))
		} else {
			st.AppendToLastLog("[themes refreshed successfully]")
		}
	default:
		st.AppendToLastLog("usage: theme [set <name> | list | refresh]")
	}
}

func (a *App) enterThemeSelection() {
	names := theme.Available(a.themesDir())
	if len(names) == 0 {
		a.state.AppendToLastLog("[error: no themes available]")
		return
	}
	a.prevTheme = a.state.Theme
	a.prevThemeName = a.state.ThemeName
	a.state.EnterThemeSelection(names)
	a.state.AppendToLastLog("Theme selection mode - use ↑/↓ to navigate, Enter to select, Esc to cancel")
}

func (a *App) aliasBuiltin(args []string) {
	st := a.state

	if len(args) > 0 {
		st.AppendToLastLog("usage: alias  # lists aliases")
		return
	}
	if len(st.Aliases) == 0 {
		st.AppendToLastLog("(no aliases)")
		return
	}

	names := make([]string, 0, len(st.Aliases))
	for name := range st.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		st.AppendToLastLog(fmt.Sprintf("alias %s='%s'", name, st.Aliases[name]))
	}
}

func (a *App) cdBuiltin(args []string) {
	target := "~"
	if len(args) > 0 {
		target = args[0]
	}
	dir, err := expandCdTarget(target, a.state.Cwd)
	if err == nil {
		err = os.Chdir(dir)
	}
	if err != nil {
		a.state.AppendToLastLog(fmt.Sprintf("cd: %v", err))
		return
	}
	if cwd, err := os.Getwd(); err == nil {
		a.state.Cwd = cwd
	}
	a.gitCache.Invalidate()
	a.saveSession()
}

// expandCdTarget resolves ~ and relative paths against cwd.
func expandCdTarget(target, cwd string) (string, error) {
	if target == "~" || strings.HasPrefix(target, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.New("home directory not found")
		}
		return filepath.Join(home, strings.TrimPrefix(target, "~")), nil
	}
	if filepath.IsAbs(target) {
		return target, nil
	}
	return filepath.Join(cwd, target), nil
}
