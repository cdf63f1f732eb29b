package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/halo-sh/halo/internal/command"
	"github.com/halo-sh/halo/internal/config"
	"github.com/halo-sh/halo/internal/git"
	"github.com/halo-sh/halo/internal/history"
	"github.com/halo-sh/halo/internal/plugin"
	"github.com/halo-sh/halo/internal/session"
	"github.com/halo-sh/halo/internal/state"
	"github.com/halo-sh/halo/internal/theme"
	"github.com/halo-sh/halo/internal/ui"
)

// themesSubdir is where theme files live under the config directory.
const themesSubdir = "themes"

// gitCacheTTL bounds how often the status bar re-queries git.
const gitCacheTTL = 500 * time.Millisecond

// Options configures a new App.
type Options struct {
	// ConfigDir overrides the default config directory. Empty means
	// the user's config directory plus "halo".
	ConfigDir string

	// Version is displayed in the status bar.
	Version string
}

// App is one interactive shell session.
type App struct {
	state    *state.State
	manager  *command.Manager
	updates  chan command.Update
	renderer *ui.Renderer
	gitCache *git.Cache
	watcher  *config.Watcher

	configDir string

	// Theme in effect before the picker opened, restored on cancel.
	prevTheme     theme.Theme
	prevThemeName string
}

// New builds a session: it prepares the config directory, loads config,
// history, session and the init script, and starts watching the config
// file for live reloads. Setup problems surface as log lines rather
// than failures; the shell always starts.
func New(opts Options) (*App, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := config.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		configDir = dir
	}

	st, err := state.New()
	if err != nil {
		return nil, err
	}

	a := &App{
		state:     st,
		manager:   command.NewManager(),
		updates:   make(chan command.Update, 64),
		renderer:  &ui.Renderer{Version: opts.Version},
		gitCache:  git.NewCache(gitCacheTTL),
		configDir: configDir,
	}

	if err := theme.ExtractDefaults(a.themesDir(), false); err != nil {
		st.AppendToLastLog(fmt.Sprintf("[error extracting themes: %v]", err))
	}

	// First run writes a starter config but leaves the defaults in
	// effect; the file is picked up on the next launch.
	if _, err := os.Stat(a.configPath()); err == nil {
		a.loadConfig()
	} else if err := config.WriteStarter(a.configPath()); err != nil {
		st.AppendToLastLog(fmt.Sprintf("[error writing starter config: %v]", err))
	}
	st.History = history.Load(a.historyPath())
	a.restoreSession()
	a.runInitScript()

	watcher, err := config.Watch(a.configPath())
	if err != nil {
		st.AppendToLastLog(fmt.Sprintf("[config watch unavailable: %v]", err))
	} else {
		a.watcher = watcher
	}

	return a, nil
}

// Close releases the command manager and the config watcher.
func (a *App) Close() {
	a.manager.Close()
	if a.watcher != nil {
		a.watcher.Close()
	}
}

// State exposes the session state, mainly for tests.
func (a *App) State() *state.State {
	return a.state
}

func (a *App) configPath() string {
	return filepath.Join(a.configDir, config.FileName)
}

func (a *App) historyPath() string {
	return filepath.Join(a.configDir, history.FileName)
}

func (a *App) sessionPath() string {
	return filepath.Join(a.configDir, session.FileName)
}

func (a *App) themesDir() string {
	return filepath.Join(a.configDir, themesSubdir)
}

func (a *App) initScriptPath() string {
	return filepath.Join(a.configDir, plugin.InitFileName)
}

// loadConfig reads halo.toml and applies it to the session. Parse
// errors become a log line and the previous settings stay in effect.
func (a *App) loadConfig() {
	cfg, err := config.Load(a.configPath())
	if err != nil {
		a.state.AppendToLastLog(fmt.Sprintf("[config error: %v]", err))
		return
	}
	if cfg == nil {
		return
	}

	switch {
	case cfg.ThemeName != "":
		a.setTheme(cfg.ThemeName)
	case cfg.ThemeColors != nil:
		a.state.Theme = theme.FromStrings(cfg.ThemeColors, a.state.Theme)
		a.state.ThemeName = "custom"
	}

	for name, expansion := range cfg.Aliases {
		a.state.Aliases[name] = expansion
	}
	if cfg.UI.Prompt != "" {
		a.state.UI.Prompt = cfg.UI.Prompt
	}
	if cfg.UI.ScrollbarThumb != "" {
		a.state.UI.ScrollbarThumb = cfg.UI.ScrollbarThumb
	}
	a.state.NeedsRedraw = true
}

// setTheme switches to the named theme, falling back to the built-in
// palette of that name when no theme file exists. The name sticks
// either way.
func (a *App) setTheme(name string) {
	if a.loadTheme(name) {
		return
	}
	a.state.Theme = theme.ByName(name)
	a.state.ThemeName = name
	a.state.NeedsRedraw = true
}

// loadTheme switches to the named theme file from the themes directory.
func (a *App) loadTheme(name string) bool {
	th, err := theme.LoadFile(a.themesDir(), name)
	if err != nil {
		return false
	}
	a.state.Theme = th
	a.state.ThemeName = name
	a.state.NeedsRedraw = true
	return true
}

// restoreSession brings back the previous working directory and theme.
func (a *App) restoreSession() {
	sess, err := session.Load(a.sessionPath())
	if err != nil || sess == nil {
		return
	}
	if sess.LastCwd != "" {
		if info, err := os.Stat(sess.LastCwd); err == nil && info.IsDir() {
			if os.Chdir(sess.LastCwd) == nil {
				a.state.Cwd = sess.LastCwd
			}
		}
	}
	if sess.ThemeName != "" {
		a.setTheme(sess.ThemeName)
	}
}

func (a *App) saveSession() {
	sess := &session.Session{LastCwd: a.state.Cwd, ThemeName: a.state.ThemeName}
	if err := session.Save(a.sessionPath(), sess); err != nil {
		a.state.AppendToLastLog(fmt.Sprintf("[session save error] %v", err))
	}
}

// runInitScript executes init.lua and folds its registrations into the
// session. Script errors are reported but never fatal.
func (a *App) runInitScript() {
	res, err := plugin.RunInit(a.initScriptPath())
	if err != nil {
		a.state.AppendToLastLog(fmt.Sprintf("[init.lua error: %v]", err))
		return
	}
	if res == nil {
		return
	}
	for name, expansion := range res.Aliases {
		a.state.Aliases[name] = expansion
	}
	if res.ThemeName != "" && !a.loadTheme(res.ThemeName) {
		a.state.AppendToLastLog(fmt.Sprintf("[error: theme '%s' not found]", res.ThemeName))
	}
	if res.Prompt != "" {
		a.state.UI.Prompt = res.Prompt
	}
}
