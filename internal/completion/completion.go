package completion

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// pathFilter narrows which directory entries qualify as suggestions.
type pathFilter int

const (
	filterAll pathFilter = iota
	filterDirectoriesOnly
)

// Builtins are commands handled by the shell itself rather than PATH.
var Builtins = []string{"cd", "pwd", "exit"}

// State tracks an in-progress completion session.
type State struct {
	Active      bool
	Suggestions []string
	Index       int
}

// New returns an inactive completion state.
func New() *State {
	return &State{}
}

// Start computes suggestions for the given input line and activates the
// menu. If nothing matches the state stays inactive.
func (s *State) Start(input, cwd string) {
	s.Active = true
	s.Index = 0
	s.Suggestions = generate(input, cwd)
	if len(s.Suggestions) == 0 {
		s.Active = false
	}
}

// Stop deactivates the menu and clears suggestions.
func (s *State) Stop() {
	s.Active = false
	s.Suggestions = nil
}

// Next advances the selection, wrapping at the end.
func (s *State) Next() {
	if len(s.Suggestions) > 0 {
		s.Index = (s.Index + 1) % len(s.Suggestions)
	}
}

// Prev moves the selection back, wrapping at the start.
func (s *State) Prev() {
	if len(s.Suggestions) > 0 {
		s.Index = (s.Index + len(s.Suggestions) - 1) % len(s.Suggestions)
	}
}

// Apply replaces the word under completion with the selected suggestion
// and returns the new input line plus the cursor position. Directories
// get no trailing space so the user can keep descending.
func (s *State) Apply(input string) (string, int, bool) {
	if s.Index >= len(s.Suggestions) {
		return "", 0, false
	}
	suggestion := s.Suggestions[s.Index]

	wordStart := 0
	if i := strings.LastIndexFunc(input, unicode.IsSpace); i >= 0 {
		wordStart = i + 1
	}

	newInput := input[:wordStart] + suggestion
	if !strings.HasSuffix(suggestion, "/") {
		newInput += " "
	}
	return newInput, len([]rune(newInput)), true
}

func generate(input, cwd string) []string {
	words := strings.Fields(input)

	token := ""
	if !strings.HasSuffix(input, " ") && len(words) > 0 {
		token = words[len(words)-1]
	}

	completingCommand := len(words) == 0 ||
		(len(words) == 1 && !strings.HasSuffix(input, " "))
	if completingCommand {
		return suggestExecutables(token)
	}

	filter := filterAll
	if words[0] == "cd" {
		filter = filterDirectoriesOnly
	}
	return suggestPaths(token, cwd, filter)
}

// suggestExecutables scans PATH for executable files whose name starts
// with the partial command, merged with the builtins.
func suggestExecutables(partial string) []string {
	seen := make(map[string]struct{})
	for _, cmd := range Builtins {
		if strings.HasPrefix(cmd, partial) {
			seen[cmd] = struct{}{}
		}
	}

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasPrefix(name, partial) {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0 {
				seen[name] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// suggestPaths completes the partial path relative to cwd, expanding a
// leading tilde to the home directory. Suggestions keep the user's
// original base so accepting one slots back into the input verbatim.
func suggestPaths(partial, cwd string, filter pathFilter) []string {
	expanded := partial
	if strings.HasPrefix(partial, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			expanded = home + partial[1:]
		}
	}

	var searchDir, partialName, base string
	switch {
	case partial == "":
		searchDir = cwd
	case strings.HasSuffix(partial, "/") || partial == "~":
		searchDir = expanded
		base = partial
		if partial == "~" {
			base = "~/"
		}
	default:
		searchDir = filepath.Dir(expanded)
		partialName = filepath.Base(expanded)
		base = partial[:len(partial)-len(partialName)]
	}
	if !filepath.IsAbs(searchDir) {
		searchDir = filepath.Join(cwd, searchDir)
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return nil
	}

	var results []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, partialName) {
			continue
		}
		isDir := entry.IsDir()
		if filter == filterDirectoriesOnly && !isDir {
			continue
		}
		suggestion := base + name
		if isDir {
			suggestion += "/"
		}
		results = append(results, suggestion)
	}
	sort.Strings(results)
	return results
}
