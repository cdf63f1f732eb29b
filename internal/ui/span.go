package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/halo-sh/halo/internal/command"
	"github.com/halo-sh/halo/internal/state"
	"github.com/halo-sh/halo/internal/theme"
)

// Span is a run of text drawn with one style.
type Span struct {
	Text  string
	Style tcell.Style
}

// Line is a sequence of spans forming one screen row.
type Line []Span

// Width returns the rendered cell width of the line.
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += uniseg.StringWidth(s.Text)
	}
	return w
}

// Plain returns the line's text without styling, for tests and logs.
func (l Line) Plain() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// runningMarker is appended to a log block while its command runs.
const runningMarker = "⚙ Running..."

// BuildLogBlock lays out one log entry as styled lines: a header with
// the prompt and command, the captured output, and a footer, followed
// by a blank spacer row. Stderr lines lose their origin prefix and are
// styled with the error color instead.
func BuildLogBlock(entry *state.LogEntry, th theme.Theme, prompt string) []Line {
	comment := tcell.StyleDefault.Foreground(th.Comment).Background(th.Bg)
	fg := tcell.StyleDefault.Foreground(th.Fg).Background(th.Bg)

	if entry.Empty() && !entry.Running {
		return []Line{
			{
				{Text: "╭─ ", Style: comment},
				{Text: prompt, Style: tcell.StyleDefault.Foreground(th.Primary).Background(th.Bg)},
			},
			{},
		}
	}

	lines := []Line{
		{
			{Text: "╭─ ", Style: comment},
			{Text: prompt + " ", Style: tcell.StyleDefault.Foreground(th.Accent).Background(th.Bg)},
			{Text: entry.Command, Style: fg.Bold(true)},
		},
	}

	for _, out := range entry.Output {
		content := Span{Text: out, Style: fg}
		if rest, ok := strings.CutPrefix(out, command.StderrPrefix); ok {
			content = Span{
				Text:  rest,
				Style: tcell.StyleDefault.Foreground(th.Error).Background(th.Bg).Italic(true),
			}
		}
		lines = append(lines, Line{{Text: "│  ", Style: comment}, content})
	}

	if entry.Running {
		lines = append(lines, Line{
			{Text: "│  ", Style: comment},
			{Text: runningMarker, Style: tcell.StyleDefault.Foreground(th.Warn).Background(th.Bg).Blink(true)},
		})
	}

	lines = append(lines, Line{{Text: "╰─", Style: comment}}, Line{})
	return lines
}

// Recolor returns a copy of the lines with every span's foreground
// replaced, used to highlight the previewed log block.
func Recolor(lines []Line, fg tcell.Color) []Line {
	out := make([]Line, len(lines))
	for i, line := range lines {
		out[i] = make(Line, len(line))
		for j, span := range line {
			out[i][j] = Span{Text: span.Text, Style: span.Style.Foreground(fg)}
		}
	}
	return out
}

// PreviewIndex returns the log index highlighted while scrolling, or
// -1 when the view is pinned to the bottom.
func PreviewIndex(logLen, scrollOffset int) int {
	if scrollOffset <= 0 {
		return -1
	}
	i := logLen - scrollOffset
	if i < 0 {
		return 0
	}
	return i
}
