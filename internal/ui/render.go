package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/halo-sh/halo/internal/state"
)

const (
	logTitle     = " [[[ CONSOLE LOG ]]] "
	previewTitle = " [[[ HISTORY PREVIEW ]]] "
	brand        = "[[[ HALO ]]]"
)

// Renderer draws the whole screen from session state.
type Renderer struct {
	// Version is shown next to the brand in the status bar.
	Version string
}

// Draw paints one frame. The caller is responsible for screen.Show.
func (r *Renderer) Draw(screen tcell.Screen, st *state.State) {
	w, h := screen.Size()
	th := st.Theme
	bg := tcell.StyleDefault.Foreground(th.Fg).Background(th.Bg)

	fillRect(screen, 0, 0, w, h, bg)

	if w < 4 || h < 7 {
		return
	}

	// One-cell margin all around, then from the bottom up: a three-row
	// input box, a one-row status bar, and the log takes the rest.
	left, right := 1, w-2
	inputTop := h - 4
	statusRow := h - 5
	logTop, logBottom := 1, h-6

	r.drawLog(screen, st, left, right, logTop, logBottom)
	r.drawStatusBar(screen, st, left, right, statusRow)
	r.drawInput(screen, st, left, right, inputTop)

	if st.Selection.Active {
		screen.HideCursor()
		r.drawThemePicker(screen, st, w, h)
		return
	}

	if st.Completion.Active {
		r.drawCompletionPopup(screen, st, left, right, inputTop)
	}

	if st.ScrollOffset == 0 {
		promptWidth := uniseg.StringWidth(st.UI.Prompt) + 2
		cursorX := left + 1 + promptWidth + uniseg.StringWidth(string(st.Input[:st.Cursor]))
		screen.ShowCursor(cursorX, inputTop+1)
	} else {
		screen.HideCursor()
	}
}

// drawLog renders log blocks bottom-up, newest at the bottom, clipping
// whole blocks that no longer fit. The previewed block, when any, is
// recolored with the accent.
func (r *Renderer) drawLog(screen tcell.Screen, st *state.State, left, right, top, bottom int) {
	th := st.Theme
	comment := tcell.StyleDefault.Foreground(th.Comment).Background(th.Bg)

	for x := left; x <= right; x++ {
		screen.SetContent(x, top, '─', nil, comment)
	}
	drawLine(screen, left+1, top, right-left-1, Line{
		{Text: logTitle, Style: tcell.StyleDefault.Foreground(th.Primary).Background(th.Bg).Bold(true)},
	})

	preview := PreviewIndex(len(st.Log), st.ScrollOffset)
	y := bottom + 1
	for i := len(st.Log) - 1; i >= 0; i-- {
		block := BuildLogBlock(st.Log[i], th, st.UI.Prompt)
		if i == preview {
			block = Recolor(block, th.Accent)
		}
		if y-len(block) < top+1 {
			break
		}
		y -= len(block)
		for row, line := range block {
			drawLine(screen, left, y+row, right-left+1, line)
		}
	}

	if st.ScrollOffset > 0 {
		r.drawScrollbar(screen, st, right, top+1, bottom)
	}
}

// drawScrollbar marks the preview position along the right edge.
func (r *Renderer) drawScrollbar(screen tcell.Screen, st *state.State, x, top, bottom int) {
	height := bottom - top + 1
	if height < 1 || len(st.Log) == 0 {
		return
	}
	track := tcell.StyleDefault.Foreground(st.Theme.Comment).Background(st.Theme.Bg)
	for y := top; y <= bottom; y++ {
		screen.SetContent(x, y, '░', nil, track)
	}
	pos := bottom - (st.ScrollOffset-1)*(height-1)/len(st.Log)
	thumb := []rune(st.UI.ScrollbarThumb)
	if len(thumb) > 0 {
		screen.SetContent(x, pos, thumb[0], nil,
			tcell.StyleDefault.Foreground(st.Theme.Primary).Background(st.Theme.Bg))
	}
}

func (r *Renderer) drawStatusBar(screen tcell.Screen, st *state.State, left, right, y int) {
	th := st.Theme

	leftLine := Line{
		{Text: brand, Style: tcell.StyleDefault.Foreground(th.Bg).Background(th.Primary).Bold(true)},
		{Text: " " + r.Version + " ", Style: tcell.StyleDefault.Foreground(th.Accent).Background(th.Bg)},
	}
	drawLine(screen, left, y, right-left+1, leftLine)

	rightLine := Line{}
	if st.GitBranch != "" {
		rightLine = append(rightLine, Span{
			Text:  "⎇ " + st.GitBranch + "  ",
			Style: tcell.StyleDefault.Foreground(th.Success).Background(th.Bg),
		})
	}
	rightLine = append(rightLine, Span{
		Text:  "📁 " + st.Cwd + " ",
		Style: tcell.StyleDefault.Foreground(th.Fg).Background(th.Bg),
	})
	if x := right - rightLine.Width() + 1; x > left+leftLine.Width() {
		drawLine(screen, x, y, right-x+1, rightLine)
	}
}

// drawInput renders the bordered input box. While scrolled it turns
// into a history preview of the selected log entry instead.
func (r *Renderer) drawInput(screen tcell.Screen, st *state.State, left, right, top int) {
	th := st.Theme

	var content Line
	var border tcell.Style
	var title Span

	if i := PreviewIndex(len(st.Log), st.ScrollOffset); i >= 0 {
		cmd := ""
		if i < len(st.Log) {
			cmd = st.Log[i].Command
		}
		accent := tcell.StyleDefault.Foreground(th.Accent).Background(th.Bg)
		content = Line{
			{Text: st.UI.Prompt + "  ", Style: accent.Bold(true)},
			{Text: cmd, Style: accent.Bold(true)},
		}
		border = accent
		title = Span{Text: previewTitle, Style: tcell.StyleDefault.Foreground(th.Primary).Background(th.Bg).Bold(true)}
	} else {
		content = Line{
			{Text: st.UI.Prompt + "  ", Style: tcell.StyleDefault.Foreground(th.Primary).Background(th.Bg).Bold(true)},
			{Text: st.InputString(), Style: tcell.StyleDefault.Foreground(th.Fg).Background(th.Bg)},
		}
		border = tcell.StyleDefault.Foreground(th.Primary).Background(th.Bg)
		title = Span{
			Text:  fmt.Sprintf("  [[[ %s ]]]  ", st.Username),
			Style: tcell.StyleDefault.Foreground(th.Accent).Background(th.Bg).Bold(true),
		}
	}

	drawRoundedBox(screen, left, top, right, top+2, border, title)
	drawLine(screen, left+1, top+1, right-left-1, content)
}

func (r *Renderer) drawCompletionPopup(screen tcell.Screen, st *state.State, left, right, inputTop int) {
	th := st.Theme
	suggestions := st.Completion.Suggestions
	if len(suggestions) == 0 {
		return
	}

	height := len(suggestions) + 2
	if height > 10 {
		height = 10
	}
	width := right - left + 1
	if width > 80 {
		width = 80
	}
	top := inputTop - height
	if top < 0 {
		top = 0
	}

	border := tcell.StyleDefault.Foreground(th.Warn).Background(th.Bg)
	fillRect(screen, left, top, width, height, tcell.StyleDefault.Background(th.Bg))
	drawDoubleBox(screen, left, top, left+width-1, top+height-1, border,
		Span{Text: " Suggestions ", Style: border})

	visible := height - 2
	first := 0
	if st.Completion.Index >= visible {
		first = st.Completion.Index - visible + 1
	}
	for row := 0; row < visible && first+row < len(suggestions); row++ {
		s := suggestions[first+row]
		icon := "📄"
		if len(s) > 0 && s[len(s)-1] == '/' {
			icon = "📁"
		}
		line := Line{{
			Text:  "  " + icon + " " + s,
			Style: tcell.StyleDefault.Foreground(th.Fg).Background(th.Bg),
		}}
		if first+row == st.Completion.Index {
			line = Line{{
				Text:  "▶ " + icon + " " + s,
				Style: tcell.StyleDefault.Foreground(th.Bg).Background(th.Primary).Bold(true),
			}}
		}
		drawLine(screen, left+1, top+1+row, width-2, line)
	}
}

// drawThemePicker renders the centered theme selection list.
func (r *Renderer) drawThemePicker(screen tcell.Screen, st *state.State, w, h int) {
	th := st.Theme
	names := st.Selection.Names
	if len(names) == 0 {
		return
	}

	height := len(names) + 2
	if height > h-2 {
		height = h - 2
	}
	width := 30
	for _, n := range names {
		if uniseg.StringWidth(n)+6 > width {
			width = uniseg.StringWidth(n) + 6
		}
	}
	if width > w-2 {
		width = w - 2
	}
	left := (w - width) / 2
	top := (h - height) / 2

	border := tcell.StyleDefault.Foreground(th.Primary).Background(th.Bg)
	fillRect(screen, left, top, width, height, tcell.StyleDefault.Background(th.Bg))
	drawRoundedBox(screen, left, top, left+width-1, top+height-1, border,
		Span{Text: " Select Theme ", Style: border.Bold(true)})

	visible := height - 2
	first := 0
	if st.Selection.Index >= visible {
		first = st.Selection.Index - visible + 1
	}
	for row := 0; row < visible && first+row < len(names); row++ {
		name := names[first+row]
		line := Line{{
			Text:  "  " + name,
			Style: tcell.StyleDefault.Foreground(th.Fg).Background(th.Bg),
		}}
		if first+row == st.Selection.Index {
			line = Line{{
				Text:  "▶ " + name,
				Style: tcell.StyleDefault.Foreground(th.Bg).Background(th.Accent).Bold(true),
			}}
		}
		drawLine(screen, left+1, top+1+row, width-2, line)
	}
}

// drawLine paints spans starting at x, clipping at maxWidth cells.
func drawLine(screen tcell.Screen, x, y, maxWidth int, line Line) {
	col := x
	limit := x + maxWidth
	for _, span := range line {
		for _, cluster := range clusters(span.Text) {
			cw := uniseg.StringWidth(cluster)
			if col+cw > limit {
				return
			}
			runes := []rune(cluster)
			screen.SetContent(col, y, runes[0], runes[1:], span.Style)
			col += cw
		}
	}
}

func clusters(s string) []string {
	var out []string
	state := -1
	for len(s) > 0 {
		var c string
		c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, c)
	}
	return out
}

func fillRect(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func drawRoundedBox(screen tcell.Screen, x1, y1, x2, y2 int, style tcell.Style, title Span) {
	drawBox(screen, x1, y1, x2, y2, style, title, '╭', '╮', '╰', '╯', '─', '│')
}

func drawDoubleBox(screen tcell.Screen, x1, y1, x2, y2 int, style tcell.Style, title Span) {
	drawBox(screen, x1, y1, x2, y2, style, title, '╔', '╗', '╚', '╝', '═', '║')
}

func drawBox(screen tcell.Screen, x1, y1, x2, y2 int, style tcell.Style, title Span, tl, tr, bl, br, hor, ver rune) {
	for x := x1 + 1; x < x2; x++ {
		screen.SetContent(x, y1, hor, nil, style)
		screen.SetContent(x, y2, hor, nil, style)
	}
	for y := y1 + 1; y < y2; y++ {
		screen.SetContent(x1, y, ver, nil, style)
		screen.SetContent(x2, y, ver, nil, style)
	}
	screen.SetContent(x1, y1, tl, nil, style)
	screen.SetContent(x2, y1, tr, nil, style)
	screen.SetContent(x1, y2, bl, nil, style)
	screen.SetContent(x2, y2, br, nil, style)
	if title.Text != "" {
		drawLine(screen, x1+2, y1, x2-x1-3, Line{title})
	}
}
