package theme

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a color string into a tcell color. Accepted forms:
// "#RRGGBB" and "#RGB" hex, "rgb(r,g,b)", "ansi:N" / "index:N" for
// 8-bit palette colors, and a handful of color names.
func ParseColor(input string) (tcell.Color, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return tcell.ColorDefault, false
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return tcell.ColorDefault, false
		}
		r, g, b := c.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
	}

	if body, ok := strings.CutPrefix(s, "rgb("); ok {
		body, ok = strings.CutSuffix(body, ")")
		if !ok {
			return tcell.ColorDefault, false
		}
		parts := strings.Split(body, ",")
		if len(parts) != 3 {
			return tcell.ColorDefault, false
		}
		var rgb [3]int32
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return tcell.ColorDefault, false
			}
			rgb[i] = int32(n)
		}
		return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), true
	}

	for _, prefix := range []string{"ansi:", "index:"} {
		if num, ok := strings.CutPrefix(s, prefix); ok {
			n, err := strconv.Atoi(num)
			if err != nil || n < 0 || n > 255 {
				return tcell.ColorDefault, false
			}
			return tcell.PaletteColor(n), true
		}
	}

	switch strings.ToLower(s) {
	case "black":
		return tcell.ColorBlack, true
	case "white":
		return tcell.ColorWhite, true
	case "gray", "grey":
		return tcell.ColorGray, true
	case "red":
		return tcell.ColorRed, true
	case "green":
		return tcell.ColorGreen, true
	case "yellow":
		return tcell.ColorYellow, true
	case "blue":
		return tcell.ColorBlue, true
	case "magenta", "purple":
		return tcell.ColorPurple, true
	case "cyan":
		return tcell.ColorAqua, true
	}
	return tcell.ColorDefault, false
}
