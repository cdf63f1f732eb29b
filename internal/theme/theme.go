package theme

import "github.com/gdamore/tcell/v2"

// Theme is the palette the UI draws with.
type Theme struct {
	Primary tcell.Color
	Accent  tcell.Color
	Warn    tcell.Color
	Error   tcell.Color
	Success tcell.Color
	Fg      tcell.Color
	Bg      tcell.Color
	Comment tcell.Color
}

// DefaultName is the built-in theme used when nothing else is
// configured.
const DefaultName = "cyber-nord"

// Default returns the cyber-nord theme.
func Default() Theme {
	return Theme{
		Primary: tcell.NewRGBColor(100, 181, 255),
		Accent:  tcell.NewRGBColor(255, 64, 160),
		Warn:    tcell.NewRGBColor(231, 217, 140),
		Error:   tcell.NewRGBColor(255, 85, 85),
		Success: tcell.NewRGBColor(100, 181, 255),
		Fg:      tcell.NewRGBColor(221, 227, 234),
		Bg:      tcell.NewRGBColor(23, 26, 34),
		Comment: tcell.NewRGBColor(90, 100, 115),
	}
}

// ByName returns a built-in theme. Unknown names fall back to the
// default.
func ByName(name string) Theme {
	switch name {
	case "dracula":
		return Theme{
			Primary: tcell.NewRGBColor(98, 114, 164),
			Accent:  tcell.NewRGBColor(255, 121, 198),
			Warn:    tcell.NewRGBColor(241, 250, 140),
			Error:   tcell.NewRGBColor(255, 85, 85),
			Success: tcell.NewRGBColor(98, 114, 164),
			Fg:      tcell.NewRGBColor(248, 248, 242),
			Bg:      tcell.NewRGBColor(40, 42, 54),
			Comment: tcell.NewRGBColor(98, 114, 164),
		}
	case "gruvbox-dark":
		return Theme{
			Primary: tcell.NewRGBColor(250, 189, 47),
			Accent:  tcell.NewRGBColor(204, 36, 29),
			Warn:    tcell.NewRGBColor(250, 189, 47),
			Error:   tcell.NewRGBColor(204, 36, 29),
			Success: tcell.NewRGBColor(250, 189, 47),
			Fg:      tcell.NewRGBColor(235, 219, 178),
			Bg:      tcell.NewRGBColor(29, 32, 33),
			Comment: tcell.NewRGBColor(146, 131, 116),
		}
	case "one-dark":
		return Theme{
			Primary: tcell.NewRGBColor(97, 175, 239),
			Accent:  tcell.NewRGBColor(198, 120, 221),
			Warn:    tcell.NewRGBColor(229, 192, 123),
			Error:   tcell.NewRGBColor(224, 108, 117),
			Success: tcell.NewRGBColor(97, 175, 239),
			Fg:      tcell.NewRGBColor(171, 178, 191),
			Bg:      tcell.NewRGBColor(40, 44, 52),
			Comment: tcell.NewRGBColor(92, 99, 112),
		}
	default:
		return Default()
	}
}

// FromStrings overlays color strings onto base. Keys with values that
// fail to parse are left at the base color.
func FromStrings(colors map[string]string, base Theme) Theme {
	t := base
	set := func(dst *tcell.Color, key string) {
		if v, ok := colors[key]; ok {
			if c, ok := ParseColor(v); ok {
				*dst = c
			}
		}
	}
	set(&t.Primary, "primary")
	set(&t.Accent, "accent")
	set(&t.Warn, "warn")
	set(&t.Error, "error")
	set(&t.Success, "success")
	set(&t.Fg, "fg")
	set(&t.Bg, "bg")
	set(&t.Comment, "comment")
	return t
}
