package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lunarisgames/rotagems/internal/core"
	"github.com/lunarisgames/rotagems/internal/engine"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped to minimize ANSI escapes.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// categoryColor maps a symbol category to its display color.
func categoryColor(c engine.Category) core.Color {
	switch c {
	case engine.Red:
		return core.ColorBrightRed
	case engine.Blue:
		return core.ColorBrightBlue
	case engine.Green:
		return core.ColorBrightGreen
	case engine.Yellow:
		return core.ColorBrightYellow
	case engine.Purple:
		return core.ColorBrightMagenta
	case engine.Orange:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// symbolRune picks the glyph for a symbol; specials get distinct shapes.
func symbolRune(sym engine.Symbol) rune {
	switch sym.Special {
	case engine.SpecialRow:
		return '═'
	case engine.SpecialColumn:
		return '║'
	case engine.SpecialBurst:
		return '✸'
	case engine.SpecialPrism:
		return '◈'
	default:
		return '●'
	}
}

// symbolCell builds the colored screen cell for a board symbol.
func symbolCell(sym engine.Symbol) core.Cell {
	return core.Cell{
		Rune:  symbolRune(sym),
		Color: categoryColor(sym.Effective()),
	}
}
