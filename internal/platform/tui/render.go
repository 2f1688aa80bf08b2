package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fpv-neon/internal/core"
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

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("48")).
			Bold(true).
			Padding(0, 2)
	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("48"))
	hudLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("160")).
			Bold(true).
			Padding(0, 1)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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

// renderHUD formats the readouts line shown above the playfield.
func renderHUD(st core.GameState) string {
	field := func(label, value string) string {
		return hudLabelStyle.Render(label+" ") + hudStyle.Render(value)
	}

	parts := []string{
		field("SPD", fmt.Sprintf("%d km/h", st.Speed)),
		field("ALT", fmt.Sprintf("%d m", st.Altitude)),
		field("SCORE", fmt.Sprintf("%d", st.Score)),
		field("THR", fmt.Sprintf("%.1f [%.1f-%.1f]", st.Thrust, st.ThrustMin, st.ThrustMax)),
		field("T", formatElapsed(st)),
		hudLabelStyle.Render(strings.ToUpper(st.Difficulty)),
	}
	line := strings.Join(parts, "   ")
	if st.Warning {
		line += "   " + warnStyle.Render("ANTI-CAMP: MOVE!")
	}
	return line
}

func formatElapsed(st core.GameState) string {
	secs := int(st.Elapsed.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// drawGameOver draws the end-of-session panel over the playfield.
func drawGameOver(s *core.Screen, st core.GameState) {
	const w, h = 30, 7
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2
	box := core.NewRect(x, y, w, h)

	for row := y + 1; row < y+h-1; row++ {
		for col := x + 1; col < x+w-1; col++ {
			s.Set(col, row, ' ')
		}
	}
	s.DrawBox(box, core.ColorBrightRed)
	s.DrawTextCentered(y+2, "SIGNAL LOST", core.ColorBrightRed)
	s.DrawTextCentered(y+3, fmt.Sprintf("Final score: %d", st.FinalScore), core.ColorBrightWhite)
	s.DrawTextCentered(y+5, "r: reload   q: quit", core.ColorGray)
}
