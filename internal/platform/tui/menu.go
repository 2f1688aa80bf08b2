package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fpv-neon/internal/config"
)

// ProfileSource is implemented by games that can describe their
// difficulty profiles for the picker.
type ProfileSource interface {
	Profile(label string) (config.Profile, bool)
}

// DifficultyMenu is the pre-flight difficulty picker.
type DifficultyMenu struct {
	labels []string
	table  table.Model
}

// NewDifficultyMenu builds the picker with the cursor on selected.
// profiles may be nil, in which case only the labels are listed.
func NewDifficultyMenu(labels []string, profiles ProfileSource, selected string) DifficultyMenu {
	columns := []table.Column{
		{Title: "Difficulty", Width: 12},
		{Title: "Thrust", Width: 8},
		{Title: "Spawn", Width: 7},
		{Title: "Camp", Width: 6},
	}

	rows := make([]table.Row, 0, len(labels))
	cursor := 0
	for i, label := range labels {
		row := table.Row{strings.ToUpper(label), "", "", ""}
		if profiles != nil {
			if p, ok := profiles.Profile(label); ok {
				row[1] = fmt.Sprintf("%g-%g", p.MinThrust, p.MaxThrust)
				row[2] = fmt.Sprintf("%g", p.SpawnRate)
				row[3] = fmt.Sprintf("%d", p.CampThreshold)
			}
		}
		rows = append(rows, row)
		if label == selected {
			cursor = i
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("48")).
		Bold(true)
	t.SetStyles(s)
	t.SetCursor(cursor)

	return DifficultyMenu{labels: labels, table: t}
}

// Up moves the cursor to an easier difficulty.
func (m *DifficultyMenu) Up() {
	m.table.MoveUp(1)
}

// Down moves the cursor to a harder difficulty.
func (m *DifficultyMenu) Down() {
	m.table.MoveDown(1)
}

// Selected returns the label under the cursor, or "" when empty.
func (m DifficultyMenu) Selected() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.labels) {
		return ""
	}
	return m.labels[i]
}

// View renders the picker.
func (m DifficultyMenu) View() string {
	return m.table.View()
}
