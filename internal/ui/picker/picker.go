// Package picker renders the playlist selection list shown when the
// library root contains playlist subfolders.
package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"chime/internal/ui/styles"
)

// Model holds the playlist picker state.
type Model struct {
	names  []string
	cursor int
	width  int
	height int
	theme  styles.Theme
}

// New creates a picker over the given playlist names.
func New(names []string, theme styles.Theme) Model {
	return Model{names: names, theme: theme}
}

// Selected returns the playlist name under the cursor, or "" when the
// list is empty.
func (m *Model) Selected() string {
	if m.cursor < 0 || m.cursor >= len(m.names) {
		return ""
	}
	return m.names[m.cursor]
}

// CursorUp moves the cursor one row up.
func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// CursorDown moves the cursor one row down.
func (m *Model) CursorDown() {
	if m.cursor < len(m.names)-1 {
		m.cursor++
	}
}

// SetSize updates the viewport dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the picker list.
func (m Model) View() string {
	s := m.theme.S()
	var b strings.Builder

	b.WriteString(s.Title.Render("Playlists"))
	b.WriteString("\n\n")

	for i, name := range m.names {
		row := "  " + runewidth.Truncate(name, max(m.width-4, 0), "…")
		if pad := m.width - lipgloss.Width(row); pad > 0 {
			row += strings.Repeat(" ", pad)
		}
		if i == m.cursor {
			b.WriteString(s.Cursor.Render(row))
		} else {
			b.WriteString(s.Base.Render(row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Muted.Render("  enter: open · q: quit"))
	return b.String()
}
