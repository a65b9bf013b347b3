// Package tracklist renders the scrollable song list with a cursor
// row and a highlight on the playing track.
package tracklist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"chime/internal/ui/styles"
)

// Model holds the track list display state.
type Model struct {
	titles  []string
	cursor  int
	playing int // -1 when nothing is playing
	offset  int // first visible row
	width   int
	height  int
	theme   styles.Theme
}

// New creates a track list over the given titles.
func New(titles []string, theme styles.Theme) Model {
	return Model{
		titles:  titles,
		playing: -1,
		theme:   theme,
	}
}

// SetTitles replaces the list contents, keeping the cursor in range.
func (m *Model) SetTitles(titles []string) {
	m.titles = titles
	if m.cursor >= len(titles) {
		m.cursor = len(titles) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampOffset()
}

// SetPlaying highlights the given row and scrolls it into view.
// Pass -1 to clear the highlight.
func (m *Model) SetPlaying(index int) {
	m.playing = index
	if index >= 0 && index < len(m.titles) {
		m.cursor = index
		m.scrollTo(index)
	}
}

// Playing returns the highlighted row (-1 if none).
func (m *Model) Playing() int { return m.playing }

// Cursor returns the cursor row.
func (m *Model) Cursor() int { return m.cursor }

// Len returns the number of rows.
func (m *Model) Len() int { return len(m.titles) }

// CursorUp moves the cursor one row up.
func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
		m.scrollTo(m.cursor)
	}
}

// CursorDown moves the cursor one row down.
func (m *Model) CursorDown() {
	if m.cursor < len(m.titles)-1 {
		m.cursor++
		m.scrollTo(m.cursor)
	}
}

// SetSize updates the viewport dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampOffset()
}

func (m *Model) scrollTo(index int) {
	if m.height <= 0 {
		return
	}
	if index < m.offset {
		m.offset = index
	}
	if index >= m.offset+m.height {
		m.offset = index - m.height + 1
	}
	m.clampOffset()
}

func (m *Model) clampOffset() {
	maxOffset := len(m.titles) - m.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the visible window of the list.
func (m Model) View() string {
	if m.height <= 0 {
		return ""
	}

	s := m.theme.S()
	var b strings.Builder

	end := m.offset + m.height
	if end > len(m.titles) {
		end = len(m.titles)
	}

	for i := m.offset; i < end; i++ {
		line := m.renderRow(i, s)
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	// Pad remaining rows so the panel keeps its height.
	for i := end - m.offset; i < m.height; i++ {
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderRow(i int, s *styles.Styles) string {
	title := truncate(m.titles[i], m.width-4)

	prefix := "  "
	if i == m.playing {
		prefix = "▶ "
	}
	row := prefix + title

	// Fill the row so background highlights span the full width.
	if pad := m.width - lipgloss.Width(row); pad > 0 {
		row += strings.Repeat(" ", pad)
	}

	switch {
	case i == m.playing:
		return s.Playing.Render(row)
	case i == m.cursor:
		return s.Cursor.Render(row)
	default:
		return s.Base.Render(row)
	}
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}
