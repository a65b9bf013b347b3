package app

import (
	"strings"

	"chime/internal/ui/playerbar"
)

// Chrome rows around the track list: header, error line, player bar,
// help footer.
const chromeHeight = 2 + 1 + playerbar.Height + 1

func (m *Model) resizeComponents() {
	listHeight := m.height - chromeHeight
	if listHeight < 1 {
		listHeight = 1
	}
	m.trackList.SetSize(m.width, listHeight)
	m.picker.SetSize(m.width, m.height-2)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	switch m.mode {
	case ViewPicker:
		return m.picker.View()
	case ViewEmpty:
		return m.emptyView()
	default:
		return m.playerView()
	}
}

func (m Model) playerView() string {
	s := m.theme.S()

	title := "Music Player"
	if m.playlistName != "" {
		title = m.playlistName
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(" ♫ " + title))
	b.WriteString("\n\n")
	b.WriteString(m.trackList.View())
	b.WriteString("\n")
	if m.errorMsg != "" {
		b.WriteString(s.ErrorText.Render(" " + m.errorMsg))
	}
	b.WriteString("\n")
	b.WriteString(playerbar.Render(m.bar, m.width, m.theme))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(m.helpLine()))
	return b.String()
}

func (m Model) emptyView() string {
	s := m.theme.S()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.Title.Render(" ♫ Music Player"))
	b.WriteString("\n\n")
	b.WriteString(s.Base.Render(" No songs found in " + m.currentDir))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(" Drop .mp3 or .wav files into the folder and they will appear here."))
	b.WriteString("\n\n")
	if m.hasPlaylists {
		b.WriteString(s.Muted.Render(" esc: back to playlists · q: quit"))
	} else {
		b.WriteString(s.Muted.Render(" q: quit"))
	}
	return b.String()
}

func (m Model) helpLine() string {
	parts := []string{
		"space: play/pause",
		"enter: play track",
		"n: skip",
		"s: shuffle",
		"←/→: seek",
		"+/-: volume",
	}
	if m.hasPlaylists {
		parts = append(parts, "esc: playlists")
	}
	parts = append(parts, "q: quit")
	return " " + strings.Join(parts, " · ")
}
