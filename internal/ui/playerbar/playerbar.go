// Package playerbar renders the bottom bar: playback status, the
// current track, a block progress bar, and the volume.
package playerbar

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"chime/internal/ui/styles"
)

// Height is the rendered height: top border, content, bottom border.
const Height = 3

// State holds everything needed to render the player bar. Time labels
// are pre-formatted by the coordinator; the bar never computes times.
type State struct {
	Title    string
	Artist   string
	Playing  bool
	Paused   bool
	Seeking  bool
	Elapsed  string
	Total    string
	Position time.Duration
	Duration time.Duration
	Volume   int // percent
}

// Render returns the player bar for the given width. An inactive bar
// (nothing loaded) shows a hint instead of progress.
func Render(s State, width int, theme styles.Theme) string {
	st := theme.S()
	innerWidth := width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	var content string
	if !s.Playing && !s.Paused {
		content = st.Muted.Render(" no track playing · press space to start")
	} else {
		content = renderActive(s, innerWidth, st)
	}

	return st.Panel.Width(innerWidth).Render(content)
}

// renderActive lays out: " ▶  track  elapsed ▓▓░░ total  ♪ vol%".
// The track name absorbs whatever width the fixed parts leave over.
func renderActive(s State, width int, st *styles.Styles) string {
	status := "▶"
	if s.Paused {
		status = "⏸"
	}
	if s.Seeking {
		status = "⇄"
	}

	track := s.Title
	if s.Artist != "" {
		track = s.Artist + " — " + s.Title
	}

	volume := fmt.Sprintf("♪ %3d%%", s.Volume)
	times := s.Elapsed + " / " + s.Total

	// Fixed chrome: status, separators, times, volume.
	fixed := lipgloss.Width(" "+status+"  ") + lipgloss.Width("  "+times+"  "+volume+" ")

	barWidth := width * 1 / 3
	trackWidth := width - fixed - barWidth - 2
	if trackWidth < 8 {
		// Narrow terminal: drop the track name, keep the bar.
		barWidth = width - fixed
		trackWidth = 0
	}
	if barWidth < 3 {
		// Too narrow even for a bar: times only.
		return " " + status + "  " + times
	}

	line := " " + status + "  "
	if trackWidth > 0 {
		name := runewidth.Truncate(track, trackWidth, "…")
		line += runewidth.FillRight(name, trackWidth) + "  "
	}
	line += RenderBar(s.Position, s.Duration, barWidth)
	line += "  " + times + "  " + st.Muted.Render(volume)

	return line
}
