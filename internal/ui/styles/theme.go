// Package styles defines the color theme and pre-built lipgloss
// styles shared by the UI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"chime/internal/config"
)

// Theme defines the color palette for the application. It is plain
// data passed into the views at construction, not process-global
// presentation state.
type Theme struct {
	Background lipgloss.Color // window background
	Surface    lipgloss.Color // list/bar backgrounds
	Accent     lipgloss.Color // borders, progress fill, volume
	Highlight  lipgloss.Color // playing row background
	FgBase     lipgloss.Color // primary text
	FgMuted    lipgloss.Color // secondary text

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style // default text
	Muted     lipgloss.Style // dimmed text
	Title     lipgloss.Style // bold header
	Playing   lipgloss.Style // currently playing row
	Cursor    lipgloss.Style // cursor row
	Panel     lipgloss.Style // bordered panel
	ErrorText lipgloss.Style
}

// Default returns the built-in palette, taken from the original
// player's dark theme.
func Default() Theme {
	return Theme{
		Background: lipgloss.Color("#111111"),
		Surface:    lipgloss.Color("#1a1a1a"),
		Accent:     lipgloss.Color("#2281c9"),
		Highlight:  lipgloss.Color("#1c5785"),
		FgBase:     lipgloss.Color("#ffffff"),
		FgMuted:    lipgloss.Color("#808080"),
	}
}

// FromConfig applies any configured overrides on top of the default
// palette.
func FromConfig(cfg config.ThemeConfig) Theme {
	t := Default()
	if cfg.Background != "" {
		t.Background = lipgloss.Color(cfg.Background)
	}
	if cfg.Surface != "" {
		t.Surface = lipgloss.Color(cfg.Surface)
	}
	if cfg.Accent != "" {
		t.Accent = lipgloss.Color(cfg.Accent)
	}
	if cfg.Highlight != "" {
		t.Highlight = lipgloss.Color(cfg.Highlight)
	}
	if cfg.Foreground != "" {
		t.FgBase = lipgloss.Color(cfg.Foreground)
	}
	if cfg.Muted != "" {
		t.FgMuted = lipgloss.Color(cfg.Muted)
	}
	return t
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:  base,
		Muted: lipgloss.NewStyle().Foreground(t.FgMuted),
		Title: base.Bold(true).Foreground(t.Accent),
		Playing: lipgloss.NewStyle().
			Background(t.Highlight).
			Foreground(t.FgBase).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.FgBase),
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent),
		ErrorText: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")),
	}
}
