package playerbar

import (
	"strings"
	"testing"
	"time"

	"chime/internal/ui/styles"
)

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name       string
		position   time.Duration
		duration   time.Duration
		width      int
		wantFilled int
	}{
		{"start", 0, time.Minute, 10, 0},
		{"half", 30 * time.Second, time.Minute, 10, 5},
		{"end", time.Minute, time.Minute, 10, 10},
		{"past end", 2 * time.Minute, time.Minute, 10, 10},
		{"zero duration", 10 * time.Second, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := RenderBar(tt.position, tt.duration, tt.width)
			if got := strings.Count(bar, filledBlock); got != tt.wantFilled {
				t.Errorf("filled = %d, want %d (bar %q)", got, tt.wantFilled, bar)
			}
			if total := strings.Count(bar, filledBlock) + strings.Count(bar, emptyBlock); total != tt.width {
				t.Errorf("bar width = %d, want %d", total, tt.width)
			}
		})
	}
}

func TestRender_InactiveShowsHint(t *testing.T) {
	out := Render(State{}, 60, styles.Default())
	if !strings.Contains(out, "no track playing") {
		t.Error("inactive bar should show the hint text")
	}
}

func TestRender_ActiveShowsTimesAndVolume(t *testing.T) {
	s := State{
		Title:    "Song",
		Playing:  true,
		Elapsed:  "01:05",
		Total:    "03:00",
		Position: 65 * time.Second,
		Duration: 3 * time.Minute,
		Volume:   80,
	}
	out := Render(s, 80, styles.Default())

	for _, want := range []string{"01:05", "03:00", "80%", "▶"} {
		if !strings.Contains(out, want) {
			t.Errorf("bar missing %q:\n%s", want, out)
		}
	}
}

func TestRender_PausedAndSeekingSymbols(t *testing.T) {
	s := State{Title: "Song", Paused: true, Elapsed: "00:00", Total: "01:00", Volume: 100}
	if out := Render(s, 80, styles.Default()); !strings.Contains(out, "⏸") {
		t.Error("paused bar should show pause symbol")
	}

	s = State{Title: "Song", Playing: true, Seeking: true, Elapsed: "00:00", Total: "01:00", Volume: 100}
	if out := Render(s, 80, styles.Default()); !strings.Contains(out, "⇄") {
		t.Error("seeking bar should show seek symbol")
	}
}
