package picker

import (
	"strings"
	"testing"

	"chime/internal/ui/styles"
)

func TestSelection(t *testing.T) {
	m := New([]string{"Chill", "Workout"}, styles.Default())

	if m.Selected() != "Chill" {
		t.Errorf("Selected() = %q, want Chill", m.Selected())
	}

	m.CursorDown()
	if m.Selected() != "Workout" {
		t.Errorf("Selected() = %q, want Workout", m.Selected())
	}

	m.CursorDown()
	if m.Selected() != "Workout" {
		t.Errorf("Selected() = %q, want Workout (clamped)", m.Selected())
	}

	m.CursorUp()
	m.CursorUp()
	if m.Selected() != "Chill" {
		t.Errorf("Selected() = %q, want Chill (clamped)", m.Selected())
	}
}

func TestSelected_Empty(t *testing.T) {
	m := New(nil, styles.Default())
	if m.Selected() != "" {
		t.Errorf("Selected() = %q, want empty", m.Selected())
	}
}

func TestView_ListsNames(t *testing.T) {
	m := New([]string{"Road Trip"}, styles.Default())
	m.SetSize(40, 10)

	if view := m.View(); !strings.Contains(view, "Road Trip") {
		t.Error("View() should list playlist names")
	}
}
