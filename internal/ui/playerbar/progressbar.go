package playerbar

import (
	"strings"
	"time"
)

const (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// RenderBar renders a block-style progress bar of the given width.
func RenderBar(position, duration time.Duration, width int) string {
	if width <= 0 {
		return ""
	}

	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(float64(width) * ratio)
	if filled > width {
		filled = width
	}

	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}
