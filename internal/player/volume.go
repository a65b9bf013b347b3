package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the volume level (0.0 to 1.0). The level survives
// track changes; Play applies it to each new stream.
func (p *Player) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}

	p.volumeLevel = level

	if p.volume != nil {
		speaker.Lock()
		p.volume.Volume = levelToVolume(level)
		p.volume.Silent = level <= 0
		speaker.Unlock()
	}
}

// Volume returns the current volume level (0.0 to 1.0).
func (p *Player) Volume() float64 {
	return p.volumeLevel
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale: Volume 0 means no change, -1 halves
// the amplitude, -2 quarters it. 1.0 -> 0, 0.5 -> -1, 0.25 -> -2.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
