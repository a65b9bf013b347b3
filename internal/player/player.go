// Package player wraps the beep audio engine behind a small playback
// interface: load a file, control pause/resume, seek, set the volume,
// and get notified when the track runs out.
package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3 = ".mp3"
	extWAV = ".wav"
)

// The speaker is process-global in beep; initialize it once with the
// sample rate of the first track and resample everything else to it.
var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Player plays audio files through the system speaker.
type Player struct {
	state       State
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	streamer    beep.StreamSeekCloser
	format      beep.Format
	file        *os.File
	duration    time.Duration
	volumeLevel float64
	finishedCh  chan struct{}
}

// New creates a stopped player at full volume.
func New() *Player {
	return &Player{
		state:       Stopped,
		volumeLevel: 1.0,
		finishedCh:  make(chan struct{}, 1),
	}
}

// IsMusicFile reports whether the path has a playable extension.
func IsMusicFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == extMP3 || ext == extWAV
}

// Play stops any current playback and starts the given file.
func (p *Player) Play(path string) error {
	p.Stop()

	// Drain any stale finish signal from the previous track.
	select {
	case <-p.finishedCh:
	default:
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != extMP3 && ext != extWAV {
		return fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		err = speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10))
		if err != nil {
			streamer.Close()
			f.Close()
			return err
		}
		speakerInitialized = true
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.duration = format.SampleRate.D(streamer.Len())

	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: false}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.volumeLevel <= 0,
	}

	p.state = Playing

	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		select {
		case p.finishedCh <- struct{}{}:
		default:
		}
	})))

	return nil
}

// Stop stops playback and releases resources.
func (p *Player) Stop() {
	if p.state == Stopped {
		return
	}

	speaker.Clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}

	p.ctrl = nil
	p.volume = nil
	p.duration = 0
	p.state = Stopped
}

// Pause pauses playback.
func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Resume resumes paused playback.
func (p *Player) Resume() {
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// State returns the current playback state.
func (p *Player) State() State { return p.state }

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the loaded track's duration (0 if none).
func (p *Player) Duration() time.Duration {
	return p.duration
}

// SeekTo moves playback to an absolute position, clamped to the
// track's bounds. No-op when nothing is loaded.
func (p *Player) SeekTo(position time.Duration) {
	if p.streamer == nil || p.state == Stopped {
		return
	}
	if position < 0 {
		position = 0
	}
	if position > p.duration {
		position = p.duration
	}

	speaker.Lock()
	_ = p.streamer.Seek(p.format.SampleRate.N(position))
	speaker.Unlock()
}

// FinishedChan returns the channel signaled when a track plays to its
// natural end. Stop and track switches do not signal it.
func (p *Player) FinishedChan() <-chan struct{} {
	return p.finishedCh
}
