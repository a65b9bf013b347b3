// Package playback contains the stateful core of the player: it owns
// the current track position, reacts to view events and the periodic
// tick, drives the audio backend, and answers with typed UI commands.
package playback

import (
	"fmt"
	"log/slog"
	"time"

	"chime/internal/player"
	"chime/internal/playlist"
)

// Play/pause button labels, matching the three states the button can
// announce.
const (
	LabelPlay   = "Play"
	LabelPause  = "Pause"
	LabelResume = "Resume"
)

// Coordinator mediates between view events and the playback backend.
// All methods run on the UI goroutine; nothing here blocks.
type Coordinator struct {
	player  player.Interface
	queue   *playlist.Queue
	state   State
	seeking bool
	volume  int // percent, 0-100

	log *slog.Logger
}

// New creates a coordinator over the given backend and queue.
func New(p player.Interface, q *playlist.Queue, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		player: p,
		queue:  q,
		state:  StateIdle,
		volume: 100,
		log:    logger,
	}
}

// HandleEvent routes a view event to the matching operation.
func (c *Coordinator) HandleEvent(ev Event) []Command {
	switch ev := ev.(type) {
	case TrackClicked:
		return c.SelectTrack(ev.Index)
	case PlayPauseClicked:
		return c.TogglePlayPause()
	case SkipClicked:
		return c.SkipToNext()
	case ShuffleClicked:
		return c.Shuffle()
	case SeekStarted:
		return c.BeginSeek()
	case SeekEnded:
		return c.EndSeek(ev.Position)
	case VolumeChanged:
		return c.SetVolume(ev.Percent)
	}
	return nil
}

// SelectTrack stops current playback and starts the track at index.
// A load failure is logged and surfaced but leaves the session state
// untouched, so the previous selection stays valid.
func (c *Coordinator) SelectTrack(index int) []Command {
	track := c.queue.Track(index)
	if track == nil {
		return nil
	}

	c.player.Stop()
	if err := c.player.Play(track.Path); err != nil {
		c.log.Error("track load failed", "path", track.Path, "err", err)
		return []Command{ShowError{Message: fmt.Sprintf("cannot play %s: %v", track.Title, err)}}
	}

	c.queue.JumpTo(index)
	c.state = StatePlaying
	c.seeking = false

	dur := c.player.Duration()
	return []Command{
		HighlightTrack{Index: index},
		SetProgress{Position: 0, Duration: dur},
		SetLabels{Elapsed: FormatTime(0), Total: FormatTime(dur), PlayPause: LabelPause},
	}
}

// TogglePlayPause pauses, resumes, or starts the first track when
// nothing has been played yet this session.
func (c *Coordinator) TogglePlayPause() []Command {
	if c.state == StateIdle {
		if c.queue.IsEmpty() {
			return nil
		}
		return c.SelectTrack(0)
	}

	if c.player.State() == player.Playing {
		c.player.Pause()
		c.state = StatePaused
	} else {
		c.player.Resume()
		c.state = StatePlaying
	}
	return []Command{c.labels()}
}

// SkipToNext advances to the next track, wrapping at the end of the
// list. A single-track list does not restart itself.
func (c *Coordinator) SkipToNext() []Command {
	if c.queue.CurrentIndex() == -1 {
		return nil
	}
	next := c.queue.NextIndex()
	if next == c.queue.CurrentIndex() {
		return nil
	}
	return c.SelectTrack(next)
}

// Shuffle permutes the track list, pushes the new ordering to the
// view, and starts playback from the new first track.
func (c *Coordinator) Shuffle() []Command {
	if c.queue.IsEmpty() {
		return nil
	}
	c.queue.Shuffle()
	cmds := []Command{SetTrackListContents{Titles: c.queue.Titles()}}
	return append(cmds, c.SelectTrack(0)...)
}

// Tick is invoked every 100ms by the view's scheduler. While the user
// is seeking it must not touch the progress display; end-of-track is
// never inferred here, the backend's finished notification handles it.
func (c *Coordinator) Tick() []Command {
	if c.seeking || c.state == StateIdle {
		return nil
	}
	pos := c.player.Position()
	dur := c.player.Duration()
	return []Command{
		SetProgress{Position: pos, Duration: dur},
		c.labels(),
	}
}

// BeginSeek freezes tick-driven progress updates while the user
// adjusts the position.
func (c *Coordinator) BeginSeek() []Command {
	c.seeking = true
	return nil
}

// EndSeek commits the seek gesture. The backend receives exactly one
// seek command, even when the target equals the current position.
func (c *Coordinator) EndSeek(position time.Duration) []Command {
	c.seeking = false
	if c.state == StateIdle {
		return nil
	}

	dur := c.player.Duration()
	if position < 0 {
		position = 0
	}
	if position > dur {
		position = dur
	}
	c.player.SeekTo(position)

	return []Command{
		SetProgress{Position: position, Duration: dur},
		c.labels(),
	}
}

// SetVolume applies a 0-100 percentage to the backend.
func (c *Coordinator) SetVolume(percent int) []Command {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	c.volume = percent
	c.player.SetVolume(float64(percent) / 100)
	return nil
}

// TrackFinished handles the backend's natural end-of-track
// notification by advancing to the next track. When there is nowhere
// to advance (single-track list) playback winds down and the session
// returns to Idle, ready to be restarted.
func (c *Coordinator) TrackFinished() []Command {
	if c.state != StatePlaying {
		// Stale signal racing a pause or an explicit stop.
		return nil
	}

	cmds := c.SkipToNext()
	if len(cmds) > 0 {
		return cmds
	}

	c.player.Stop()
	c.state = StateIdle
	return []Command{
		SetProgress{Position: 0, Duration: 0},
		SetLabels{Elapsed: FormatTime(0), Total: FormatTime(0), PlayPause: LabelPlay},
	}
}

// Reset stops playback and clears the session back to Idle. Used when
// the track list is about to be replaced wholesale.
func (c *Coordinator) Reset() []Command {
	c.player.Stop()
	c.state = StateIdle
	c.seeking = false
	return []Command{
		HighlightTrack{Index: -1},
		SetProgress{Position: 0, Duration: 0},
		SetLabels{Elapsed: FormatTime(0), Total: FormatTime(0), PlayPause: LabelPlay},
	}
}

// State returns the coordinator state.
func (c *Coordinator) State() State { return c.state }

// Seeking reports whether a seek gesture is in progress.
func (c *Coordinator) Seeking() bool { return c.seeking }

// CurrentIndex returns the playing track's index (-1 if none).
func (c *Coordinator) CurrentIndex() int { return c.queue.CurrentIndex() }

// Volume returns the current volume percentage.
func (c *Coordinator) Volume() int { return c.volume }

// Position returns the backend's playback position.
func (c *Coordinator) Position() time.Duration { return c.player.Position() }

// Duration returns the loaded track's duration.
func (c *Coordinator) Duration() time.Duration { return c.player.Duration() }

func (c *Coordinator) labels() SetLabels {
	label := LabelPlay
	switch c.state {
	case StatePlaying:
		label = LabelPause
	case StatePaused:
		label = LabelResume
	case StateIdle:
	}
	return SetLabels{
		Elapsed:   FormatTime(c.player.Position()),
		Total:     FormatTime(c.player.Duration()),
		PlayPause: label,
	}
}

// FormatTime renders a duration as mm:ss.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
