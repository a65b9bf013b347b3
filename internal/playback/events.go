package playback

import "time"

// Event is a user gesture forwarded by the view. The coordinator is
// the only component that interprets gestures; the view just names
// them.
type Event interface {
	playerEvent()
}

// TrackClicked selects and plays the track at Index.
type TrackClicked struct {
	Index int
}

// PlayPauseClicked toggles playback, starting the first track on a
// pristine session.
type PlayPauseClicked struct{}

// SkipClicked advances to the next track.
type SkipClicked struct{}

// ShuffleClicked reorders the track list and restarts from the top.
type ShuffleClicked struct{}

// SeekStarted begins a seek gesture; progress updates freeze until
// SeekEnded arrives.
type SeekStarted struct{}

// SeekEnded commits a seek gesture at Position.
type SeekEnded struct {
	Position time.Duration
}

// VolumeChanged sets the volume as a 0-100 percentage.
type VolumeChanged struct {
	Percent int
}

func (TrackClicked) playerEvent()     {}
func (PlayPauseClicked) playerEvent() {}
func (SkipClicked) playerEvent()      {}
func (ShuffleClicked) playerEvent()   {}
func (SeekStarted) playerEvent()      {}
func (SeekEnded) playerEvent()        {}
func (VolumeChanged) playerEvent()    {}

// Command is a UI update the coordinator asks the view to apply.
// Keeping these as data rather than method calls keeps the
// coordinator free of any toolkit dependency.
type Command interface {
	uiCommand()
}

// SetProgress updates the progress bar position and bounds.
type SetProgress struct {
	Position time.Duration
	Duration time.Duration
}

// SetLabels updates the time labels and the play/pause button text.
// All fields are always populated.
type SetLabels struct {
	Elapsed   string
	Total     string
	PlayPause string
}

// HighlightTrack marks Index as the playing row.
type HighlightTrack struct {
	Index int
}

// SetTrackListContents replaces the displayed track titles.
type SetTrackListContents struct {
	Titles []string
}

// ShowError surfaces a non-fatal playback problem to the user.
type ShowError struct {
	Message string
}

func (SetProgress) uiCommand()          {}
func (SetLabels) uiCommand()            {}
func (HighlightTrack) uiCommand()       {}
func (SetTrackListContents) uiCommand() {}
func (ShowError) uiCommand()            {}
