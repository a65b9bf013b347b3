package app

import "time"

// TickMsg drives the 100ms progress poll.
type TickMsg time.Time

// TrackFinishedMsg is sent when the backend reports a track played to
// its natural end.
type TrackFinishedMsg struct{}

// SeekCommitMsg fires after the keyboard seek gesture has been quiet
// long enough to commit. Version discards stale timers when the user
// keeps tapping.
type SeekCommitMsg struct {
	Version int
}

// LibraryChangedMsg is sent when playable files appear or disappear
// in the open folder.
type LibraryChangedMsg struct{}
