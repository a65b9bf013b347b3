// Package playlist holds the ordered track list and the position of
// the track being played.
package playlist

import (
	"math/rand"

	"chime/internal/library"
)

// Queue is an ordered track list with a current position.
// currentIndex is -1 while nothing has been selected yet.
type Queue struct {
	tracks       []library.Track
	currentIndex int
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{currentIndex: -1}
}

// Replace swaps in a whole new track list and resets the position.
func (q *Queue) Replace(tracks []library.Track) {
	q.tracks = tracks
	q.currentIndex = -1
}

// Track returns the track at index, or nil if out of range.
func (q *Queue) Track(index int) *library.Track {
	if index < 0 || index >= len(q.tracks) {
		return nil
	}
	return &q.tracks[index]
}

// Current returns the track at the current position, or nil if none.
func (q *Queue) Current() *library.Track {
	return q.Track(q.currentIndex)
}

// CurrentIndex returns the current position (-1 if none).
func (q *Queue) CurrentIndex() int {
	return q.currentIndex
}

// JumpTo moves the position to index and returns the track there,
// or nil (position unchanged) if index is invalid.
func (q *Queue) JumpTo(index int) *library.Track {
	if index < 0 || index >= len(q.tracks) {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// NextIndex returns the position after the current one, wrapping to 0
// at the end of the list. Returns -1 if nothing is selected or the
// queue is empty. For a single-track queue this returns the current
// index; callers treat next == current as "nothing to do".
func (q *Queue) NextIndex() int {
	if q.currentIndex < 0 || len(q.tracks) == 0 {
		return -1
	}
	return (q.currentIndex + 1) % len(q.tracks)
}

// Shuffle permutes the track list in place with a uniform random
// permutation. Any correspondence between indexes and tracks from
// before the call is invalidated, so the position resets to -1.
func (q *Queue) Shuffle() {
	rand.Shuffle(len(q.tracks), func(i, j int) {
		q.tracks[i], q.tracks[j] = q.tracks[j], q.tracks[i]
	})
	q.currentIndex = -1
}

// Tracks returns the underlying track list.
func (q *Queue) Tracks() []library.Track {
	return q.tracks
}

// Titles returns the display titles of all tracks, in order.
func (q *Queue) Titles() []string {
	titles := make([]string, len(q.tracks))
	for i, t := range q.tracks {
		titles[i] = t.Title
	}
	return titles
}

// Len returns the number of tracks.
func (q *Queue) Len() int {
	return len(q.tracks)
}

// IsEmpty returns true if the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return len(q.tracks) == 0
}
