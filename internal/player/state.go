package player

// State represents the playback state machine.
//
// Valid transitions:
//   - Stopped → Playing (via Play)
//   - Playing → Paused  (via Pause)
//   - Playing → Stopped (via Stop or natural end of track)
//   - Paused  → Playing (via Resume)
//   - Paused  → Stopped (via Stop)
//
// Invalid transitions are ignored rather than rejected: pausing while
// stopped, resuming while playing, and stopping twice are all no-ops.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
