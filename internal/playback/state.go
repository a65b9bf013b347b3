package playback

// State is the coordinator's playback state. Seeking is tracked
// separately: it can overlap Playing or Paused.
type State int

const (
	StateIdle State = iota // nothing selected yet this session
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}
