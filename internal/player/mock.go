package player

import "time"

// Mock is a test double for Player.
type Mock struct {
	state       State
	position    time.Duration
	duration    time.Duration
	volumeLevel float64
	playErr     error
	playCalls   []string
	seekCalls   []time.Duration
	finishedCh  chan struct{}
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:       Stopped,
		volumeLevel: 1.0,
		finishedCh:  make(chan struct{}, 1),
	}
}

func (m *Mock) Play(path string) error {
	m.playCalls = append(m.playCalls, path)
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	m.position = 0
	return nil
}

// Stop resets state and position. The configured duration is kept so
// tests can set it once before driving selection.
func (m *Mock) Stop() {
	m.state = Stopped
	m.position = 0
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) SeekTo(position time.Duration) {
	if m.state == Stopped {
		return
	}
	if position < 0 {
		position = 0
	}
	if position > m.duration {
		position = m.duration
	}
	m.seekCalls = append(m.seekCalls, position)
	m.position = position
}

func (m *Mock) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	m.volumeLevel = level
}

func (m *Mock) Volume() float64 { return m.volumeLevel }

func (m *Mock) FinishedChan() <-chan struct{} {
	return m.finishedCh
}

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) PlayCalls() []string { return m.playCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SimulateFinished simulates a track finishing naturally.
func (m *Mock) SimulateFinished() {
	m.state = Stopped
	select {
	case m.finishedCh <- struct{}{}:
	default:
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
