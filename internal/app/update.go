package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"chime/internal/library"
	"chime/internal/playback"
	"chime/internal/ui/picker"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeComponents()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.applyCommands(m.coordinator.Tick())
		return m, TickCmd()

	case TrackFinishedMsg:
		m.applyCommands(m.coordinator.TrackFinished())
		return m, WatchFinishedCmd(m.player)

	case SeekCommitMsg:
		if msg.Version != m.seekVersion || !m.coordinator.Seeking() {
			return m, nil
		}
		m.applyCommands(m.coordinator.HandleEvent(playback.SeekEnded{Position: m.seekTarget}))
		return m, nil

	case LibraryChangedMsg:
		m.rescan()
		if m.watcher != nil {
			return m, WaitForLibraryChangeCmd(m.watcher)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.player.Stop()
		m.closeWatcher()
		return m, tea.Quit
	}

	switch m.mode {
	case ViewPicker:
		return m.handlePickerKey(msg)
	case ViewPlayer:
		return m.handlePlayerKey(msg)
	case ViewEmpty:
		if m.hasPlaylists && key.Matches(msg, m.keys.Back) {
			m.backToPicker()
		}
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.picker.CursorUp()
	case key.Matches(msg, m.keys.Down):
		m.picker.CursorDown()
	case key.Matches(msg, m.keys.Select):
		name := m.picker.Selected()
		if name == "" {
			return m, nil
		}
		m.openFolder(library.PlaylistPath(m.root, name), name)
		if m.watcher != nil {
			return m, WaitForLibraryChangeCmd(m.watcher)
		}
	}
	return m, nil
}

func (m Model) handlePlayerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		if m.hasPlaylists {
			m.backToPicker()
		}

	case key.Matches(msg, m.keys.Up):
		m.trackList.CursorUp()
	case key.Matches(msg, m.keys.Down):
		m.trackList.CursorDown()

	case key.Matches(msg, m.keys.Select):
		m.applyCommands(m.coordinator.HandleEvent(playback.TrackClicked{Index: m.trackList.Cursor()}))

	case key.Matches(msg, m.keys.PlayPause):
		m.applyCommands(m.coordinator.HandleEvent(playback.PlayPauseClicked{}))

	case key.Matches(msg, m.keys.Skip):
		m.applyCommands(m.coordinator.HandleEvent(playback.SkipClicked{}))

	case key.Matches(msg, m.keys.Shuffle):
		m.applyCommands(m.coordinator.HandleEvent(playback.ShuffleClicked{}))

	case key.Matches(msg, m.keys.SeekBack):
		return m.stepSeek(-time.Duration(m.cfg.SeekStepSeconds) * time.Second)
	case key.Matches(msg, m.keys.SeekFwd):
		return m.stepSeek(time.Duration(m.cfg.SeekStepSeconds) * time.Second)

	case key.Matches(msg, m.keys.VolUp):
		m.applyCommands(m.coordinator.HandleEvent(playback.VolumeChanged{Percent: m.coordinator.Volume() + 5}))
	case key.Matches(msg, m.keys.VolDown):
		m.applyCommands(m.coordinator.HandleEvent(playback.VolumeChanged{Percent: m.coordinator.Volume() - 5}))
	}
	return m, nil
}

// stepSeek advances the keyboard seek gesture. The first press starts
// the gesture from the current position; further presses accumulate
// onto the pending target. Commit happens after a quiet period so the
// backend sees a single seek, but the bar previews the target live.
func (m Model) stepSeek(step time.Duration) (tea.Model, tea.Cmd) {
	if m.coordinator.State() == playback.StateIdle {
		return m, nil
	}
	if !m.coordinator.Seeking() {
		m.applyCommands(m.coordinator.HandleEvent(playback.SeekStarted{}))
		m.seekTarget = m.coordinator.Position()
	}
	m.seekTarget += step
	if m.seekTarget < 0 {
		m.seekTarget = 0
	}
	if d := m.coordinator.Duration(); m.seekTarget > d {
		m.seekTarget = d
	}
	m.bar.Position = m.seekTarget
	m.bar.Elapsed = playback.FormatTime(m.seekTarget)
	m.syncBar()
	m.seekVersion++
	return m, SeekCommitCmd(m.seekVersion)
}

// backToPicker stops playback and returns to playlist selection.
func (m *Model) backToPicker() {
	m.applyCommands(m.coordinator.Reset())
	m.closeWatcher()
	m.queue.Replace(nil)
	m.picker = picker.New(library.Playlists(m.root), m.theme)
	m.resizeComponents()
	m.mode = ViewPicker
	m.playlistName = ""
	m.errorMsg = ""
}

// rescan reloads the open folder after a filesystem change, keeping
// the playing track highlighted when it survives the rescan.
func (m *Model) rescan() {
	var playingPath string
	if t := m.queue.Current(); t != nil {
		playingPath = t.Path
	}

	tracks := library.Tracks(m.currentDir)
	m.log.Info("folder rescanned", "dir", m.currentDir, "tracks", len(tracks))
	m.queue.Replace(tracks)
	m.trackList.SetTitles(m.queue.Titles())

	if len(tracks) == 0 {
		m.applyCommands(m.coordinator.Reset())
		m.mode = ViewEmpty
		return
	}
	m.mode = ViewPlayer

	if playingPath != "" {
		for i, t := range tracks {
			if t.Path == playingPath {
				m.queue.JumpTo(i)
				m.trackList.SetPlaying(i)
				return
			}
		}
		// The playing file is gone; stop rather than play a ghost.
		m.applyCommands(m.coordinator.Reset())
		m.trackList.SetPlaying(-1)
	}
}
