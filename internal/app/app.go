// Package app wires the coordinator, the audio backend, and the UI
// components into a bubbletea application.
package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"chime/internal/config"
	"chime/internal/library"
	"chime/internal/playback"
	"chime/internal/player"
	"chime/internal/playlist"
	"chime/internal/ui/picker"
	"chime/internal/ui/playerbar"
	"chime/internal/ui/styles"
	"chime/internal/ui/tracklist"
)

// ViewMode selects which top-level view is shown.
type ViewMode int

const (
	ViewPlayer ViewMode = iota
	ViewPicker
	ViewEmpty
)

// Model is the root application model containing all state.
type Model struct {
	cfg   *config.Config
	theme styles.Theme
	log   *slog.Logger

	mode         ViewMode
	root         string
	currentDir   string
	playlistName string // "" in flat mode
	hasPlaylists bool

	player      player.Interface
	queue       *playlist.Queue
	coordinator *playback.Coordinator

	trackList tracklist.Model
	picker    picker.Model
	bar       playerbar.State
	playLabel string

	watcher *fsnotify.Watcher

	keys KeyMap

	// Keyboard seek gesture: the target accumulates across rapid key
	// presses and is committed after a short quiet period.
	seekTarget  time.Duration
	seekVersion int

	errorMsg string
	width    int
	height   int
}

// New creates the application model: scans the library and decides
// which view to open.
func New(cfg *config.Config, p player.Interface, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	theme := styles.FromConfig(cfg.Theme)
	q := playlist.New()
	coord := playback.New(p, q, logger)
	coord.SetVolume(cfg.Volume)

	m := Model{
		cfg:         cfg,
		theme:       theme,
		log:         logger,
		root:        cfg.LibraryRoot,
		player:      p,
		queue:       q,
		coordinator: coord,
		trackList:   tracklist.New(nil, theme),
		playLabel:   playback.LabelPlay,
		keys:        DefaultKeyMap(),
	}
	m.bar.Volume = coord.Volume()

	playlists := library.Playlists(m.root)
	if len(playlists) > 0 {
		m.hasPlaylists = true
		m.mode = ViewPicker
		m.picker = picker.New(playlists, theme)
		logger.Info("library scanned", "root", m.root, "playlists", len(playlists))
		return m
	}

	m.openFolder(m.root, "")
	return m
}

// openFolder scans dir and switches to the player view, or the empty
// message when the folder holds no playable files.
func (m *Model) openFolder(dir, playlistName string) {
	m.currentDir = dir
	m.playlistName = playlistName
	m.closeWatcher()

	tracks := library.Tracks(dir)
	m.log.Info("folder scanned", "dir", dir, "tracks", len(tracks))

	m.queue.Replace(tracks)
	m.trackList = tracklist.New(m.queue.Titles(), m.theme)
	m.resizeComponents()

	if len(tracks) == 0 {
		m.mode = ViewEmpty
		return
	}

	m.mode = ViewPlayer
	if w, err := library.Watch(dir); err == nil {
		m.watcher = w
	} else {
		m.log.Warn("library watch unavailable", "dir", dir, "err", err)
	}
}

func (m *Model) closeWatcher() {
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
}

// applyCommands applies coordinator UI commands to the view state.
func (m *Model) applyCommands(cmds []playback.Command) {
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case playback.SetProgress:
			m.bar.Position = cmd.Position
			m.bar.Duration = cmd.Duration
		case playback.SetLabels:
			m.bar.Elapsed = cmd.Elapsed
			m.bar.Total = cmd.Total
			m.playLabel = cmd.PlayPause
		case playback.HighlightTrack:
			m.trackList.SetPlaying(cmd.Index)
			m.setNowPlaying(cmd.Index)
			m.errorMsg = ""
		case playback.SetTrackListContents:
			m.trackList.SetTitles(cmd.Titles)
		case playback.ShowError:
			m.errorMsg = cmd.Message
		}
	}
	m.syncBar()
}

// syncBar refreshes the bar fields derived from coordinator state.
func (m *Model) syncBar() {
	m.bar.Playing = m.coordinator.State() == playback.StatePlaying
	m.bar.Paused = m.coordinator.State() == playback.StatePaused
	m.bar.Seeking = m.coordinator.Seeking()
	m.bar.Volume = m.coordinator.Volume()
}

// setNowPlaying fills the bar's track fields, preferring tag metadata
// over the filename title.
func (m *Model) setNowPlaying(index int) {
	track := m.queue.Track(index)
	if track == nil {
		m.bar.Title = ""
		m.bar.Artist = ""
		return
	}
	info := library.ReadTrackInfo(track.Path)
	m.bar.Title = info.Title
	m.bar.Artist = info.Artist
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{TickCmd(), WatchFinishedCmd(m.player)}
	if m.watcher != nil {
		cmds = append(cmds, WaitForLibraryChangeCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}
