package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"chime/internal/library"
	"chime/internal/player"
)

// tickInterval is the progress poll period.
const tickInterval = 100 * time.Millisecond

// seekCommitDelay is how long the seek gesture must stay quiet before
// the accumulated target is committed to the backend.
const seekCommitDelay = 400 * time.Millisecond

// TickCmd returns a command that sends TickMsg after the poll period.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchFinishedCmd waits for the backend's end-of-track notification.
// Only natural completion signals it; stops and track switches do not.
func WatchFinishedCmd(p player.Interface) tea.Cmd {
	return func() tea.Msg {
		<-p.FinishedChan()
		return TrackFinishedMsg{}
	}
}

// SeekCommitCmd schedules the seek gesture commit.
func SeekCommitCmd(version int) tea.Cmd {
	return tea.Tick(seekCommitDelay, func(_ time.Time) tea.Msg {
		return SeekCommitMsg{Version: version}
	})
}

// WaitForLibraryChangeCmd waits for a relevant filesystem event in
// the watched folder.
func WaitForLibraryChangeCmd(watcher *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if library.RelevantChange(ev) {
					// Brief debounce so batch copies settle.
					time.Sleep(100 * time.Millisecond)
					return LibraryChangedMsg{}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}
