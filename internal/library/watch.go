package library

import (
	"github.com/fsnotify/fsnotify"
)

// Watch starts watching dir for filesystem changes. The caller owns
// the returned watcher and must Close it.
func Watch(dir string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// RelevantChange reports whether a watcher event should trigger a
// rescan: a playable file appearing, disappearing, or being renamed.
func RelevantChange(ev fsnotify.Event) bool {
	if !IsSupported(ev.Name) {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
