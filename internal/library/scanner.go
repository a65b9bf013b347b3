package library

import (
	"os"
	"path/filepath"
)

// Tracks lists the playable files directly inside dir, in directory
// listing order. A missing or unreadable directory yields an empty
// slice rather than an error: an empty library is an informational
// condition, not a failure.
func Tracks(dir string) []Track {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var tracks []Track
	for _, e := range entries {
		if e.IsDir() || !IsSupported(e.Name()) {
			continue
		}
		tracks = append(tracks, NewTrack(filepath.Join(dir, e.Name())))
	}
	return tracks
}

// Playlists lists the names of the direct subdirectories of root. Each
// subdirectory is a candidate playlist; contents are not inspected, so
// empty playlists are listed too.
func Playlists(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

// PlaylistPath returns the directory holding the named playlist's tracks.
func PlaylistPath(root, name string) string {
	return filepath.Join(root, name)
}
