package library

import (
	"os"

	"github.com/dhowden/tag"
)

// TrackInfo holds tag metadata for a track. Fields fall back to
// filename-derived values when the file carries no tags.
type TrackInfo struct {
	Path   string
	Title  string
	Artist string
	Album  string
	Year   int
}

// ReadTrackInfo reads tag metadata from the file at path. On any
// failure it returns an info populated from the filename alone, so
// callers always get something displayable.
func ReadTrackInfo(path string) *TrackInfo {
	info := &TrackInfo{
		Path:  path,
		Title: TitleFromPath(path),
	}

	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return info
	}

	if t := m.Title(); t != "" {
		info.Title = t
	}
	info.Artist = m.Artist()
	info.Album = m.Album()
	info.Year = m.Year()
	return info
}
