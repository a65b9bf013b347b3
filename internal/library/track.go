package library

import (
	"path/filepath"
	"strings"
)

// Track is a single playable audio file. The path is its identity.
type Track struct {
	Path  string
	Title string
}

// supported audio extensions, matched case-insensitively.
var supportedExtensions = map[string]bool{
	".mp3": true,
	".wav": true,
}

// IsSupported reports whether the file name has a playable extension.
func IsSupported(name string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(name))]
}

// TitleFromPath derives the display title: base name without extension.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// NewTrack builds a Track for the given path.
func NewTrack(path string) Track {
	return Track{Path: path, Title: TitleFromPath(path)}
}
