package library

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestTracks_CaseInsensitiveExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp3", "a.wav", "c.MP3", "notes.txt", "cover.jpg"} {
		touch(t, filepath.Join(dir, name))
	}

	tracks := Tracks(dir)

	want := []string{"a", "b", "c"} // directory listing order is lexicographic
	if len(tracks) != len(want) {
		t.Fatalf("Tracks() returned %d tracks, want %d", len(tracks), len(want))
	}
	for i, w := range want {
		if tracks[i].Title != w {
			t.Errorf("tracks[%d].Title = %q, want %q", i, tracks[i].Title, w)
		}
	}
}

func TestTracks_MissingDir(t *testing.T) {
	tracks := Tracks(filepath.Join(t.TempDir(), "does-not-exist"))
	if len(tracks) != 0 {
		t.Errorf("Tracks() on missing dir = %d tracks, want 0", len(tracks))
	}
}

func TestTracks_NoRecursion(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(sub, "deep.mp3"))
	touch(t, filepath.Join(dir, "top.mp3"))

	tracks := Tracks(dir)
	if len(tracks) != 1 || tracks[0].Title != "top" {
		t.Errorf("Tracks() = %v, want only top.mp3", tracks)
	}
}

func TestPlaylists(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"Chill", "Workout", "Empty"} {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	touch(t, filepath.Join(root, "Workout", "run.mp3"))
	touch(t, filepath.Join(root, "loose.mp3"))

	names := Playlists(root)

	// Empty playlists are listed; loose files are not.
	want := map[string]bool{"Chill": true, "Workout": true, "Empty": true}
	if len(names) != 3 {
		t.Fatalf("Playlists() = %v, want 3 names", names)
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected playlist %q", n)
		}
	}
}

func TestPlaylists_MissingRoot(t *testing.T) {
	if names := Playlists(filepath.Join(t.TempDir(), "nope")); len(names) != 0 {
		t.Errorf("Playlists() on missing root = %v, want empty", names)
	}
}

func TestTitleFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/music/Song Name.mp3", "Song Name"},
		{"/music/track.WAV", "track"},
		{"no-ext", "no-ext"},
		{"/a/b/dotted.name.mp3", "dotted.name"},
	}
	for _, tt := range tests {
		if got := TitleFromPath(tt.path); got != tt.want {
			t.Errorf("TitleFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.mp3", true},
		{"a.MP3", true},
		{"a.wav", true},
		{"a.Wav", true},
		{"a.flac", false},
		{"a.txt", false},
		{"mp3", false},
	}
	for _, tt := range tests {
		if got := IsSupported(tt.name); got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
