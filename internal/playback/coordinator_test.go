package playback

import (
	"errors"
	"testing"
	"time"

	"chime/internal/library"
	"chime/internal/player"
	"chime/internal/playlist"
)

func newTestCoordinator(paths ...string) (*Coordinator, *player.Mock, *playlist.Queue) {
	mock := player.NewMock()
	q := playlist.New()
	tracks := make([]library.Track, len(paths))
	for i, p := range paths {
		tracks[i] = library.NewTrack(p)
	}
	q.Replace(tracks)
	return New(mock, q, nil), mock, q
}

func findCommand[T Command](cmds []Command) (T, bool) {
	for _, c := range cmds {
		if v, ok := c.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func TestSelectTrack_PlaysAndHighlights(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/b.mp3", "/m/a.wav", "/m/c.MP3")
	mock.SetDuration(90 * time.Second)

	cmds := c.SelectTrack(1)

	if got := mock.PlayCalls(); len(got) != 1 || got[0] != "/m/a.wav" {
		t.Fatalf("PlayCalls() = %v, want [/m/a.wav]", got)
	}
	if c.State() != StatePlaying {
		t.Errorf("State() = %v, want Playing", c.State())
	}
	if c.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", c.CurrentIndex())
	}

	hl, ok := findCommand[HighlightTrack](cmds)
	if !ok || hl.Index != 1 {
		t.Errorf("HighlightTrack = %+v (ok=%v), want index 1", hl, ok)
	}
	labels, ok := findCommand[SetLabels](cmds)
	if !ok || labels.Total != "01:30" || labels.Elapsed != "00:00" || labels.PlayPause != LabelPause {
		t.Errorf("SetLabels = %+v, want elapsed 00:00 total 01:30 pause", labels)
	}
	prog, ok := findCommand[SetProgress](cmds)
	if !ok || prog.Position != 0 || prog.Duration != 90*time.Second {
		t.Errorf("SetProgress = %+v, want 0/90s", prog)
	}
}

func TestSelectTrack_InvalidIndex(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/a.mp3")

	if cmds := c.SelectTrack(3); cmds != nil {
		t.Errorf("SelectTrack(3) = %v, want nil", cmds)
	}
	if len(mock.PlayCalls()) != 0 {
		t.Error("invalid index must not reach the backend")
	}
}

func TestSelectTrack_LoadFailureKeepsState(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/a.mp3", "/m/bad.mp3")
	if cmds := c.SelectTrack(0); len(cmds) == 0 {
		t.Fatal("initial select failed")
	}

	mock.SetPlayError(errors.New("corrupt frame"))
	cmds := c.SelectTrack(1)

	if _, ok := findCommand[ShowError](cmds); !ok {
		t.Error("load failure should surface a ShowError command")
	}
	if c.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0 (unchanged after failure)", c.CurrentIndex())
	}
}

func TestTogglePlayPause_PristineSessionStartsFirstTrack(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/a.mp3", "/m/b.mp3")

	cmds := c.TogglePlayPause()

	if got := mock.PlayCalls(); len(got) != 1 || got[0] != "/m/a.mp3" {
		t.Fatalf("PlayCalls() = %v, want first track", got)
	}
	hl, ok := findCommand[HighlightTrack](cmds)
	if !ok || hl.Index != 0 {
		t.Errorf("HighlightTrack = %+v, want index 0", hl)
	}
}

func TestTogglePlayPause_PristineEmptyListIsNoop(t *testing.T) {
	c, mock, _ := newTestCoordinator()

	if cmds := c.TogglePlayPause(); cmds != nil {
		t.Errorf("TogglePlayPause() = %v, want nil on empty list", cmds)
	}
	if len(mock.PlayCalls()) != 0 {
		t.Error("empty list must not start playback")
	}
}

func TestTogglePlayPause_Cycle(t *testing.T) {
	c, _, _ := newTestCoordinator("/m/a.mp3")
	c.SelectTrack(0)

	cmds := c.TogglePlayPause()
	if c.State() != StatePaused {
		t.Fatalf("State() = %v, want Paused", c.State())
	}
	labels, _ := findCommand[SetLabels](cmds)
	if labels.PlayPause != LabelResume {
		t.Errorf("PlayPause label = %q, want %q", labels.PlayPause, LabelResume)
	}

	cmds = c.TogglePlayPause()
	if c.State() != StatePlaying {
		t.Fatalf("State() = %v, want Playing", c.State())
	}
	labels, _ = findCommand[SetLabels](cmds)
	if labels.PlayPause != LabelPause {
		t.Errorf("PlayPause label = %q, want %q", labels.PlayPause, LabelPause)
	}
}

func TestSkipToNext_Cyclic(t *testing.T) {
	c, _, _ := newTestCoordinator("/m/a.mp3", "/m/b.mp3", "/m/c.mp3")
	c.SelectTrack(0)

	for i := 0; i < 3; i++ {
		c.SkipToNext()
	}
	if c.CurrentIndex() != 0 {
		t.Errorf("after 3 skips CurrentIndex() = %d, want 0", c.CurrentIndex())
	}
}

func TestSkipToNext_SingleTrackStaysPut(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/only.mp3")
	c.SelectTrack(0)
	before := len(mock.PlayCalls())

	if cmds := c.SkipToNext(); cmds != nil {
		t.Errorf("SkipToNext() = %v, want nil on single-track list", cmds)
	}
	if len(mock.PlayCalls()) != before {
		t.Error("single-track skip must not restart the track")
	}
	if c.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", c.CurrentIndex())
	}
}

func TestSkipToNext_NothingSelected(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/a.mp3")

	if cmds := c.SkipToNext(); cmds != nil {
		t.Errorf("SkipToNext() = %v, want nil before any selection", cmds)
	}
	if len(mock.PlayCalls()) != 0 {
		t.Error("skip before selection must not play")
	}
}

func TestShuffle_PermutesAndRestartsFromTop(t *testing.T) {
	paths := []string{"/m/a.mp3", "/m/b.mp3", "/m/c.mp3", "/m/d.mp3"}
	c, mock, q := newTestCoordinator(paths...)
	c.SelectTrack(2)

	cmds := c.Shuffle()

	contents, ok := findCommand[SetTrackListContents](cmds)
	if !ok {
		t.Fatal("Shuffle must push new list contents to the view")
	}
	if len(contents.Titles) != len(paths) {
		t.Errorf("shuffled list has %d titles, want %d", len(contents.Titles), len(paths))
	}
	// Same multiset of tracks.
	seen := map[string]int{}
	for _, tr := range q.Tracks() {
		seen[tr.Path]++
	}
	for _, p := range paths {
		if seen[p] != 1 {
			t.Errorf("track %q appears %d times after shuffle, want 1", p, seen[p])
		}
	}
	if c.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0 after shuffle", c.CurrentIndex())
	}
	// Playback restarted on the new first track.
	calls := mock.PlayCalls()
	if calls[len(calls)-1] != q.Track(0).Path {
		t.Errorf("last play = %q, want new first track %q", calls[len(calls)-1], q.Track(0).Path)
	}
}

func TestShuffle_EmptyListIsNoop(t *testing.T) {
	c, _, _ := newTestCoordinator()
	if cmds := c.Shuffle(); cmds != nil {
		t.Errorf("Shuffle() = %v, want nil on empty list", cmds)
	}
}

func TestTick_FrozenWhileSeeking(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/a.mp3")
	mock.SetDuration(3 * time.Minute)
	c.SelectTrack(0)
	c.BeginSeek()

	mock.SetPosition(42 * time.Second)
	for i := 0; i < 5; i++ {
		if cmds := c.Tick(); cmds != nil {
			t.Fatalf("Tick() while seeking = %v, want nil", cmds)
		}
	}
}

func TestTick_ReportsProgress(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/a.mp3")
	mock.SetDuration(3 * time.Minute)
	c.SelectTrack(0)
	mock.SetPosition(65 * time.Second)

	cmds := c.Tick()

	prog, ok := findCommand[SetProgress](cmds)
	if !ok || prog.Position != 65*time.Second || prog.Duration != 3*time.Minute {
		t.Errorf("SetProgress = %+v, want 65s/3m", prog)
	}
	labels, _ := findCommand[SetLabels](cmds)
	if labels.Elapsed != "01:05" || labels.Total != "03:00" {
		t.Errorf("labels = %+v, want 01:05/03:00", labels)
	}
}

func TestTick_IdleIsNoop(t *testing.T) {
	c, _, _ := newTestCoordinator("/m/a.mp3")
	if cmds := c.Tick(); cmds != nil {
		t.Errorf("Tick() = %v, want nil while idle", cmds)
	}
}

func TestEndSeek_ReflectedOnNextTick(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/a.mp3")
	mock.SetDuration(4 * time.Minute)
	c.SelectTrack(0)

	c.BeginSeek()
	cmds := c.EndSeek(150 * time.Second)

	if got := mock.SeekCalls(); len(got) != 1 || got[0] != 150*time.Second {
		t.Fatalf("SeekCalls() = %v, want exactly one seek to 150s", got)
	}
	prog, _ := findCommand[SetProgress](cmds)
	if prog.Position != 150*time.Second {
		t.Errorf("SetProgress.Position = %v, want 150s", prog.Position)
	}

	// The next tick reads the backend, which has caught up.
	cmds = c.Tick()
	prog, _ = findCommand[SetProgress](cmds)
	if prog.Position != 150*time.Second {
		t.Errorf("tick after seek reports %v, want 150s", prog.Position)
	}
}

func TestEndSeek_ClampedToDuration(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/a.mp3")
	mock.SetDuration(time.Minute)
	c.SelectTrack(0)

	c.BeginSeek()
	c.EndSeek(10 * time.Minute)

	if got := mock.SeekCalls(); len(got) != 1 || got[0] != time.Minute {
		t.Errorf("SeekCalls() = %v, want clamp to 1m", got)
	}
}

func TestEndSeek_NoTrackLoadedIsNoop(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/a.mp3")

	c.BeginSeek()
	if cmds := c.EndSeek(10 * time.Second); cmds != nil {
		t.Errorf("EndSeek with no track = %v, want nil", cmds)
	}
	if len(mock.SeekCalls()) != 0 {
		t.Error("seek with no track must not reach the backend")
	}
	if c.Seeking() {
		t.Error("Seeking() should be false after EndSeek")
	}
}

func TestSetVolume_ClampsAndNormalizes(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/a.mp3")

	c.SetVolume(50)
	if mock.Volume() != 0.5 {
		t.Errorf("backend volume = %v, want 0.5", mock.Volume())
	}
	c.SetVolume(250)
	if c.Volume() != 100 || mock.Volume() != 1.0 {
		t.Errorf("volume = %d/%v, want 100/1.0", c.Volume(), mock.Volume())
	}
	c.SetVolume(-5)
	if c.Volume() != 0 || mock.Volume() != 0 {
		t.Errorf("volume = %d/%v, want 0/0", c.Volume(), mock.Volume())
	}
}

func TestTrackFinished_AdvancesToNext(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/b.mp3", "/m/a.wav", "/m/c.MP3")
	c.SelectTrack(1)

	cmds := c.TrackFinished()

	if c.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", c.CurrentIndex())
	}
	calls := mock.PlayCalls()
	if calls[len(calls)-1] != "/m/c.MP3" {
		t.Errorf("last play = %q, want /m/c.MP3", calls[len(calls)-1])
	}
	hl, ok := findCommand[HighlightTrack](cmds)
	if !ok || hl.Index != 2 {
		t.Errorf("HighlightTrack = %+v, want index 2", hl)
	}
}

func TestTrackFinished_WrapsToFirst(t *testing.T) {
	c, _, _ := newTestCoordinator("/m/a.mp3", "/m/b.mp3")
	c.SelectTrack(1)

	c.TrackFinished()

	if c.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0 (wrapped)", c.CurrentIndex())
	}
}

func TestTrackFinished_SingleTrackWindsDown(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/only.mp3")
	c.SelectTrack(0)
	before := len(mock.PlayCalls())

	cmds := c.TrackFinished()

	if len(mock.PlayCalls()) != before {
		t.Error("single-track finish must not restart playback")
	}
	if c.State() != StateIdle {
		t.Errorf("State() = %v, want Idle", c.State())
	}
	labels, _ := findCommand[SetLabels](cmds)
	if labels.PlayPause != LabelPlay || labels.Elapsed != "00:00" {
		t.Errorf("labels = %+v, want reset to Play/00:00", labels)
	}
}

func TestTrackFinished_IgnoredWhilePaused(t *testing.T) {
	c, _, _ := newTestCoordinator("/m/a.mp3", "/m/b.mp3")
	c.SelectTrack(0)
	c.TogglePlayPause()

	if cmds := c.TrackFinished(); cmds != nil {
		t.Errorf("TrackFinished() while paused = %v, want nil", cmds)
	}
	if c.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", c.CurrentIndex())
	}
}

func TestHandleEvent_Routing(t *testing.T) {
	c, mock, _ := newTestCoordinator("/m/a.mp3", "/m/b.mp3")

	c.HandleEvent(TrackClicked{Index: 1})
	if c.CurrentIndex() != 1 {
		t.Errorf("TrackClicked: index = %d, want 1", c.CurrentIndex())
	}

	c.HandleEvent(VolumeChanged{Percent: 30})
	if mock.Volume() != 0.3 {
		t.Errorf("VolumeChanged: backend volume = %v, want 0.3", mock.Volume())
	}

	c.HandleEvent(SeekStarted{})
	if !c.Seeking() {
		t.Error("SeekStarted: Seeking() = false, want true")
	}
	c.HandleEvent(SeekEnded{Position: time.Second})
	if c.Seeking() {
		t.Error("SeekEnded: Seeking() = true, want false")
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{time.Minute, "01:00"},
		{90 * time.Second, "01:30"},
		{61 * time.Minute, "61:00"},
		{-time.Second, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.d); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
