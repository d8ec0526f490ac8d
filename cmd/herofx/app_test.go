package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/labstack/gommon/log"

	"github.com/daml/herofx/audio"
	"github.com/daml/herofx/engine"
	"github.com/daml/herofx/rotator"
)

// MockScreen is a minimal mock for tcell.Screen used in tests
type MockScreen struct {
	tcell.Screen
	width, height int
	shows         int
	syncs         int
}

func (m *MockScreen) Size() (int, int) {
	if m.width == 0 && m.height == 0 {
		return 80, 24 // Default size
	}
	return m.width, m.height
}

func (m *MockScreen) Show()                                                            { m.shows++ }
func (m *MockScreen) Sync()                                                            { m.syncs++ }
func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {}

// countingPlayer records how many cues reached the output
type countingPlayer struct {
	plays int
}

func (p *countingPlayer) Play(beep.Streamer) { p.plays++ }
func (p *countingPlayer) Close()             {}

type fixture struct {
	sched   *engine.MockScheduler
	screen  *MockScreen
	player  *countingPlayer
	app     *app
	stopped int
}

func newFixture(t *testing.T, path string) *fixture {
	t.Helper()
	doc, err := loadContent(path)
	if err != nil {
		t.Fatalf("loadContent failed: %v", err)
	}
	f := &fixture{
		sched:  engine.NewMockScheduler(time.Unix(0, 0)),
		screen: &MockScreen{},
		player: &countingPlayer{},
	}
	cue := audio.NewCueWithPlayer(f.player, beep.SampleRate(44100), f.sched.Now)
	logger := log.New("test")
	logger.SetLevel(log.OFF)

	a, err := newApp(f.sched, f.screen, doc, path, cue, logger, func() { f.stopped++ })
	if err != nil {
		t.Fatalf("newApp failed: %v", err)
	}
	f.app = a
	return f
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func writeContent(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestAppDrawsAndRotates(t *testing.T) {
	f := newFixture(t, "")

	f.sched.StepFrame()
	if f.app.drawn != 1 || f.screen.shows != 1 {
		t.Fatalf("Expected one frame drawn, got %d (%d shows)", f.app.drawn, f.screen.shows)
	}

	f.sched.Advance(3 * time.Second)
	if got := f.app.rot.Snapshot().Current; got != 1 {
		t.Errorf("Expected rotation to item 1, got %d", got)
	}
	if f.player.plays != 1 {
		t.Errorf("Expected one cue per rotation, got %d", f.player.plays)
	}

	// The exit clear is not a rotation
	f.sched.Advance(600 * time.Millisecond)
	if f.player.plays != 1 {
		t.Errorf("Expected no cue on exit clear, got %d", f.player.plays)
	}

	f.sched.StepFrames(3, 16*time.Millisecond)
	if f.app.drawn != 4 {
		t.Errorf("Expected a frame per step, got %d", f.app.drawn)
	}
}

func TestAppQuitStopsEverything(t *testing.T) {
	f := newFixture(t, "")
	f.sched.StepFrame()

	f.app.handle(key('q'))
	if f.stopped != 1 {
		t.Fatalf("Expected stop called once, got %d", f.stopped)
	}
	if f.app.rot.Phase() != rotator.PhaseIdle {
		t.Error("Expected rotator torn down")
	}
	if f.app.anim.Running() {
		t.Error("Expected animator torn down")
	}

	drawn := f.app.drawn
	f.sched.StepFrames(5, 16*time.Millisecond)
	f.sched.Advance(10 * time.Second)
	if f.app.drawn != drawn {
		t.Error("Expected no frames after quit")
	}

	f.app.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if f.stopped != 1 {
		t.Error("Expected shutdown to be idempotent")
	}
}

func TestAppPointerDrivesAnimator(t *testing.T) {
	f := newFixture(t, "")

	f.app.handle(tcell.NewEventMouse(19, 5, tcell.ButtonNone, tcell.ModNone))
	target := f.app.anim.Target()
	if target.X != 24.375 || target.Y != 22.916666666666668 {
		t.Errorf("Unexpected target %+v", target)
	}
	if !f.app.anim.Inside() {
		t.Error("Expected pointer inside after motion")
	}

	f.app.handle(&tcell.EventFocus{Focused: false})
	if f.app.anim.Inside() {
		t.Error("Expected pointer outside after focus loss")
	}
}

func TestAppJoinScrollsAndReturns(t *testing.T) {
	f := newFixture(t, "")
	f.sched.StepFrame()
	target := f.app.hero.JoinOffset()
	if target != 23 {
		t.Fatalf("Expected join offset 23 on an 80x24 screen, got %v", target)
	}

	f.app.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if !f.app.scroll.Active() {
		t.Fatal("Expected scroll active after join")
	}

	// Repeated joins while scrolling are ignored
	f.app.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	f.sched.StepFrames(200, 16*time.Millisecond)
	if f.app.scroll.Active() {
		t.Fatal("Expected scroll finished")
	}
	if got := f.app.scroll.Offset(); got != target {
		t.Errorf("Expected offset %v, got %v", target, got)
	}

	// Joining again from the join section goes back up
	f.app.handle(key('j'))
	f.sched.StepFrames(200, 16*time.Millisecond)
	if got := f.app.scroll.Offset(); got != 0 {
		t.Errorf("Expected offset back to 0, got %v", got)
	}
}

func TestAppResizeSyncs(t *testing.T) {
	f := newFixture(t, "")
	f.app.handle(tcell.NewEventResize(100, 30))
	if f.screen.syncs != 1 {
		t.Errorf("Expected one sync, got %d", f.screen.syncs)
	}
}

func TestAppResizeKeepsJoinSection(t *testing.T) {
	f := newFixture(t, "")
	f.sched.StepFrame()

	// Resizing on the banner leaves the offset alone
	f.screen.width, f.screen.height = 80, 30
	f.app.handle(tcell.NewEventResize(80, 30))
	if got := f.app.scroll.Offset(); got != 0 {
		t.Errorf("Expected offset 0 on the banner, got %v", got)
	}

	f.sched.StepFrame()
	f.app.join()
	f.sched.StepFrames(200, 16*time.Millisecond)
	if got := f.app.scroll.Offset(); got != 29 {
		t.Fatalf("Expected join section at 29, got %v", got)
	}

	f.screen.width, f.screen.height = 80, 20
	f.app.handle(tcell.NewEventResize(80, 20))
	if got := f.app.scroll.Offset(); got != 19 {
		t.Errorf("Expected join section to follow the new height, got %v", got)
	}
	if f.app.scroll.Active() {
		t.Error("Expected no scroll animation on resize")
	}

	// Next join goes back to the banner
	f.sched.StepFrame()
	f.app.join()
	f.sched.StepFrames(200, 16*time.Millisecond)
	if got := f.app.scroll.Offset(); got != 0 {
		t.Errorf("Expected offset back to 0, got %v", got)
	}
}

func TestAppReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hero.yaml")
	writeContent(t, path, "rotator:\n  items: [one, two]\n  delay_ms: 1000\n")
	f := newFixture(t, path)

	f.sched.Advance(1 * time.Second)
	if got := f.app.rot.Snapshot().Text(); got != "two" {
		t.Fatalf("Expected rotation to \"two\", got %q", got)
	}

	writeContent(t, path, "rotator:\n  items: [red, green, blue]\n  delay_ms: 1000\nambient:\n  points: 5\n")
	f.app.handle(key('r'))

	snap := f.app.rot.Snapshot()
	if snap.Text() != "red" || len(snap.Items) != 3 {
		t.Errorf("Expected reload to restart on \"red\", got %q of %d", snap.Text(), len(snap.Items))
	}
	if got := len(f.app.anim.Points()); got != 5 {
		t.Errorf("Expected animator remounted with 5 points, got %d", got)
	}

	// A broken file leaves the running hero alone
	writeContent(t, path, "rotator: [unclosed")
	if err := f.app.reload(); err == nil {
		t.Fatal("Expected reload error for malformed content")
	}
	f.sched.Advance(1 * time.Second)
	if got := f.app.rot.Snapshot().Text(); got != "green" {
		t.Errorf("Expected rotation to continue to \"green\", got %q", got)
	}
}

func TestAppReloadWithoutFile(t *testing.T) {
	f := newFixture(t, "")
	before := f.app.rot.Snapshot().Items
	if err := f.app.reload(); err != nil {
		t.Errorf("Expected embedded reload to be a no-op, got %v", err)
	}
	if len(f.app.rot.Snapshot().Items) != len(before) {
		t.Error("Expected items unchanged")
	}
}

func TestAwaitMount(t *testing.T) {
	// Loop ended before the mount ran, nothing will ever report
	ready := make(chan error, 1)
	loopDone := make(chan struct{})
	close(loopDone)
	result := make(chan bool, 1)
	go func() {
		mounted, _ := awaitMount(ready, loopDone)
		result <- mounted
	}()
	select {
	case mounted := <-result:
		if mounted {
			t.Error("Expected no mount when the loop ended first")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("awaitMount blocked after the loop ended")
	}

	// A mount result that raced the loop ending is still reported
	ready <- errors.New("mount failed")
	if mounted, err := awaitMount(ready, loopDone); mounted || err == nil {
		t.Errorf("Expected mount error, got mounted=%v err=%v", mounted, err)
	}

	ready <- nil
	if mounted, err := awaitMount(ready, make(chan struct{})); !mounted || err != nil {
		t.Errorf("Expected mounted, got mounted=%v err=%v", mounted, err)
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{60, time.Second / 60},
		{1, time.Second / 10},
		{1000, time.Second / 120},
	}
	for _, tt := range tests {
		if got := frameInterval(tt.fps); got != tt.want {
			t.Errorf("frameInterval(%d) = %v, expected %v", tt.fps, got, tt.want)
		}
	}
}

func TestLoadContentMissingFile(t *testing.T) {
	if _, err := loadContent(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("Expected error for missing content file")
	}
	doc, err := loadContent("")
	if err != nil || doc == nil {
		t.Errorf("Expected embedded content, got %v", err)
	}
}
