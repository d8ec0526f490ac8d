package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsTargetOnly(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "hero.yaml")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(target, []byte("rotator:\n  items: [a]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(target)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case name := <-w.Events:
		t.Fatalf("Unexpected event for %s", name)
	case <-time.After(200 * time.Millisecond):
	}

	if err := os.WriteFile(target, []byte("rotator:\n  items: [a, b]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case name := <-w.Events:
		abs, _ := filepath.Abs(target)
		if name != abs {
			t.Errorf("Expected event for %s, got %s", abs, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("No event for target write")
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(filepath.Join(dir, "hero.yaml"))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Expected Events closed")
	}
}

func TestWatcherCoalescesBurst(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "hero.yaml")
	if err := os.WriteFile(target, []byte("rotator:\n  items: [a]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(target)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(target, []byte("rotator:\n  items: [a, b]\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-w.Events:
	case <-time.After(2 * time.Second):
		t.Fatal("No event for burst")
	}
	select {
	case name := <-w.Events:
		t.Errorf("Expected a single event for the burst, got another for %s", name)
	case <-time.After(300 * time.Millisecond):
	}
}
