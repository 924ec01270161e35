package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsWatched(t *testing.T) {
	cases := map[string]bool{
		"prefabs/dot.yaml":     true,
		"prefabs/dot.YML":      true,
		"levels/lazy.map":      true,
		"scripts/pilot.tengo":  true,
		"assets/dot.bmp":       false,
		"prefabs/.dot.yaml.sw": false,
	}
	for path, want := range cases {
		if got := IsWatched(path); got != want {
			t.Fatalf("IsWatched(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	target := filepath.Join(dir, "lazy.map")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte("0 0 0"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "lazy.map" {
			t.Fatalf("unexpected event for %s", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if got := w.Poll(); len(got) != 0 {
		t.Fatalf("closed watcher should have no events, got %v", got)
	}
}
