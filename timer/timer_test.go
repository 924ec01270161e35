package timer

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestTimerLifecycle(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	tm := New(clk.now)

	steps := []struct {
		name      string
		do        func()
		advance   time.Duration
		wantTicks time.Duration
		started   bool
		paused    bool
	}{
		{"stopped", func() {}, time.Second, 0, false, false},
		{"pause_before_start_ignored", tm.Pause, time.Second, 0, false, false},
		{"start", tm.Start, 2 * time.Second, 2 * time.Second, true, false},
		{"pause", tm.Pause, 5 * time.Second, 2 * time.Second, true, true},
		{"pause_again_ignored", tm.Pause, time.Second, 2 * time.Second, true, true},
		{"unpause", tm.Unpause, 3 * time.Second, 5 * time.Second, true, false},
		{"unpause_again_ignored", tm.Unpause, 0, 5 * time.Second, true, false},
		{"restart", tm.Start, 500 * time.Millisecond, 500 * time.Millisecond, true, false},
		{"stop", tm.Stop, time.Second, 0, false, false},
	}

	for _, s := range steps {
		t.Run(s.name, func(t *testing.T) {
			s.do()
			clk.advance(s.advance)
			if got := tm.Ticks(); got != s.wantTicks {
				t.Fatalf("ticks = %v, want %v", got, s.wantTicks)
			}
			if tm.Started() != s.started || tm.Paused() != s.paused {
				t.Fatalf("started=%v paused=%v, want %v %v", tm.Started(), tm.Paused(), s.started, s.paused)
			}
		})
	}
}

func TestFPS(t *testing.T) {
	if got := FPS(120, 2*time.Second); got != 60 {
		t.Fatalf("fps = %v", got)
	}
	if got := FPS(10, 0); got != 0 {
		t.Fatalf("fps = %v", got)
	}
}
