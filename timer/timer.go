// Package timer provides a pausable stopwatch and a frame rate cap.
package timer

import "time"

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

// Timer measures elapsed time and can be paused without losing it.
type Timer struct {
	now Clock

	start   time.Time
	paused  time.Duration
	started bool
	isPause bool
}

// New returns a stopped timer. A nil clock uses time.Now.
func New(clock Clock) *Timer {
	if clock == nil {
		clock = time.Now
	}
	return &Timer{now: clock}
}

func (t *Timer) Start() {
	t.started = true
	t.isPause = false
	t.start = t.now()
	t.paused = 0
}

func (t *Timer) Stop() {
	t.started = false
	t.isPause = false
	t.start = time.Time{}
	t.paused = 0
}

// Pause freezes Ticks until Unpause. It is a no-op unless the timer is
// running.
func (t *Timer) Pause() {
	if !t.started || t.isPause {
		return
	}
	t.isPause = true
	t.paused = t.now().Sub(t.start)
	t.start = time.Time{}
}

func (t *Timer) Unpause() {
	if !t.started || !t.isPause {
		return
	}
	t.isPause = false
	t.start = t.now().Add(-t.paused)
	t.paused = 0
}

// Ticks is the running time, zero for a stopped timer.
func (t *Timer) Ticks() time.Duration {
	if !t.started {
		return 0
	}
	if t.isPause {
		return t.paused
	}
	return t.now().Sub(t.start)
}

func (t *Timer) Started() bool {
	return t.started
}

func (t *Timer) Paused() bool {
	return t.isPause && t.started
}

// FPS computes the average frame rate for frames counted over elapsed.
func FPS(frames int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(frames) / elapsed.Seconds()
}
