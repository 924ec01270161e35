package obj

import (
	"math/rand/v2"
	"testing"
)

func TestBindingsApply(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		name   string
		events []Event
		wantVX float64
		wantVY float64
	}{
		{"right_down", []Event{{Kind: KeyDownEvent, Key: KeyRight}}, 5, 0},
		{"right_down_up", []Event{{Kind: KeyDownEvent, Key: KeyRight}, {Kind: KeyUpEvent, Key: KeyRight}}, 0, 0},
		{"opposite_keys_cancel", []Event{{Kind: KeyDownEvent, Key: KeyLeft}, {Kind: KeyDownEvent, Key: KeyRight}}, 0, 0},
		{"repeat_ignored", []Event{{Kind: KeyDownEvent, Key: KeyUp}, {Kind: KeyDownEvent, Key: KeyUp, Repeat: true}}, 0, -5},
		{"unbound_ignored", []Event{{Kind: KeyDownEvent, Key: "space"}}, 0, 0},
		{"diagonal_wasd", []Event{{Kind: KeyDownEvent, Key: "s"}, {Kind: KeyDownEvent, Key: "d"}}, 5, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDot(0, 0, 20, 20, nil)
			for _, ev := range tc.events {
				if b.Apply(d, ev, 5) {
					t.Fatalf("unexpected quit")
				}
			}
			if d.VelX != tc.wantVX || d.VelY != tc.wantVY {
				t.Fatalf("velocity (%v,%v), want (%v,%v)", d.VelX, d.VelY, tc.wantVX, tc.wantVY)
			}
		})
	}

	t.Run("quit", func(t *testing.T) {
		if !b.Apply(nil, Event{Kind: QuitEvent}, 5) {
			t.Fatalf("quit should be reported")
		}
	})
}

func TestBindingsVelocity(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		name   string
		held   map[Key]bool
		wantVX float64
		wantVY float64
	}{
		{"none", nil, 0, 0},
		{"right", map[Key]bool{KeyRight: true}, 3, 0},
		{"released_entry", map[Key]bool{KeyRight: false}, 0, 0},
		{"up_left", map[Key]bool{KeyUp: true, "a": true}, -3, -3},
		{"unbound", map[Key]bool{"space": true}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vx, vy := b.Velocity(tc.held, 3)
			if vx != tc.wantVX || vy != tc.wantVY {
				t.Fatalf("velocity (%v,%v), want (%v,%v)", vx, vy, tc.wantVX, tc.wantVY)
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	if ParseKey("  Left ") != KeyLeft {
		t.Fatalf("unexpected key %q", ParseKey("  Left "))
	}
}

func TestEmitter(t *testing.T) {
	e := NewEmitter(20, 100, 100, rand.New(rand.NewPCG(7, 7)))
	if len(e.Particles()) != 20 {
		t.Fatalf("expected 20 particles, got %d", len(e.Particles()))
	}
	for _, p := range e.Particles() {
		if p.X < 95 || p.X >= 120 || p.Y < 95 || p.Y >= 120 {
			t.Fatalf("particle out of spawn range: %+v", p)
		}
		if p.Frame < 0 || p.Frame >= 5 {
			t.Fatalf("unexpected start frame %d", p.Frame)
		}
	}

	// after enough frames every particle has respawned near the new point
	for i := 0; i < 12; i++ {
		e.Update(500, 500)
	}
	for _, p := range e.Particles() {
		if p.X < 495 || p.X >= 520 {
			t.Fatalf("particle did not respawn at new position: %+v", p)
		}
		if p.Dead() {
			t.Fatalf("live set contains a dead particle: %+v", p)
		}
	}
}
