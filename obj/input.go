package obj

import "strings"

// Key names a logical input key, e.g. "up" or "a".
type Key string

const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
)

// ParseKey normalizes a key name from config or scripts.
func ParseKey(s string) Key {
	return Key(strings.ToLower(strings.TrimSpace(s)))
}

type EventKind int

const (
	KeyDownEvent EventKind = iota + 1
	KeyUpEvent
	QuitEvent
)

// Event is one polled input event.
type Event struct {
	Kind   EventKind
	Key    Key
	Repeat bool
}

// Delta is the per-axis velocity change contributed by a key, in units of
// the entity speed.
type Delta struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Bindings maps keys to velocity deltas.
type Bindings map[Key]Delta

// DefaultBindings binds the arrow keys and WASD.
func DefaultBindings() Bindings {
	return Bindings{
		KeyUp:    {Y: -1},
		KeyDown:  {Y: 1},
		KeyLeft:  {X: -1},
		KeyRight: {X: 1},
		"w":      {Y: -1},
		"s":      {Y: 1},
		"a":      {X: -1},
		"d":      {X: 1},
	}
}

// Apply adjusts d's velocity for ev. A key-down adds its delta scaled by
// speed and the matching key-up removes it; repeats and unbound keys are
// ignored. It returns true for a quit event.
func (b Bindings) Apply(d *Dot, ev Event, speed float64) bool {
	if ev.Kind == QuitEvent {
		return true
	}
	if d == nil || ev.Repeat {
		return false
	}
	delta, ok := b[ev.Key]
	if !ok {
		return false
	}
	sign := 1.0
	switch ev.Kind {
	case KeyDownEvent:
	case KeyUpEvent:
		sign = -1
	default:
		return false
	}
	d.VelX += sign * delta.X * speed
	d.VelY += sign * delta.Y * speed
	return false
}

// Velocity sums the deltas of the held keys, scaled by speed.
func (b Bindings) Velocity(held map[Key]bool, speed float64) (float64, float64) {
	var vx, vy float64
	for key, down := range held {
		if !down {
			continue
		}
		delta := b[key]
		vx += delta.X * speed
		vy += delta.Y * speed
	}
	return vx, vy
}
