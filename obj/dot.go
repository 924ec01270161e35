package obj

import "github.com/milk9111/tiledot/common"

// Blocker answers whether a collider is obstructed at its current position.
type Blocker interface {
	Blocked(c Collider) bool
}

// Dot is the player-controlled entity. X and Y are the top-left of the dot
// for box and pixel colliders, and the centre for circle colliders.
type Dot struct {
	X, Y       float64
	VelX, VelY float64
	Width      float64
	Height     float64

	collider Collider
}

// NewDot places a dot at (x, y) with the given collider. A nil collider
// defaults to a box matching the dot size.
func NewDot(x, y, w, h float64, c Collider) *Dot {
	if c == nil {
		c = NewBoxCollider(w, h)
	}
	d := &Dot{X: x, Y: y, Width: w, Height: h, collider: c}
	d.shiftCollider()
	return d
}

// Collider returns the dot's collider at its current position.
func (d *Dot) Collider() Collider {
	if d == nil {
		return nil
	}
	return d.collider
}

// Box is the dot's visual rectangle in world space.
func (d *Dot) Box() common.Rect {
	if d == nil {
		return common.Rect{}
	}
	if _, ok := d.collider.(*CircleCollider); ok {
		return common.Rect{X: d.X - d.Width/2, Y: d.Y - d.Height/2, Width: d.Width, Height: d.Height}
	}
	return common.Rect{X: d.X, Y: d.Y, Width: d.Width, Height: d.Height}
}

// Move applies velocity one axis at a time. A step on an axis is undone when
// the collider leaves bounds or world reports it blocked. X is resolved
// before Y, so the dot slides along a wall it cannot enter.
func (d *Dot) Move(world Blocker, bounds common.Rect) {
	if d == nil {
		return
	}

	d.X += d.VelX
	d.shiftCollider()
	if d.rejected(world, bounds) {
		d.X -= d.VelX
		d.shiftCollider()
	}

	d.Y += d.VelY
	d.shiftCollider()
	if d.rejected(world, bounds) {
		d.Y -= d.VelY
		d.shiftCollider()
	}
}

// Place puts the dot at (x, y) without any collision checks.
func (d *Dot) Place(x, y float64) {
	if d == nil {
		return
	}
	d.X, d.Y = x, y
	d.shiftCollider()
}

func (d *Dot) rejected(world Blocker, bounds common.Rect) bool {
	if !bounds.Contains(d.collider.Bounds()) {
		return true
	}
	return world != nil && world.Blocked(d.collider)
}

func (d *Dot) shiftCollider() {
	d.collider.moveTo(d.X, d.Y)
}

// Obstacles is a fixed set of blocking shapes.
type Obstacles struct {
	Rects   []common.Rect
	Circles []common.Circle
}

func (o Obstacles) Blocked(c Collider) bool {
	if c == nil {
		return false
	}
	for _, r := range o.Rects {
		if c.IntersectsRect(r) {
			return true
		}
	}
	for _, circle := range o.Circles {
		if c.IntersectsCircle(circle) {
			return true
		}
	}
	return false
}
