package obj

import "github.com/milk9111/tiledot/common"

// Camera is the part of the level that is currently on screen.
type Camera struct {
	View common.Rect
}

// NewCamera creates a camera of the given screen size at the level origin.
func NewCamera(screenW, screenH float64) *Camera {
	return &Camera{View: common.NewRect(0, 0, screenW, screenH)}
}

// Follow centres the view on target and keeps it inside level. Each axis is
// clamped to 0 first and to level size minus view size second, so a level
// smaller than the view leaves the camera at a negative offset.
func (c *Camera) Follow(target common.Rect, level common.Rect) {
	if c == nil {
		return
	}
	cx, cy := target.Center()
	x := cx - c.View.Width/2
	y := cy - c.View.Height/2

	c.View.X = common.Clamp(x, level.X, level.Right()-c.View.Width)
	c.View.Y = common.Clamp(y, level.Y, level.Bottom()-c.View.Height)
}

// ToScreen converts a world rectangle to screen coordinates.
func (c *Camera) ToScreen(r common.Rect) common.Rect {
	if c == nil {
		return r
	}
	return r.Translate(-c.View.X, -c.View.Y)
}

// Sees reports whether r overlaps the view.
func (c *Camera) Sees(r common.Rect) bool {
	if c == nil {
		return false
	}
	return c.View.Intersects(r)
}
