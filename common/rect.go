package common

// Rect is an axis-aligned box. Width and Height are never negative.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects reports whether the open interiors of r and other overlap.
// Rects that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Bottom() <= other.Y || r.Y >= other.Bottom() {
		return false
	}
	if r.Right() <= other.X || r.X >= other.Right() {
		return false
	}
	return true
}

// Contains reports whether other lies entirely inside r. Shared edges count.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// AnyIntersect reports whether any box in a intersects any box in b.
func AnyIntersect(a, b []Rect) bool {
	for _, ra := range a {
		for _, rb := range b {
			if ra.Intersects(rb) {
				return true
			}
		}
	}
	return false
}
