package common

// Circle is a centre point and radius. Radius is never negative.
type Circle struct {
	X, Y   float64
	Radius float64
}

// Intersects reports whether the circles overlap. Circles whose centres are
// exactly the sum of the radii apart do not.
func (c Circle) Intersects(other Circle) bool {
	total := c.Radius + other.Radius
	return DistanceSquared(c.X, c.Y, other.X, other.Y) < total*total
}

// IntersectsRect reports whether the closest point of r lies strictly inside c.
func (c Circle) IntersectsRect(r Rect) bool {
	cx, cy := ClosestPoint(c, r)
	return DistanceSquared(c.X, c.Y, cx, cy) < c.Radius*c.Radius
}

// ClosestPoint projects the centre of c onto r.
func ClosestPoint(c Circle, r Rect) (float64, float64) {
	return Clamp(c.X, r.X, r.Right()), Clamp(c.Y, r.Y, r.Bottom())
}

// Bounds returns the box enclosing c.
func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.Radius, Y: c.Y - c.Radius, Width: c.Radius * 2, Height: c.Radius * 2}
}
