package common

// Clamp restricts v to [lo, hi]. The lower bound is applied first, so when
// hi < lo the result is hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// DistanceSquared returns the squared distance between two points.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}
