package common

import "testing"

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"shared_right_edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"shared_bottom_edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"shared_corner", Rect{0, 0, 10, 10}, Rect{10, 10, 10, 10}, false},
		{"inside", Rect{0, 0, 100, 100}, Rect{40, 40, 5, 5}, true},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{30, 30, 10, 10}, false},
		{"self", Rect{3, 4, 7, 8}, Rect{3, 4, 7, 8}, true},
		{"zero_size_self", Rect{3, 4, 0, 0}, Rect{3, 4, 0, 0}, false},
		{"one_unit_overlap", Rect{0, 0, 10, 10}, Rect{9, 9, 10, 10}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(c.b); got != c.want {
				t.Fatalf("a.Intersects(b) = %v, want %v", got, c.want)
			}
			if got := c.b.Intersects(c.a); got != c.want {
				t.Fatalf("b.Intersects(a) = %v, want %v (not symmetric)", got, c.want)
			}
		})
	}
}

func TestRectIntersectsSymmetryGrid(t *testing.T) {
	base := Rect{X: 10, Y: 10, Width: 20, Height: 15}
	for x := -30.0; x <= 50; x += 5 {
		for y := -30.0; y <= 50; y += 5 {
			other := Rect{X: x, Y: y, Width: 20, Height: 20}
			if base.Intersects(other) != other.Intersects(base) {
				t.Fatalf("asymmetric result for %+v vs %+v", base, other)
			}
		}
	}
}

func TestCircleIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Circle
		want bool
	}{
		{"distance_7", Circle{0, 0, 5}, Circle{7, 0, 5}, true},
		{"distance_equals_radii", Circle{0, 0, 5}, Circle{10, 0, 5}, false},
		{"far", Circle{0, 0, 5}, Circle{30, 30, 5}, false},
		{"concentric", Circle{4, 4, 1}, Circle{4, 4, 3}, true},
		{"diagonal", Circle{0, 0, 5}, Circle{6, 6, 5}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(c.b); got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
			if got := c.b.Intersects(c.a); got != c.want {
				t.Fatalf("reverse got %v, want %v", got, c.want)
			}
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	box := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	cases := []struct {
		name string
		c    Circle
		want bool
		cx   float64
		cy   float64
	}{
		{"centre_inside", Circle{20, 20, 1}, true, 20, 20},
		{"left_touching", Circle{5, 20, 5}, false, 10, 20},
		{"left_overlap", Circle{6, 20, 5}, true, 10, 20},
		{"corner_miss", Circle{5, 5, 7}, false, 10, 10},
		{"corner_hit", Circle{5, 5, 7.1}, true, 10, 10},
		{"below", Circle{20, 40, 5}, false, 20, 30},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := ClosestPoint(c.c, box)
			if x != c.cx || y != c.cy {
				t.Fatalf("closest point = (%v,%v), want (%v,%v)", x, y, c.cx, c.cy)
			}
			if got := c.c.IntersectsRect(box); got != c.want {
				t.Fatalf("IntersectsRect = %v, want %v", got, c.want)
			}
		})
	}
}

func TestAnyIntersect(t *testing.T) {
	a := []Rect{{0, 0, 6, 1}, {0, 1, 10, 1}, {0, 2, 14, 1}}
	t.Run("hit_second_row", func(t *testing.T) {
		b := []Rect{{9, 1, 5, 5}}
		if !AnyIntersect(a, b) {
			t.Fatalf("expected a hit")
		}
	})
	t.Run("miss_between_rows", func(t *testing.T) {
		b := []Rect{{14, 0, 5, 3}}
		if AnyIntersect(a, b) {
			t.Fatalf("expected no hit")
		}
	})
	t.Run("empty", func(t *testing.T) {
		if AnyIntersect(nil, a) {
			t.Fatalf("empty set should never intersect")
		}
	})
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Fatalf("got %v", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Fatalf("got %v", got)
	}
	// inverted bounds resolve to the upper bound
	if got := Clamp(3, 0, -20); got != -20 {
		t.Fatalf("got %v", got)
	}
}
