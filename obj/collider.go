package obj

import "github.com/milk9111/tiledot/common"

// Collider is the shape attached to an entity for collision tests. Its
// position is owned by the entity and recomputed from it on every move.
type Collider interface {
	Bounds() common.Rect
	IntersectsRect(r common.Rect) bool
	IntersectsCircle(c common.Circle) bool
	moveTo(x, y float64)
}

// BoxCollider is a single AABB with its top-left at the entity position.
type BoxCollider struct {
	Box common.Rect
}

func NewBoxCollider(w, h float64) *BoxCollider {
	return &BoxCollider{Box: common.NewRect(0, 0, w, h)}
}

func (b *BoxCollider) Bounds() common.Rect { return b.Box }

func (b *BoxCollider) IntersectsRect(r common.Rect) bool {
	return b.Box.Intersects(r)
}

func (b *BoxCollider) IntersectsCircle(c common.Circle) bool {
	return c.IntersectsRect(b.Box)
}

func (b *BoxCollider) moveTo(x, y float64) {
	b.Box.X = x
	b.Box.Y = y
}

// PixelRow is the size of one horizontal slice of a PixelCollider.
type PixelRow struct {
	Width  float64 `yaml:"w"`
	Height float64 `yaml:"h"`
}

// DotRows approximates a 20x20 round sprite with 11 stacked slices.
var DotRows = []PixelRow{
	{6, 1}, {10, 1}, {14, 1}, {16, 2}, {18, 2}, {20, 6},
	{18, 2}, {16, 2}, {14, 1}, {10, 1}, {6, 1},
}

// PixelCollider approximates a sprite outline with stacked row boxes, each
// centred horizontally within the entity width.
type PixelCollider struct {
	width float64
	rows  []PixelRow
	boxes []common.Rect
}

func NewPixelCollider(width float64, rows []PixelRow) *PixelCollider {
	p := &PixelCollider{
		width: width,
		rows:  append([]PixelRow(nil), rows...),
		boxes: make([]common.Rect, len(rows)),
	}
	p.moveTo(0, 0)
	return p
}

// Boxes returns the current row boxes.
func (p *PixelCollider) Boxes() []common.Rect {
	return p.boxes
}

func (p *PixelCollider) Bounds() common.Rect {
	if len(p.boxes) == 0 {
		return common.Rect{}
	}
	minX, minY := p.boxes[0].X, p.boxes[0].Y
	maxX, maxY := p.boxes[0].Right(), p.boxes[0].Bottom()
	for _, b := range p.boxes[1:] {
		minX = min(minX, b.X)
		minY = min(minY, b.Y)
		maxX = max(maxX, b.Right())
		maxY = max(maxY, b.Bottom())
	}
	return common.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func (p *PixelCollider) IntersectsRect(r common.Rect) bool {
	for _, b := range p.boxes {
		if b.Intersects(r) {
			return true
		}
	}
	return false
}

func (p *PixelCollider) IntersectsCircle(c common.Circle) bool {
	for _, b := range p.boxes {
		if c.IntersectsRect(b) {
			return true
		}
	}
	return false
}

// IntersectsPixels is the per-pixel test against another row set.
func (p *PixelCollider) IntersectsPixels(other *PixelCollider) bool {
	if other == nil {
		return false
	}
	return common.AnyIntersect(p.boxes, other.boxes)
}

func (p *PixelCollider) moveTo(x, y float64) {
	offset := 0.0
	for i, row := range p.rows {
		p.boxes[i] = common.Rect{
			X:      x + (p.width-row.Width)/2,
			Y:      y + offset,
			Width:  row.Width,
			Height: row.Height,
		}
		offset += row.Height
	}
}

// CircleCollider is centred on the entity position.
type CircleCollider struct {
	Circle common.Circle
}

func NewCircleCollider(radius float64) *CircleCollider {
	return &CircleCollider{Circle: common.Circle{Radius: max(radius, 0)}}
}

func (c *CircleCollider) Bounds() common.Rect { return c.Circle.Bounds() }

func (c *CircleCollider) IntersectsRect(r common.Rect) bool {
	return c.Circle.IntersectsRect(r)
}

func (c *CircleCollider) IntersectsCircle(o common.Circle) bool {
	return c.Circle.Intersects(o)
}

func (c *CircleCollider) moveTo(x, y float64) {
	c.Circle.X = x
	c.Circle.Y = y
}
