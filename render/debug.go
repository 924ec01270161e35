package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// DrawSpace outlines the shapes of a Chipmunk space, shifted by the camera
// origin (camX, camY).
func DrawSpace(screen *ebiten.Image, space *cp.Space, camX, camY float64) {
	if screen == nil || space == nil {
		return
	}
	cp.DrawSpace(space, &spaceDrawer{screen: screen, camX: camX, camY: camY})
}

type spaceDrawer struct {
	screen     *ebiten.Image
	camX, camY float64
}

func (d *spaceDrawer) line(a, b cp.Vector, c color.Color) {
	vector.StrokeLine(d.screen, float32(a.X-d.camX), float32(a.Y-d.camY), float32(b.X-d.camX), float32(b.Y-d.camY), 1, c, false)
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, _, radius float64, outline, _ cp.FColor, _ interface{}) {
	vector.StrokeCircle(d.screen, float32(pos.X-d.camX), float32(pos.Y-d.camY), float32(radius), 1, toNRGBA(outline), true)
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, _ interface{}) {
	d.line(a, b, toNRGBA(fill))
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, _ float64, outline, _ cp.FColor, _ interface{}) {
	d.line(a, b, toNRGBA(outline))
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, _ float64, outline, _ cp.FColor, _ interface{}) {
	c := toNRGBA(outline)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], c)
	}
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, _ interface{}) {
	l := size / 2
	c := toNRGBA(fill)
	d.line(cp.Vector{X: pos.X - l, Y: pos.Y}, cp.Vector{X: pos.X + l, Y: pos.Y}, c)
	d.line(cp.Vector{X: pos.X, Y: pos.Y - l}, cp.Vector{X: pos.X, Y: pos.Y + l}, c)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 1}
}

// Walls are static; anything else would be a dynamic probe.
func (d *spaceDrawer) ShapeColor(shape *cp.Shape, _ interface{}) cp.FColor {
	if shape != nil && shape.Body() != nil && shape.Body().GetType() == cp.BODY_STATIC {
		return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 1}
	}
	return cp.FColor{R: 0.2, G: 0.4, B: 1, A: 1}
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1}
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 0, A: 1}
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func toNRGBA(c cp.FColor) color.NRGBA {
	clamp := func(v float32) uint8 {
		return uint8(min(max(v, 0), 1) * 255)
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
