package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tiledot/common"
)

const collisionTypeWall cp.CollisionType = 1

// CollisionWorld indexes the wall tiles of a grid in a Chipmunk space so
// blocking queries only test nearby tiles.
type CollisionWorld struct {
	grid  *Grid
	space *cp.Space
	walls int
}

func NewCollisionWorld(grid *Grid) *CollisionWorld {
	cw := &CollisionWorld{grid: grid, space: cp.NewSpace()}
	cw.buildStaticShapes()
	return cw
}

func (cw *CollisionWorld) buildStaticShapes() {
	if cw == nil || cw.space == nil || cw.grid == nil {
		return
	}
	for _, t := range cw.grid.Tiles() {
		if !t.Kind.IsWall() {
			continue
		}
		shape := cp.NewBox2(cw.space.StaticBody, toBB(t.Box), 0)
		shape.SetCollisionType(collisionTypeWall)
		shape.UserData = t.Box
		cw.space.AddShape(shape)
		cw.walls++
	}
}

// Grid returns the indexed grid.
func (cw *CollisionWorld) Grid() *Grid {
	if cw == nil {
		return nil
	}
	return cw.grid
}

// Space exposes the Chipmunk space for debug drawing.
func (cw *CollisionWorld) Space() *cp.Space {
	if cw == nil {
		return nil
	}
	return cw.space
}

// WallCount is the number of indexed wall shapes.
func (cw *CollisionWorld) WallCount() int {
	if cw == nil {
		return 0
	}
	return cw.walls
}

// Candidates returns wall boxes whose bounding boxes touch r. Chipmunk BB
// tests are inclusive, so candidates may only share an edge with r.
func (cw *CollisionWorld) Candidates(r common.Rect) []common.Rect {
	if cw == nil || cw.space == nil {
		return nil
	}
	var out []common.Rect
	cw.space.BBQuery(toBB(r), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if box, ok := shape.UserData.(common.Rect); ok {
			out = append(out, box)
		}
	}, nil)
	return out
}

// Blocked reports whether c strictly overlaps any wall tile.
func (cw *CollisionWorld) Blocked(c Collider) bool {
	if cw == nil || c == nil {
		return false
	}
	for _, box := range cw.Candidates(c.Bounds()) {
		if c.IntersectsRect(box) {
			return true
		}
	}
	return false
}

func toBB(r common.Rect) cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.Right(), T: r.Bottom()}
}
