package obj

import (
	"fmt"

	"github.com/milk9111/tiledot/common"
)

// TileKind indexes a sprite on the tile sheet.
type TileKind int

const (
	TileRed TileKind = iota
	TileGreen
	TileBlue
	TileCenter
	TileTop
	TileTopRight
	TileRight
	TileBottomRight
	TileBottom
	TileBottomLeft
	TileLeft
	TileTopLeft

	// TileKindCount is the number of sprites on the default sheet.
	TileKindCount
)

var tileKindNames = [...]string{
	"red", "green", "blue",
	"center", "top", "top_right", "right", "bottom_right",
	"bottom", "bottom_left", "left", "top_left",
}

func (k TileKind) String() string {
	if k < 0 || int(k) >= len(tileKindNames) {
		return fmt.Sprintf("tile(%d)", int(k))
	}
	return tileKindNames[k]
}

// IsWall reports whether the tile blocks movement.
func (k TileKind) IsWall() bool {
	return k >= TileCenter && k <= TileTopLeft
}

// Tile is one cell of a level. Tiles are not modified after the grid is loaded.
type Tile struct {
	Box  common.Rect
	Kind TileKind
}
