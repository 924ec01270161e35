package obj

import "image"

// sheetCells is the (column, row) of each kind on the tile sheet.
var sheetCells = [TileKindCount][2]int{
	TileRed:         {0, 0},
	TileGreen:       {0, 1},
	TileBlue:        {0, 2},
	TileTopLeft:     {1, 0},
	TileLeft:        {1, 1},
	TileBottomLeft:  {1, 2},
	TileTop:         {2, 0},
	TileCenter:      {2, 1},
	TileBottom:      {2, 2},
	TileTopRight:    {3, 0},
	TileRight:       {3, 1},
	TileBottomRight: {3, 2},
}

// SheetSize is the tile sheet size in cells.
const (
	SheetColumns = 4
	SheetRows    = 3
)

// TileClip returns the source rectangle of kind on a sheet of tw x th cells.
func TileClip(kind TileKind, tw, th int) (image.Rectangle, bool) {
	if kind < 0 || kind >= TileKindCount {
		return image.Rectangle{}, false
	}
	cell := sheetCells[kind]
	x, y := cell[0]*tw, cell[1]*th
	return image.Rect(x, y, x+tw, y+th), true
}
