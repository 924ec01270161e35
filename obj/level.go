package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/milk9111/tiledot/common"
)

var (
	ErrLevelParse      = errors.New("obj: level parse failed")
	ErrInvalidTileType = errors.New("invalid tile type")
	ErrUnexpectedEOF   = errors.New("unexpected end of map")
	ErrMalformedToken  = errors.New("malformed token")
	ErrInvalidLayout   = errors.New("obj: invalid level layout")
)

// ParseError reports the tile index at which a map stopped parsing.
type ParseError struct {
	Index int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("obj: level parse: tile %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("obj: level parse: tile %d (%q): %v", e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrLevelParse, e.Err}
}

// Layout describes the fixed dimensions a tile map is parsed against.
type Layout struct {
	TileWidth   int
	TileHeight  int
	LevelWidth  int
	LevelHeight int
	SpriteCount int
}

// Columns is the row width of the map in tiles.
func (l Layout) Columns() int {
	return l.LevelWidth / l.TileWidth
}

// Rows is the number of tile rows.
func (l Layout) Rows() int {
	return l.LevelHeight / l.TileHeight
}

// TileCount is the number of tokens a map must provide.
func (l Layout) TileCount() int {
	return l.Columns() * l.Rows()
}

// Bounds is the level rectangle in world pixels.
func (l Layout) Bounds() common.Rect {
	return common.Rect{Width: float64(l.LevelWidth), Height: float64(l.LevelHeight)}
}

func (l Layout) validate() error {
	if l.TileWidth <= 0 || l.TileHeight <= 0 {
		return fmt.Errorf("%w: tile size %dx%d", ErrInvalidLayout, l.TileWidth, l.TileHeight)
	}
	if l.LevelWidth < l.TileWidth || l.LevelHeight < l.TileHeight {
		return fmt.Errorf("%w: level %dx%d smaller than one tile", ErrInvalidLayout, l.LevelWidth, l.LevelHeight)
	}
	if l.SpriteCount <= 0 {
		return fmt.Errorf("%w: sprite count %d", ErrInvalidLayout, l.SpriteCount)
	}
	return nil
}

// Grid is a row-major, read-only set of tiles.
type Grid struct {
	layout Layout
	tiles  []Tile
}

// LoadGrid reads one whitespace-separated tile index per cell in row-major
// order. It stops at the first bad token and returns a *ParseError naming the
// tile index; no partial grid is returned. Tokens past the last tile are
// ignored.
func LoadGrid(r io.Reader, layout Layout) (*Grid, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}

	count := layout.TileCount()
	cols := layout.Columns()
	tiles := make([]Tile, 0, count)

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for i := 0; i < count; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, &ParseError{Index: i, Err: err}
			}
			return nil, &ParseError{Index: i, Err: ErrUnexpectedEOF}
		}
		tok := sc.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &ParseError{Index: i, Token: tok, Err: ErrMalformedToken}
		}
		if v < 0 || v >= layout.SpriteCount {
			return nil, &ParseError{Index: i, Token: tok, Err: ErrInvalidTileType}
		}

		col, row := i%cols, i/cols
		tiles = append(tiles, Tile{
			Box: common.Rect{
				X:      float64(col * layout.TileWidth),
				Y:      float64(row * layout.TileHeight),
				Width:  float64(layout.TileWidth),
				Height: float64(layout.TileHeight),
			},
			Kind: TileKind(v),
		})
	}

	return &Grid{layout: layout, tiles: tiles}, nil
}

func (g *Grid) Layout() Layout {
	if g == nil {
		return Layout{}
	}
	return g.layout
}

// Tiles returns the grid cells. Callers must not modify the slice.
func (g *Grid) Tiles() []Tile {
	if g == nil {
		return nil
	}
	return g.tiles
}

func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.tiles)
}

// Bounds is the level rectangle the grid covers.
func (g *Grid) Bounds() common.Rect {
	if g == nil {
		return common.Rect{}
	}
	return g.layout.Bounds()
}

// At returns the tile at column col and row row.
func (g *Grid) At(col, row int) (Tile, bool) {
	if g == nil || col < 0 || row < 0 || col >= g.layout.Columns() || row >= g.layout.Rows() {
		return Tile{}, false
	}
	return g.tiles[row*g.layout.Columns()+col], true
}

// Walls returns every wall tile in grid order.
func (g *Grid) Walls() []Tile {
	if g == nil {
		return nil
	}
	var out []Tile
	for _, t := range g.tiles {
		if t.Kind.IsWall() {
			out = append(out, t)
		}
	}
	return out
}

// TouchesWall reports whether c overlaps any wall tile.
func (g *Grid) TouchesWall(c Collider) bool {
	if g == nil || c == nil {
		return false
	}
	for _, t := range g.tiles {
		if t.Kind.IsWall() && c.IntersectsRect(t.Box) {
			return true
		}
	}
	return false
}

// Blocked implements Blocker.
func (g *Grid) Blocked(c Collider) bool {
	return g.TouchesWall(c)
}

// Visible returns the tiles that overlap the camera rectangle.
func (g *Grid) Visible(camera common.Rect) []Tile {
	if g == nil {
		return nil
	}
	out := make([]Tile, 0, 64)
	for _, t := range g.tiles {
		if camera.Intersects(t.Box) {
			out = append(out, t)
		}
	}
	return out
}
