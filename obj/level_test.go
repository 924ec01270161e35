package obj

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

var defaultLayout = Layout{
	TileWidth:   80,
	TileHeight:  80,
	LevelWidth:  1280,
	LevelHeight: 960,
	SpriteCount: int(TileKindCount),
}

// mapOf builds a map string of n tokens all set to v.
func mapOf(n int, v int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func TestLoadGrid(t *testing.T) {
	t.Run("full_map", func(t *testing.T) {
		g, err := LoadGrid(strings.NewReader(mapOf(192, 0)), defaultLayout)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Len() != 192 {
			t.Fatalf("expected 192 tiles, got %d", g.Len())
		}
		last := g.Tiles()[191]
		if last.Box.X != 1200 || last.Box.Y != 880 || last.Box.Width != 80 {
			t.Fatalf("unexpected last tile box %+v", last.Box)
		}
		second := g.Tiles()[16]
		if second.Box.X != 0 || second.Box.Y != 80 {
			t.Fatalf("tile 16 should start row 1, got %+v", second.Box)
		}
	})

	t.Run("row_major_kinds", func(t *testing.T) {
		src := mapOf(16, 4) + "\n" + mapOf(176, 1)
		g, err := LoadGrid(strings.NewReader(src), defaultLayout)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tile, ok := g.At(15, 0); !ok || tile.Kind != TileTop {
			t.Fatalf("expected top wall at (15,0), got %+v ok=%v", tile, ok)
		}
		if tile, ok := g.At(0, 1); !ok || tile.Kind != TileGreen {
			t.Fatalf("expected green at (0,1), got %+v ok=%v", tile, ok)
		}
		if _, ok := g.At(16, 0); ok {
			t.Fatalf("column 16 is out of range")
		}
		if len(g.Walls()) != 16 {
			t.Fatalf("expected 16 walls, got %d", len(g.Walls()))
		}
	})

	t.Run("trailing_tokens_ignored", func(t *testing.T) {
		if _, err := LoadGrid(strings.NewReader(mapOf(200, 2)), defaultLayout); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLoadGridErrors(t *testing.T) {
	cases := []struct {
		name      string
		src       string
		wantIndex int
		wantErr   error
	}{
		{"out_of_range_99", mapOf(37, 0) + " 99 " + mapOf(154, 0), 37, ErrInvalidTileType},
		{"negative", "-1", 0, ErrInvalidTileType},
		{"sprite_count_boundary", mapOf(5, 3) + " 12", 5, ErrInvalidTileType},
		{"truncated", mapOf(100, 0), 100, ErrUnexpectedEOF},
		{"empty", "", 0, ErrUnexpectedEOF},
		{"not_a_number", "0 1 x 2", 2, ErrMalformedToken},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := LoadGrid(strings.NewReader(c.src), defaultLayout)
			if err == nil {
				t.Fatalf("expected error")
			}
			if g != nil {
				t.Fatalf("partial grid must be discarded")
			}
			if !errors.Is(err, ErrLevelParse) {
				t.Fatalf("expected ErrLevelParse, got %v", err)
			}
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Index != c.wantIndex {
				t.Fatalf("expected index %d, got %d", c.wantIndex, perr.Index)
			}
		})
	}
}

func TestLoadGridInvalidLayout(t *testing.T) {
	layouts := []Layout{
		{TileWidth: 0, TileHeight: 80, LevelWidth: 1280, LevelHeight: 960, SpriteCount: 12},
		{TileWidth: 80, TileHeight: 80, LevelWidth: 40, LevelHeight: 960, SpriteCount: 12},
		{TileWidth: 80, TileHeight: 80, LevelWidth: 1280, LevelHeight: 960, SpriteCount: 0},
	}
	for i, l := range layouts {
		if _, err := LoadGrid(strings.NewReader("0"), l); !errors.Is(err, ErrInvalidLayout) {
			t.Fatalf("layout %d: expected ErrInvalidLayout, got %v", i, err)
		}
	}
}

func TestGridVisible(t *testing.T) {
	g, err := LoadGrid(strings.NewReader(mapOf(192, 0)), defaultLayout)
	if err != nil {
		t.Fatal(err)
	}
	cam := NewCamera(640, 480)
	// 640x480 at the origin covers exactly 8x6 tiles; edge tiles only touch
	if got := len(g.Visible(cam.View)); got != 48 {
		t.Fatalf("expected 48 visible tiles, got %d", got)
	}
	cam.View.X = 40
	if got := len(g.Visible(cam.View)); got != 54 {
		t.Fatalf("expected 54 visible tiles, got %d", got)
	}
}

func TestTileKind(t *testing.T) {
	walls := 0
	for k := TileKind(0); k < TileKindCount; k++ {
		if k.IsWall() {
			walls++
		}
		if _, ok := TileClip(k, 80, 80); !ok {
			t.Fatalf("no clip for %v", k)
		}
	}
	if walls != 9 {
		t.Fatalf("expected 9 wall kinds, got %d", walls)
	}
	if TileKind(42).String() != "tile(42)" {
		t.Fatalf("unexpected name %q", TileKind(42).String())
	}
	clip, _ := TileClip(TileCenter, 80, 80)
	if clip.Min.X != 160 || clip.Min.Y != 80 {
		t.Fatalf("unexpected center clip %v", clip)
	}
}
