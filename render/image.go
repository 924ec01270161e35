// Package render draws the game onto ebiten images.
package render

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tiledot/assets"
	"github.com/milk9111/tiledot/obj"
	"golang.org/x/image/colornames"
)

var ErrAssetLoad = assets.ErrAssetLoad

// Textures caches decoded images by path. A nil *Textures loads without
// caching.
type Textures struct {
	images map[string]*ebiten.Image
}

func NewTextures() *Textures {
	return &Textures{images: map[string]*ebiten.Image{}}
}

// Load reads a png or bmp asset and caches it by path. Pixels matching key
// become transparent; pass nil to keep every pixel.
func (t *Textures) Load(path string, key color.Color) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty image path", ErrAssetLoad)
	}
	if t != nil {
		if img := t.images[path]; img != nil {
			return img, nil
		}
	}
	src, err := assets.DecodeKeyed(path, key)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	if t != nil {
		t.images[path] = img
	}
	return img, nil
}

// Forget drops cached images so the next load reads them again.
func (t *Textures) Forget(paths ...string) {
	if t == nil {
		return
	}
	for _, path := range paths {
		delete(t.images, path)
	}
}

// Placeholder returns a solid w x h texture.
func Placeholder(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	img.Fill(c)
	return img
}

// LoadOrPlaceholder loads path, falling back to a solid texture when the
// asset is missing or unreadable.
func (t *Textures) LoadOrPlaceholder(path string, key color.Color, w, h int, fallback color.Color) *ebiten.Image {
	img, err := t.Load(path, key)
	if err != nil {
		log.Printf("render: %v; using placeholder", err)
		return Placeholder(w, h, fallback)
	}
	return img
}

var tileColors = [obj.TileKindCount]color.Color{
	obj.TileRed:         colornames.Indianred,
	obj.TileGreen:       colornames.Seagreen,
	obj.TileBlue:        colornames.Steelblue,
	obj.TileCenter:      colornames.Gray,
	obj.TileTop:         colornames.Dimgray,
	obj.TileTopRight:    colornames.Dimgray,
	obj.TileRight:       colornames.Dimgray,
	obj.TileBottomRight: colornames.Dimgray,
	obj.TileBottom:      colornames.Dimgray,
	obj.TileBottomLeft:  colornames.Dimgray,
	obj.TileLeft:        colornames.Dimgray,
	obj.TileTopLeft:     colornames.Dimgray,
}

// TileSheet holds one clip per tile kind.
type TileSheet struct {
	clips [obj.TileKindCount]*ebiten.Image
}

// LoadTileSheet cuts the sheet at path into tw x th clips. When the sheet
// cannot be loaded a sheet of flat colours is built instead.
func (t *Textures) LoadTileSheet(path string, tw, th int) *TileSheet {
	sheet, err := t.Load(path, nil)
	if err != nil {
		log.Printf("render: %v; using placeholder tiles", err)
		sheet = placeholderSheet(tw, th)
	}

	ts := &TileSheet{}
	for kind := obj.TileKind(0); kind < obj.TileKindCount; kind++ {
		clip, _ := obj.TileClip(kind, tw, th)
		if !clip.In(sheet.Bounds()) {
			continue
		}
		ts.clips[kind] = sheet.SubImage(clip).(*ebiten.Image)
	}
	return ts
}

func placeholderSheet(tw, th int) *ebiten.Image {
	sheet := ebiten.NewImage(tw*obj.SheetColumns, th*obj.SheetRows)
	for kind := obj.TileKind(0); kind < obj.TileKindCount; kind++ {
		clip, _ := obj.TileClip(kind, tw, th)
		sheet.SubImage(clip).(*ebiten.Image).Fill(tileColors[kind])
	}
	return sheet
}

// Clip returns the texture for kind, or nil if the sheet lacks it.
func (ts *TileSheet) Clip(kind obj.TileKind) *ebiten.Image {
	if ts == nil || kind < 0 || kind >= obj.TileKindCount {
		return nil
	}
	return ts.clips[kind]
}
