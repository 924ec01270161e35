package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tiledot/common"
)

// Renderer draws into the frame ebiten hands to Draw. Presenting is the
// end of Draw.
type Renderer struct {
	Screen *ebiten.Image
}

func (r Renderer) Clear(c color.Color) {
	if r.Screen == nil {
		return
	}
	r.Screen.Fill(c)
}

// DrawTexture draws clip of img (or all of it when clip is nil) into dest.
// A zero-sized dest keeps the source size.
func (r Renderer) DrawTexture(img *ebiten.Image, dest common.Rect, clip *image.Rectangle) {
	r.DrawTextureAlpha(img, dest, clip, 1)
}

// DrawTextureAlpha is DrawTexture with the texture's alpha scaled by alpha.
func (r Renderer) DrawTextureAlpha(img *ebiten.Image, dest common.Rect, clip *image.Rectangle, alpha float32) {
	if r.Screen == nil || img == nil {
		return
	}
	src := img
	if clip != nil {
		sub, ok := img.SubImage(*clip).(*ebiten.Image)
		if !ok {
			return
		}
		src = sub
	}
	b := src.Bounds()
	if b.Empty() {
		return
	}

	op := &ebiten.DrawImageOptions{}
	if dest.Width > 0 && dest.Height > 0 {
		op.GeoM.Scale(dest.Width/float64(b.Dx()), dest.Height/float64(b.Dy()))
	}
	op.GeoM.Translate(dest.X, dest.Y)
	if alpha < 1 {
		op.ColorScale.ScaleAlpha(alpha)
	}
	r.Screen.DrawImage(src, op)
}

// StrokeRect outlines rect, used by the collider debug overlay.
func (r Renderer) StrokeRect(rect common.Rect, c color.Color) {
	if r.Screen == nil {
		return
	}
	vector.StrokeRect(r.Screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), 1, c, false)
}

func (r Renderer) FillRect(rect common.Rect, c color.Color) {
	if r.Screen == nil {
		return
	}
	vector.FillRect(r.Screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), c, false)
}

func (r Renderer) StrokeCircle(circle common.Circle, c color.Color) {
	if r.Screen == nil {
		return
	}
	vector.StrokeCircle(r.Screen, float32(circle.X), float32(circle.Y), float32(circle.Radius), 1, c, true)
}
