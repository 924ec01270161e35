package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"
)

//go:embed *.png *.bmp
var assetsFS embed.FS

const Dir = "assets"

var ErrAssetLoad = errors.New("assets: load failed")

// ColorKey is the background colour of the bundled bitmaps.
var ColorKey = color.NRGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}

// LoadFile returns an asset by assets-relative path, trying the embedded
// copy before the filesystem.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty path", ErrAssetLoad)
	}
	if b, err := assetsFS.ReadFile(clean); err == nil {
		return b, nil
	}
	tried := []string{path, filepath.Join(Dir, clean), filepath.Base(path)}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s not found", ErrAssetLoad, path)
}

// DecodeImage loads and decodes a png or bmp asset.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrAssetLoad, path, err)
	}
	return img, nil
}

// DecodeKeyed decodes path and makes every pixel matching key transparent.
func DecodeKeyed(path string, key color.Color) (*image.NRGBA, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return ApplyColorKey(img, key), nil
}

// ApplyColorKey copies img with pixels equal to key cleared.
func ApplyColorKey(img image.Image, key color.Color) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	if key == nil {
		return out
	}
	kr, kg, kb, _ := key.RGBA()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, _ := out.At(x, y).RGBA()
			if r == kr && g == kg && bl == kb {
				out.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
	return out
}

// Names lists the embedded assets.
func Names() []string {
	var out []string
	_ = fs.WalkDir(assetsFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		out = append(out, path)
		return nil
	})
	sort.Strings(out)
	return out
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	return strings.TrimPrefix(s, "assets/")
}
