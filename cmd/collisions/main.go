package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/tiledot/assets"
	"github.com/milk9111/tiledot/common"
	"github.com/milk9111/tiledot/keys"
	"github.com/milk9111/tiledot/obj"
	"github.com/milk9111/tiledot/prefabs"
	"github.com/milk9111/tiledot/render"
	"golang.org/x/image/colornames"
)

type Game struct {
	variant  string
	spec     *prefabs.CollisionsSpec
	demo     *prefabs.Demo
	bindings obj.Bindings
	kbd      keys.Keyboard
	dotImg   *ebiten.Image
	debug    bool
}

func NewGame(variant string, debug bool) (*Game, error) {
	spec, err := prefabs.LoadCollisionsSpec()
	if err != nil {
		return nil, err
	}
	dotSpec, err := prefabs.LoadDotSpec()
	if err != nil {
		return nil, err
	}
	demo, err := spec.Build(dotSpec, variant)
	if err != nil {
		return nil, err
	}

	return &Game{
		variant:  variant,
		spec:     spec,
		demo:     demo,
		bindings: dotSpec.KeyBindings(),
		dotImg:   render.NewTextures().LoadOrPlaceholder(dotSpec.Image, assets.ColorKey, int(dotSpec.Width), int(dotSpec.Height), colornames.Black),
		debug:    debug,
	}, nil
}

func (g *Game) bounds() common.Rect {
	return common.Rect{Width: float64(g.spec.Screen.W), Height: float64(g.spec.Screen.H)}
}

func (g *Game) Update() error {
	for _, ev := range g.kbd.Poll() {
		g.bindings.Apply(g.demo.Dot, ev, g.spec.Speed)
	}
	g.demo.Dot.Move(g.demo.Obstacles, g.bounds())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	r := render.Renderer{Screen: screen}
	r.Clear(colornames.White)

	for _, wall := range g.demo.Obstacles.Rects[:1] {
		r.FillRect(wall, colornames.Black)
	}
	for _, c := range g.demo.Obstacles.Circles {
		r.DrawTexture(g.dotImg, c.Bounds(), nil)
	}
	if g.demo.Other != nil {
		r.DrawTexture(g.dotImg, g.demo.Other.Box(), nil)
	}
	r.DrawTexture(g.dotImg, g.demo.Dot.Box(), nil)

	if g.debug {
		switch c := g.demo.Dot.Collider().(type) {
		case *obj.PixelCollider:
			for _, b := range c.Boxes() {
				r.StrokeRect(b, colornames.Red)
			}
		case *obj.CircleCollider:
			r.StrokeCircle(c.Circle, colornames.Red)
		default:
			r.StrokeRect(c.Bounds(), colornames.Red)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("collider: %s", g.variant), 4, 4)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Screen.W, g.spec.Screen.H
}

func main() {
	variant := flag.String("variant", "box", "dot collider: box, pixel or circle")
	debug := flag.Bool("debug", false, "outline the dot collider")
	flag.Parse()

	game, err := NewGame(*variant, *debug)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(game.Layout(0, 0))
	ebiten.SetWindowTitle("collisions: " + *variant)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
