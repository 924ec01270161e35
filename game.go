package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tiledot/assets"
	"github.com/milk9111/tiledot/autopilot"
	"github.com/milk9111/tiledot/common"
	"github.com/milk9111/tiledot/keys"
	"github.com/milk9111/tiledot/levels"
	"github.com/milk9111/tiledot/obj"
	"github.com/milk9111/tiledot/prefabs"
	"github.com/milk9111/tiledot/render"
	"github.com/milk9111/tiledot/scene"
	"github.com/milk9111/tiledot/timer"
	"golang.org/x/image/colornames"
)

type Options struct {
	Level  string
	Script string
	Debug  bool
	Watch  bool
}

// Game is the ebiten shell around a scene. It owns the textures, the input
// source and the pause overlay; the scene owns the simulation.
type Game struct {
	opts  Options
	scene *scene.Scene

	textures  *render.Textures
	tiles     *render.TileSheet
	dotImg    *ebiten.Image
	particles [3]*ebiten.Image
	shimmer   *ebiten.Image
	alpha     float32
	bg        color.Color

	kbd     keys.Keyboard
	pilot   *autopilot.Script
	watcher *prefabs.Watcher
	clock   *timer.Timer
	pauseUI *ebitenui.UI

	paused bool
	quit   bool
}

func NewGame(opts Options) (*Game, error) {
	sc, err := scene.Load(opts.Level, nil)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:     opts,
		scene:    sc,
		textures: render.NewTextures(),
		bg:       colornames.White,
		clock:    timer.New(nil),
	}
	if sc.Level.Background != nil {
		g.bg = sc.Level.Background.Color
	}
	g.loadTextures()

	if opts.Script != "" {
		if g.pilot, err = autopilot.Load(opts.Script); err != nil {
			return nil, err
		}
	}
	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, levels.Dir)
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	g.clock.Start()
	return g, nil
}

func (g *Game) loadTextures() {
	lvl, dot := g.scene.Level, g.scene.Dot
	g.tiles = g.textures.LoadTileSheet(lvl.Tileset, lvl.Tile.W, lvl.Tile.H)
	w, h := int(dot.Width), int(dot.Height)
	g.dotImg = g.textures.LoadOrPlaceholder(dot.Image, assets.ColorKey, w, h, colornames.Black)

	p := dot.Particles
	g.particles[obj.ParticleRed] = g.textures.LoadOrPlaceholder(p.Red, assets.ColorKey, 10, 10, colornames.Red)
	g.particles[obj.ParticleGreen] = g.textures.LoadOrPlaceholder(p.Green, assets.ColorKey, 10, 10, colornames.Lime)
	g.particles[obj.ParticleBlue] = g.textures.LoadOrPlaceholder(p.Blue, assets.ColorKey, 10, 10, colornames.Blue)
	g.shimmer = g.textures.LoadOrPlaceholder(p.Shimmer, assets.ColorKey, 10, 10, colornames.Whitesmoke)
	g.alpha = 1
	if p.Alpha > 0 {
		g.alpha = float32(p.Alpha) / 255
	}
}

func (g *Game) Update() error {
	if g.quit {
		g.close()
		return ebiten.Termination
	}

	for _, path := range g.watcher.Poll() {
		g.reload(path)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	events := g.kbd.Poll()
	if g.pilot != nil {
		scripted, err := g.pilot.Poll(g.scene.Frame())
		if err != nil {
			log.Printf("autopilot stopped: %v", err)
			g.pilot = nil
			g.scene.ReleaseAll()
		}
		events = append(events, scripted...)
	}

	if g.scene.Step(events) {
		g.quit = true
	}
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		// releases are not polled while paused
		g.scene.ReleaseAll()
		g.clock.Pause()
	} else {
		g.clock.Unpause()
	}
}

func (g *Game) reload(path string) {
	switch filepath.Ext(path) {
	case ".tengo":
		if g.pilot == nil {
			return
		}
		pilot, err := autopilot.Load(g.opts.Script)
		if err != nil {
			log.Printf("reload %s: %v", path, err)
			return
		}
		g.pilot = pilot
		g.scene.ReleaseAll()
	default:
		stale := dotTextures(g.scene.Dot)
		err := g.scene.Reload(path)
		if errors.Is(err, scene.ErrNotReloadable) {
			return
		}
		if err != nil {
			log.Printf("reload %s: %v", path, err)
			return
		}
		if strings.EqualFold(filepath.Base(path), "dot.yaml") {
			g.textures.Forget(stale...)
			g.loadTextures()
		}
	}
	log.Printf("reloaded %s", path)
}

func dotTextures(d *prefabs.DotSpec) []string {
	p := d.Particles
	return []string{d.Image, p.Red, p.Green, p.Blue, p.Shimmer}
}

// Reload rereads the map from disk, used by the pause menu.
func (g *Game) Reload() {
	g.reload(levels.DiskPath(g.scene.Level.Map))
}

func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	r := render.Renderer{Screen: screen}
	r.Clear(g.bg)

	cam := g.scene.Camera()
	for _, t := range g.scene.VisibleTiles() {
		r.DrawTexture(g.tiles.Clip(t.Kind), cam.ToScreen(t.Box), nil)
	}

	dot := g.scene.Player()
	r.DrawTexture(g.dotImg, cam.ToScreen(dot.Box()), nil)

	for _, p := range g.scene.Particles() {
		dest := cam.ToScreen(common.Rect{X: p.X, Y: p.Y})
		r.DrawTextureAlpha(g.particles[p.Color], dest, nil, g.alpha)
		if p.Shimmer() {
			r.DrawTextureAlpha(g.shimmer, dest, nil, g.alpha)
		}
	}

	if g.opts.Debug {
		render.DrawSpace(screen, g.scene.World().Space(), cam.View.X, cam.View.Y)
		r.StrokeRect(cam.ToScreen(dot.Collider().Bounds()), colornames.Blue)
	}

	elapsed := g.clock.Ticks()
	hud := fmt.Sprintf("Time: %.1fs  Avg FPS: %.2f", elapsed.Seconds(), timer.FPS(g.scene.Frame(), elapsed))
	ebitenutil.DebugPrintAt(screen, hud, 4, 4)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Level.Screen.W, g.scene.Level.Screen.H
}
