package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	levelName := flag.String("level", "level.yaml", "level spec in prefabs/ (basename, .yaml optional)")
	script := flag.String("script", "", "drive the dot from a tengo script in prefabs/scripts/ instead of the keyboard")
	debug := flag.Bool("debug", false, "draw collider and wall outlines")
	watch := flag.Bool("watch", false, "reload maps, specs and scripts when they change on disk")
	fps := flag.Int("fps", 0, "cap the update rate (0 keeps ebiten's default of 60)")
	flag.Parse()

	game, err := NewGame(Options{Level: *levelName, Script: *script, Debug: *debug, Watch: *watch})
	if err != nil {
		log.Fatal(err)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("tiledot")
	if *fps > 0 {
		ebiten.SetTPS(*fps)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
