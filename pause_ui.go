package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	pausePanelColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	pauseButtonIdle = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	pauseButtonDown = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
	pauseTextColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// NewPauseUI builds the overlay shown while the game is paused: the
// stopwatch is frozen and the menu offers Resume, Reload map and Quit.
func NewPauseUI(g *Game) *ebitenui.UI {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:    imageui.NewNineSliceColor(pauseButtonIdle),
				Hover:   imageui.NewNineSliceColor(pauseButtonDown),
				Pressed: imageui.NewNineSliceColor(pauseButtonDown),
			}),
			widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: pauseTextColor}),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, pauseTextColor),
		widget.TextOpts.WidgetOpts(centered),
	)

	w, h := g.Layout(0, 0)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(pausePanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w/2, h/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(button("Resume", func() { g.setPaused(false) }))
	panel.AddChild(button("Reload map", func() {
		g.Reload()
		g.setPaused(false)
	}))
	panel.AddChild(button("Quit", g.Quit))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
