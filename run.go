package tileworld

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height size the window. Zero uses the scene's viewport size.
	Width, Height int
	// ShowFPS turns on the debug overlay.
	ShowFPS bool
	// BeforeUpdate, when set, runs at the start of every tick before the
	// scene updates. Returning an error stops the game.
	BeforeUpdate func(*Scene) error
}

// Run opens a window and drives scene until the window is closed or an
// update fails. It blocks.
func Run(scene *Scene, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = scene.cfg.ViewportWidth, scene.cfg.ViewportHeight
	}
	if cfg.ShowFPS {
		scene.SetDebugMode(true)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	return ebiten.RunGame(&gameShell{scene: scene, before: cfg.BeforeUpdate})
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene  *Scene
	before func(*Scene) error
}

func (g *gameShell) Update() error {
	if g.before != nil {
		if err := g.before(g.scene); err != nil {
			return err
		}
	}
	return g.scene.Update()
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *gameShell) Layout(outsideW, outsideH int) (int, int) {
	return g.scene.Layout(outsideW, outsideH)
}
