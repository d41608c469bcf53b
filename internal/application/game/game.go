// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/dunjo/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current   scene.Scene
	screenW   int
	screenH   int
	framerate int
	dt        float64
}

// New creates a new Game with the given initial scene stepping at framerate
// updates per second. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, framerate int) *Game {
	if framerate <= 0 {
		framerate = 60
	}
	g := &Game{
		current:   initialScene,
		screenW:   screenW,
		screenH:   screenH,
		framerate: framerate,
		dt:        1.0 / float64(framerate),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// A scene returning ebiten.Termination is exited before the loop stops.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if errors.Is(err, ebiten.Termination) {
		g.current.OnExit()
		return err
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// DT returns the fixed step passed to scenes, in seconds
func (g *Game) DT() float64 {
	return g.dt
}

// Run opens a window scaled by scale and runs the loop at the game's
// framerate until the window closes or a scene terminates
func (g *Game) Run(title string, scale int) error {
	ebiten.SetWindowSize(g.screenW*scale, g.screenH*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(g.framerate)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
