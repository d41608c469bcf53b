// Package scene defines the Scene interface for game screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one game screen. The game loop delegates Update and Draw to the
// current scene; returning a non-nil Scene from Update switches to it.
type Scene interface {
	// Update advances the scene by dt seconds. Returning an error stops the
	// loop; ebiten.Termination stops it cleanly.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when leaving the scene or when the loop terminates,
	// for saving state and releasing resources.
	OnExit()
}
