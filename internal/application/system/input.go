package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem reads player input from the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state.
// The *Pressed fields are true only on the frame the key went down.
type InputState struct {
	Left         bool
	Right        bool
	Up           bool
	Down         bool
	Jump         bool
	JumpPressed  bool
	UpPressed    bool
	LeftPressed  bool
	RightPressed bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:         anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:        anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:           anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:         anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Jump:         anyPressed(ebiten.KeySpace),
		JumpPressed:  anyJustPressed(ebiten.KeySpace),
		UpPressed:    anyJustPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		LeftPressed:  anyJustPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		RightPressed: anyJustPressed(ebiten.KeyArrowRight, ebiten.KeyD),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Horizontal returns -1, 0 or 1 for the held direction keys
func (in InputState) Horizontal() float64 {
	dir := 0.0
	if in.Right {
		dir++
	}
	if in.Left {
		dir--
	}
	return dir
}
