package replay

import "github.com/younwookim/dunjo/internal/application/system"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	J  bool `json:"j,omitempty"`  // Jump
	JP bool `json:"jp,omitempty"` // JumpPressed
	UP bool `json:"up,omitempty"` // UpPressed
	LP bool `json:"lp,omitempty"` // LeftPressed
	RP bool `json:"rp,omitempty"` // RightPressed
}

// ReplayData contains all data needed to re-simulate a run. The simulation is
// deterministic, so the level, the step rate and the inputs are enough.
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	Framerate int          `json:"framerate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FromInput converts a frame's input into its recorded form
func FromInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		U:  in.Up,
		D:  in.Down,
		J:  in.Jump,
		JP: in.JumpPressed,
		UP: in.UpPressed,
		LP: in.LeftPressed,
		RP: in.RightPressed,
	}
}

// Input converts a recorded frame back into input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:         fi.L,
		Right:        fi.R,
		Up:           fi.U,
		Down:         fi.D,
		Jump:         fi.J,
		JumpPressed:  fi.JP,
		UpPressed:    fi.UP,
		LeftPressed:  fi.LP,
		RightPressed: fi.RP,
	}
}
