package entity

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/dunjo/internal/domain/shape"
)

// MoveState is the kinematic state of a body
type MoveState int

const (
	MoveAirborne MoveState = iota
	MoveGrounded
	MoveOnLadder
)

// String returns the name of the move state
func (s MoveState) String() string {
	switch s {
	case MoveAirborne:
		return "Airborne"
	case MoveGrounded:
		return "Grounded"
	case MoveOnLadder:
		return "OnLadder"
	default:
		return "Unknown"
	}
}

// Body is a kinematic body moved by discrete displacement and corrected by
// collision response. Position is the shape's center in world units and
// Velocity is the displacement applied per step.
type Body struct {
	Position r2.Vec
	Velocity r2.Vec
	Shape    *shape.Polygon

	Grounded bool
	OnLadder bool

	// Patrol bodies report horizontal blocks and keep their velocity;
	// directly controlled bodies stop.
	Patrol bool
}

// NewBody creates a body with a w×h box shape centered at pos
func NewBody(pos r2.Vec, w, h float64) Body {
	return Body{
		Position: pos,
		Shape:    shape.NewBox(w, h),
	}
}

// State returns the current move state
func (b *Body) State() MoveState {
	switch {
	case b.OnLadder:
		return MoveOnLadder
	case b.Grounded:
		return MoveGrounded
	default:
		return MoveAirborne
	}
}

// Bounds returns the body's world bounding box
func (b *Body) Bounds() r2.Box {
	return b.Shape.WorldBounds(b.Position)
}

// Top returns the y of the body's top edge
func (b *Body) Top() float64 { return b.Bounds().Min.Y }

// Bottom returns the y of the body's bottom edge
func (b *Body) Bottom() float64 { return b.Bounds().Max.Y }

// Translate moves the body by d
func (b *Body) Translate(d r2.Vec) {
	b.Position = r2.Add(b.Position, d)
}

// Stop zeroes the velocity
func (b *Body) Stop() {
	b.Velocity = r2.Vec{}
}
