package entity

import "gonum.org/v1/gonum/spatial/r2"

// LifeState is the player's life cycle state
type LifeState int

const (
	LifeSpawning LifeState = iota
	LifeAlive
	LifeDead
)

// String returns the name of the life state
func (s LifeState) String() string {
	switch s {
	case LifeSpawning:
		return "Spawning"
	case LifeAlive:
		return "Alive"
	case LifeDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Player represents the player entity
type Player struct {
	Body

	Life  LifeState
	Spawn r2.Vec
	Blink *Blink

	FacingRight bool
	Deaths      int
}

// NewPlayer creates a player of size w×h at its spawn point.
// The player starts in LifeSpawning; the player system runs the spawn blink.
func NewPlayer(spawn r2.Vec, w, h float64) *Player {
	return &Player{
		Body:        NewBody(spawn, w, h),
		Life:        LifeSpawning,
		Spawn:       spawn,
		FacingRight: true,
	}
}

// Alive reports whether the player takes input and collides
func (p *Player) Alive() bool {
	return p.Life == LifeAlive
}

// Visible reports whether the player should be drawn this frame
func (p *Player) Visible() bool {
	if p.Blink == nil || !p.Blink.Running() {
		return true
	}
	return p.Blink.Visible()
}

// Center returns the body center
func (p *Player) Center() r2.Vec {
	return p.Position
}
