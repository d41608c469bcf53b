package entity

import "gonum.org/v1/gonum/spatial/r2"

// Enemy represents a patrolling enemy
type Enemy struct {
	Body

	ID        EntityID
	EnemyType string
	Active    bool

	// Direction is -1 (left) or 1 (right)
	Direction int
	MoveSpeed float64 // world units per step
	Gravity   bool
}

// NewEnemy creates a new enemy walking right
func NewEnemy(id EntityID, pos r2.Vec, w, h float64, enemyType string) *Enemy {
	body := NewBody(pos, w, h)
	body.Patrol = true
	return &Enemy{
		Body:      body,
		ID:        id,
		EnemyType: enemyType,
		Active:    true,
		Direction: 1,
	}
}

// Reverse turns the enemy around
func (e *Enemy) Reverse() {
	e.Direction = -e.Direction
}

// FacingRight reports the walking direction
func (e *Enemy) FacingRight() bool {
	return e.Direction > 0
}

// Pickup is a collectible such as a key
type Pickup struct {
	ID     EntityID
	Type   string
	Active bool
	Body
}

// NewPickup creates an active pickup
func NewPickup(id EntityID, pos r2.Vec, w, h float64, typ string) *Pickup {
	return &Pickup{
		ID:     id,
		Type:   typ,
		Active: true,
		Body:   NewBody(pos, w, h),
	}
}
