package system

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/dunjo/internal/domain/entity"
	"github.com/younwookim/dunjo/internal/infrastructure/config"
)

// PatrolSystem walks enemies back and forth, turning at ledges and walls
type PatrolSystem struct {
	config   *config.PhysicsConfig
	grid     GridSource
	resolver *Resolver
}

// NewPatrolSystem creates a new patrol system
func NewPatrolSystem(cfg *config.PhysicsConfig, grid GridSource, resolver *Resolver) *PatrolSystem {
	return &PatrolSystem{
		config:   cfg,
		grid:     grid,
		resolver: resolver,
	}
}

// Update moves one enemy a single step
func (s *PatrolSystem) Update(enemy *entity.Enemy, dt float64) Result {
	if !enemy.Active {
		return Result{}
	}

	vx := enemy.MoveSpeed * float64(enemy.Direction)

	// Turn before walking off a ledge
	if !s.walkable(enemy, vx) {
		enemy.Reverse()
		vx = -vx
	}

	vy := 0.0
	if enemy.Gravity {
		vy = math.Min(enemy.Velocity.Y+s.config.Physics.Gravity*dt, s.config.Physics.MaxFallSpeed)
	}

	res := s.resolver.MoveAxes(&enemy.Body, r2.Vec{X: vx, Y: vy})
	if res.Blocked {
		enemy.Reverse()
	}
	return res
}

// walkable reports whether the tile one step ahead and one tile down is solid
func (s *PatrolSystem) walkable(enemy *entity.Enemy, vx float64) bool {
	grid := s.grid.Grid()
	ahead := r2.Add(enemy.Position, r2.Vec{X: vx, Y: grid.TileHeight()})
	switch grid.TypeAt(ahead) {
	case entity.TileWall, entity.TileOneWay:
		return true
	default:
		return false
	}
}
