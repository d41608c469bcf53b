package system

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/dunjo/internal/domain/entity"
	"github.com/younwookim/dunjo/internal/infrastructure/config"
)

// TileView is the tile data the player system inspects besides collision
type TileView interface {
	GridSource
	HasTileAt(pos r2.Vec, types ...string) bool
}

// PlayerSystem drives the player: walking, jumping, ladders, hazards and the
// death and respawn cycle
type PlayerSystem struct {
	config   *config.PhysicsConfig
	tiles    TileView
	resolver *Resolver
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(cfg *config.PhysicsConfig, tiles TileView, resolver *Resolver) *PlayerSystem {
	return &PlayerSystem{
		config:   cfg,
		tiles:    tiles,
		resolver: resolver,
	}
}

// Update advances the player by one step and returns the collision result of
// its walk. Climbing and non-alive steps return a zero Result.
func (s *PlayerSystem) Update(player *entity.Player, input InputState, dt float64) Result {
	if player.Blink != nil {
		player.Blink.Update(dt)
	}
	if !player.Alive() {
		return Result{}
	}

	if player.OnLadder {
		s.updateLadder(player, input)
		if player.OnLadder {
			return Result{}
		}
	}

	res := s.updateWalk(player, input, dt)

	center := player.Position
	if input.UpPressed && s.tiles.HasTileAt(center, entity.TypeLadder, entity.TypeChain) {
		s.enterLadder(player)
	}

	if s.tiles.HasTileAt(center, entity.TypeSpikes) {
		s.Die(player)
		return res
	}

	s.checkFellOOB(player)
	return res
}

func (s *PlayerSystem) updateWalk(player *entity.Player, input InputState, dt float64) Result {
	vx := input.Horizontal() * s.config.Movement.Speed
	if vx > 0 {
		player.FacingRight = true
	} else if vx < 0 {
		player.FacingRight = false
	}

	vy := player.Velocity.Y
	if input.JumpPressed && player.Grounded {
		vy = -s.config.Jump.Speed
	}
	vy = math.Min(vy+s.config.Physics.Gravity*dt, s.config.Physics.MaxFallSpeed)

	return s.resolver.MoveAxes(&player.Body, r2.Vec{X: vx, Y: vy})
}

// enterLadder snaps the player to the ladder column and cancels any fall
func (s *PlayerSystem) enterLadder(player *entity.Player) {
	grid := s.tiles.Grid()
	if col, _, ok := grid.CellAt(player.Position); ok {
		player.Position.X = float64(col)*grid.TileWidth() + grid.TileWidth()/2
	}
	player.Stop()
	player.Grounded = false
	player.OnLadder = true
}

// updateLadder climbs by direct translation. Collision resolution is skipped
// except for walls at head height.
func (s *PlayerSystem) updateLadder(player *entity.Player, input InputState) {
	prev := player.Position
	speed := s.config.Movement.LadderSpeed

	switch {
	case input.Up:
		player.Translate(r2.Vec{Y: -speed})
	case input.Down:
		player.Translate(r2.Vec{Y: speed})
	}

	head := r2.Vec{X: player.Position.X, Y: player.Top()}
	feet := r2.Vec{X: player.Position.X, Y: player.Bottom()}

	if s.tiles.HasTileAt(head, entity.TypeWall) {
		player.Position = prev
	}

	if input.LeftPressed || input.RightPressed ||
		!s.tiles.HasTileAt(feet, entity.TypeLadder, entity.TypeChain) {
		player.OnLadder = false
	}
}

// checkFellOOB respawns the player once it has dropped below the level
func (s *PlayerSystem) checkFellOOB(player *entity.Player) {
	if player.Top() > s.tiles.Grid().WorldBounds().Max.Y {
		s.Respawn(player)
	}
}

// Die starts the death blink; the player respawns when it finishes, or
// right away when there is no blink to run
func (s *PlayerSystem) Die(player *entity.Player) {
	if player.Life == entity.LifeDead {
		return
	}
	player.Life = entity.LifeDead
	player.Deaths++
	player.Stop()
	player.OnLadder = false
	player.Blink = entity.NewBlink(s.config.Blink.Interval, s.config.Blink.DeathSteps, entity.BlinkHidden, func() {
		s.Respawn(player)
	})
	if !player.Blink.Running() {
		s.Respawn(player)
	}
}

// Respawn moves the player to its spawn point and runs the spawn blink.
// The player comes alive when the blink finishes.
func (s *PlayerSystem) Respawn(player *entity.Player) {
	player.Stop()
	player.Position = player.Spawn
	player.Grounded = false
	player.OnLadder = false
	player.FacingRight = true
	player.Life = entity.LifeSpawning

	player.Blink = entity.NewBlink(s.config.Blink.Interval, s.config.Blink.SpawnSteps, entity.BlinkHidden, func() {
		player.Life = entity.LifeAlive
	})
	if !player.Blink.Running() {
		player.Life = entity.LifeAlive
	}
}
