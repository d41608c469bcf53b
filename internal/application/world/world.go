// Package world runs the simulation step: the player, the patrolling enemies
// and their contacts over one level's collision grid. Everything runs on the
// caller's goroutine; tile mutations are queued during a step and applied
// before the next one.
package world

import (
	"errors"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/dunjo/internal/application/system"
	"github.com/younwookim/dunjo/internal/domain/entity"
	"github.com/younwookim/dunjo/internal/infrastructure/config"
)

// ErrNoSpawn is returned for a level without a spawn object
var ErrNoSpawn = errors.New("level has no spawn point")

// Events reports what happened during one step
type Events struct {
	RoomChanged bool
	Died        bool
	Collected   []*entity.Pickup
}

type World struct {
	config *config.GameConfig

	tiles    *system.TileMap
	resolver *system.Resolver
	players  *system.PlayerSystem
	patrol   *system.PatrolSystem
	contacts *system.ContactSystem
	rooms    *system.Rooms

	player  *entity.Player
	enemies []*entity.Enemy
	pickups []*entity.Pickup

	intents []system.Intent
	frame   int

	playerResult system.Result
	enemyResults []system.Result
}

// New builds a world for a level. A missing collision layer or spawn point
// is an error; enemy types without config are skipped with a warning.
func New(cfg *config.GameConfig, level *entity.Level) (*World, error) {
	tiles, err := system.NewTileMap(level, cfg.Physics.Collision.Layer)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", level.Name, err)
	}
	resolver := system.NewResolver(system.NewGridQuery(tiles))

	w := &World{
		config:   cfg,
		tiles:    tiles,
		resolver: resolver,
		players:  system.NewPlayerSystem(cfg.Physics, tiles, resolver),
		patrol:   system.NewPatrolSystem(cfg.Physics, tiles, resolver),
		contacts: system.NewContactSystem(int(level.PixelWidth()), int(level.PixelHeight()), level.TileWidth),
		rooms:    system.NewRooms(level),
	}

	spawns := level.ObjectsOfType(system.ObjectSpawn)
	if len(spawns) == 0 {
		return nil, fmt.Errorf("level %s: %w", level.Name, ErrNoSpawn)
	}
	w.rooms.Enter(spawns[0].X)
	spawn, ok := w.rooms.Spawn()
	if !ok {
		spawn = r2.Vec{X: spawns[0].X, Y: spawns[0].Y}
	}

	pc := cfg.Entities.Player
	w.player = entity.NewPlayer(spawn, pc.Width, pc.Height)
	w.players.Respawn(w.player)
	w.contacts.SetPlayer(w.player)

	w.spawnActors(level)
	return w, nil
}

func (w *World) spawnActors(level *entity.Level) {
	id := entity.EntityID(1)
	for _, o := range level.ObjectsOfType(system.ObjectEnemy) {
		ec, ok := w.config.Entities.Enemy(o.Name)
		if !ok {
			slog.Warn("no config for enemy type, skipping", "type", o.Name, "x", o.X, "y", o.Y)
			continue
		}
		e := entity.NewEnemy(id, r2.Vec{X: o.X, Y: o.Y}, ec.Width, ec.Height, o.Name)
		e.MoveSpeed = ec.MoveSpeed
		e.Gravity = ec.Gravity
		if !o.FacingRight {
			e.Direction = -1
		}
		w.enemies = append(w.enemies, e)
		w.contacts.AddEnemy(e)
		id++
	}
	w.enemyResults = make([]system.Result, len(w.enemies))

	for _, o := range level.ObjectsOfType(system.ObjectKey) {
		size, ok := w.config.Entities.Pickup(o.Type)
		if !ok {
			slog.Warn("no config for pickup type, skipping", "type", o.Type)
			continue
		}
		p := entity.NewPickup(id, r2.Vec{X: o.X, Y: o.Y}, size.Width, size.Height, o.Type)
		w.pickups = append(w.pickups, p)
		w.contacts.AddPickup(p)
		id++
	}
}

// Step applies queued tile mutations and advances the world by one frame.
// The player moves first, then the enemies in spawn order, then contacts
// are resolved.
func (w *World) Step(input system.InputState, dt float64) Events {
	w.ApplyIntents()
	w.frame++

	var ev Events
	w.playerResult = w.players.Update(w.player, input, dt)

	if w.rooms.Enter(w.player.Position.X) {
		ev.RoomChanged = true
		if spawn, ok := w.rooms.Spawn(); ok {
			w.player.Spawn = spawn
		}
		slog.Debug("room entered", "room", w.rooms.Index(), "frame", w.frame)
	}

	for i, e := range w.enemies {
		w.enemyResults[i] = w.patrol.Update(e, dt)
	}

	for _, c := range w.contacts.Update() {
		if !w.player.Alive() {
			break
		}
		switch c.Kind {
		case system.ContactEnemy:
			w.players.Die(w.player)
			ev.Died = true
		case system.ContactPickup:
			w.collect(c.Pickup)
			ev.Collected = append(ev.Collected, c.Pickup)
		}
	}

	return ev
}

// collect removes a pickup. A key opens the blocks of the current room.
func (w *World) collect(p *entity.Pickup) {
	p.Active = false
	w.contacts.RemovePickup(p)

	if p.Type == system.ObjectKey {
		left, right := w.rooms.Bounds()
		w.Queue(system.DestroyTilesIntent{Type: entity.TypeBlock, MinX: left, MaxX: right})
	}
}

// Queue schedules a tile mutation for the start of the next step
func (w *World) Queue(intent system.Intent) {
	w.intents = append(w.intents, intent)
}

// Reload schedules new tile data for the level. The grid keeps its size, so
// a level that changed dimensions is rejected with a warning.
func (w *World) Reload(level *entity.Level) {
	w.Queue(system.ReloadIntent{Level: level})
}

// ApplyIntents applies every queued mutation in order. Failed mutations are
// logged and dropped.
func (w *World) ApplyIntents() {
	if len(w.intents) == 0 {
		return
	}
	for _, in := range w.intents {
		if err := w.tiles.Apply(in); err != nil {
			slog.Warn("tile mutation failed", "intent", fmt.Sprintf("%T", in), "err", err)
		}
	}
	w.intents = w.intents[:0]
}

// Frame returns the number of completed steps
func (w *World) Frame() int { return w.frame }

// Player returns the player
func (w *World) Player() *entity.Player { return w.player }

// Enemies returns the enemies in spawn order
func (w *World) Enemies() []*entity.Enemy { return w.enemies }

// Pickups returns the pickups, collected ones included
func (w *World) Pickups() []*entity.Pickup { return w.pickups }

// Tiles returns the level's tile map
func (w *World) Tiles() *system.TileMap { return w.tiles }

// Room returns the current room index and its horizontal extent
func (w *World) Room() (index int, left, right float64) {
	left, right = w.rooms.Bounds()
	return w.rooms.Index(), left, right
}
