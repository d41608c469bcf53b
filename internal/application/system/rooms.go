package system

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/dunjo/internal/domain/entity"
)

// Level object types used to lay out rooms
const (
	ObjectSpawn       = "spawn"
	ObjectRoomTrigger = "roomTrigger"
	ObjectEnemy       = "enemy"
	ObjectKey         = "key"
)

// Rooms splits a level into horizontal rooms at its room triggers.
// Each room respawns the player at the spawn point closest to its left edge.
type Rooms struct {
	boundaries []float64
	spawns     []r2.Vec
	current    int
}

// NewRooms reads room triggers and spawn points from the level objects
func NewRooms(level *entity.Level) *Rooms {
	r := &Rooms{current: -1}
	for _, o := range level.ObjectsOfType(ObjectRoomTrigger) {
		r.boundaries = append(r.boundaries, o.X)
	}
	slices.Sort(r.boundaries)
	for _, o := range level.ObjectsOfType(ObjectSpawn) {
		r.spawns = append(r.spawns, r2.Vec{X: o.X, Y: o.Y})
	}
	return r
}

// Index returns the current room
func (r *Rooms) Index() int { return r.current }

// Enter sets the room from a world x. It reports whether the room changed.
func (r *Rooms) Enter(x float64) bool {
	idx := 0
	for i, b := range r.boundaries {
		if x >= b {
			idx = i
		}
	}
	if idx == r.current {
		return false
	}
	r.current = idx
	return true
}

// Bounds returns the current room's horizontal extent. The first room is
// open to the left and the last to the right.
func (r *Rooms) Bounds() (left, right float64) {
	left, right = math.Inf(-1), math.Inf(1)
	if r.current > 0 {
		left = r.boundaries[r.current]
	}
	if r.current >= 0 && r.current+1 < len(r.boundaries) {
		right = r.boundaries[r.current+1]
	}
	return left, right
}

// Spawn returns the spawn point at or right of the room's left edge that
// is closest to it
func (r *Rooms) Spawn() (r2.Vec, bool) {
	left, _ := r.Bounds()
	best, found := r2.Vec{}, false
	for _, s := range r.spawns {
		if s.X < left {
			continue
		}
		if !found || s.X < best.X {
			best, found = s, true
		}
	}
	return best, found
}
