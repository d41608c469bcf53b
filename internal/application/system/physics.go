package system

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/dunjo/internal/domain/entity"
)

// Result is the outcome of one MoveAndSlide call
type Result struct {
	Position r2.Vec
	Velocity r2.Vec
	Grounded bool
	// Blocked is set when the body was pushed back horizontally
	Blocked  bool
	Hit      Hit
	Collided bool
}

// Resolver moves kinematic bodies and corrects them against a collision query
type Resolver struct {
	query Query
}

// NewResolver creates a resolver over a collision query
func NewResolver(q Query) *Resolver {
	return &Resolver{query: q}
}

// MoveAndSlide applies velocity to the body, queries once at the new
// position and resolves the hit:
//   - one-way tile while rising: the correction is undone and velocity kept
//   - falling onto a surface: vertical velocity zeroed, grounded
//   - rising into a ceiling: vertical velocity zeroed
//   - otherwise a horizontal push: Blocked, and controlled bodies stop
//
// Any remaining vertical velocity clears grounded. The body is updated in
// place and the same values are returned.
func (r *Resolver) MoveAndSlide(body *entity.Body, velocity r2.Vec) Result {
	return r.moveAndSlide(body, velocity, false)
}

// moveAndSlide is MoveAndSlide; a horizontal pass passes through one-way
// tiles, which only ever stop a body from above
func (r *Resolver) moveAndSlide(body *entity.Body, velocity r2.Vec, horizontal bool) Result {
	pos := r2.Add(body.Position, velocity)
	vel := velocity
	res := Result{Grounded: body.Grounded}

	hit, ok := r.query.Query(body.Shape, pos)
	if ok && horizontal && hit.OneWay() {
		ok = false
	}
	if ok {
		res.Hit = hit
		res.Collided = true

		// Slide out of the tile first
		pos = r2.Add(pos, hit.Vector)

		// Penetration points from the body into the tile
		pen := hit.Penetration()
		switch {
		case hit.OneWay() && vel.Y < 0:
			pos = r2.Add(pos, pen)
		case vel.Y > 0 && pen.Y > 0:
			vel.Y = 0
			res.Grounded = true
		case vel.Y < 0 && pen.Y < 0:
			vel.Y = 0
		default:
			if hit.Vector.X != 0 {
				res.Blocked = true
				if !body.Patrol {
					vel.X = 0
				}
			}
		}
	}

	if vel.Y != 0 {
		res.Grounded = false
	}

	res.Position = pos
	res.Velocity = vel

	body.Position = pos
	body.Velocity = vel
	body.Grounded = res.Grounded
	return res
}

// MoveAxes resolves the horizontal and vertical parts of velocity as two
// MoveAndSlide calls, x first, so a body pushing into a wall while standing
// on a floor has both contacts resolved in the same step. One-way tiles are
// left to the vertical pass.
func (r *Resolver) MoveAxes(body *entity.Body, velocity r2.Vec) Result {
	res := Result{Grounded: body.Grounded}
	if velocity.X != 0 {
		res = r.moveAndSlide(body, r2.Vec{X: velocity.X}, true)
	}
	vx := body.Velocity.X

	vertical := r.moveAndSlide(body, r2.Vec{Y: velocity.Y}, false)
	body.Velocity.X = vx

	vertical.Velocity.X = vx
	vertical.Blocked = res.Blocked
	if !vertical.Collided && res.Collided {
		vertical.Hit = res.Hit
		vertical.Collided = true
	}
	return vertical
}
