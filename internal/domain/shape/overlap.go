package shape

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Response describes a penetration between two shapes.
type Response struct {
	// Depth is the penetration along the resolution axis, always > 0.
	Depth float64
	// Normal is the unit resolution axis, pointing from A toward B.
	Normal r2.Vec
	// Vector is Normal * Depth. Adding it to B's position separates the shapes.
	Vector r2.Vec
}

// Penetration returns the vector from B into A, the inverse of Vector.
func (r Response) Penetration() r2.Vec {
	return r2.Scale(-1, r.Vector)
}

// TestOverlap runs a separating-axis test between a placed at posA and b
// placed at posB. Every edge normal of both shapes is a candidate axis,
// including the single normal of an open edge. It reports false when any
// axis separates the shapes or they only touch.
func TestOverlap(a *Polygon, posA r2.Vec, b *Polygon, posB r2.Vec) (Response, bool) {
	best := Response{Depth: math.Inf(1)}
	tested := 0

	for _, axes := range [][]r2.Vec{a.normals, b.normals} {
		for _, axis := range axes {
			tested++
			aMin, aMax := project(a.points, posA, axis)
			bMin, bMax := project(b.points, posB, axis)

			pushPos := aMax - bMin // move B along +axis
			pushNeg := bMax - aMin // move B along -axis
			if pushPos <= 0 || pushNeg <= 0 {
				return Response{}, false
			}

			depth, dir := pushPos, axis
			if pushNeg < pushPos {
				depth, dir = pushNeg, r2.Scale(-1, axis)
			}
			if depth < best.Depth {
				best.Depth = depth
				best.Normal = dir
			}
		}
	}

	if tested == 0 {
		return Response{}, false
	}

	best.Vector = r2.Scale(best.Depth, best.Normal)
	return best, true
}

// project returns the interval of pts, offset by pos, along axis.
func project(pts []r2.Vec, pos, axis r2.Vec) (lo, hi float64) {
	offset := r2.Dot(pos, axis)
	lo = r2.Dot(pts[0], axis) + offset
	hi = lo
	for _, pt := range pts[1:] {
		p := r2.Dot(pt, axis) + offset
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	return lo, hi
}
