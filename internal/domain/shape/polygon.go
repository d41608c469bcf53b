// Package shape provides convex polygons and the separating-axis overlap test
// used for both tile shapes and body probes.
package shape

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDegenerate is returned when a polygon has fewer than two points.
var ErrDegenerate = errors.New("shape: polygon needs at least 2 points")

// Polygon is a convex shape in local space, centered on the position it is
// tested at. Two-point polygons are open edges (one-way platform tops).
// Polygons are immutable once built and can be shared between cells.
type Polygon struct {
	points  []r2.Vec
	normals []r2.Vec // unit edge normals, zero-length edges skipped
	bounds  r2.Box
}

// NewPolygon builds a polygon from its points in winding order.
func NewPolygon(points ...r2.Vec) (*Polygon, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrDegenerate, len(points))
	}

	pts := make([]r2.Vec, len(points))
	copy(pts, points)

	p := &Polygon{points: pts}
	p.normals = edgeNormals(pts)
	p.bounds = boundsOf(pts)
	return p, nil
}

// MustPolygon is NewPolygon for shapes known at build time.
// It panics on a degenerate shape.
func MustPolygon(points ...r2.Vec) *Polygon {
	p, err := NewPolygon(points...)
	if err != nil {
		panic(err)
	}
	return p
}

// NewBox returns a w×h rectangle centered on the origin.
func NewBox(w, h float64) *Polygon {
	hw, hh := w/2, h/2
	return MustPolygon(
		r2.Vec{X: -hw, Y: -hh},
		r2.Vec{X: hw, Y: -hh},
		r2.Vec{X: hw, Y: hh},
		r2.Vec{X: -hw, Y: hh},
	)
}

// NewEdge returns an open two-point polygon from a to b.
func NewEdge(a, b r2.Vec) *Polygon {
	return MustPolygon(a, b)
}

// NewPoint returns a zero-size probe at the origin.
func NewPoint() *Polygon {
	return MustPolygon(r2.Vec{}, r2.Vec{})
}

// Points returns a copy of the local-space points.
func (p *Polygon) Points() []r2.Vec {
	out := make([]r2.Vec, len(p.points))
	copy(out, p.points)
	return out
}

// Len returns the number of points.
func (p *Polygon) Len() int {
	return len(p.points)
}

// IsEdge reports whether the polygon is an open two-point edge.
func (p *Polygon) IsEdge() bool {
	return len(p.points) == 2
}

// Bounds returns the local-space bounding box.
func (p *Polygon) Bounds() r2.Box {
	return p.bounds
}

// WorldBounds returns the bounding box with the polygon placed at pos.
func (p *Polygon) WorldBounds(pos r2.Vec) r2.Box {
	return r2.Box{
		Min: r2.Add(p.bounds.Min, pos),
		Max: r2.Add(p.bounds.Max, pos),
	}
}

// Size returns the bounding box width and height.
func (p *Polygon) Size() (w, h float64) {
	return p.bounds.Max.X - p.bounds.Min.X, p.bounds.Max.Y - p.bounds.Min.Y
}

// edgeNormals returns one unit normal per edge. A closed polygon has one edge
// per point; an open edge has exactly one.
func edgeNormals(pts []r2.Vec) []r2.Vec {
	edges := len(pts)
	if edges == 2 {
		edges = 1
	}

	normals := make([]r2.Vec, 0, edges)
	for i := 0; i < edges; i++ {
		edge := r2.Sub(pts[(i+1)%len(pts)], pts[i])
		if r2.Norm(edge) == 0 {
			continue
		}
		normals = append(normals, r2.Unit(r2.Vec{X: -edge.Y, Y: edge.X}))
	}
	return normals
}

func boundsOf(pts []r2.Vec) r2.Box {
	b := r2.Box{
		Min: r2.Vec{X: math.Inf(1), Y: math.Inf(1)},
		Max: r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, pt := range pts {
		b.Min.X = math.Min(b.Min.X, pt.X)
		b.Min.Y = math.Min(b.Min.Y, pt.Y)
		b.Max.X = math.Max(b.Max.X, pt.X)
		b.Max.Y = math.Max(b.Max.Y, pt.Y)
	}
	return b
}
