package system

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/dunjo/internal/domain/entity"
	"github.com/younwookim/dunjo/internal/domain/shape"
)

// Hit is a collision response together with the tile that produced it
type Hit struct {
	shape.Response
	Tile *entity.TileCollision
}

// OneWay reports whether the matched tile is a one-way platform
func (h Hit) OneWay() bool {
	return h.Tile.OneWay()
}

// Query finds the collision of a probe shape placed at a world position
type Query interface {
	Query(probe *shape.Polygon, pos r2.Vec) (Hit, bool)
}

// GridSource supplies the current collision grid
type GridSource interface {
	Grid() *entity.Grid
}

// GridQuery answers queries against the grid of a GridSource. The grid is
// fetched on every call, so a rebuild is seen by the next query.
type GridQuery struct {
	source GridSource
}

// NewGridQuery creates a query over a grid source
func NewGridQuery(source GridSource) *GridQuery {
	return &GridQuery{source: source}
}

// Query scans the cells under the probe's bounding box in row-major order
// and returns the first overlap that is not a seam between two solid tiles.
// It does not look for the deepest overlap.
func (q *GridQuery) Query(probe *shape.Polygon, pos r2.Vec) (Hit, bool) {
	return QueryGrid(q.source.Grid(), probe, pos)
}

// QueryGrid runs a query against a fixed grid
func QueryGrid(grid *entity.Grid, probe *shape.Polygon, pos r2.Vec) (Hit, bool) {
	if grid == nil {
		return Hit{}, false
	}

	minCol, minRow, maxCol, maxRow, ok := grid.CellRange(probe.WorldBounds(pos))
	if !ok {
		return Hit{}, false
	}

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			tile := grid.At(col, row)
			if tile == nil {
				continue
			}

			resp, hit := shape.TestOverlap(tile.Shape, tile.Center, probe, pos)
			if !hit || resp.Depth <= 0 {
				continue
			}

			// A hit pointing into a solid neighbour is an internal edge
			neighbour := grid.At(col+int(math.Round(resp.Normal.X)), row+int(math.Round(resp.Normal.Y)))
			if neighbour != nil && !neighbour.OneWay() {
				continue
			}

			return Hit{Response: resp, Tile: tile}, true
		}
	}
	return Hit{}, false
}
