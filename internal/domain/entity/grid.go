package entity

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Grid holds per-cell collision shapes, indexed [row][col].
// Its dimensions never change after creation.
type Grid struct {
	cols, rows   int
	tileW, tileH float64
	cells        [][]*TileCollision
}

// NewGrid creates an empty grid
func NewGrid(cols, rows int, tileW, tileH float64) *Grid {
	cells := make([][]*TileCollision, rows)
	for y := range cells {
		cells[y] = make([]*TileCollision, cols)
	}
	return &Grid{
		cols:  cols,
		rows:  rows,
		tileW: tileW,
		tileH: tileH,
		cells: cells,
	}
}

// Cols returns the width in tiles
func (g *Grid) Cols() int { return g.cols }

// Rows returns the height in tiles
func (g *Grid) Rows() int { return g.rows }

// TileWidth returns the tile width in world units
func (g *Grid) TileWidth() float64 { return g.tileW }

// TileHeight returns the tile height in world units
func (g *Grid) TileHeight() float64 { return g.tileH }

// InBounds reports whether the cell exists
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// At returns the cell's collision, or nil for empty and out-of-range cells
func (g *Grid) At(col, row int) *TileCollision {
	if !g.InBounds(col, row) {
		return nil
	}
	return g.cells[row][col]
}

// Set stores a cell. Only grid builders call this, before the grid is published.
func (g *Grid) Set(col, row int, tc *TileCollision) {
	if !g.InBounds(col, row) {
		return
	}
	g.cells[row][col] = tc
}

// CellCenter returns the world position of a cell's center
func (g *Grid) CellCenter(col, row int) r2.Vec {
	return r2.Vec{
		X: float64(col)*g.tileW + g.tileW/2,
		Y: float64(row)*g.tileH + g.tileH/2,
	}
}

// CellAt returns the cell containing a world position
func (g *Grid) CellAt(pos r2.Vec) (col, row int, ok bool) {
	col = int(math.Floor(pos.X / g.tileW))
	row = int(math.Floor(pos.Y / g.tileH))
	return col, row, g.InBounds(col, row)
}

// TypeAt returns the collision type at a world position
func (g *Grid) TypeAt(pos r2.Vec) TileType {
	col, row, ok := g.CellAt(pos)
	if !ok {
		return TileEmpty
	}
	if tc := g.cells[row][col]; tc != nil {
		return tc.Type
	}
	return TileEmpty
}

// WorldBounds returns the grid's extent in world units
func (g *Grid) WorldBounds() r2.Box {
	return r2.Box{Max: r2.Vec{X: float64(g.cols) * g.tileW, Y: float64(g.rows) * g.tileH}}
}

// CellRange converts a world box to an inclusive cell range clamped to the
// grid. ok is false when the box lies entirely outside the grid.
func (g *Grid) CellRange(box r2.Box) (minCol, minRow, maxCol, maxRow int, ok bool) {
	minCol = int(math.Floor(box.Min.X / g.tileW))
	minRow = int(math.Floor(box.Min.Y / g.tileH))
	maxCol = int(math.Ceil(box.Max.X/g.tileW)) - 1
	maxRow = int(math.Ceil(box.Max.Y/g.tileH)) - 1

	// A zero-size box sitting inside a cell still covers that cell
	if maxCol < minCol && box.Max.X == box.Min.X {
		maxCol = minCol
	}
	if maxRow < minRow && box.Max.Y == box.Min.Y {
		maxRow = minRow
	}

	minCol = max(minCol, 0)
	minRow = max(minRow, 0)
	maxCol = min(maxCol, g.cols-1)
	maxRow = min(maxRow, g.rows-1)

	return minCol, minRow, maxCol, maxRow, minCol <= maxCol && minRow <= maxRow
}
