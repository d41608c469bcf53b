package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/dunjo/internal/domain/shape"
)

func vec(x, y float64) r2.Vec { return r2.Vec{X: x, Y: y} }

func createTestGrid() *Grid {
	// 3x3, walls on the corners and a platform in the middle
	g := NewGrid(3, 3, 16, 16)
	box := shape.NewBox(16, 16)
	for _, c := range [][2]int{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
		g.Set(c[0], c[1], &TileCollision{Type: TileWall, Shape: box, Center: g.CellCenter(c[0], c[1]), Col: c[0], Row: c[1]})
	}
	edge := shape.NewEdge(vec(-8, -8), vec(8, -8))
	g.Set(1, 1, &TileCollision{Type: TileOneWay, Shape: edge, Center: g.CellCenter(1, 1), Col: 1, Row: 1})
	return g
}

func TestGrid_At(t *testing.T) {
	g := createTestGrid()

	tests := []struct {
		name     string
		col, row int
		wantNil  bool
		wantType TileType
	}{
		{"top-left wall", 0, 0, false, TileWall},
		{"top-center empty", 1, 0, true, TileEmpty},
		{"center platform", 1, 1, false, TileOneWay},
		{"left of grid", -1, 0, true, TileEmpty},
		{"below grid", 0, 3, true, TileEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := g.At(tt.col, tt.row)
			if tt.wantNil {
				assert.Nil(t, tc)
				return
			}
			assert.Equal(t, tt.wantType, tc.Type)
		})
	}
}

func TestGrid_SetOutOfRangeIgnored(t *testing.T) {
	g := NewGrid(2, 2, 16, 16)
	g.Set(5, 5, &TileCollision{Type: TileWall})
	assert.Nil(t, g.At(5, 5))
}

func TestGrid_Geometry(t *testing.T) {
	g := createTestGrid()

	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 16.0, g.TileWidth())
	assert.Equal(t, 16.0, g.TileHeight())
	assert.Equal(t, vec(24, 40), g.CellCenter(1, 2))
	assert.Equal(t, r2.Box{Max: vec(48, 48)}, g.WorldBounds())

	col, row, ok := g.CellAt(vec(17, 31.9))
	assert.True(t, ok)
	assert.Equal(t, 1, col)
	assert.Equal(t, 1, row)

	_, _, ok = g.CellAt(vec(-0.5, 4))
	assert.False(t, ok)
}

func TestGrid_TypeAt(t *testing.T) {
	g := createTestGrid()

	assert.Equal(t, TileWall, g.TypeAt(vec(4, 4)))
	assert.Equal(t, TileOneWay, g.TypeAt(vec(24, 24)))
	assert.Equal(t, TileEmpty, g.TypeAt(vec(24, 4)))
	assert.Equal(t, TileEmpty, g.TypeAt(vec(-100, 4)))
}

func TestGrid_CellRange(t *testing.T) {
	g := createTestGrid()

	tests := []struct {
		name                           string
		box                            r2.Box
		minCol, minRow, maxCol, maxRow int
		ok                             bool
	}{
		{"inside one cell", r2.Box{Min: vec(20, 4), Max: vec(28, 12)}, 1, 0, 1, 0, true},
		{"aligned to cell edges", r2.Box{Min: vec(16, 0), Max: vec(32, 16)}, 1, 0, 1, 0, true},
		{"spans four cells", r2.Box{Min: vec(10, 10), Max: vec(20, 20)}, 0, 0, 1, 1, true},
		{"clamped to grid", r2.Box{Min: vec(-40, -40), Max: vec(100, 100)}, 0, 0, 2, 2, true},
		{"zero size inside cell", r2.Box{Min: vec(8, 8), Max: vec(8, 8)}, 0, 0, 0, 0, true},
		{"zero size on corner", r2.Box{Min: vec(16, 16), Max: vec(16, 16)}, 1, 1, 1, 1, true},
		{"entirely left", r2.Box{Min: vec(-10, -10), Max: vec(-1, -1)}, 0, 0, -1, -1, false},
		{"entirely right", r2.Box{Min: vec(60, 0), Max: vec(70, 8)}, 3, 0, 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minCol, minRow, maxCol, maxRow, ok := g.CellRange(tt.box)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.minCol, minCol)
			assert.Equal(t, tt.minRow, minRow)
			assert.Equal(t, tt.maxCol, maxCol)
			assert.Equal(t, tt.maxRow, maxRow)
		})
	}
}
