package entity

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultCollisionLayer is the tile layer the collision grid is built from
const DefaultCollisionLayer = "Walls"

// Layer is one tile layer: a gid per cell in row-major order, 0 for empty
type Layer struct {
	Name string
	Data []int
}

// Object is a placed level object (spawn point, enemy, key, room trigger)
type Object struct {
	Type string
	Name string
	X, Y float64 // center
	W, H float64

	FacingRight bool
}

// Level is the tile data a collision grid is derived from.
// Types maps a gid to its tileset semantic type string.
type Level struct {
	Name       string
	Width      int // tiles
	Height     int // tiles
	TileWidth  int
	TileHeight int
	Layers     []Layer
	Types      map[int]string
	Objects    []Object
}

// Layer returns the named tile layer
func (l *Level) Layer(name string) (*Layer, bool) {
	for i := range l.Layers {
		if l.Layers[i].Name == name {
			return &l.Layers[i], true
		}
	}
	return nil, false
}

// TypeOf returns the semantic type of a gid, "" when it has none
func (l *Level) TypeOf(gid int) string {
	if gid == 0 {
		return ""
	}
	return l.Types[gid]
}

// Index converts tile coordinates to a layer data index
func (l *Level) Index(col, row int) int {
	return row*l.Width + col
}

// Coords converts a layer data index to tile coordinates
func (l *Level) Coords(idx int) (col, row int) {
	return idx % l.Width, idx / l.Width
}

// TileCoords returns the tile containing a world position
func (l *Level) TileCoords(pos r2.Vec) (col, row int, ok bool) {
	col = int(math.Floor(pos.X / float64(l.TileWidth)))
	row = int(math.Floor(pos.Y / float64(l.TileHeight)))
	ok = col >= 0 && col < l.Width && row >= 0 && row < l.Height
	return col, row, ok
}

// TilesAt returns the semantic types present across all layers at a world
// position. Out-of-range positions have no tiles.
func (l *Level) TilesAt(pos r2.Vec) []string {
	col, row, ok := l.TileCoords(pos)
	if !ok {
		return nil
	}

	idx := l.Index(col, row)
	var types []string
	for _, layer := range l.Layers {
		if idx >= len(layer.Data) {
			continue
		}
		if t := l.TypeOf(layer.Data[idx]); t != "" {
			types = append(types, t)
		}
	}
	return types
}

// HasTileAt reports whether any of the given types is present at pos
func (l *Level) HasTileAt(pos r2.Vec, types ...string) bool {
	for _, have := range l.TilesAt(pos) {
		for _, want := range types {
			if have == want {
				return true
			}
		}
	}
	return false
}

// ObjectsOfType returns the placed objects with the given type
func (l *Level) ObjectsOfType(typ string) []Object {
	var out []Object
	for _, o := range l.Objects {
		if o.Type == typ {
			out = append(out, o)
		}
	}
	return out
}

// PixelWidth returns the level width in world units
func (l *Level) PixelWidth() float64 { return float64(l.Width * l.TileWidth) }

// PixelHeight returns the level height in world units
func (l *Level) PixelHeight() float64 { return float64(l.Height * l.TileHeight) }
