package entity

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/dunjo/internal/domain/shape"
)

// EntityID is a unique identifier for an entity
type EntityID uint32

// TileType is the collision class of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TileOneWay
)

// String returns the name of the tile type
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "Empty"
	case TileWall:
		return "Wall"
	case TileOneWay:
		return "OneWay"
	default:
		return "Unknown"
	}
}

// Semantic tile type strings found in tileset metadata
const (
	TypeWall     = "wall"
	TypeBlock    = "block"
	TypePlatform = "platform"
	TypeLadder   = "ladder"
	TypeChain    = "chain"
	TypeSpikes   = "spikes"
)

// gameplayTypes are semantic types that carry no collision but are known.
var gameplayTypes = map[string]struct{}{
	TypeLadder: {},
	TypeChain:  {},
	TypeSpikes: {},
}

// ParseTileType classifies a tileset type string. known is false for
// strings that are neither collision nor gameplay types; those still map
// to TileEmpty so a bad tileset never stops a level from loading.
func ParseTileType(s string) (t TileType, known bool) {
	switch s {
	case TypeWall, TypeBlock:
		return TileWall, true
	case TypePlatform:
		return TileOneWay, true
	case "":
		return TileEmpty, true
	}
	_, known = gameplayTypes[s]
	return TileEmpty, known
}

// TileCollision is the collision shape of one grid cell.
// It is immutable for the lifetime of the grid that holds it.
type TileCollision struct {
	Type   TileType
	Shape  *shape.Polygon // tile-local points
	Center r2.Vec         // world position of the cell center
	Col    int
	Row    int
}

// OneWay reports whether the tile only blocks from above
func (tc *TileCollision) OneWay() bool {
	return tc != nil && tc.Type == TileOneWay
}
