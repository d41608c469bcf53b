package system

import (
	"fmt"
	"math"

	"github.com/younwookim/dunjo/internal/domain/entity"
)

// Intent is a tile mutation requested during a frame. Intents are applied
// between steps so a rebuild is seen as a whole from the next step on.
type Intent interface {
	isIntent()
}

// SetCollisionIntent changes the collision class of one cell
type SetCollisionIntent struct {
	Col, Row int
	Type     entity.TileType
}

func (SetCollisionIntent) isIntent() {}

// SetTileIntent replaces one tile of a layer
type SetTileIntent struct {
	Col, Row int
	GID      int
	Layer    string
}

func (SetTileIntent) isIntent() {}

// DestroyTilesIntent clears every tile of a type whose center lies within
// [MinX, MaxX]
type DestroyTilesIntent struct {
	Type       string
	MinX, MaxX float64
}

func (DestroyTilesIntent) isIntent() {}

// DestroyAll returns an intent clearing every tile of a type
func DestroyAll(typ string) DestroyTilesIntent {
	return DestroyTilesIntent{Type: typ, MinX: math.Inf(-1), MaxX: math.Inf(1)}
}

// ReloadIntent swaps in freshly loaded tile data
type ReloadIntent struct {
	Level *entity.Level
}

func (ReloadIntent) isIntent() {}

// Apply performs one intent against the tile map
func (m *TileMap) Apply(intent Intent) error {
	switch in := intent.(type) {
	case SetCollisionIntent:
		return m.SetCollisionAt(in.Col, in.Row, in.Type)
	case SetTileIntent:
		return m.SetTileAt(in.Col, in.Row, in.GID, in.Layer)
	case DestroyTilesIntent:
		_, err := m.DestroyTilesOfTypeIn(in.Type, in.MinX, in.MaxX)
		return err
	case ReloadIntent:
		return m.Reload(in.Level)
	default:
		return fmt.Errorf("unknown intent %T", intent)
	}
}
