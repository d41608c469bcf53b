package system

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/dunjo/internal/domain/entity"
)

var (
	// ErrNoTileForType is returned when no tileset tile carries a semantic type
	ErrNoTileForType = errors.New("no tile for type")
	// ErrGridSizeChanged is returned when a rebuild would change grid dimensions
	ErrGridSizeChanged = errors.New("grid size changed")
	// ErrCellOutOfRange is returned by mutations outside the level
	ErrCellOutOfRange = errors.New("cell out of range")
)

// TileRef locates one tile in a level layer
type TileRef struct {
	Layer string
	Col   int
	Row   int
	GID   int
}

// TileMap owns a level's tile data and the collision grid derived from it.
// Every mutation rebuilds the whole grid into a fresh value and swaps it in,
// so readers only ever see a complete grid.
type TileMap struct {
	level   *entity.Level
	layer   string
	grid    *entity.Grid
	version int
}

// NewTileMap builds the collision grid for a level from the named layer
func NewTileMap(level *entity.Level, layer string) (*TileMap, error) {
	if layer == "" {
		layer = entity.DefaultCollisionLayer
	}
	grid, err := BuildGrid(level, layer, level.TypeOf)
	if err != nil {
		return nil, err
	}
	return &TileMap{level: level, layer: layer, grid: grid}, nil
}

// Grid returns the current collision grid
func (m *TileMap) Grid() *entity.Grid { return m.grid }

// Level returns the tile data
func (m *TileMap) Level() *entity.Level { return m.level }

// CollisionLayer returns the name of the layer collision is built from
func (m *TileMap) CollisionLayer() string { return m.layer }

// Version counts completed rebuilds
func (m *TileMap) Version() int { return m.version }

// Rebuild rebuilds the grid from the current tile data. The grid keeps its
// dimensions for its whole lifetime, so a level that changed size is rejected
// and the previous grid stays in place.
func (m *TileMap) Rebuild() error {
	grid, err := BuildGrid(m.level, m.layer, m.level.TypeOf)
	if err != nil {
		return err
	}
	if grid.Cols() != m.grid.Cols() || grid.Rows() != m.grid.Rows() {
		return fmt.Errorf("%w: %dx%d to %dx%d", ErrGridSizeChanged,
			m.grid.Cols(), m.grid.Rows(), grid.Cols(), grid.Rows())
	}

	m.grid = grid
	m.version++
	slog.Debug("collision grid rebuilt", "level", m.level.Name, "version", m.version)
	return nil
}

// Reload swaps in new tile data for the same level and rebuilds.
// On error the previous tile data and grid are kept.
func (m *TileMap) Reload(level *entity.Level) error {
	prev := m.level
	m.level = level
	if err := m.Rebuild(); err != nil {
		m.level = prev
		return err
	}
	return nil
}

// SetTileAt replaces one tile of a layer and rebuilds the grid
func (m *TileMap) SetTileAt(col, row, gid int, layerName string) error {
	if col < 0 || col >= m.level.Width || row < 0 || row >= m.level.Height {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOutOfRange, col, row)
	}
	layer, ok := m.level.Layer(layerName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingCollisionLayer, layerName)
	}

	idx := m.level.Index(col, row)
	if idx >= len(layer.Data) {
		return fmt.Errorf("%w: (%d,%d) beyond layer %q data", ErrCellOutOfRange, col, row, layerName)
	}
	layer.Data[idx] = gid
	return m.Rebuild()
}

// SetCollisionAt changes the collision class of one cell by writing a tile of
// a matching type into the collision layer, then rebuilds the grid
func (m *TileMap) SetCollisionAt(col, row int, typ entity.TileType) error {
	gid := 0
	switch typ {
	case entity.TileWall:
		var err error
		if gid, err = m.GIDForType(entity.TypeWall); err != nil {
			if gid, err = m.GIDForType(entity.TypeBlock); err != nil {
				return err
			}
		}
	case entity.TileOneWay:
		var err error
		if gid, err = m.GIDForType(entity.TypePlatform); err != nil {
			return err
		}
	}
	return m.SetTileAt(col, row, gid, m.layer)
}

// GIDForType returns the lowest gid whose tileset type is typ
func (m *TileMap) GIDForType(typ string) (int, error) {
	gids := make([]int, 0, len(m.level.Types))
	for gid, t := range m.level.Types {
		if t == typ {
			gids = append(gids, gid)
		}
	}
	if len(gids) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoTileForType, typ)
	}
	return slices.Min(gids), nil
}

// TilesOfType returns every tile across all layers whose type is typ,
// in layer order then row-major order
func (m *TileMap) TilesOfType(typ string) []TileRef {
	var refs []TileRef
	for _, layer := range m.level.Layers {
		for idx, gid := range layer.Data {
			if gid == 0 || m.level.TypeOf(gid) != typ {
				continue
			}
			col, row := m.level.Coords(idx)
			refs = append(refs, TileRef{Layer: layer.Name, Col: col, Row: row, GID: gid})
		}
	}
	return refs
}

// DestroyTilesOfType clears every tile of a type across all layers with a
// single rebuild. It returns the number of tiles removed.
func (m *TileMap) DestroyTilesOfType(typ string) (int, error) {
	return m.DestroyTilesOfTypeIn(typ, math.Inf(-1), math.Inf(1))
}

// DestroyTilesOfTypeIn is DestroyTilesOfType limited to tiles whose center x
// lies within [minX, maxX]
func (m *TileMap) DestroyTilesOfTypeIn(typ string, minX, maxX float64) (int, error) {
	removed := 0
	tw := float64(m.level.TileWidth)
	for _, ref := range m.TilesOfType(typ) {
		cx := float64(ref.Col)*tw + tw/2
		if cx < minX || cx > maxX {
			continue
		}
		layer, _ := m.level.Layer(ref.Layer)
		layer.Data[m.level.Index(ref.Col, ref.Row)] = 0
		removed++
	}
	if removed == 0 {
		return 0, nil
	}
	if err := m.Rebuild(); err != nil {
		return 0, err
	}
	slog.Info("tiles destroyed", "type", typ, "count", removed)
	return removed, nil
}

// TilesAt returns the semantic types present across all layers at a world position
func (m *TileMap) TilesAt(pos r2.Vec) []string {
	return m.level.TilesAt(pos)
}

// HasTileAt reports whether any of the given types is present at a world position
func (m *TileMap) HasTileAt(pos r2.Vec, types ...string) bool {
	return m.level.HasTileAt(pos, types...)
}
