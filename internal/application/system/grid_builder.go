package system

import (
	"errors"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/dunjo/internal/domain/entity"
	"github.com/younwookim/dunjo/internal/domain/shape"
)

// ErrMissingCollisionLayer is returned when a level has no collision layer.
// No grid can be built, so callers treat it as fatal.
var ErrMissingCollisionLayer = errors.New("level has no collision layer")

// TypeLookup maps a tile gid to its semantic type string
type TypeLookup func(gid int) string

// BuildGrid classifies every cell of the named layer into a new grid.
// Wall cells share one box polygon and one-way cells share one top-edge
// polygon. Unknown type strings degrade to empty and are logged once per build.
func BuildGrid(level *entity.Level, layerName string, lookup TypeLookup) (*entity.Grid, error) {
	layer, ok := level.Layer(layerName)
	if !ok {
		return nil, fmt.Errorf("%w: %q in level %q", ErrMissingCollisionLayer, layerName, level.Name)
	}
	if lookup == nil {
		lookup = level.TypeOf
	}

	tw, th := float64(level.TileWidth), float64(level.TileHeight)
	grid := entity.NewGrid(level.Width, level.Height, tw, th)

	box := shape.NewBox(tw, th)
	top := shape.NewEdge(r2.Vec{X: -tw / 2, Y: -th / 2}, r2.Vec{X: tw / 2, Y: -th / 2})

	unknown := make(map[string]int)
	for row := 0; row < level.Height; row++ {
		for col := 0; col < level.Width; col++ {
			idx := level.Index(col, row)
			if idx >= len(layer.Data) || layer.Data[idx] == 0 {
				continue
			}

			name := lookup(layer.Data[idx])
			typ, known := entity.ParseTileType(name)
			if !known {
				unknown[name]++
			}

			var poly *shape.Polygon
			switch typ {
			case entity.TileWall:
				poly = box
			case entity.TileOneWay:
				poly = top
			default:
				continue
			}

			grid.Set(col, row, &entity.TileCollision{
				Type:   typ,
				Shape:  poly,
				Center: grid.CellCenter(col, row),
				Col:    col,
				Row:    row,
			})
		}
	}

	for name, count := range unknown {
		slog.Warn("unknown tile type treated as empty",
			"level", level.Name,
			"type", name,
			"cells", count,
		)
	}

	return grid, nil
}
