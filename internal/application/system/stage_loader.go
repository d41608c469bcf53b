package system

import (
	"fmt"

	"github.com/younwookim/dunjo/internal/domain/entity"
	"github.com/younwookim/dunjo/internal/infrastructure/config"
)

// LoadStage converts an ASCII StageConfig into level tile data.
// Characters without a mapping are empty cells; short rows are padded empty.
func LoadStage(cfg *config.StageConfig) (*entity.Level, error) {
	cols, rows := cfg.Size.Cols(), cfg.Size.Rows()
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("stage %s: invalid size %dx%d tile %d",
			cfg.ID, cfg.Size.Width, cfg.Size.Height, cfg.Size.TileSize)
	}

	level := &entity.Level{
		Name:       cfg.ID,
		Width:      cols,
		Height:     rows,
		TileWidth:  cfg.Size.TileSize,
		TileHeight: cfg.Size.TileSize,
		Types:      make(map[int]string),
	}

	for char, mapping := range cfg.TileMapping {
		if mapping.TileIndex <= 0 {
			return nil, fmt.Errorf("stage %s: tile %q needs a positive tileIndex", cfg.ID, char)
		}
		if prev, ok := level.Types[mapping.TileIndex]; ok && prev != mapping.Type {
			return nil, fmt.Errorf("stage %s: tileIndex %d is both %q and %q",
				cfg.ID, mapping.TileIndex, prev, mapping.Type)
		}
		level.Types[mapping.TileIndex] = mapping.Type
	}

	for _, lc := range cfg.Layers {
		data := make([]int, cols*rows)
		for y, line := range lc.Rows {
			if y >= rows {
				break
			}
			for x, char := range []rune(line) {
				if x >= cols {
					break
				}
				if mapping, ok := cfg.TileMapping[string(char)]; ok {
					data[level.Index(x, y)] = mapping.TileIndex
				}
			}
		}
		level.Layers = append(level.Layers, entity.Layer{Name: lc.Name, Data: data})
	}

	level.Objects = append(level.Objects, entity.Object{
		Type: ObjectSpawn,
		X:    float64(cfg.PlayerSpawn.X),
		Y:    float64(cfg.PlayerSpawn.Y),
	})
	for _, e := range cfg.Enemies {
		level.Objects = append(level.Objects, entity.Object{
			Type:        ObjectEnemy,
			Name:        e.Type,
			X:           float64(e.X),
			Y:           float64(e.Y),
			FacingRight: e.FacingRight,
		})
	}
	for _, x := range cfg.RoomTriggers {
		level.Objects = append(level.Objects, entity.Object{
			Type: ObjectRoomTrigger,
			X:    float64(x),
			H:    level.PixelHeight(),
		})
	}
	for _, p := range cfg.Pickups {
		level.Objects = append(level.Objects, entity.Object{
			Type: p.Type,
			X:    float64(p.X),
			Y:    float64(p.Y),
		})
	}

	return level, nil
}
