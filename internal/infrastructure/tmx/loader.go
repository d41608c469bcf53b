// Package tmx loads Tiled maps into level tile data.
package tmx

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/dunjo/internal/domain/entity"
)

// TypeProperty is the tile property read when a tileset tile has no type
const TypeProperty = "type"

const gidMask = 0x1FFFFFFF

// Load parses a TMX file into a level. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*entity.Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &entity.Level{
		Name:       strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Types:      tileTypes(levelMap),
	}

	for _, layer := range levelMap.Layers {
		data := make([]int, levelMap.Width*levelMap.Height)
		for i, tile := range layer.Tiles {
			if i >= len(data) {
				break
			}
			if tile == nil || tile.IsNil() {
				continue
			}
			data[i] = int(tile.Tileset.FirstGID + tile.ID)
		}
		level.Layers = append(level.Layers, entity.Layer{Name: layer.Name, Data: data})
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			obj, err := loadObject(levelMap, level, o)
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: object %d: %w", tmxPath, o.ID, err)
			}
			level.Objects = append(level.Objects, obj)
		}
	}

	return level, nil
}

func tileTypes(levelMap *tiled.Map) map[int]string {
	types := make(map[int]string)
	for _, ts := range levelMap.Tilesets {
		for _, t := range ts.Tiles {
			if typ := tilesetTileType(t); typ != "" {
				types[int(ts.FirstGID+t.ID)] = typ
			}
		}
	}
	return types
}

func tilesetTileType(t *tiled.TilesetTile) string {
	if t.Type != "" {
		return t.Type
	}
	return t.Properties.GetString(TypeProperty)
}

// loadObject resolves an object's type and center. Tile objects are anchored
// at their bottom-left corner and fall back to their tile's type.
func loadObject(levelMap *tiled.Map, level *entity.Level, o *tiled.Object) (entity.Object, error) {
	typ := o.Type
	top := o.Y
	if o.GID != 0 {
		top = o.Y - o.Height
		if typ == "" {
			gid := o.GID & gidMask
			typ = level.TypeOf(int(gid))
			if typ == "" {
				if tile, err := levelMap.TileGIDToTile(gid); err == nil {
					if tt, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
						typ = tilesetTileType(tt)
					}
				}
			}
		}
	}
	if typ == "" {
		return entity.Object{}, fmt.Errorf("object %q has no type", o.Name)
	}

	return entity.Object{
		Type:        typ,
		Name:        o.Name,
		X:           o.X + o.Width/2,
		Y:           top + o.Height/2,
		W:           o.Width,
		H:           o.Height,
		FacingRight: o.Properties.GetBool("facingRight"),
	}, nil
}

// LoadAll discovers all .tmx files in dir within fsys and loads each.
// It returns the levels keyed by stem name plus the sorted names.
func LoadAll(fsys fs.FS, dir string) (map[string]*entity.Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*entity.Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		level, err := Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
