package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/younwookim/dunjo/internal/application/system"
	"github.com/younwookim/dunjo/internal/domain/entity"
	"github.com/younwookim/dunjo/internal/infrastructure/config"
	"github.com/younwookim/dunjo/internal/infrastructure/tmx"
)

// loadLevel finds a level by name: levels/<name>.tmx first, then the ASCII
// stage stages/<name>.json
func loadLevel(loader *config.Loader, name string) (*entity.Level, error) {
	tmxPath := "levels/" + name + ".tmx"
	if _, err := fs.Stat(loader.FS(), tmxPath); err == nil {
		return tmx.Load(loader.FS(), tmxPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat %s: %w", tmxPath, err)
	}

	stageCfg, err := loader.LoadStage(name)
	if err != nil {
		return nil, err
	}
	return system.LoadStage(stageCfg)
}
