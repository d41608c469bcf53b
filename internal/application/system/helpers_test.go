package system

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/dunjo/internal/domain/entity"
	"github.com/younwookim/dunjo/internal/infrastructure/config"
)

func vec(x, y float64) r2.Vec { return r2.Vec{X: x, Y: y} }

var testGIDs = map[rune]int{
	'#': 1,
	'=': 2,
	'H': 3,
	'^': 4,
	'B': 5,
	'C': 6,
	'?': 7,
}

var testTypes = map[int]string{
	1: entity.TypeWall,
	2: entity.TypePlatform,
	3: entity.TypeLadder,
	4: entity.TypeSpikes,
	5: entity.TypeBlock,
	6: entity.TypeChain,
	7: "lava",
}

// createTestLevel builds a 16px level from ASCII rows: a "Walls" layer and
// an optional "Back" layer of the same size
func createTestLevel(walls []string, back ...string) *entity.Level {
	level := &entity.Level{
		Name:       "test",
		Width:      len(walls[0]),
		Height:     len(walls),
		TileWidth:  16,
		TileHeight: 16,
		Types:      make(map[int]string),
	}
	for gid, typ := range testTypes {
		level.Types[gid] = typ
	}

	level.Layers = append(level.Layers, entity.Layer{Name: "Walls", Data: asciiLayer(level, walls)})
	if len(back) > 0 {
		level.Layers = append(level.Layers, entity.Layer{Name: "Back", Data: asciiLayer(level, back)})
	}
	return level
}

func asciiLayer(level *entity.Level, rows []string) []int {
	data := make([]int, level.Width*level.Height)
	for y, row := range rows {
		for x, c := range row {
			data[level.Index(x, y)] = testGIDs[c]
		}
	}
	return data
}

func createTestTileMap(walls []string, back ...string) *TileMap {
	m, err := NewTileMap(createTestLevel(walls, back...), "Walls")
	if err != nil {
		panic(err)
	}
	return m
}

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Display: config.DisplayConfig{Framerate: 60},
		Physics: config.PhysicsSettings{
			Gravity:      60,
			MaxFallSpeed: 6,
		},
		Movement: config.MovementConfig{
			Speed:       2,
			LadderSpeed: 1,
		},
		Jump: config.JumpConfig{Speed: 4},
		Blink: config.BlinkConfig{
			Interval:   0.25,
			DeathSteps: 6,
			SpawnSteps: 6,
		},
		Collision: config.CollisionConfig{Layer: "Walls"},
	}
}
