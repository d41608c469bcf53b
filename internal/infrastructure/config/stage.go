package config

// StageConfig is the root config for ASCII stage JSON files.
// Each layer is a list of rows; each character maps to a tile through TileMapping.
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      []LayerConfig                `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	Enemies     []EnemySpawnConfig           `json:"enemies"`
	Pickups     []PickupSpawnConfig          `json:"pickups"`
	// RoomTriggers are the x positions where rooms begin
	RoomTriggers []int `json:"roomTriggers"`
}

// StageSizeConfig is the stage size in world units
type StageSizeConfig struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TileSize int `json:"tileSize"`
}

// Cols returns the stage width in tiles
func (s StageSizeConfig) Cols() int {
	if s.TileSize <= 0 {
		return 0
	}
	return s.Width / s.TileSize
}

// Rows returns the stage height in tiles
func (s StageSizeConfig) Rows() int {
	if s.TileSize <= 0 {
		return 0
	}
	return s.Height / s.TileSize
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type LayerConfig struct {
	Name string   `json:"name"`
	Rows []string `json:"rows"`
}

// TileMappingConfig maps a stage character to a tile id and its semantic type
type TileMappingConfig struct {
	Type      string `json:"type"`
	TileIndex int    `json:"tileIndex"`
}

type EnemySpawnConfig struct {
	Type        string `json:"type"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	FacingRight bool   `json:"facingRight"`
}

type PickupSpawnConfig struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}
