package config

// EntitiesConfig is the root config for entities.yaml
type EntitiesConfig struct {
	Player  SizeConfig             `yaml:"player"`
	Enemies map[string]EnemyConfig `yaml:"enemies"`
	Pickups map[string]SizeConfig  `yaml:"pickups"`
}

// SizeConfig is a collider size in world units
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type EnemyConfig struct {
	SizeConfig `yaml:",inline"`
	MoveSpeed  float64 `yaml:"move_speed"`
	Gravity    bool    `yaml:"gravity"`
}

// Enemy returns the config for an enemy type, falling back to "default"
func (c *EntitiesConfig) Enemy(typ string) (EnemyConfig, bool) {
	if e, ok := c.Enemies[typ]; ok {
		return e, true
	}
	e, ok := c.Enemies["default"]
	return e, ok
}

// Pickup returns the collider size for a pickup type, falling back to "default"
func (c *EntitiesConfig) Pickup(typ string) (SizeConfig, bool) {
	if p, ok := c.Pickups[typ]; ok {
		return p, true
	}
	p, ok := c.Pickups["default"]
	return p, ok
}
