package config

import "fmt"

// PhysicsConfig is the root config for physics.yaml.
// Speeds are in world units per step; gravity is added to the vertical
// speed once per step, scaled by the frame time in seconds.
type PhysicsConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Physics   PhysicsSettings `yaml:"physics"`
	Movement  MovementConfig  `yaml:"movement"`
	Jump      JumpConfig      `yaml:"jump"`
	Blink     BlinkConfig     `yaml:"blink"`
	Collision CollisionConfig `yaml:"collision"`
	Camera    CameraConfig    `yaml:"camera"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

type PhysicsSettings struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

type MovementConfig struct {
	Speed       float64 `yaml:"speed"`
	LadderSpeed float64 `yaml:"ladder_speed"`
}

type JumpConfig struct {
	Speed float64 `yaml:"speed"`
}

// BlinkConfig configures the death and spawn blink sequences
type BlinkConfig struct {
	Interval   float64 `yaml:"interval"` // seconds per phase
	DeathSteps int     `yaml:"death_steps"`
	SpawnSteps int     `yaml:"spawn_steps"`
}

// CollisionConfig names the tile layer collision is built from
type CollisionConfig struct {
	Layer string `yaml:"layer"`
}

// CameraConfig configures the viewer's room-to-room pan
type CameraConfig struct {
	PanDuration float64 `yaml:"pan_duration"` // seconds
}

// Validate checks values the simulation cannot run without
func (c *PhysicsConfig) Validate() error {
	switch {
	case c.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: physics.max_fall_speed must be positive", ErrInvalidConfig)
	case c.Blink.Interval <= 0:
		return fmt.Errorf("%w: blink.interval must be positive", ErrInvalidConfig)
	case c.Blink.DeathSteps < 0 || c.Blink.SpawnSteps < 0:
		return fmt.Errorf("%w: blink steps must not be negative", ErrInvalidConfig)
	case c.Collision.Layer == "":
		return fmt.Errorf("%w: collision.layer is empty", ErrInvalidConfig)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: display.framerate must be positive", ErrInvalidConfig)
	}
	return nil
}

// StepSeconds returns the fixed simulation step
func (c *PhysicsConfig) StepSeconds() float64 {
	return 1.0 / float64(c.Display.Framerate)
}
