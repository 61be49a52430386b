// Package config provides YAML-based game configuration loading for the
// arcade, with embedded defaults and a user override search path.
package config

// CatchConfig contains all tunables for the Circus Catch game.
type CatchConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Round     RoundConfig     `yaml:"round"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Tilt      TiltConfig      `yaml:"tilt"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Hazards   HazardConfig    `yaml:"hazards"`
	Collision CollisionConfig `yaml:"collision"`
}

// FieldConfig defines the playfield in world units.
type FieldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	GroundLevel float64 `yaml:"ground_level"` // y of the floor every entity rests on
}

// RoundConfig defines the round's wall-clock budget.
type RoundConfig struct {
	DurationSeconds float64 `yaml:"duration_seconds"`
}

// PhysicsConfig defines per-tick gravity and the player's jump impulse.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"`
}

// PlayerConfig defines the player's spawn pose, size and lateral speed.
type PlayerConfig struct {
	SpawnX    float64 `yaml:"spawn_x"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MoveSpeed float64 `yaml:"move_speed"`
}

// TiltConfig maps a device tilt angle to lateral speed.
type TiltConfig struct {
	DeadZone float64 `yaml:"dead_zone"` // degrees ignored around level
	MaxAngle float64 `yaml:"max_angle"` // angle that reaches MaxSpeed
	MaxSpeed float64 `yaml:"max_speed"` // units per tick
}

// ObstacleConfig defines obstacle size, cadence and behaviour.
type ObstacleConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnInterval int     `yaml:"spawn_interval"` // ticks between spawns
	MinSpeed      float64 `yaml:"min_speed"`
	SpeedRange    float64 `yaml:"speed_range"`
	JumpChance    float64 `yaml:"jump_chance"` // per grounded obstacle per tick
	MinJump       float64 `yaml:"min_jump"`
	JumpRange     float64 `yaml:"jump_range"`
}

// HazardConfig defines hazard size and how often obstacles drop them.
type HazardConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnChance float64 `yaml:"spawn_chance"` // per grounded obstacle per tick
	MinSpeed    float64 `yaml:"min_speed"`
	SpeedRange  float64 `yaml:"speed_range"`
}

// CollisionConfig holds the landing gate tolerance.
type CollisionConfig struct {
	// LandingBand is how far below a target's top edge the player's feet may
	// be and still count as landing on it.
	LandingBand float64 `yaml:"landing_band"`
}
