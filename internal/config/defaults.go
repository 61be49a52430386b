package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the built-in Circus Catch configuration.
// It mirrors defaults/catch.yaml and is the last fallback of the loader.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Field: FieldConfig{
			Width:       800,
			Height:      400,
			GroundLevel: 50,
		},
		Round: RoundConfig{
			DurationSeconds: 30,
		},
		Physics: PhysicsConfig{
			Gravity:      1,
			JumpStrength: 18,
		},
		Player: PlayerConfig{
			SpawnX:    100,
			Width:     50,
			Height:    80,
			MoveSpeed: 7,
		},
		Tilt: TiltConfig{
			DeadZone: 10,
			MaxAngle: 80,
			MaxSpeed: 15,
		},
		Obstacles: ObstacleConfig{
			Width:         40,
			Height:        40,
			SpawnInterval: 60, // ~1s at 60 ticks/s
			MinSpeed:      4,
			SpeedRange:    4,
			JumpChance:    0.01,
			MinJump:       12,
			JumpRange:     4,
		},
		Hazards: HazardConfig{
			Width:       30,
			Height:      40,
			SpawnChance: 0.01,
			MinSpeed:    3,
			SpeedRange:  3,
		},
		Collision: CollisionConfig{
			LandingBand: 15,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game,
// or nil when the game has no file-backed config.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "catch":
		return defaultCatchYAML
	default:
		return nil
	}
}
