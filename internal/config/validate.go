package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable field.
// All problems are reported together.
func (c CatchConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalid, name, v))
		}
	}
	probability := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalid, name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	nonNegative("field.ground_level", c.Field.GroundLevel)
	if c.Field.GroundLevel >= c.Field.Height {
		errs = append(errs, fmt.Errorf("%w: field.ground_level (%v) must be below field.height (%v)",
			ErrInvalid, c.Field.GroundLevel, c.Field.Height))
	}

	positive("round.duration_seconds", c.Round.DurationSeconds)
	nonNegative("physics.gravity", c.Physics.Gravity)
	nonNegative("physics.jump_strength", c.Physics.JumpStrength)

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	nonNegative("player.move_speed", c.Player.MoveSpeed)
	if c.Player.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("%w: player.width (%v) exceeds field.width (%v)",
			ErrInvalid, c.Player.Width, c.Field.Width))
	}

	nonNegative("tilt.dead_zone", c.Tilt.DeadZone)
	nonNegative("tilt.max_speed", c.Tilt.MaxSpeed)
	if c.Tilt.MaxAngle <= c.Tilt.DeadZone {
		errs = append(errs, fmt.Errorf("%w: tilt.max_angle (%v) must exceed tilt.dead_zone (%v)",
			ErrInvalid, c.Tilt.MaxAngle, c.Tilt.DeadZone))
	}

	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.height", c.Obstacles.Height)
	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: obstacles.spawn_interval must be positive, got %d",
			ErrInvalid, c.Obstacles.SpawnInterval))
	}
	nonNegative("obstacles.min_speed", c.Obstacles.MinSpeed)
	nonNegative("obstacles.speed_range", c.Obstacles.SpeedRange)
	probability("obstacles.jump_chance", c.Obstacles.JumpChance)
	nonNegative("obstacles.min_jump", c.Obstacles.MinJump)
	nonNegative("obstacles.jump_range", c.Obstacles.JumpRange)

	positive("hazards.width", c.Hazards.Width)
	positive("hazards.height", c.Hazards.Height)
	probability("hazards.spawn_chance", c.Hazards.SpawnChance)
	nonNegative("hazards.min_speed", c.Hazards.MinSpeed)
	nonNegative("hazards.speed_range", c.Hazards.SpeedRange)

	nonNegative("collision.landing_band", c.Collision.LandingBand)

	return errors.Join(errs...)
}
