package catch

import (
	"math"

	"github.com/vovakirdan/circus-catch/internal/config"
	"github.com/vovakirdan/circus-catch/internal/core"
)

// maxTiltReading bounds raw sensor angles before mapping.
const maxTiltReading = 90

// TiltSpeed converts a sideways tilt angle into lateral speed per tick.
// Angles inside the dead zone give no movement; the rest of the range up to
// MaxAngle maps linearly onto MaxSpeed, keeping the sign. Readings beyond
// ±90° are clamped, and the speed never exceeds MaxSpeed.
func TiltSpeed(degrees float64, cfg config.TiltConfig) float64 {
	degrees = core.ClampF(degrees, -maxTiltReading, maxTiltReading)

	mag := math.Abs(degrees)
	if mag <= cfg.DeadZone {
		return 0
	}

	speed := (mag - cfg.DeadZone) / (cfg.MaxAngle - cfg.DeadZone) * cfg.MaxSpeed
	return math.Copysign(math.Min(speed, cfg.MaxSpeed), degrees)
}
