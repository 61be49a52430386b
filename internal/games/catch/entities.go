package catch

import "github.com/vovakirdan/circus-catch/internal/core"

// Body is the vertical state the player and obstacles share.
type Body struct {
	Y        float64 // bottom edge, measured up from the field floor
	VelY     float64 // positive = rising
	Grounded bool
}

// Player is the clown the user controls. Exactly one exists per round.
type Player struct {
	X float64
	Body
}

// Obstacle is a chicken: caught from above for a point.
type Obstacle struct {
	X     float64
	Speed float64 // units moved left per tick
	Body
}

// Hazard is an egg dropped by a grounded obstacle. Landing on one ends the round.
type Hazard struct {
	X     float64
	Y     float64
	Speed float64
	VelY  float64
}

// Cause says why a round ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseTimeExpired
	CauseHazardHit
)

// String returns a short name used in logs and CLI output.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseTimeExpired:
		return "time_expired"
	case CauseHazardHit:
		return "hazard_hit"
	default:
		return "unknown"
	}
}

// Pose is a read-only view of one entity for renderers.
type Pose struct {
	core.Box
	VelY     float64
	Grounded bool
}
