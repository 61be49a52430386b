package catch

import "github.com/vovakirdan/circus-catch/internal/config"

// Spawner decides when obstacles appear and when grounded obstacles jump or
// drop hazards. It owns the cadence counter but not the entity lists.
type Spawner struct {
	cfg     *config.CatchConfig
	rng     Source
	counter int
}

// NewSpawner creates a spawner drawing randomness from rng.
func NewSpawner(cfg *config.CatchConfig, rng Source) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Reset restarts the cadence counter.
func (s *Spawner) Reset() {
	s.counter = 0
}

// Next advances the cadence by one tick. Once the counter reaches the spawn
// interval it returns a fresh obstacle at the right edge and starts over.
func (s *Spawner) Next() (Obstacle, bool) {
	s.counter++
	if s.counter < s.cfg.Obstacles.SpawnInterval {
		return Obstacle{}, false
	}
	s.counter = 0

	oc := s.cfg.Obstacles
	return Obstacle{
		X:     s.cfg.Field.Width,
		Speed: uniform(s.rng, oc.MinSpeed, oc.SpeedRange),
		Body: Body{
			Y:        s.cfg.Field.GroundLevel,
			Grounded: true,
		},
	}, true
}

// MaybeJump rolls the per-tick jump chance for a grounded obstacle and
// applies a random upward impulse when it fires.
func (s *Spawner) MaybeJump(o *Obstacle) bool {
	if !o.Grounded {
		return false
	}
	oc := s.cfg.Obstacles
	if !chance(s.rng, oc.JumpChance) {
		return false
	}
	return o.Jump(uniform(s.rng, oc.MinJump, oc.JumpRange))
}

// MaybeHazard rolls the per-tick drop chance for a grounded obstacle.
// The hazard starts at the obstacle's x, on the floor.
func (s *Spawner) MaybeHazard(o Obstacle) (Hazard, bool) {
	if !o.Grounded {
		return Hazard{}, false
	}
	hc := s.cfg.Hazards
	if !chance(s.rng, hc.SpawnChance) {
		return Hazard{}, false
	}
	return Hazard{
		X:     o.X,
		Y:     s.cfg.Field.GroundLevel,
		Speed: uniform(s.rng, hc.MinSpeed, hc.SpeedRange),
	}, true
}
