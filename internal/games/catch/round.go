package catch

import (
	"math"
	"time"

	"github.com/vovakirdan/circus-catch/internal/config"
	"github.com/vovakirdan/circus-catch/internal/core"
)

// Status is the round summary reported after every tick.
type Status struct {
	Score         int
	Terminal      bool
	Cause         Cause
	TimeRemaining int // whole seconds left on the clock
	Tick          int // ticks simulated since reset
}

// TickOutcome reports what one call to Tick changed.
type TickOutcome struct {
	Caught           int
	ObstaclesSpawned int
	HazardsSpawned   int
	Ended            bool // the round became terminal on this tick
	Status           Status
}

// Round is the state of a single round together with the controller that
// advances it. Each Round is self-contained, so several can run side by side.
type Round struct {
	cfg     config.CatchConfig
	spawner *Spawner

	player    Player
	obstacles []Obstacle
	hazards   []Hazard

	score     int
	terminal  bool
	cause     Cause
	startedAt time.Time
	elapsed   float64 // seconds, as last reported to Tick
	tick      int
}

// NewRound creates a round in its initial state, started at now.
func NewRound(cfg config.CatchConfig, rng Source, now time.Time) *Round {
	r := &Round{
		cfg:       cfg,
		obstacles: make([]Obstacle, 0, 16),
		hazards:   make([]Hazard, 0, 16),
	}
	r.spawner = NewSpawner(&r.cfg, rng)
	r.Reset(now)
	return r
}

// Reset restores the initial state: no score, no entities, player on its
// spawn point and a fresh start time. It may be called at any point.
func (r *Round) Reset(now time.Time) {
	r.player = Player{
		X: r.cfg.Player.SpawnX,
		Body: Body{
			Y:        r.cfg.Field.GroundLevel,
			Grounded: true,
		},
	}
	r.obstacles = r.obstacles[:0]
	r.hazards = r.hazards[:0]
	r.spawner.Reset()
	r.score = 0
	r.terminal = false
	r.cause = CauseNone
	r.startedAt = now
	r.elapsed = 0
	r.tick = 0
}

// Tick advances the round by one frame. elapsedSeconds is the wall-clock
// time since the round started; motion itself is per tick. Once the round is
// terminal Tick changes nothing until Reset.
func (r *Round) Tick(elapsedSeconds float64, in core.InputFrame) TickOutcome {
	var out TickOutcome
	if r.terminal {
		out.Status = r.Status()
		return out
	}

	r.elapsed = elapsedSeconds
	if elapsedSeconds >= r.cfg.Round.DurationSeconds {
		r.end(CauseTimeExpired)
		out.Ended = true
		out.Status = r.Status()
		return out
	}

	r.movePlayer(in)
	r.player.Integrate(r.cfg.Physics.Gravity, r.cfg.Field.GroundLevel)

	if o, ok := r.spawner.Next(); ok {
		r.obstacles = append(r.obstacles, o)
		out.ObstaclesSpawned++
	}

	out.Caught, out.HazardsSpawned = r.updateObstacles()
	if r.updateHazards() {
		r.end(CauseHazardHit)
		out.Ended = true
	}

	r.tick++
	out.Status = r.Status()
	return out
}

// movePlayer applies lateral input and the jump edge.
func (r *Round) movePlayer(in core.InputFrame) {
	dx := 0.0
	if in.Has(core.ActionLeft) {
		dx -= r.cfg.Player.MoveSpeed
	}
	if in.Has(core.ActionRight) {
		dx += r.cfg.Player.MoveSpeed
	}
	if in.TiltOK {
		dx += TiltSpeed(in.Tilt, r.cfg.Tilt)
	}
	r.player.X = core.ClampF(r.player.X+dx, 0, r.cfg.Field.Width-r.cfg.Player.Width)

	if in.Has(core.ActionJump) {
		r.player.Jump(r.cfg.Physics.JumpStrength)
	}
}

// updateObstacles moves every obstacle, prunes the ones that left the field,
// scores catches and rolls hazard drops. Filters in place.
func (r *Round) updateObstacles() (caught, dropped int) {
	gravity, ground := r.cfg.Physics.Gravity, r.cfg.Field.GroundLevel
	player := r.playerBox()

	kept := r.obstacles[:0]
	for _, o := range r.obstacles {
		r.spawner.MaybeJump(&o)
		o.Integrate(gravity, ground)
		o.scroll()

		box := r.obstacleBox(o)
		if box.Right() < 0 {
			continue
		}
		if landsOn(player, r.player.VelY, box, r.cfg.Collision.LandingBand) {
			r.score++
			caught++
			continue
		}

		if h, ok := r.spawner.MaybeHazard(o); ok {
			r.hazards = append(r.hazards, h)
			dropped++
		}
		kept = append(kept, o)
	}
	r.obstacles = kept
	return caught, dropped
}

// updateHazards moves and prunes hazards and reports whether the player
// landed on one. All hazards are processed even after a hit.
func (r *Round) updateHazards() (hit bool) {
	gravity, ground := r.cfg.Physics.Gravity, r.cfg.Field.GroundLevel
	player := r.playerBox()

	kept := r.hazards[:0]
	for _, h := range r.hazards {
		h.scroll()
		h.integrate(gravity, ground)

		box := r.hazardBox(h)
		if box.Right() < 0 {
			continue
		}
		if landsOn(player, r.player.VelY, box, r.cfg.Collision.LandingBand) {
			hit = true
		}
		kept = append(kept, h)
	}
	r.hazards = kept
	return hit
}

func (r *Round) end(cause Cause) {
	r.terminal = true
	r.cause = cause
}

func (r *Round) playerBox() core.Box {
	return core.NewBox(r.player.X, r.player.Y, r.cfg.Player.Width, r.cfg.Player.Height)
}

func (r *Round) obstacleBox(o Obstacle) core.Box {
	return core.NewBox(o.X, o.Y, r.cfg.Obstacles.Width, r.cfg.Obstacles.Height)
}

func (r *Round) hazardBox(h Hazard) core.Box {
	return core.NewBox(h.X, h.Y, r.cfg.Hazards.Width, r.cfg.Hazards.Height)
}

// Status returns the current round summary.
func (r *Round) Status() Status {
	return Status{
		Score:         r.score,
		Terminal:      r.terminal,
		Cause:         r.cause,
		TimeRemaining: r.timeRemaining(),
		Tick:          r.tick,
	}
}

func (r *Round) timeRemaining() int {
	left := r.cfg.Round.DurationSeconds - math.Floor(r.elapsed)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left))
}

// Terminal reports whether the round has ended.
func (r *Round) Terminal() bool {
	return r.terminal
}

// StartedAt returns the time passed to the last Reset.
func (r *Round) StartedAt() time.Time {
	return r.startedAt
}

// Config returns the configuration the round runs with.
func (r *Round) Config() config.CatchConfig {
	return r.cfg
}
