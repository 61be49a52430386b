// Package catch implements Circus Catch: the clown jumps onto chickens for
// points and must never land on one of the eggs they drop, all before the
// round clock runs out.
package catch

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/circus-catch/internal/config"
	"github.com/vovakirdan/circus-catch/internal/core"
	"github.com/vovakirdan/circus-catch/internal/registry"
)

// GameID is the registry identifier.
const GameID = "catch"

// configPath stores the custom config path set via CLI
var configPath string

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger routes game events to l. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Round to the arcade's Game interface. It adds what the
// round itself does not care about: the ready screen, pausing with the
// clock stopped, restart handling and drawing.
type Game struct {
	round   *Round
	cfg     config.CatchConfig
	runtime core.RuntimeConfig
	now     func() time.Time

	started     bool
	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration

	last     TickOutcome
	tilt     float64
	tiltSeen bool
	frame    int // animation counter, advances every Step
}

// New creates a new Circus Catch game instance.
func New() *Game {
	return &Game{now: time.Now}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Circus Catch"
}

// Reset loads configuration and puts the game on its ready screen.
// The round clock does not run until the player starts.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	res, err := config.LoadCatch(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "path", configPath, "error", err)
		res = config.LoadResult{Config: config.DefaultCatchConfig(), Source: config.SourceEmbedded}
	}
	for _, skipped := range res.Skipped {
		logger.Warn("ignoring config file", "error", skipped)
	}
	logger.Debug("config loaded", "source", res.Source)

	g.configure(res.Config, NewSource(runtime.Seed))
}

// configure installs cfg and a fresh round without touching the filesystem.
func (g *Game) configure(cfg config.CatchConfig, rng Source) {
	g.cfg = cfg
	g.round = NewRound(cfg, rng, g.now())
	g.started = false
	g.paused = false
	g.pausedTotal = 0
	g.last = TickOutcome{Status: g.round.Status()}
	g.tiltSeen = false
	g.frame = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++
	if in.TiltOK {
		g.tilt = in.Tilt
		g.tiltSeen = true
	}

	if !g.started {
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.start()
		}
		return core.StepResult{State: g.State()}
	}

	if g.round.Terminal() {
		if in.Has(core.ActionRestart) {
			g.start()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.togglePause()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	out := g.round.Tick(g.elapsed().Seconds(), in)
	g.last = out

	if out.Caught > 0 {
		logger.Debug("obstacle caught", "score", out.Status.Score, "tick", out.Status.Tick)
	}
	if out.Ended {
		logger.Info("round over",
			"cause", out.Status.Cause,
			"score", out.Status.Score,
			"ticks", out.Status.Tick,
		)
	}

	return core.StepResult{State: g.State()}
}

// start begins a new round with the clock at zero.
func (g *Game) start() {
	g.round.Reset(g.now())
	g.started = true
	g.paused = false
	g.pausedTotal = 0
	g.last = TickOutcome{Status: g.round.Status()}
	logger.Info("round started", "duration", g.cfg.Round.DurationSeconds)
}

func (g *Game) togglePause() {
	now := g.now()
	if g.paused {
		g.pausedTotal += now.Sub(g.pausedAt)
		g.paused = false
		return
	}
	g.pausedAt = now
	g.paused = true
}

// elapsed is the running time of the current round, excluding pauses.
func (g *Game) elapsed() time.Duration {
	return g.now().Sub(g.round.StartedAt()) - g.pausedTotal
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.last.Status
	return core.GameState{
		Score:    st.Score,
		GameOver: st.Terminal,
		Paused:   g.paused,
		Started:  g.started,
	}
}

// Snapshot returns a copy of the current round state.
func (g *Game) Snapshot() Snapshot {
	return g.round.Snapshot()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
