package catch

import (
	"math"
	"time"

	"github.com/vovakirdan/circus-catch/internal/config"
	"github.com/vovakirdan/circus-catch/internal/core"
)

// Bot chooses the input for the next tick from the last snapshot.
type Bot interface {
	Input(snap Snapshot) core.InputFrame
}

// ChaseBot walks toward the nearest chicken still ahead of it and jumps
// when one is close. JumpEvery > 0 adds a jump on a fixed tick cadence.
type ChaseBot struct {
	JumpEvery int
	Reach     float64 // horizontal distance that triggers a jump
}

// Input implements Bot.
func (b ChaseBot) Input(snap Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	p := snap.Player

	target, ok := nearest(p.CenterX(), snap.Obstacles)
	if ok {
		dx := target.CenterX() - p.CenterX()
		switch {
		case dx < -p.W/4:
			in.Set(core.ActionLeft)
		case dx > p.W/4:
			in.Set(core.ActionRight)
		}
		if math.Abs(dx) < b.Reach {
			in.Set(core.ActionJump)
		}
	}
	if b.JumpEvery > 0 && snap.Tick%b.JumpEvery == 0 {
		in.Set(core.ActionJump)
	}
	return in
}

func nearest(x float64, poses []Pose) (Pose, bool) {
	best, found := Pose{}, false
	for _, p := range poses {
		if !found || math.Abs(p.CenterX()-x) < math.Abs(best.CenterX()-x) {
			best, found = p, true
		}
	}
	return best, found
}

// HeadlessResult summarizes one simulated round.
type HeadlessResult struct {
	Score     int
	Cause     Cause
	Ticks     int
	Simulated time.Duration // round clock time covered by the ticks
}

// RunHeadless plays one round without a terminal. The round clock is
// synthetic: tick n reports n/tickRate seconds elapsed, so a full round
// takes duration*tickRate ticks regardless of how fast the host is.
func RunHeadless(cfg config.CatchConfig, rng Source, bot Bot, tickRate int) HeadlessResult {
	if tickRate <= 0 {
		tickRate = 60
	}

	start := time.Unix(0, 0)
	r := NewRound(cfg, rng, start)

	snap := r.Snapshot()
	var clock time.Duration
	for n := 0; !r.Terminal(); n++ {
		clock = time.Duration(n) * time.Second / time.Duration(tickRate)
		r.Tick(clock.Seconds(), bot.Input(snap))
		snap = r.Snapshot()
	}

	return HeadlessResult{
		Score:     snap.Score,
		Cause:     snap.Cause,
		Ticks:     snap.Tick,
		Simulated: clock,
	}
}
