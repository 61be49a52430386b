package catch

import (
	"time"

	"github.com/vovakirdan/circus-catch/internal/config"
	"github.com/vovakirdan/circus-catch/internal/core"
)

// seqSource replays a fixed sequence of samples, cycling when exhausted.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// quietSource never fires the 1% events: every sample is 0.99.
func quietSource() *seqSource {
	return &seqSource{vals: []float64{0.99}}
}

var epoch = time.Unix(1_700_000_000, 0)

func newTestRound(src Source) *Round {
	return NewRound(config.DefaultCatchConfig(), src, epoch)
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// fakeClock is a manually advanced clock for the Game adapter.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
