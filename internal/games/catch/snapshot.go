package catch

import "github.com/vovakirdan/circus-catch/internal/core"

// Snapshot is the state a renderer may read after a tick. It shares no
// memory with the round, so holding or modifying it cannot affect play.
type Snapshot struct {
	Field     core.Box // whole playfield, origin at bottom-left
	Ground    float64  // floor height
	Player    Pose
	Obstacles []Pose
	Hazards   []Pose
	Status
}

// Snapshot copies the renderer-visible state of the round.
func (r *Round) Snapshot() Snapshot {
	snap := Snapshot{
		Field:  core.NewBox(0, 0, r.cfg.Field.Width, r.cfg.Field.Height),
		Ground: r.cfg.Field.GroundLevel,
		Player: Pose{
			Box:      r.playerBox(),
			VelY:     r.player.VelY,
			Grounded: r.player.Grounded,
		},
		Obstacles: make([]Pose, 0, len(r.obstacles)),
		Hazards:   make([]Pose, 0, len(r.hazards)),
		Status:    r.Status(),
	}

	for _, o := range r.obstacles {
		snap.Obstacles = append(snap.Obstacles, Pose{
			Box:      r.obstacleBox(o),
			VelY:     o.VelY,
			Grounded: o.Grounded,
		})
	}
	for _, h := range r.hazards {
		snap.Hazards = append(snap.Hazards, Pose{
			Box:      r.hazardBox(h),
			VelY:     h.VelY,
			Grounded: h.Y <= r.cfg.Field.GroundLevel,
		})
	}
	return snap
}
