package catch

// Integrate applies one tick of gravity and lands the body on the floor.
// There is no terminal velocity.
func (b *Body) Integrate(gravity, ground float64) {
	b.VelY -= gravity
	b.Y += b.VelY

	if b.Y <= ground {
		b.Y = ground
		b.VelY = 0
		b.Grounded = true
	} else {
		b.Grounded = false
	}
}

// Jump gives the body an upward impulse if it stands on the floor.
// Returns false when airborne.
func (b *Body) Jump(impulse float64) bool {
	if !b.Grounded {
		return false
	}
	b.VelY = impulse
	b.Grounded = false
	return true
}

// integrate moves a hazard for one tick: it falls while above the floor,
// then rolls along it. Hazards never bounce.
func (h *Hazard) integrate(gravity, ground float64) {
	if h.Y > ground {
		h.VelY -= gravity
		h.Y += h.VelY
	}
	if h.Y <= ground {
		h.Y = ground
		h.VelY = 0
	}
}

func (o *Obstacle) scroll() { o.X -= o.Speed }

func (h *Hazard) scroll() { h.X -= h.Speed }
