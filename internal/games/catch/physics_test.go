package catch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/circus-catch/internal/config"
)

func TestBodyIntegrate(t *testing.T) {
	b := Body{Y: 50, VelY: 18}
	b.Integrate(1, 50)
	assert.Equal(t, Body{Y: 67, VelY: 17, Grounded: false}, b)

	// Falling through the floor snaps onto it
	b = Body{Y: 52, VelY: -5}
	b.Integrate(1, 50)
	assert.Equal(t, Body{Y: 50, VelY: 0, Grounded: true}, b)

	// Resting body stays put
	b.Integrate(1, 50)
	assert.Equal(t, Body{Y: 50, VelY: 0, Grounded: true}, b)
}

func TestBodyJumpRequiresGround(t *testing.T) {
	b := Body{Y: 50, Grounded: true}
	assert.True(t, b.Jump(18))
	assert.Equal(t, 18.0, b.VelY)
	assert.False(t, b.Grounded)

	assert.False(t, b.Jump(18), "no double jump")
	assert.Equal(t, 18.0, b.VelY)
}

func TestHazardIntegrate(t *testing.T) {
	h := Hazard{X: 300, Y: 53, Speed: 3}
	h.integrate(1, 50)
	assert.Equal(t, 52.0, h.Y)
	assert.Equal(t, -1.0, h.VelY)

	h.integrate(1, 50)
	h.integrate(1, 50)
	assert.Equal(t, 50.0, h.Y)
	assert.Zero(t, h.VelY)
	assert.Equal(t, 300.0, h.X, "integrate is vertical only")

	h.scroll()
	assert.Equal(t, 297.0, h.X)
}

func TestTiltSpeed(t *testing.T) {
	cfg := config.DefaultCatchConfig().Tilt

	tests := []struct {
		degrees float64
		want    float64
	}{
		{0, 0},
		{10, 0},
		{-10, 0},
		{45, 7.5},
		{-45, -7.5},
		{80, 15},
		{-80, -15},
		{90, 15},
		{200, 15},
		{-200, -15},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.want, TiltSpeed(tc.degrees, cfg), 1e-9, "tilt %v", tc.degrees)
	}
}

func TestTiltSpeedIsMonotonic(t *testing.T) {
	cfg := config.DefaultCatchConfig().Tilt

	prev := TiltSpeed(-90, cfg)
	for d := -89.5; d <= 90; d += 0.5 {
		s := TiltSpeed(d, cfg)
		assert.GreaterOrEqual(t, s, prev, "tilt %v", d)
		prev = s
	}
}
