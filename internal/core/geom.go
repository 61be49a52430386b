// Package core provides the small set of types shared by the simulation and
// the terminal host: geometry, the cell screen buffer and per-tick input.
// It has no Bubble Tea dependency so game logic stays testable headless.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
// Y grows downward, (X, Y) is the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new cell rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world units.
// Unlike Rect, Y grows upward: (X, Y) is the bottom-left corner,
// which matches how the playfield measures heights from the floor.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a world-space box.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Top returns the y coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal centre.
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// Overlaps reports strict overlap; boxes that only touch do not overlap.
func (b Box) Overlaps(other Box) bool {
	return b.X < other.Right() && b.Right() > other.X &&
		b.Y < other.Top() && b.Top() > other.Y
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
