package catch

import (
	"math"

	"github.com/vovakirdan/circus-catch/internal/core"
)

// landsOn reports whether the player, falling with velocity velY, lands on
// target this tick. Besides box overlap the player must be descending, its
// feet must sit within band units below the target's top edge, and the
// horizontal centres must be closer than half the summed widths. Touching a
// target from the side or from below never counts.
func landsOn(player core.Box, velY float64, target core.Box, band float64) bool {
	if !player.Overlaps(target) {
		return false
	}
	if velY >= 0 {
		return false
	}
	if player.Y < target.Top()-band || player.Y > target.Top() {
		return false
	}
	return math.Abs(player.CenterX()-target.CenterX()) < (player.W+target.W)/2
}
