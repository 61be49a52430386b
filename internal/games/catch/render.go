package catch

import (
	"fmt"
	"math"

	"github.com/vovakirdan/circus-catch/internal/core"
)

// Visual characters for rendering
const (
	ClownBody   = '█'
	ClownHat    = '▲'
	ChickenChar = '▓'
	EggChar     = '●'
	GroundChar  = '░'
	GroundEdge  = '▀'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// view maps world units onto screen cells. World y grows upward, screen
// rows grow downward; row 0 is reserved for the HUD.
type view struct {
	h      int
	sx, sy float64
}

func newView(field core.Box, dst *core.Screen) view {
	fieldRows := max(dst.Height()-hudRows, 1)
	return view{
		h:  dst.Height(),
		sx: float64(dst.Width()) / field.W,
		sy: float64(fieldRows) / field.H,
	}
}

// rect converts a world box to the cells it covers, at least one cell.
func (v view) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y0 := int(math.Floor(float64(v.h) - b.Top()*v.sy))
	y1 := int(math.Ceil(float64(v.h) - b.Y*v.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	snap := g.round.Snapshot()
	v := newView(snap.Field, dst)

	g.drawGround(dst, v, snap)
	for _, o := range snap.Obstacles {
		g.drawChicken(dst, v, o)
	}
	for _, h := range snap.Hazards {
		dst.DrawRect(v.rect(h.Box), EggChar, core.ColorBrightWhite)
	}
	g.drawClown(dst, v, snap.Player)
	g.drawHUD(dst, snap)

	switch {
	case !g.started:
		drawCenteredMessage(dst,
			"CIRCUS CATCH",
			"Land on the chickens, never on their eggs!",
			"Space/Up/click: jump   Left/Right: move",
			"Press Space to start",
		)
	case snap.Terminal && snap.Cause == CauseHazardHit:
		drawCenteredMessage(dst,
			"GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			"Press R or click to play again",
		)
	case snap.Terminal:
		drawCenteredMessage(dst,
			"TIME'S UP!",
			fmt.Sprintf("Final score: %d", snap.Score),
			"Press R or click to play again",
		)
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawGround(dst *core.Screen, v view, snap Snapshot) {
	ground := v.rect(core.NewBox(0, 0, snap.Field.W, snap.Ground))
	dst.DrawRect(ground, GroundChar, core.ColorGreen)
	dst.DrawHLine(0, ground.Y, dst.Width(), GroundEdge, core.ColorGreen)
}

func (g *Game) drawClown(dst *core.Screen, v view, p Pose) {
	r := v.rect(p.Box)
	dst.DrawRect(r, ClownBody, core.ColorRed)

	// Hat on the middle of the top row, wobbling while running.
	hatX := r.X + r.W/2
	if p.Grounded && g.frame%20 < 10 && r.W > 1 {
		hatX--
	}
	dst.SetColored(hatX, r.Y, ClownHat, core.ColorBrightYellow)
}

func (g *Game) drawChicken(dst *core.Screen, v view, o Pose) {
	r := v.rect(o.Box)
	dst.DrawRect(r, ChickenChar, core.ColorYellow)
	// Beak faces left, the direction of travel.
	dst.SetColored(r.X-1, r.Y, '◀', core.ColorOrange)
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)

	timeText := fmt.Sprintf(" Time: %ds ", snap.TimeRemaining)
	dst.DrawTextColored(dst.Width()-len(timeText)-1, 0, timeText, core.ColorBrightWhite)

	if g.tiltSeen && !snap.Terminal {
		tiltText := fmt.Sprintf(" Tilt: %+d° ", int(math.Round(g.tilt)))
		dst.DrawTextCentered(0, tiltText, core.ColorGreen)
	}
}

// drawCenteredMessage draws a boxed message in the middle of the screen.
// The first line is the title; a blank row separates it from the rest.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}

	boxW := w + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightYellow)

	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawTextColored(box.X+(boxW-len([]rune(l)))/2, box.Y+3+i, l, core.ColorWhite)
	}
}
