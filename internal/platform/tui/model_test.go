package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/circus-catch/internal/core"
)

// recordingGame remembers the frames it was stepped with.
type recordingGame struct {
	resets   int
	frames   []core.InputFrame
	gameOver bool
}

func (g *recordingGame) ID() string { return "rec" }
func (g *recordingGame) Title() string { return "Recorder" }
func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) State() core.GameState { return core.GameState{GameOver: g.gameOver} }
func (g *recordingGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "REC") }
func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *recordingGame) last() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

func newTestModel(g *recordingGame, opts Options) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, opts)
	m.now = func() time.Time { return t0 }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelTickStepsWithPressedKeys(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, Options{})
	m.Init()
	if g.resets != 1 {
		t.Fatalf("Init should reset the game once, got %d", g.resets)
	}

	m = update(t, m, runeKey('d'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg(t0))

	f := g.last()
	if !f.Has(core.ActionRight) || !f.Has(core.ActionJump) {
		t.Errorf("want right+jump, got %v", f.Actions)
	}

	m = update(t, m, TickMsg(t0))
	f = g.last()
	if !f.Has(core.ActionRight) {
		t.Error("right should still be held within the hold window")
	}
	if f.Has(core.ActionJump) {
		t.Error("jump should fire only once")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, Options{})

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(t0))
	if g.last().Has(core.ActionRestart) {
		t.Error("restart must be ignored while playing")
	}

	g.gameOver = true
	m = update(t, m, TickMsg(t0))
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(t0))
	if !g.last().Has(core.ActionRestart) {
		t.Error("restart should pass through after game over")
	}
}

func TestModelMouseClick(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, Options{})

	click := tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m = update(t, m, click)
	m = update(t, m, TickMsg(t0))
	if !g.last().Has(core.ActionJump) {
		t.Error("click should jump while playing")
	}

	g.gameOver = true
	m = update(t, m, TickMsg(t0))
	m = update(t, m, click)
	m = update(t, m, TickMsg(t0))
	if !g.last().Has(core.ActionRestart) {
		t.Error("click should restart after game over")
	}
}

func TestModelMouseTilt(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, Options{Tilt: true})

	m = update(t, m, tea.MouseMsg{X: 39, Y: 2, Action: tea.MouseActionMotion})
	m = update(t, m, TickMsg(t0))
	if f := g.last(); !f.TiltOK || f.Tilt != 90 {
		t.Errorf("pointer at right edge: tilt=%v ok=%v", f.Tilt, f.TiltOK)
	}

	m = update(t, m, runeKey('0'))
	m = update(t, m, TickMsg(t0))
	if f := g.last(); f.Tilt != 0 {
		t.Errorf("0 should level the tilt, got %v", f.Tilt)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, Options{})
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets=%d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewAndQuit(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, Options{})

	view := m.View()
	if !strings.Contains(view, "REC") {
		t.Error("view should contain the game screen")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should contain the help footer")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should quit the program")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextColored(0, 1, "xyz", core.ColorOrange)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q", want)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("want 1 newline, got %d", got)
	}
}
