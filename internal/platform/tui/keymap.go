package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/circus-catch/internal/core"
)

// KeyMap holds the key bindings used while a game runs.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Confirm    key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	TiltLeft   key.Binding
	TiltRight  key.Binding
	TiltLevel  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Confirm, k.Pause, k.Restart, k.Quit},
		{k.TiltLeft, k.TiltRight, k.TiltLevel, k.Screenshot},
	}
}

// DefaultKeyMap returns the default bindings. Tilt bindings are disabled
// unless tilt emulation is on.
func DefaultKeyMap(tilt bool) KeyMap {
	k := KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		TiltLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "tilt left"),
		),
		TiltRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "tilt right"),
		),
		TiltLevel: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "level"),
		),
	}
	k.TiltLeft.SetEnabled(tilt)
	k.TiltRight.SetEnabled(tilt)
	k.TiltLevel.SetEnabled(tilt)
	return k
}

// Action maps a key message to a game action. Keys that are not game
// actions (tilt, screenshot, unknown) map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}
