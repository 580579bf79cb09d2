package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-bouncer/internal/engine"
)

// tapDeadZone is the half-width of the neutral zone around the screen
// center for tap/click jumps, in world units.
const tapDeadZone = 50.0

// KeyMap defines the key bindings for the playing phase, in the format the
// bubbles help component renders.
type KeyMap struct {
	JumpLeft  key.Binding
	Jump      key.Binding
	JumpRight key.Binding
	Restart   key.Binding
	Menu      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.JumpLeft, k.Jump, k.JumpRight, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.JumpLeft, k.Jump, k.JumpRight},
		{k.Restart, k.Menu, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		JumpLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "jump left"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		JumpRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "jump right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "m"),
			key.WithHelp("esc/m", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DirectionForTap maps a tap/click column to a jump direction: right of the
// screen center by more than the dead zone jumps right, left jumps left,
// anywhere in between is a plain vertical jump. The dead zone is defined in
// world units and scaled to the current screen width.
func DirectionForTap(col, screenW int, worldW float64) engine.Direction {
	if screenW <= 0 || worldW <= 0 {
		return engine.DirNone
	}

	worldX := float64(col) * worldW / float64(screenW)
	center := worldW / 2

	switch {
	case worldX > center+tapDeadZone:
		return engine.DirRight
	case worldX < center-tapDeadZone:
		return engine.DirLeft
	default:
		return engine.DirNone
	}
}
