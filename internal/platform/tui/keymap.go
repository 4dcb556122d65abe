package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/superdudu/internal/core"
)

// KeyMap holds the host key bindings.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Run     key.Binding
	Pause   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Restart key.Binding
	Switch  key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space", "jump"),
		),
		Run: key.NewBinding(
			key.WithKeys("x", "shift+left", "shift+right"),
			key.WithHelp("x", "toggle run"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/continue"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "c"),
			key.WithHelp("tab", "character"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Run, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Run},
		{k.Pause, k.Confirm, k.Back, k.Restart, k.Switch, k.Quit},
	}
}

// Action translates a key message to a host action.
// Run is checked before the directions so shift+arrow toggles run.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Run):
		return core.ActionRun
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Switch):
		return core.ActionSwitch
	}
	return core.ActionNone
}

// DefaultHoldTicks bridges the gap between terminal key repeats.
const DefaultHoldTicks = 12

// HeldKeys turns discrete key presses into a per-tick control vector.
// Terminals report presses and auto-repeats but never releases, so a
// direction stays held for a number of ticks after its last press.
// Jump is a one-tick pulse.
type HeldKeys struct {
	holdTicks int
	left      int
	right     int
	jump      bool
	run       bool
}

// NewHeldKeys creates a latch holding directions for holdTicks ticks.
func NewHeldKeys(holdTicks int) HeldKeys {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return HeldKeys{holdTicks: holdTicks}
}

// Press records an action. Pressing a direction releases the opposite one.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.holdTicks
		h.right = 0
	case core.ActionRight:
		h.right = h.holdTicks
		h.left = 0
	case core.ActionJump:
		h.jump = true
	case core.ActionRun:
		h.run = !h.run
	}
}

// Tick returns the controls for this tick and ages the latch.
func (h *HeldKeys) Tick() core.Controls {
	c := core.Controls{
		Left:  h.left > 0,
		Right: h.right > 0,
		Jump:  h.jump,
		Run:   h.run,
	}
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
	h.jump = false
	return c
}

// Release drops every held key. Run mode is kept.
func (h *HeldKeys) Release() {
	h.left = 0
	h.right = 0
	h.jump = false
}

// Running reports whether run mode is on.
func (h HeldKeys) Running() bool {
	return h.run
}
