package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/superdudu/internal/core"
	"github.com/vovakirdan/superdudu/internal/games/platformer"
)

// Options configures the terminal host.
type Options struct {
	Engine    *platformer.Engine
	Character platformer.Character
	Level     int // Start playing this level directly; 0 opens the menu
	FPS       int
	HoldTicks int
	Width     int
	Height    int
	Logger    *log.Logger

	// Changes delivers paths of edited level files; Reload rebuilds the
	// level table when one arrives. Both are optional.
	Changes <-chan string
	Reload  func() (platformer.LevelTable, error)
}

// levelsChangedMsg carries a reloaded level table.
type levelsChangedMsg struct {
	path  string
	table platformer.LevelTable
	err   error
}

// Model is the Bubble Tea model running one platformer session.
type Model struct {
	engine   *platformer.Engine
	state    platformer.State
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	held     HeldKeys
	session  Session
	logger   *log.Logger
	changes  <-chan string
	reload   func() (platformer.LevelTable, error)
	notice   string
	quitting bool
}

// NewModel creates the host model.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}

	m := Model{
		engine:  opts.Engine,
		screen:  core.NewScreen(w, max(1, h-1)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    NewHeldKeys(opts.HoldTicks),
		session: NewSession(opts.FPS),
		logger:  logger,
		changes: opts.Changes,
		reload:  opts.Reload,
	}
	m.help.Width = w

	if opts.Level > 0 {
		m.state = m.engine.SelectLevel(m.engine.NewGame(opts.Character), opts.Level)
	} else {
		m.state = m.engine.NewGame(opts.Character)
	}
	// Init has a value receiver, so the first generation is opened here.
	if m.state.Status == platformer.StatusPlaying {
		m.session.Start()
	}
	return m
}

// Init schedules the first tick and the level watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.session.Next(), m.waitForChange())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case levelsChangedMsg:
		return m.handleLevels(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.session.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.state.Status {
	case platformer.StatusMenu:
		switch action {
		case core.ActionSwitch, core.ActionLeft, core.ActionRight:
			m.switchCharacter()
		case core.ActionConfirm, core.ActionJump:
			cmd = m.apply(platformer.CmdStart)
		}
	case platformer.StatusPlaying:
		switch action {
		case core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionRun:
			m.held.Press(action)
		case core.ActionPause, core.ActionBack:
			cmd = m.apply(platformer.CmdPause)
		}
	case platformer.StatusPaused:
		switch action {
		case core.ActionPause, core.ActionConfirm:
			cmd = m.apply(platformer.CmdResume)
		case core.ActionBack:
			cmd = m.apply(platformer.CmdMenu)
		case core.ActionRestart:
			cmd = m.apply(platformer.CmdReset)
		}
	case platformer.StatusLevelComplete:
		switch action {
		case core.ActionConfirm, core.ActionJump:
			cmd = m.apply(platformer.CmdNextLevel)
		case core.ActionBack:
			cmd = m.apply(platformer.CmdMenu)
		}
	case platformer.StatusGameOver:
		switch action {
		case core.ActionRestart, core.ActionConfirm:
			cmd = m.apply(platformer.CmdRestart)
		case core.ActionBack:
			cmd = m.apply(platformer.CmdMenu)
		}
	default:
		panic(fmt.Sprintf("tui: unknown status %d", int(m.state.Status)))
	}
	return m, cmd
}

func (m *Model) switchCharacter() {
	cur := m.state.Player.Character
	next := platformer.Characters[0]
	for i, c := range platformer.Characters {
		if c == cur {
			next = platformer.Characters[(i+1)%len(platformer.Characters)]
		}
	}
	s, err := m.engine.SelectCharacter(m.state, next)
	if err != nil {
		m.logger.Debug("character switch rejected", "err", err)
		return
	}
	m.state = s
}

// apply feeds a command to the engine and syncs the tick session.
func (m *Model) apply(cmd platformer.Command) tea.Cmd {
	next, err := m.engine.Apply(m.state, cmd)
	if err != nil {
		m.logger.Debug("command rejected", "err", err)
		return nil
	}
	return m.setState(next)
}

// setState installs a new state. Entering playing opens a tick generation;
// every other status closes it.
func (m *Model) setState(next platformer.State) tea.Cmd {
	m.state = next
	if next.Status == platformer.StatusPlaying {
		if m.session.Running() {
			return nil
		}
		m.held.Release()
		return m.session.Start()
	}
	m.session.Stop()
	m.held.Release()
	return nil
}

func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.session.Accept(msg) {
		return m, nil
	}

	controls := m.held.Tick()
	next, events := m.engine.StepWithEvents(m.state, controls)
	for _, ev := range events {
		switch ev.Kind {
		case platformer.EventLevelComplete, platformer.EventGameOver, platformer.EventLifeLost, platformer.EventTimeUp:
			m.logger.Info("game event", "event", ev.Kind, "level", next.Level, "score", next.Score, "lives", next.Lives)
		case platformer.EventCoin, platformer.EventPowerUp, platformer.EventStomp, platformer.EventHit:
		}
	}
	m.setState(next)
	return m, m.session.Next()
}

func (m Model) handleLevels(msg levelsChangedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.notice = "level reload failed: " + msg.err.Error()
		m.logger.Warn("level reload failed", "file", msg.path, "err", msg.err)
		return m, m.waitForChange()
	}

	eng, err := platformer.NewEngine(m.engine.Config(), msg.table, platformer.WithLogger(m.logger))
	if err != nil {
		m.notice = "level reload failed: " + err.Error()
		m.logger.Warn("level reload failed", "file", msg.path, "err", err)
		return m, m.waitForChange()
	}
	m.engine = eng
	m.notice = fmt.Sprintf("levels reloaded (%d)", eng.Levels())
	m.logger.Info("levels reloaded", "file", msg.path, "levels", eng.Levels())

	var cmd tea.Cmd
	if m.state.Status == platformer.StatusMenu || m.state.Level > eng.Levels() {
		cmd = m.setState(eng.NewGame(m.state.Player.Character))
	}
	return m, tea.Batch(cmd, m.waitForChange())
}

// waitForChange blocks on the next level file change and reloads the table.
func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil || m.reload == nil {
		return nil
	}
	changes, reload := m.changes, m.reload
	return func() tea.Msg {
		path, ok := <-changes
		if !ok {
			return nil
		}
		table, err := reload()
		return levelsChangedMsg{path: path, table: table, err: err}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.screen, m.state)
	if m.state.Status == platformer.StatusMenu {
		m.renderCharacterSelect()
	}

	footer := m.help.View(m.keys)
	if m.notice != "" {
		footer = m.notice + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

func (m Model) renderCharacterSelect() {
	y := m.screen.Height()/2 + 3
	stats := m.engine.CharacterStats(m.state.Player.Character)
	line := fmt.Sprintf("<  %s  >  speed %.1f  run %.1f  jump %.0f", stats.Name, stats.Speed, stats.RunSpeed, -stats.JumpForce)
	color := core.ColorBubu
	if m.state.Player.Character == platformer.CharacterDudu {
		color = core.ColorDudu
	}
	m.screen.DrawTextCentered(y, line, color)
	m.screen.DrawTextCentered(y+1, "tab: switch character", core.ColorDefault)
}

// State returns the current game state.
func (m Model) State() platformer.State {
	return m.state
}

// Run starts the Bubble Tea program and returns the final game state.
func Run(opts Options) (platformer.State, error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.State(), nil
}
