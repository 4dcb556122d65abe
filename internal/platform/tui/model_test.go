package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/superdudu/internal/config"
	"github.com/vovakirdan/superdudu/internal/core"
	"github.com/vovakirdan/superdudu/internal/games/platformer"
)

func testTable() platformer.LevelTable {
	return platformer.LevelTable{{
		ID:   1,
		Name: "Test Field",
		Platforms: []platformer.PlatformTemplate{
			{Kind: platformer.PlatformGround, Pos: core.V(0, 500), Size: core.Size{W: 3072, H: 100}},
		},
		PlayerStart: core.V(100, 468),
		TimeLimit:   300,
	}}
}

func newTestModel(t *testing.T, level int) Model {
	t.Helper()
	eng, err := platformer.NewEngine(config.DefaultPlatformer(), testTable())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return NewModel(Options{Engine: eng, Level: level, Width: 80, Height: 24})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestNewModelStartsInMenu(t *testing.T) {
	m := newTestModel(t, 0)
	if m.State().Status != platformer.StatusMenu {
		t.Errorf("status = %v, want menu", m.State().Status)
	}
	if m.session.Running() {
		t.Error("session should not tick in menu")
	}
}

func TestNewModelDirectLevel(t *testing.T) {
	m := newTestModel(t, 1)
	if m.State().Status != platformer.StatusPlaying {
		t.Fatalf("status = %v, want playing", m.State().Status)
	}
	if !m.session.Running() {
		t.Error("session should tick when starting on a level")
	}
}

func TestConfirmStartsTicking(t *testing.T) {
	m := newTestModel(t, 0)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.State().Status != platformer.StatusPlaying {
		t.Fatalf("status = %v, want playing", m.State().Status)
	}
	if cmd == nil {
		t.Error("starting should schedule a tick")
	}
}

func TestTickAdvancesSimulation(t *testing.T) {
	m := newTestModel(t, 1)
	before := m.State().Tick

	m, cmd := update(t, m, TickMsg{Gen: m.session.gen})
	if m.State().Tick != before+1 {
		t.Errorf("Tick = %d, want %d", m.State().Tick, before+1)
	}
	if cmd == nil {
		t.Error("tick while playing should schedule the next tick")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := newTestModel(t, 1)
	stale := TickMsg{Gen: m.session.gen}

	m, _ = update(t, m, runeKey("p"))
	if m.State().Status != platformer.StatusPaused {
		t.Fatalf("status = %v, want paused", m.State().Status)
	}

	// Resume opens a new generation; the tick from before the pause is dead.
	m, _ = update(t, m, runeKey("p"))
	before := m.State().Tick
	m, cmd := update(t, m, stale)
	if m.State().Tick != before {
		t.Errorf("stale tick advanced simulation to %d", m.State().Tick)
	}
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
}

func TestHeldDirectionMovesPlayer(t *testing.T) {
	m := newTestModel(t, 1)
	x0 := m.State().Player.Pos.X

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for range 5 {
		m, _ = update(t, m, TickMsg{Gen: m.session.gen})
	}
	if m.State().Player.Pos.X <= x0 {
		t.Errorf("player x = %v, want > %v", m.State().Player.Pos.X, x0)
	}
}

func TestSwitchCharacterInMenu(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.State().Player.Character; got != platformer.CharacterDudu {
		t.Errorf("character = %v, want dudu", got)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.State().Player.Character; got != platformer.CharacterBubu {
		t.Errorf("character = %v, want bubu", got)
	}
}

func TestBackFromPausedReturnsToMenu(t *testing.T) {
	m := newTestModel(t, 1)
	m, _ = update(t, m, runeKey("p"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.State().Status != platformer.StatusMenu {
		t.Errorf("status = %v, want menu", m.State().Status)
	}
	if m.session.Running() {
		t.Error("session should stop in menu")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, 1)
	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestViewOverlays(t *testing.T) {
	m := newTestModel(t, 0)
	if v := m.View(); !strings.Contains(v, "Press ENTER to start") {
		t.Errorf("menu view missing prompt:\n%s", v)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, runeKey("p"))
	if v := m.View(); !strings.Contains(v, "PAUSED") {
		t.Errorf("paused view missing overlay:\n%s", v)
	}
}

func TestLevelsReload(t *testing.T) {
	m := newTestModel(t, 0)
	table := testTable()
	table[0].Name = "Renamed"
	table = append(table, table[0])
	table[1].ID = 2

	m, _ = update(t, m, levelsChangedMsg{path: "x.yaml", table: table})
	if m.engine.Levels() != 2 {
		t.Errorf("Levels() = %d, want 2", m.engine.Levels())
	}
	if m.engine.LevelName(1) != "Renamed" {
		t.Errorf("LevelName(1) = %q, want Renamed", m.engine.LevelName(1))
	}
	if !strings.Contains(m.notice, "reloaded") {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestLevelsReloadEmptyTableKeepsEngine(t *testing.T) {
	m := newTestModel(t, 0)
	eng := m.engine
	m, _ = update(t, m, levelsChangedMsg{path: "x.yaml", table: nil})
	if m.engine != eng {
		t.Error("engine replaced by an empty table")
	}
	if !strings.Contains(m.notice, "failed") {
		t.Errorf("notice = %q", m.notice)
	}
}
