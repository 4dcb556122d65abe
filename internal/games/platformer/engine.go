package platformer

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/superdudu/internal/config"
	"github.com/vovakirdan/superdudu/internal/core"
)

var (
	// ErrInvalidTransition is returned when a command is not allowed in the current status.
	ErrInvalidTransition = errors.New("platformer: invalid transition")

	// ErrNoLevels is returned when an engine is built without any level.
	ErrNoLevels = errors.New("platformer: level table is empty")
)

// Command is a game-status machine input.
type Command int

const (
	CmdStart       Command = iota // menu -> playing
	CmdPause                      // playing -> paused
	CmdResume                     // paused -> playing
	CmdTogglePause                // playing <-> paused
	CmdNextLevel                  // levelComplete -> playing (next level) or gameOver (all clear)
	CmdMenu                       // levelComplete | gameOver | paused -> fresh menu
	CmdRestart                    // gameOver -> fresh playing
	CmdReset                      // any -> fresh menu
)

func (c Command) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdTogglePause:
		return "toggle-pause"
	case CmdNextLevel:
		return "next-level"
	case CmdMenu:
		return "menu"
	case CmdRestart:
		return "restart"
	case CmdReset:
		return "reset"
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// Engine runs the simulation with a fixed configuration and level table.
// It holds no game state and is safe for concurrent use.
type Engine struct {
	cfg    config.Platformer
	levels LevelTable
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for status transitions and tick events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine. The config and level table are copied.
func NewEngine(cfg config.Platformer, levels LevelTable, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	cfg.Rules.EndBands = append([]config.EndBand(nil), cfg.Rules.EndBands...)
	e := &Engine{
		cfg:    cfg,
		levels: append(LevelTable(nil), levels...),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() config.Platformer {
	return e.cfg
}

// Levels returns the number of levels in the table.
func (e *Engine) Levels() int {
	return len(e.levels)
}

// LevelName returns the name of a level, or empty when out of range.
func (e *Engine) LevelName(n int) string {
	lvl, ok := e.levels.Level(n)
	if !ok {
		return ""
	}
	return lvl.Name
}

// EndX returns the win-line of a level.
func (e *Engine) EndX(n int) float64 {
	lvl, _ := e.levels.Level(n)
	return LevelEndX(e.cfg.Rules, n, lvl.EndX)
}

// TimeLimit returns the clock of a level in seconds, or 0 when out of range.
func (e *Engine) TimeLimit(n int) float64 {
	lvl, _ := e.levels.Level(n)
	return lvl.TimeLimit
}

// CharacterStats returns the constants of a character.
func (e *Engine) CharacterStats(c Character) config.CharacterStats {
	switch c {
	case CharacterBubu:
		return e.cfg.Characters.Bubu
	case CharacterDudu:
		return e.cfg.Characters.Dudu
	}
	panic(fmt.Sprintf("platformer: unknown character %d", int(c)))
}

func (e *Engine) enemyStats(k EnemyKind) config.EnemyStats {
	switch k {
	case EnemyGoomba:
		return e.cfg.Enemies.Goomba
	case EnemyKoopa:
		return e.cfg.Enemies.Koopa
	}
	panic(fmt.Sprintf("platformer: unknown enemy kind %d", int(k)))
}

// NewGame returns a fresh run at level 1 in the menu status.
func (e *Engine) NewGame(c Character) State {
	s := State{
		Player: Player{ID: "player", Character: c},
		Lives:  e.cfg.Player.StartLives,
		Status: StatusMenu,
	}
	return e.loadLevel(s, 1)
}

// SelectCharacter switches the character while in the menu.
func (e *Engine) SelectCharacter(s State, c Character) (State, error) {
	if s.Status != StatusMenu {
		return s, fmt.Errorf("%w: select character in %s", ErrInvalidTransition, s.Status)
	}
	next := s.Clone()
	next.Player.Character = c
	e.respawnPlayer(&next)
	return next, nil
}

// SelectLevel starts a fresh run at level n, keeping the character.
// A level past the end of the table completes the run; n below 1 selects level 1.
func (e *Engine) SelectLevel(s State, n int) State {
	if n < 1 {
		n = 1
	}
	fresh := State{
		Player: Player{ID: "player", Character: s.Player.Character},
		Lives:  e.cfg.Player.StartLives,
		Status: StatusPlaying,
	}
	if _, ok := e.levels.Level(n); !ok {
		return e.completeRun(fresh)
	}
	return e.loadLevel(fresh, n)
}

// Apply feeds a command to the game-status machine.
// Disallowed commands return ErrInvalidTransition and the unchanged state.
func (e *Engine) Apply(s State, cmd Command) (State, error) {
	invalid := func() (State, error) {
		return s, fmt.Errorf("%w: %s in %s", ErrInvalidTransition, cmd, s.Status)
	}

	var next State
	switch cmd {
	case CmdStart:
		if s.Status != StatusMenu {
			return invalid()
		}
		next = s.Clone()
		next.Status = StatusPlaying
	case CmdPause:
		if s.Status != StatusPlaying {
			return invalid()
		}
		next = s.Clone()
		next.Status = StatusPaused
	case CmdResume:
		if s.Status != StatusPaused {
			return invalid()
		}
		next = s.Clone()
		next.Status = StatusPlaying
	case CmdTogglePause:
		switch s.Status {
		case StatusPlaying:
			return e.Apply(s, CmdPause)
		case StatusPaused:
			return e.Apply(s, CmdResume)
		case StatusMenu, StatusGameOver, StatusLevelComplete:
			return invalid()
		}
		panic(fmt.Sprintf("platformer: unknown status %d", int(s.Status)))
	case CmdNextLevel:
		if s.Status != StatusLevelComplete {
			return invalid()
		}
		next = e.advance(s)
	case CmdMenu:
		switch s.Status {
		case StatusLevelComplete, StatusGameOver, StatusPaused:
			next = e.NewGame(s.Player.Character)
		case StatusMenu, StatusPlaying:
			return invalid()
		default:
			panic(fmt.Sprintf("platformer: unknown status %d", int(s.Status)))
		}
	case CmdRestart:
		if s.Status != StatusGameOver {
			return invalid()
		}
		next = e.NewGame(s.Player.Character)
		next.Status = StatusPlaying
	case CmdReset:
		next = e.NewGame(s.Player.Character)
	default:
		return invalid()
	}

	e.logger.Debug("status transition", "command", cmd, "from", s.Status, "to", next.Status, "level", next.Level)
	return next, nil
}

// advance loads the level after s.Level, or completes the run when none is left.
func (e *Engine) advance(s State) State {
	n := s.Level + 1
	if _, ok := e.levels.Level(n); !ok {
		return e.completeRun(s.Clone())
	}
	next := e.loadLevel(s.Clone(), n)
	next.Status = StatusPlaying
	return next
}

// completeRun ends the run with the all-clear bonus.
func (e *Engine) completeRun(s State) State {
	s.Score += e.cfg.Scores.AllClear
	s.Status = StatusGameOver
	e.logger.Info("all levels completed", "score", s.Score)
	return s
}

// loadLevel spawns the entities of level n into s, keeping score, lives, stats
// and status. The player keeps its character but nothing else.
func (e *Engine) loadLevel(s State, n int) State {
	lvl, _ := e.levels.Level(n)

	s.Level = n
	s.Platforms = e.spawnPlatforms(lvl.Platforms)
	s.Enemies = e.spawnEnemies(lvl.Enemies)
	s.Collectibles = e.spawnCollectibles(lvl.Collectibles)
	s.TimeRemaining = lvl.TimeLimit
	s.Camera = core.Vec2{}
	s.Player.PowerUp = PowerUpNone
	e.respawnPlayer(&s)
	return s
}

// respawnPlayer resets the player to the level start with full health.
func (e *Engine) respawnPlayer(s *State) {
	lvl, _ := e.levels.Level(s.Level)
	p := &s.Player
	p.Pos = lvl.PlayerStart
	p.Vel = core.Vec2{}
	p.Size = core.Size{W: e.cfg.Player.Width, H: e.cfg.Player.Height}
	p.Grounded = false
	p.Health = e.CharacterStats(p.Character).MaxHealth
	p.Direction = DirRight
	p.Jumping = false
	p.Moving = false
}
