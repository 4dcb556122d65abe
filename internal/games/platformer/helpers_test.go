package platformer

import (
	"testing"

	"github.com/vovakirdan/superdudu/internal/config"
	"github.com/vovakirdan/superdudu/internal/core"
	"github.com/vovakirdan/superdudu/internal/registry"
)

const groundY = 500.0

// flatLevel is a single wide floor with the player resting on it.
func flatLevel() LevelTemplate {
	return LevelTemplate{
		ID:   1,
		Name: "Flat",
		Platforms: []PlatformTemplate{
			{Kind: PlatformGround, Pos: core.V(0, groundY), Size: core.Size{W: 3072, H: 100}},
		},
		PlayerStart: core.V(100, groundY-32),
		TimeLimit:   300,
	}
}

// emptyLevel has no geometry at all.
func emptyLevel() LevelTemplate {
	return LevelTemplate{ID: 1, Name: "Void", PlayerStart: core.V(100, 70), TimeLimit: 300}
}

func newTestEngine(t *testing.T, levels ...LevelTemplate) *Engine {
	t.Helper()
	if len(levels) == 0 {
		levels = []LevelTemplate{flatLevel()}
	}
	e, err := NewEngine(config.DefaultPlatformer(), levels)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// newVariantEngine builds an engine from the defaults tuned by a registered variant.
func newVariantEngine(t *testing.T, variant string, levels ...LevelTemplate) *Engine {
	t.Helper()
	if len(levels) == 0 {
		levels = []LevelTemplate{flatLevel()}
	}
	cfg, err := registry.Apply(variant, config.DefaultPlatformer())
	if err != nil {
		t.Fatalf("registry.Apply(%q): %v", variant, err)
	}
	e, err := NewEngine(cfg, levels)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// startPlaying returns a fresh playing state with the player grounded.
func startPlaying(t *testing.T, e *Engine) State {
	t.Helper()
	s, err := e.Apply(e.NewGame(CharacterBubu), CmdStart)
	if err != nil {
		t.Fatalf("Apply(start): %v", err)
	}
	s.Player.Grounded = OnGround(s.Player.Body, s.Platforms, e.cfg.Player.GroundTolerance)
	return s
}

func goombaAt(x, y float64, dir Direction) EnemyTemplate {
	return EnemyTemplate{Kind: EnemyGoomba, Pos: core.V(x, y), Direction: dir}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
