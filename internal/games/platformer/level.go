package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/superdudu/internal/config"
	"github.com/vovakirdan/superdudu/internal/core"
)

// PlatformTemplate describes a platform in a level definition.
type PlatformTemplate struct {
	Kind      PlatformKind
	Pos       core.Vec2
	Size      core.Size
	Vel       core.Vec2 // Only used by moving platforms
	Breakable bool
	Bounds    *Bounds // Optional explicit travel bounds
}

// EnemyTemplate describes an enemy spawn. Zero Speed, Health or Size fall
// back to the enemy kind's configured base values.
type EnemyTemplate struct {
	Kind      EnemyKind
	Pos       core.Vec2
	Size      core.Size
	Direction Direction
	Speed     float64
	Health    int
}

// CollectibleTemplate describes a collectible spawn. A zero Value falls back
// to the configured score for the kind.
type CollectibleTemplate struct {
	Kind    CollectibleKind
	Pos     core.Vec2
	Size    core.Size
	Value   int
	PowerUp PowerUp
}

// LevelTemplate is a static level definition.
type LevelTemplate struct {
	ID           int
	Name         string
	Theme        string
	Platforms    []PlatformTemplate
	Enemies      []EnemyTemplate
	Collectibles []CollectibleTemplate
	PlayerStart  core.Vec2
	TimeLimit    float64 // Seconds
	EndX         float64 // Optional override of the banded win-line
}

// LevelTable is the read-only level list. Level n lives at index n-1.
type LevelTable []LevelTemplate

// Level returns the template for a 1-based level number.
func (t LevelTable) Level(n int) (LevelTemplate, bool) {
	if n < 1 || n > len(t) {
		return LevelTemplate{}, false
	}
	return t[n-1], true
}

// LevelEndX returns the win-line for a level: the level's own override when
// set, otherwise the first configured band covering the level number.
func LevelEndX(rules config.Rules, level int, override float64) float64 {
	if override > 0 {
		return override
	}
	for _, band := range rules.EndBands {
		if band.MaxLevel == 0 || level <= band.MaxLevel {
			return band.EndX
		}
	}
	return math.Inf(1)
}

// DefaultBounds derives the travel bounds of a moving platform from its spawn
// position when the template has none: ±RangeX horizontally and ±RangeY
// vertically, clipped to the world.
func DefaultBounds(pc config.Platforms, w config.World, pos core.Vec2) Bounds {
	return Bounds{
		MinX: math.Max(0, pos.X-pc.RangeX),
		MaxX: math.Min(w.Width*pc.MaxXScreens, pos.X+pc.RangeX),
		MinY: math.Max(pc.MinY, pos.Y-pc.RangeY),
		MaxY: math.Min(w.Height-pc.BottomGap, pos.Y+pc.RangeY),
	}
}

func (e *Engine) spawnPlatforms(tpl []PlatformTemplate) []Platform {
	out := make([]Platform, 0, len(tpl))
	for i, t := range tpl {
		p := Platform{
			ID:        fmt.Sprintf("platform-%d", i),
			Body:      Body{Pos: t.Pos, Size: t.Size},
			Kind:      t.Kind,
			Breakable: t.Breakable,
		}
		switch t.Kind {
		case PlatformMoving:
			p.Vel = t.Vel
			b := DefaultBounds(e.cfg.Platforms, e.cfg.World, t.Pos)
			if t.Bounds != nil {
				b = *t.Bounds
			}
			p.Bounds = &b
		case PlatformGround, PlatformBlock, PlatformPipe:
			// Static geometry never moves.
		default:
			panic(fmt.Sprintf("platformer: unknown platform kind %d", int(t.Kind)))
		}
		out = append(out, p)
	}
	return out
}

func (e *Engine) spawnEnemies(tpl []EnemyTemplate) []Enemy {
	out := make([]Enemy, 0, len(tpl))
	for i, t := range tpl {
		base := e.enemyStats(t.Kind)
		en := Enemy{
			ID:        fmt.Sprintf("enemy-%d", i),
			Body:      Body{Pos: t.Pos, Size: t.Size},
			Kind:      t.Kind,
			Health:    t.Health,
			Direction: t.Direction,
			Speed:     t.Speed,
		}
		if en.Size.W <= 0 || en.Size.H <= 0 {
			en.Size = core.Size{W: base.Width, H: base.Height}
		}
		if en.Health <= 0 {
			en.Health = base.Health
		}
		if en.Speed <= 0 {
			en.Speed = base.Speed
		}
		out = append(out, en)
	}
	return out
}

func (e *Engine) spawnCollectibles(tpl []CollectibleTemplate) []Collectible {
	out := make([]Collectible, 0, len(tpl))
	for i, t := range tpl {
		c := Collectible{
			ID:      fmt.Sprintf("collectible-%d", i),
			Body:    Body{Pos: t.Pos, Size: t.Size},
			Kind:    t.Kind,
			Value:   t.Value,
			PowerUp: t.PowerUp,
		}
		if c.Value <= 0 {
			switch t.Kind {
			case CollectibleCoin:
				c.Value = e.cfg.Scores.Coin
			case CollectiblePowerUp:
				c.Value = e.cfg.Scores.PowerUp
			default:
				panic(fmt.Sprintf("platformer: unknown collectible kind %d", int(t.Kind)))
			}
		}
		out = append(out, c)
	}
	return out
}
