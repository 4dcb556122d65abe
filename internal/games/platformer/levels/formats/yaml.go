// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/superdudu/internal/core"
	"github.com/vovakirdan/superdudu/internal/games/platformer"
)

// Default collectible sizes when a file leaves them out.
var (
	defaultCoinSize    = core.Size{W: 20, H: 20}
	defaultPowerUpSize = core.Size{W: 28, H: 28}
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID           int               `yaml:"id"`
	Name         string            `yaml:"name"`
	Theme        string            `yaml:"theme,omitempty"`
	TimeLimit    float64           `yaml:"time_limit"`
	EndX         float64           `yaml:"end_x,omitempty"`
	PlayerStart  YAMLVec           `yaml:"player_start"`
	Platforms    []YAMLPlatform    `yaml:"platforms"`
	Enemies      []YAMLEnemy       `yaml:"enemies,omitempty"`
	Collectibles []YAMLCollectible `yaml:"collectibles,omitempty"`
}

// YAMLVec is a point or velocity.
type YAMLVec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLBounds is an explicit travel range of a moving platform.
type YAMLBounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// YAMLPlatform is a single platform entry.
type YAMLPlatform struct {
	Type      string      `yaml:"type"`
	X         float64     `yaml:"x"`
	Y         float64     `yaml:"y"`
	W         float64     `yaml:"w"`
	H         float64     `yaml:"h"`
	VX        float64     `yaml:"vx,omitempty"`
	VY        float64     `yaml:"vy,omitempty"`
	Breakable bool        `yaml:"breakable,omitempty"`
	Bounds    *YAMLBounds `yaml:"bounds,omitempty"`
}

// YAMLEnemy is a single enemy spawn. Zero fields use the kind's defaults.
type YAMLEnemy struct {
	Type      string  `yaml:"type"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	W         float64 `yaml:"w,omitempty"`
	H         float64 `yaml:"h,omitempty"`
	Direction string  `yaml:"direction,omitempty"`
	Speed     float64 `yaml:"speed,omitempty"`
	Health    int     `yaml:"health,omitempty"`
}

// YAMLCollectible is a single pickup.
type YAMLCollectible struct {
	Type    string  `yaml:"type"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	W       float64 `yaml:"w,omitempty"`
	H       float64 `yaml:"h,omitempty"`
	Value   int     `yaml:"value,omitempty"`
	PowerUp string  `yaml:"powerup,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (platformer.LevelTemplate, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return platformer.LevelTemplate{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := platformer.LevelTemplate{
		ID:          yl.ID,
		Name:        yl.Name,
		Theme:       yl.Theme,
		PlayerStart: core.V(yl.PlayerStart.X, yl.PlayerStart.Y),
		TimeLimit:   yl.TimeLimit,
		EndX:        yl.EndX,
	}

	for i, p := range yl.Platforms {
		kind, err := platformer.ParsePlatformKind(p.Type)
		if err != nil {
			return platformer.LevelTemplate{}, fmt.Errorf("platform %d: %w", i, err)
		}
		tpl := platformer.PlatformTemplate{
			Kind:      kind,
			Pos:       core.V(p.X, p.Y),
			Size:      core.Size{W: p.W, H: p.H},
			Vel:       core.V(p.VX, p.VY),
			Breakable: p.Breakable,
		}
		if p.Bounds != nil {
			tpl.Bounds = &platformer.Bounds{
				MinX: p.Bounds.MinX,
				MaxX: p.Bounds.MaxX,
				MinY: p.Bounds.MinY,
				MaxY: p.Bounds.MaxY,
			}
		}
		level.Platforms = append(level.Platforms, tpl)
	}

	for i, e := range yl.Enemies {
		kind, err := platformer.ParseEnemyKind(e.Type)
		if err != nil {
			return platformer.LevelTemplate{}, fmt.Errorf("enemy %d: %w", i, err)
		}
		dir, err := platformer.ParseDirection(e.Direction)
		if err != nil {
			return platformer.LevelTemplate{}, fmt.Errorf("enemy %d: %w", i, err)
		}
		level.Enemies = append(level.Enemies, platformer.EnemyTemplate{
			Kind:      kind,
			Pos:       core.V(e.X, e.Y),
			Size:      core.Size{W: e.W, H: e.H},
			Direction: dir,
			Speed:     e.Speed,
			Health:    e.Health,
		})
	}

	for i, c := range yl.Collectibles {
		kind, err := platformer.ParseCollectibleKind(c.Type)
		if err != nil {
			return platformer.LevelTemplate{}, fmt.Errorf("collectible %d: %w", i, err)
		}
		pu, err := platformer.ParsePowerUp(c.PowerUp)
		if err != nil {
			return platformer.LevelTemplate{}, fmt.Errorf("collectible %d: %w", i, err)
		}
		size := core.Size{W: c.W, H: c.H}
		if size.W <= 0 || size.H <= 0 {
			size = defaultCoinSize
			if kind == platformer.CollectiblePowerUp {
				size = defaultPowerUpSize
			}
		}
		level.Collectibles = append(level.Collectibles, platformer.CollectibleTemplate{
			Kind:    kind,
			Pos:     core.V(c.X, c.Y),
			Size:    size,
			Value:   c.Value,
			PowerUp: pu,
		})
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
