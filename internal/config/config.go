// Package config provides YAML-based tuning configuration for the platformer.
// The loaded record is immutable by convention: the simulation receives a copy
// at construction time and never reads global constants.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Platformer contains every tunable constant of the simulation.
type Platformer struct {
	World      World      `yaml:"world"`
	Player     Player     `yaml:"player"`
	Characters Characters `yaml:"characters"`
	Enemies    Enemies    `yaml:"enemies"`
	Platforms  Platforms  `yaml:"platforms"`
	Scores     Scores     `yaml:"scores"`
	Camera     Camera     `yaml:"camera"`
	Rules      Rules      `yaml:"rules"`
	PowerUps   PowerUps   `yaml:"powerups"`
}

// World defines the visible world and global physics.
type World struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Gravity        float64 `yaml:"gravity"`
	AirFriction    float64 `yaml:"air_friction"`
	GroundFriction float64 `yaml:"ground_friction"`
	ScrollScreens  float64 `yaml:"scroll_screens"` // Horizontal extent in screen widths
	FloorMargin    float64 `yaml:"floor_margin"`   // Soft floor below the visible world
}

// Player defines player-wide parameters independent of the character.
type Player struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	StartLives      int     `yaml:"start_lives"`
	HealthOverflow  int     `yaml:"health_overflow"`  // How far a pickup may exceed max health
	CoyoteVelocity  float64 `yaml:"coyote_velocity"`  // |vy| below this allows an airborne jump; 0 disables
	GroundTolerance float64 `yaml:"ground_tolerance"` // Ground probe depth below the feet
	RideTolerance   float64 `yaml:"ride_tolerance"`   // Moving platform contact depth
	StompBounce     float64 `yaml:"stomp_bounce"`
}

// CharacterStats are the per-archetype movement constants.
type CharacterStats struct {
	Name      string  `yaml:"name"`
	Speed     float64 `yaml:"speed"`
	RunSpeed  float64 `yaml:"run_speed"`
	JumpForce float64 `yaml:"jump_force"` // Negative: up is -y
	MaxHealth int     `yaml:"max_health"`
}

// Characters lists the two playable archetypes.
type Characters struct {
	Bubu CharacterStats `yaml:"bubu"`
	Dudu CharacterStats `yaml:"dudu"`
}

// EnemyStats are base values for an enemy kind.
type EnemyStats struct {
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"`
	Points int     `yaml:"points"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Enemies lists the enemy kinds.
type Enemies struct {
	Goomba EnemyStats `yaml:"goomba"`
	Koopa  EnemyStats `yaml:"koopa"`
}

// Platforms defines moving-platform behavior.
type Platforms struct {
	SpeedGovernor float64 `yaml:"speed_governor"` // Velocity multiplier per tick
	RideFactor    float64 `yaml:"ride_factor"`    // Share of platform displacement passed to riders
	RideDamping   float64 `yaml:"ride_damping"`   // Rider vx damping on horizontally moving platforms
	RangeX        float64 `yaml:"range_x"`        // Default horizontal travel around spawn
	RangeY        float64 `yaml:"range_y"`        // Default vertical travel around spawn
	MinY          float64 `yaml:"min_y"`          // Default bounds never go above this
	BottomGap     float64 `yaml:"bottom_gap"`     // Default bounds stay this far above the world bottom
	MaxXScreens   float64 `yaml:"max_x_screens"`  // Default bounds stay within this many screens
}

// Scores defines point awards.
type Scores struct {
	Coin          int `yaml:"coin"`
	PowerUp       int `yaml:"powerup"`
	LevelComplete int `yaml:"level_complete"`
	TimeBonus     int `yaml:"time_bonus"` // Per whole second remaining
	AllClear      int `yaml:"all_clear"`
}

// Camera defines camera tracking.
type Camera struct {
	Smoothing    float64 `yaml:"smoothing"`     // First-order low-pass coefficient per tick
	VerticalBias float64 `yaml:"vertical_bias"` // Player kept at this fraction of viewport height
	MaxY         float64 `yaml:"max_y"`
}

// EndBand maps levels up to MaxLevel (inclusive) to a win-line x.
// A MaxLevel of 0 matches every remaining level.
type EndBand struct {
	MaxLevel int     `yaml:"max_level"`
	EndX     float64 `yaml:"end_x"`
}

// Rules defines tick timing and death/win conditions.
type Rules struct {
	TickSeconds           float64   `yaml:"tick_seconds"`
	FallMargin            float64   `yaml:"fall_margin"` // Below world height
	LeftMargin            float64   `yaml:"left_margin"` // Left of the level origin
	LookAheadMargin       float64   `yaml:"look_ahead_margin"`
	LedgeProbeAbove       float64   `yaml:"ledge_probe_above"`
	LedgeProbeBelow       float64   `yaml:"ledge_probe_below"`
	EnemyFallMargin       float64   `yaml:"enemy_fall_margin"`
	ClearPowerUpOnRespawn bool      `yaml:"clear_powerup_on_respawn"`
	EndBands              []EndBand `yaml:"end_bands"`
}

// PowerUps holds declared power-up attributes. Durations are data only:
// the simulation does not expire power-ups.
type PowerUps struct {
	StarDurationMS   int     `yaml:"star_duration_ms"`
	StarSpeedFactor  float64 `yaml:"star_speed_factor"`
	FireflowerShoots bool    `yaml:"fireflower_shoots"`
	SizeMultiplier   float64 `yaml:"size_multiplier"`
}

// ErrInvalidConfig is returned by Validate for unusable values.
var ErrInvalidConfig = errors.New("config: invalid platformer config")

// Validate checks values the simulation relies on.
func (c Platformer) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{c.World.Width > 0, "world.width"},
		{c.World.Height > 0, "world.height"},
		{c.World.ScrollScreens > 0, "world.scroll_screens"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size"},
		{c.Player.StartLives > 0, "player.start_lives"},
		{c.Player.HealthOverflow >= 0, "player.health_overflow"},
		{c.Characters.Bubu.MaxHealth > 0, "characters.bubu.max_health"},
		{c.Characters.Dudu.MaxHealth > 0, "characters.dudu.max_health"},
		{c.Rules.TickSeconds > 0, "rules.tick_seconds"},
		{c.Camera.Smoothing >= 0 && c.Camera.Smoothing <= 1, "camera.smoothing"},
		{len(c.Rules.EndBands) > 0, "rules.end_bands"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.name)
		}
	}
	for _, f := range []float64{c.World.Gravity, c.World.AirFriction, c.World.GroundFriction} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite physics value", ErrInvalidConfig)
		}
	}
	return nil
}

// MaxX returns the right edge of the playable world.
func (w World) MaxX() float64 {
	return w.Width * w.ScrollScreens
}

// SoftFloor returns the lowest y the bounds clamp allows.
func (w World) SoftFloor() float64 {
	return w.Height + w.FloorMargin
}
