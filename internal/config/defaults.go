package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformer returns the hardcoded default configuration.
// It mirrors defaults/platformer.yaml and is used when the embedded file cannot be parsed.
func DefaultPlatformer() Platformer {
	return Platformer{
		World: World{
			Width:          1024,
			Height:         600,
			Gravity:        0.8,
			AirFriction:    0.8,
			GroundFriction: 0.85,
			ScrollScreens:  3,
			FloorMargin:    100,
		},
		Player: Player{
			Width:           32,
			Height:          32,
			StartLives:      3,
			HealthOverflow:  1,
			CoyoteVelocity:  2,
			GroundTolerance: 5,
			RideTolerance:   10,
			StompBounce:     -8,
		},
		Characters: Characters{
			Bubu: CharacterStats{Name: "Bubu", Speed: 4.5, RunSpeed: 7.5, JumpForce: -16, MaxHealth: 3},
			Dudu: CharacterStats{Name: "Dudu", Speed: 5, RunSpeed: 8, JumpForce: -15, MaxHealth: 3},
		},
		Enemies: Enemies{
			Goomba: EnemyStats{Health: 1, Speed: 1, Points: 100, Width: 32, Height: 32},
			Koopa:  EnemyStats{Health: 2, Speed: 1.5, Points: 200, Width: 32, Height: 40},
		},
		Platforms: Platforms{
			SpeedGovernor: 0.8,
			RideFactor:    0.95,
			RideDamping:   0.9,
			RangeX:        200,
			RangeY:        100,
			MinY:          50,
			BottomGap:     50,
			MaxXScreens:   2,
		},
		Scores: Scores{
			Coin:          100,
			PowerUp:       500,
			LevelComplete: 1000,
			TimeBonus:     10,
			AllClear:      5000,
		},
		Camera: Camera{
			Smoothing:    0.1,
			VerticalBias: 0.7,
			MaxY:         200,
		},
		Rules: Rules{
			TickSeconds:           1.0 / 60.0,
			FallMargin:            50,
			LeftMargin:            100,
			LookAheadMargin:       5,
			LedgeProbeAbove:       5,
			LedgeProbeBelow:       15,
			EnemyFallMargin:       50,
			ClearPowerUpOnRespawn: true,
			EndBands: []EndBand{
				{MaxLevel: 1, EndX: 3000},
				{MaxLevel: 2, EndX: 3100},
				{MaxLevel: 5, EndX: 1500},
				{MaxLevel: 10, EndX: 1700},
				{MaxLevel: 15, EndX: 2000},
				{MaxLevel: 0, EndX: 2500},
			},
		},
		PowerUps: PowerUps{
			StarDurationMS:   10000,
			StarSpeedFactor:  1.5,
			FireflowerShoots: true,
			SizeMultiplier:   1.2,
		},
	}
}
