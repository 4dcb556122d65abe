package platformer

import (
	"github.com/vovakirdan/superdudu/internal/config"
	"github.com/vovakirdan/superdudu/internal/registry"
)

// Tuning variant IDs.
const (
	VariantWeb     = "web"
	VariantDesktop = "desktop"
	VariantNative  = "native"
)

func init() {
	registry.Register(registry.Variant{
		ID:    VariantWeb,
		Title: "Web (canonical tuning)",
		Tune:  func(*config.Platformer) {},
	})
	registry.Register(registry.Variant{
		ID:    VariantDesktop,
		Title: "Desktop (higher jumps, faster runs)",
		Tune: func(cfg *config.Platformer) {
			cfg.Characters.Bubu.JumpForce = -18
			cfg.Characters.Bubu.Speed = 5.2
			cfg.Characters.Bubu.RunSpeed = 8.5
			cfg.Characters.Dudu.JumpForce = -18
			cfg.Characters.Dudu.Speed = 5.5
			cfg.Characters.Dudu.RunSpeed = 8.8
			cfg.Rules.EndBands = []config.EndBand{
				{MaxLevel: 2, EndX: 2800},
				{MaxLevel: 5, EndX: 2500},
				{MaxLevel: 10, EndX: 2700},
				{MaxLevel: 0, EndX: 2900},
			}
		},
	})
	registry.Register(registry.Variant{
		ID:    VariantNative,
		Title: "Native (strict jumps, power-ups survive respawn)",
		Tune: func(cfg *config.Platformer) {
			cfg.Player.CoyoteVelocity = 0
			cfg.Rules.ClearPowerUpOnRespawn = false
		},
	})
}
