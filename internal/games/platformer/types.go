// Package platformer implements the per-frame simulation core of Super Dudu & Bubu:
// physics, collision, enemy AI, pickups, scoring and the game-status machine.
//
// Every exported operation takes a State by value and returns a new State.
// The input is never mutated, so a host may keep the previous frame for rendering.
package platformer

import (
	"fmt"
	"strings"
)

// Character is one of the two playable archetypes.
type Character int

const (
	CharacterBubu Character = iota
	CharacterDudu
)

// Characters lists every character in menu order.
var Characters = []Character{CharacterBubu, CharacterDudu}

func (c Character) String() string {
	switch c {
	case CharacterBubu:
		return "bubu"
	case CharacterDudu:
		return "dudu"
	}
	panic(fmt.Sprintf("platformer: unknown character %d", int(c)))
}

// ParseCharacter converts a name to a Character.
func ParseCharacter(s string) (Character, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bubu":
		return CharacterBubu, nil
	case "dudu":
		return CharacterDudu, nil
	}
	return 0, fmt.Errorf("unknown character %q", s)
}

// Direction is the facing of a player or enemy.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
)

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	}
	panic(fmt.Sprintf("platformer: unknown direction %d", int(d)))
}

// Sign returns -1 for left and +1 for right.
func (d Direction) Sign() float64 {
	switch d {
	case DirRight:
		return 1
	case DirLeft:
		return -1
	}
	panic(fmt.Sprintf("platformer: unknown direction %d", int(d)))
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	}
	panic(fmt.Sprintf("platformer: unknown direction %d", int(d)))
}

// ParseDirection converts a name to a Direction. Empty defaults to left,
// which is how enemies usually spawn walking toward the player.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// EnemyKind is the enemy variant.
type EnemyKind int

const (
	EnemyGoomba EnemyKind = iota
	EnemyKoopa
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyGoomba:
		return "goomba"
	case EnemyKoopa:
		return "koopa"
	}
	panic(fmt.Sprintf("platformer: unknown enemy kind %d", int(k)))
}

// ParseEnemyKind converts a name to an EnemyKind.
func ParseEnemyKind(s string) (EnemyKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "goomba":
		return EnemyGoomba, nil
	case "koopa":
		return EnemyKoopa, nil
	}
	return 0, fmt.Errorf("unknown enemy type %q", s)
}

// CollectibleKind is the collectible variant.
type CollectibleKind int

const (
	CollectibleCoin CollectibleKind = iota
	CollectiblePowerUp
)

func (k CollectibleKind) String() string {
	switch k {
	case CollectibleCoin:
		return "coin"
	case CollectiblePowerUp:
		return "powerup"
	}
	panic(fmt.Sprintf("platformer: unknown collectible kind %d", int(k)))
}

// ParseCollectibleKind converts a name to a CollectibleKind.
func ParseCollectibleKind(s string) (CollectibleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coin":
		return CollectibleCoin, nil
	case "powerup":
		return CollectiblePowerUp, nil
	}
	return 0, fmt.Errorf("unknown collectible type %q", s)
}

// PowerUp is the single-slot power-up effect held by the player.
type PowerUp int

const (
	PowerUpNone PowerUp = iota
	PowerUpMushroom
	PowerUpFireflower
	PowerUpStar
)

func (p PowerUp) String() string {
	switch p {
	case PowerUpNone:
		return "none"
	case PowerUpMushroom:
		return "mushroom"
	case PowerUpFireflower:
		return "fireflower"
	case PowerUpStar:
		return "star"
	}
	panic(fmt.Sprintf("platformer: unknown power-up %d", int(p)))
}

// ParsePowerUp converts a name to a PowerUp. Empty means none.
func ParsePowerUp(s string) (PowerUp, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return PowerUpNone, nil
	case "mushroom":
		return PowerUpMushroom, nil
	case "fireflower":
		return PowerUpFireflower, nil
	case "star":
		return PowerUpStar, nil
	}
	return 0, fmt.Errorf("unknown power-up %q", s)
}

// PlatformKind is the platform variant.
type PlatformKind int

const (
	PlatformGround PlatformKind = iota
	PlatformBlock
	PlatformPipe
	PlatformMoving
)

func (k PlatformKind) String() string {
	switch k {
	case PlatformGround:
		return "ground"
	case PlatformBlock:
		return "block"
	case PlatformPipe:
		return "pipe"
	case PlatformMoving:
		return "moving"
	}
	panic(fmt.Sprintf("platformer: unknown platform kind %d", int(k)))
}

// ParsePlatformKind converts a name to a PlatformKind.
func ParsePlatformKind(s string) (PlatformKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ground":
		return PlatformGround, nil
	case "block":
		return PlatformBlock, nil
	case "pipe":
		return PlatformPipe, nil
	case "moving":
		return PlatformMoving, nil
	}
	return 0, fmt.Errorf("unknown platform type %q", s)
}

// Status is the game-status machine state.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
	StatusLevelComplete
)

func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "gameOver"
	case StatusLevelComplete:
		return "levelComplete"
	}
	panic(fmt.Sprintf("platformer: unknown status %d", int(s)))
}
