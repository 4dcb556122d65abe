package platformer

import "github.com/vovakirdan/superdudu/internal/core"

// Body is the shared physical part of every entity.
type Body struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Size     core.Size
	Grounded bool // Recomputed every tick from platform contact
}

// Box returns the entity's bounding box.
func (b Body) Box() core.Box {
	return core.BoxAt(b.Pos, b.Size)
}

// Feet returns the y-coordinate of the bottom edge.
func (b Body) Feet() float64 {
	return b.Pos.Y + b.Size.H
}

// Player is the controlled character.
type Player struct {
	ID string
	Body
	Character Character
	Health    int
	PowerUp   PowerUp
	Direction Direction
	Jumping   bool // Presentation flag
	Moving    bool // Presentation flag
}

// Enemy is a walking hazard.
type Enemy struct {
	ID string
	Body
	Kind      EnemyKind
	Health    int // 0 schedules removal at the end of the enemy pass
	Direction Direction
	Speed     float64
}

// Collectible is a pickup. It is removed, never mutated, when collected.
type Collectible struct {
	ID string
	Body
	Kind    CollectibleKind
	Value   int
	PowerUp PowerUp // Only meaningful for CollectiblePowerUp
}

// Bounds limits the travel of a moving platform.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Platform is solid level geometry. Only PlatformMoving has a velocity.
type Platform struct {
	ID string
	Body
	Kind      PlatformKind
	Breakable bool
	Bounds    *Bounds // Set for moving platforms at spawn
}

// Stats are per-run counters.
type Stats struct {
	CoinsCollected  int
	EnemiesDefeated int
	LevelsCompleted int
	PlayTicks       uint64
}

// State is the root aggregate owned by the simulation.
type State struct {
	Player        Player
	Enemies       []Enemy
	Collectibles  []Collectible
	Platforms     []Platform
	Score         int
	Lives         int
	Level         int // 1-based index into the level table
	Status        Status
	TimeRemaining float64 // Seconds of game time
	Camera        core.Vec2
	Stats         Stats
	Tick          uint64
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	c.Enemies = append([]Enemy(nil), s.Enemies...)
	c.Collectibles = append([]Collectible(nil), s.Collectibles...)
	c.Platforms = make([]Platform, len(s.Platforms))
	for i, p := range s.Platforms {
		if p.Bounds != nil {
			b := *p.Bounds
			p.Bounds = &b
		}
		c.Platforms[i] = p
	}
	return c
}
