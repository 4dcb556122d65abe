package platformer

import "math"

// Snapshot is a flat, primitive-typed view of a State for determinism checks
// and headless run summaries.
type Snapshot struct {
	Tick          uint64
	Status        string
	Level         int
	Score         int
	Lives         int
	Health        int
	PowerUp       string
	TimeRemaining float64
	PlayerX       float64
	PlayerY       float64
	CameraX       float64
	CameraY       float64

	Stats Stats

	// Each entity contributes X, Y, VX, VY
	EnemyCount       int
	EnemyData        []float64
	CollectibleCount int
	PlatformData     []float64
}

// Snapshot flattens the state.
func (s State) Snapshot() Snapshot {
	enemyData := make([]float64, 0, len(s.Enemies)*4)
	for _, en := range s.Enemies {
		enemyData = append(enemyData, en.Pos.X, en.Pos.Y, en.Vel.X, en.Vel.Y)
	}
	platformData := make([]float64, 0, len(s.Platforms)*4)
	for _, p := range s.Platforms {
		platformData = append(platformData, p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y)
	}

	return Snapshot{
		Tick:          s.Tick,
		Status:        s.Status.String(),
		Level:         s.Level,
		Score:         s.Score,
		Lives:         s.Lives,
		Health:        s.Player.Health,
		PowerUp:       s.Player.PowerUp.String(),
		TimeRemaining: s.TimeRemaining,
		PlayerX:       s.Player.Pos.X,
		PlayerY:       s.Player.Pos.Y,
		CameraX:       s.Camera.X,
		CameraY:       s.Camera.Y,

		Stats: s.Stats,

		EnemyCount:       len(s.Enemies),
		EnemyData:        enemyData,
		CollectibleCount: len(s.Collectibles),
		PlatformData:     platformData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + hashString(snap.Status)
	h = h*31 + uint64(snap.Level)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)  //#nosec G115 -- hash computation
	h = h*31 + hashString(snap.PowerUp)
	h = h*31 + math.Float64bits(snap.TimeRemaining)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.CameraX)
	h = h*31 + math.Float64bits(snap.CameraY)

	h = h*31 + uint64(snap.Stats.CoinsCollected)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stats.EnemiesDefeated) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stats.LevelsCompleted) //#nosec G115 -- hash computation
	h = h*31 + snap.Stats.PlayTicks

	h = h*31 + uint64(snap.EnemyCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CollectibleCount) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.PlatformData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}

func hashString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}
