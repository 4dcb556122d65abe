package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/superdudu/internal/core"
)

// Step advances the game by one tick. Outside StatusPlaying it returns s unchanged.
// The input state is never mutated.
func (e *Engine) Step(s State, c core.Controls) State {
	return e.step(s, c, nil)
}

// StepWithEvents is Step that also reports what happened during the tick.
func (e *Engine) StepWithEvents(s State, c core.Controls) (State, []Event) {
	ev := &events{}
	next := e.step(s, c, ev)
	for _, evt := range ev.list {
		e.logger.Debug("tick event", "tick", next.Tick, "event", evt.Kind, "id", evt.ID, "points", evt.Points)
	}
	return next, ev.list
}

func (e *Engine) step(prev State, c core.Controls, ev *events) State {
	if prev.Status != StatusPlaying {
		return prev
	}
	s := prev.Clone()

	deltas := e.updatePlatforms(s.Platforms)
	e.updatePlayer(&s, c, deltas)
	e.updateEnemies(&s, deltas)
	e.collect(&s, ev)
	hit := e.combat(&s, ev)
	if hit {
		e.damage(&s, ev)
	}
	e.updateCamera(&s)
	e.checkCompletion(&s, ev)
	e.updateTimer(&s, ev)
	e.checkFall(&s, ev)

	s.Tick++
	s.Stats.PlayTicks++
	return s
}

// updatePlatforms moves every moving platform and returns the displacement of
// each platform, indexed like the slice.
func (e *Engine) updatePlatforms(platforms []Platform) []core.Vec2 {
	deltas := make([]core.Vec2, len(platforms))
	gov := e.cfg.Platforms.SpeedGovernor
	for i := range platforms {
		p := &platforms[i]
		switch p.Kind {
		case PlatformMoving:
		case PlatformGround, PlatformBlock, PlatformPipe:
			continue
		default:
			panic(fmt.Sprintf("platformer: unknown platform kind %d", int(p.Kind)))
		}
		b := p.Bounds
		if b == nil {
			db := DefaultBounds(e.cfg.Platforms, e.cfg.World, p.Pos)
			b = &db
			p.Bounds = b
		}
		start := p.Pos
		p.Pos = p.Pos.Add(p.Vel.Scale(gov))

		if p.Pos.X <= b.MinX || p.Pos.X+p.Size.W >= b.MaxX {
			p.Vel.X = -p.Vel.X
		}
		if p.Pos.Y <= b.MinY || p.Pos.Y+p.Size.H >= b.MaxY {
			p.Vel.Y = -p.Vel.Y
		}
		p.Pos.X = core.ClampF(p.Pos.X, b.MinX, b.MaxX-p.Size.W)
		p.Pos.Y = core.ClampF(p.Pos.Y, b.MinY, b.MaxY-p.Size.H)

		deltas[i] = p.Pos.Sub(start)
	}
	return deltas
}

// ride carries a body standing on a moving platform along with the
// platform's displacement this tick. It returns the index of the ridden
// platform, or -1.
func (e *Engine) ride(b *Body, platforms []Platform, deltas []core.Vec2, damp bool) int {
	if b.Vel.Y < 0 {
		return -1
	}
	pc := e.cfg.Platforms
	for i, p := range platforms {
		if p.Kind != PlatformMoving {
			continue
		}
		d := deltas[i]
		before := core.BoxAt(p.Pos.Sub(d), p.Size)
		if !restsOn(*b, before, e.cfg.Player.RideTolerance) {
			continue
		}
		b.Pos = b.Pos.Add(d.Scale(pc.RideFactor))
		if damp && d.X != 0 {
			b.Vel.X *= pc.RideDamping
		}
		b.Grounded = true
		return i
	}
	return -1
}

// settle puts a rider back on top of the platform it rode this tick. A
// descending platform drops away faster than the scaled ride displacement,
// which would otherwise leave the rider hovering just above it.
func (e *Engine) settle(b *Body, platforms []Platform, rode int) {
	if rode < 0 || b.Vel.Y < 0 {
		return
	}
	box := platforms[rode].Box()
	if b.Pos.X+b.Size.W <= box.X || b.Pos.X >= box.Right() {
		return
	}
	gap := box.Y - b.Feet()
	if gap <= 0 || gap > e.cfg.Player.RideTolerance {
		return
	}
	b.Pos.Y = box.Y - b.Size.H
	b.Vel.Y = 0
	b.Grounded = true
}

// collide integrates b and resolves it against every platform, in order.
func collide(b *Body, platforms []Platform) {
	Integrate(b)
	for _, p := range platforms {
		box := p.Box()
		if Overlaps(b.Box(), box) {
			ResolveCollision(b, box)
		}
	}
}

func (e *Engine) updatePlayer(s *State, c core.Controls, deltas []core.Vec2) {
	p := &s.Player
	stats := e.CharacterStats(p.Character)
	speed := stats.Speed
	if c.Run {
		speed = stats.RunSpeed
	}

	switch {
	case c.Left && !c.Right:
		p.Vel.X = -speed
		p.Direction = DirLeft
		p.Moving = true
	case c.Right && !c.Left:
		p.Vel.X = speed
		p.Direction = DirRight
		p.Moving = true
	default:
		p.Vel.X = 0
		p.Moving = false
	}

	if c.Jump && e.canJump(p.Body) {
		p.Vel.Y = stats.JumpForce
		p.Jumping = true
		p.Grounded = false
	}

	ApplyGravity(&p.Body, e.cfg.World.Gravity)
	ApplyFriction(&p.Body, e.cfg.World)

	p.Grounded = OnGround(p.Body, s.Platforms, e.cfg.Player.GroundTolerance)
	rode := e.ride(&p.Body, s.Platforms, deltas, true)

	collide(&p.Body, s.Platforms)
	e.settle(&p.Body, s.Platforms, rode)
	KeepInBounds(&p.Body, e.cfg.World)

	p.Grounded = OnGround(p.Body, s.Platforms, e.cfg.Player.GroundTolerance)
	if p.Grounded {
		p.Jumping = false
	}
}

// canJump allows a jump from the ground or, inside the coyote window, while
// vertical speed is still small.
func (e *Engine) canJump(b Body) bool {
	if b.Grounded {
		return true
	}
	coyote := e.cfg.Player.CoyoteVelocity
	return coyote > 0 && math.Abs(b.Vel.Y) < coyote
}

func (e *Engine) updateEnemies(s *State, deltas []core.Vec2) {
	tol := e.cfg.Player.GroundTolerance
	limit := e.cfg.World.Height + e.cfg.Rules.EnemyFallMargin

	alive := s.Enemies[:0]
	for i := range s.Enemies {
		en := s.Enemies[i]
		if e.shouldTurn(en, s.Platforms) {
			en.Direction = en.Direction.Reverse()
		}
		en.Vel.X = en.Direction.Sign() * en.Speed

		ApplyGravity(&en.Body, e.cfg.World.Gravity)
		en.Grounded = OnGround(en.Body, s.Platforms, tol)
		rode := e.ride(&en.Body, s.Platforms, deltas, false)

		collide(&en.Body, s.Platforms)
		e.settle(&en.Body, s.Platforms, rode)
		en.Grounded = OnGround(en.Body, s.Platforms, tol)

		if en.Pos.Y > limit {
			en.Health = 0
		}
		if en.Health > 0 {
			alive = append(alive, en)
		}
	}
	s.Enemies = alive
}

// shouldTurn looks ahead of the enemy by speed plus a margin. A grounded enemy
// turns at a ledge; any enemy turns at a wall made by a static platform.
func (e *Engine) shouldTurn(en Enemy, platforms []Platform) bool {
	rules := e.cfg.Rules
	reach := en.Speed + rules.LookAheadMargin

	if en.Grounded {
		edge := en.Pos.X - reach
		if en.Direction == DirRight {
			edge = en.Pos.X + en.Size.W + reach
		}
		feet := en.Feet()
		supported := false
		for _, p := range platforms {
			if edge >= p.Pos.X && edge <= p.Pos.X+p.Size.W &&
				feet >= p.Pos.Y-rules.LedgeProbeAbove && feet <= p.Pos.Y+rules.LedgeProbeBelow {
				supported = true
				break
			}
		}
		if !supported {
			return true
		}
	}

	ahead := en.Box()
	ahead.X += en.Direction.Sign() * reach
	for _, p := range platforms {
		if p.Kind == PlatformMoving {
			continue
		}
		if ahead.Overlaps(p.Box()) {
			return true
		}
	}
	return false
}

func (e *Engine) collect(s *State, ev *events) {
	p := &s.Player
	box := p.Box()
	remaining := s.Collectibles[:0]
	for _, c := range s.Collectibles {
		if !Overlaps(box, c.Box()) {
			remaining = append(remaining, c)
			continue
		}
		s.Score += c.Value
		switch c.Kind {
		case CollectibleCoin:
			s.Stats.CoinsCollected++
			ev.add(EventCoin, c.ID, c.Value)
		case CollectiblePowerUp:
			e.applyPowerUp(p, c.PowerUp)
			ev.add(EventPowerUp, c.ID, c.Value)
		default:
			panic(fmt.Sprintf("platformer: unknown collectible kind %d", int(c.Kind)))
		}
	}
	s.Collectibles = remaining
}

// applyPowerUp stores the power-up and applies its immediate effect.
func (e *Engine) applyPowerUp(p *Player, pu PowerUp) {
	switch pu {
	case PowerUpNone:
		return
	case PowerUpMushroom:
		limit := e.CharacterStats(p.Character).MaxHealth + e.cfg.Player.HealthOverflow
		p.Health = core.Min(p.Health+1, limit)
	case PowerUpFireflower, PowerUpStar:
	default:
		panic(fmt.Sprintf("platformer: unknown power-up %d", int(pu)))
	}
	p.PowerUp = pu
}

// combat resolves player/enemy contact and reports whether the player was hit.
// Stomps are judged against the player's velocity before any bounce this tick.
func (e *Engine) combat(s *State, ev *events) bool {
	p := &s.Player
	descending := p.Vel.Y > 0
	box := p.Box()
	hit := false

	remaining := s.Enemies[:0]
	for _, en := range s.Enemies {
		if !Overlaps(box, en.Box()) {
			remaining = append(remaining, en)
			continue
		}
		if descending && p.Pos.Y < en.Pos.Y {
			points := e.enemyStats(en.Kind).Points
			s.Score += points
			s.Stats.EnemiesDefeated++
			p.Vel.Y = e.cfg.Player.StompBounce
			ev.add(EventStomp, en.ID, points)
			continue
		}
		if p.PowerUp != PowerUpStar {
			hit = true
		}
		remaining = append(remaining, en)
	}
	s.Enemies = remaining
	return hit
}

func (e *Engine) damage(s *State, ev *events) {
	s.Player.Health = core.Max(0, s.Player.Health-1)
	ev.add(EventHit, s.Player.ID, 0)
	if s.Player.Health == 0 {
		e.loseLife(s, ev)
	}
}

// loseLife takes a life and either ends the run or respawns the player.
func (e *Engine) loseLife(s *State, ev *events) {
	if s.Lives <= 0 {
		return
	}
	s.Lives--
	ev.add(EventLifeLost, s.Player.ID, 0)
	if s.Lives == 0 {
		s.Status = StatusGameOver
		ev.add(EventGameOver, "", s.Score)
		return
	}
	e.respawnPlayer(s)
	if e.cfg.Rules.ClearPowerUpOnRespawn {
		s.Player.PowerUp = PowerUpNone
	}
}

func (e *Engine) updateCamera(s *State) {
	w := e.cfg.World
	cam := e.cfg.Camera
	target := core.Vec2{
		X: s.Player.Pos.X - w.Width/2,
		Y: math.Max(0, s.Player.Pos.Y-w.Height*cam.VerticalBias),
	}
	s.Camera = s.Camera.Add(target.Sub(s.Camera).Scale(cam.Smoothing))
	s.Camera.X = math.Max(0, s.Camera.X)
	s.Camera.Y = core.ClampF(s.Camera.Y, 0, cam.MaxY)
}

func (e *Engine) checkCompletion(s *State, ev *events) {
	if s.Status != StatusPlaying {
		return
	}
	if s.Player.Pos.X <= e.EndX(s.Level) {
		return
	}
	sc := e.cfg.Scores
	bonus := sc.LevelComplete + int(math.Floor(s.TimeRemaining))*sc.TimeBonus
	s.Score += bonus
	s.Status = StatusLevelComplete
	s.Stats.LevelsCompleted++
	ev.add(EventLevelComplete, "", bonus)
}

func (e *Engine) updateTimer(s *State, ev *events) {
	s.TimeRemaining = math.Max(0, s.TimeRemaining-e.cfg.Rules.TickSeconds)
	if s.TimeRemaining > 0 || s.Status == StatusGameOver {
		return
	}
	s.Status = StatusGameOver
	ev.add(EventTimeUp, "", 0)
	ev.add(EventGameOver, "", s.Score)
}

func (e *Engine) checkFall(s *State, ev *events) {
	if s.Status != StatusPlaying {
		return
	}
	p := s.Player
	fell := p.Pos.Y > e.cfg.World.Height+e.cfg.Rules.FallMargin
	strayed := p.Pos.X < -e.cfg.Rules.LeftMargin
	if !fell && !strayed {
		return
	}
	e.loseLife(s, ev)
	if s.Status == StatusPlaying {
		s.Camera = core.Vec2{}
	}
}
