package platformer

import (
	"math"

	"github.com/vovakirdan/superdudu/internal/config"
	"github.com/vovakirdan/superdudu/internal/core"
)

// probeEpsilon absorbs float drift when comparing feet against a platform top.
const probeEpsilon = 1e-6

// Side indicates which face of the stationary box the moving entity hit.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// Overlaps is the AABB test used for every entity pair.
func Overlaps(a, b core.Box) bool {
	return a.Overlaps(b)
}

// CollisionSide classifies a collision between a moving body and a stationary box.
// The axis with the smaller penetration wins; equal penetrations resolve vertically.
// The moving body's velocity sign on the winning axis picks the face. With zero
// velocity on that axis the box centres decide.
func CollisionSide(moving Body, stationary core.Box) Side {
	m := moving.Box()
	if !m.Overlaps(stationary) {
		return SideNone
	}

	overlapX := math.Min(m.Right()-stationary.X, stationary.Right()-m.X)
	overlapY := math.Min(m.Bottom()-stationary.Y, stationary.Bottom()-m.Y)

	if overlapX < overlapY {
		switch {
		case moving.Vel.X > 0:
			return SideLeft
		case moving.Vel.X < 0:
			return SideRight
		case m.Center().X <= stationary.Center().X:
			return SideLeft
		default:
			return SideRight
		}
	}

	switch {
	case moving.Vel.Y > 0:
		return SideTop
	case moving.Vel.Y < 0:
		return SideBottom
	case m.Center().Y <= stationary.Center().Y:
		return SideTop
	default:
		return SideBottom
	}
}

// ApplyGravity accelerates an airborne body downward.
func ApplyGravity(b *Body, gravity float64) {
	if !b.Grounded {
		b.Vel.Y += gravity
	}
}

// ApplyFriction damps horizontal velocity; grounded friction is the ground factor.
func ApplyFriction(b *Body, w config.World) {
	if b.Grounded {
		b.Vel.X *= w.GroundFriction
	} else {
		b.Vel.X *= w.AirFriction
	}
}

// Integrate advances position by velocity.
func Integrate(b *Body) {
	b.Pos = b.Pos.Add(b.Vel)
}

// ResolveCollision pushes b out of the box along the penetration axis and
// zeroes velocity on that axis. A top hit grounds the body.
func ResolveCollision(b *Body, box core.Box) Side {
	side := CollisionSide(*b, box)
	switch side {
	case SideTop:
		b.Pos.Y = box.Y - b.Size.H
		b.Vel.Y = 0
		b.Grounded = true
	case SideBottom:
		b.Pos.Y = box.Bottom()
		b.Vel.Y = 0
	case SideLeft:
		b.Pos.X = box.X - b.Size.W
		b.Vel.X = 0
	case SideRight:
		b.Pos.X = box.Right()
		b.Vel.X = 0
	case SideNone:
	}
	return side
}

// KeepInBounds clamps x to the scrollable world and y to the soft floor.
// Falling to the soft floor is a death condition handled by the simulation.
func KeepInBounds(b *Body, w config.World) {
	if b.Pos.X < 0 {
		b.Pos.X = 0
		b.Vel.X = 0
	}
	if maxX := w.MaxX(); b.Pos.X+b.Size.W > maxX {
		b.Pos.X = maxX - b.Size.W
		b.Vel.X = 0
	}
	if floor := w.SoftFloor(); b.Pos.Y > floor {
		b.Pos.Y = floor
		b.Vel.Y = 0
	}
}

// restsOn reports whether b's feet lie within tol below the top of box and
// the horizontal ranges overlap.
func restsOn(b Body, box core.Box, tol float64) bool {
	if b.Pos.X+b.Size.W <= box.X || b.Pos.X >= box.Right() {
		return false
	}
	feet := b.Feet()
	return feet >= box.Y-probeEpsilon && feet <= box.Y+tol
}

// OnGround is the ground probe. Rising bodies are never grounded.
func OnGround(b Body, platforms []Platform, tol float64) bool {
	if b.Vel.Y < 0 {
		return false
	}
	for _, p := range platforms {
		if restsOn(b, p.Box(), tol) {
			return true
		}
	}
	return false
}
