package platformer

import (
	"testing"

	"github.com/vovakirdan/superdudu/internal/config"
	"github.com/vovakirdan/superdudu/internal/core"
)

func body(x, y, w, h, vx, vy float64) Body {
	return Body{Pos: core.V(x, y), Vel: core.V(vx, vy), Size: core.Size{W: w, H: h}}
}

func TestOverlapsTouchingEdges(t *testing.T) {
	a := core.Box{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    core.Box
		want bool
	}{
		{"inside", core.Box{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touch right edge", core.Box{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touch bottom edge", core.Box{X: 0, Y: 10, W: 5, H: 5}, false},
		{"corner overlap", core.Box{X: 9, Y: 9, W: 5, H: 5}, true},
		{"apart", core.Box{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(a, tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollisionSide(t *testing.T) {
	platform := core.Box{X: 100, Y: 100, W: 100, H: 20}
	tests := []struct {
		name   string
		moving Body
		want   Side
	}{
		{"landing on top", body(120, 70, 32, 32, 0, 3), SideTop},
		{"head bump from below", body(120, 118, 32, 32, 0, -3), SideBottom},
		{"walking into left face", body(70, 95, 32, 20, 4, 0), SideLeft},
		{"walking into right face", body(198, 95, 32, 20, -4, 0), SideRight},
		{"no overlap", body(0, 0, 10, 10, 1, 1), SideNone},
		{"zero velocity, centre above", body(120, 69, 32, 32, 0, 0), SideTop},
		{"zero velocity, centre below", body(120, 119, 32, 32, 0, 0), SideBottom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollisionSide(tt.moving, platform); got != tt.want {
				t.Errorf("CollisionSide = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollisionSideEqualOverlapIsVertical(t *testing.T) {
	// 2x2 penetration on both axes, moving down-right.
	moving := body(0, 0, 10, 10, 1, 1)
	stationary := core.Box{X: 8, Y: 8, W: 10, H: 10}
	if got := CollisionSide(moving, stationary); got != SideTop {
		t.Errorf("CollisionSide = %v, want top", got)
	}
}

func TestApplyGravitySkipsGrounded(t *testing.T) {
	b := body(0, 0, 10, 10, 0, 0)
	ApplyGravity(&b, 0.8)
	if b.Vel.Y != 0.8 {
		t.Errorf("airborne vy = %v, want 0.8", b.Vel.Y)
	}
	b.Grounded = true
	ApplyGravity(&b, 0.8)
	if b.Vel.Y != 0.8 {
		t.Errorf("grounded vy changed to %v", b.Vel.Y)
	}
}

func TestApplyFriction(t *testing.T) {
	w := config.DefaultPlatformer().World
	air := body(0, 0, 1, 1, 10, 0)
	ApplyFriction(&air, w)
	ground := body(0, 0, 1, 1, 10, 0)
	ground.Grounded = true
	ApplyFriction(&ground, w)

	if air.Vel.X != 10*w.AirFriction {
		t.Errorf("air vx = %v", air.Vel.X)
	}
	if ground.Vel.X != 10*w.GroundFriction {
		t.Errorf("ground vx = %v", ground.Vel.X)
	}
}

func TestResolveCollisionTopGrounds(t *testing.T) {
	b := body(120, 75, 32, 32, 0, 6)
	side := ResolveCollision(&b, core.Box{X: 100, Y: 100, W: 100, H: 20})
	if side != SideTop {
		t.Fatalf("side = %v, want top", side)
	}
	if b.Pos.Y != 68 || b.Vel.Y != 0 || !b.Grounded {
		t.Errorf("after resolve: y=%v vy=%v grounded=%v", b.Pos.Y, b.Vel.Y, b.Grounded)
	}
}

func TestResolveCollisionSides(t *testing.T) {
	box := core.Box{X: 100, Y: 100, W: 100, H: 20}

	left := body(70, 95, 32, 20, 4, 1)
	ResolveCollision(&left, box)
	if left.Pos.X != 68 || left.Vel.X != 0 || left.Vel.Y != 1 {
		t.Errorf("left: x=%v vx=%v vy=%v", left.Pos.X, left.Vel.X, left.Vel.Y)
	}

	below := body(120, 118, 32, 32, 0, -3)
	ResolveCollision(&below, box)
	if below.Pos.Y != 120 || below.Vel.Y != 0 || below.Grounded {
		t.Errorf("bottom: y=%v vy=%v grounded=%v", below.Pos.Y, below.Vel.Y, below.Grounded)
	}
}

func TestKeepInBounds(t *testing.T) {
	w := config.DefaultPlatformer().World

	b := body(-10, 0, 32, 32, -3, 0)
	KeepInBounds(&b, w)
	if b.Pos.X != 0 || b.Vel.X != 0 {
		t.Errorf("left clamp: x=%v vx=%v", b.Pos.X, b.Vel.X)
	}

	b = body(w.MaxX(), 0, 32, 32, 3, 0)
	KeepInBounds(&b, w)
	if b.Pos.X != w.MaxX()-32 {
		t.Errorf("right clamp: x=%v", b.Pos.X)
	}

	b = body(0, 5000, 32, 32, 0, 20)
	KeepInBounds(&b, w)
	if b.Pos.Y != w.SoftFloor() || b.Vel.Y != 0 {
		t.Errorf("floor clamp: y=%v vy=%v", b.Pos.Y, b.Vel.Y)
	}
}

func TestOnGround(t *testing.T) {
	platforms := []Platform{{Body: body(0, 100, 200, 20, 0, 0), Kind: PlatformGround}}
	tests := []struct {
		name string
		b    Body
		want bool
	}{
		{"resting", body(10, 68, 32, 32, 0, 0), true},
		{"within tolerance", body(10, 72, 32, 32, 0, 1), true},
		{"above surface", body(10, 60, 32, 32, 0, 0), false},
		{"too deep", body(10, 80, 32, 32, 0, 0), false},
		{"rising", body(10, 68, 32, 32, 0, -1), false},
		{"off the edge", body(200, 68, 32, 32, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OnGround(tt.b, platforms, 5); got != tt.want {
				t.Errorf("OnGround = %v, want %v", got, tt.want)
			}
		})
	}
}
