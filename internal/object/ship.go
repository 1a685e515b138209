package object

import (
	"math"

	"github.com/tomz197/vectoroids/internal/loop/config"
	"github.com/tomz197/vectoroids/internal/physics"
)

// Ship is the player-controlled spaceship.
type Ship struct {
	Body
	Thrusting         bool
	InvulnerableUntil int64 // tick until which collisions with asteroids are ignored
	LastShotAt        int64 // tick of the most recent shot
}

// NewShip creates a ship at pos, at rest and pointing up. The ship ignores
// asteroid collisions through tick now+grace (not at all for a zero grace)
// and may fire immediately.
func NewShip(id uint64, pos physics.Vec2, now, grace int64) *Ship {
	until := now + grace
	if grace <= 0 {
		until = now - 1
	}
	return &Ship{
		Body: Body{
			ID:     id,
			Pos:    pos,
			Angle:  -math.Pi / 2,
			Radius: config.ShipRadius,
		},
		InvulnerableUntil: until,
		LastShotAt:        now - config.BulletCooldownTicks - 1,
	}
}

// Heading returns the unit vector the ship is facing.
func (s *Ship) Heading() physics.Vec2 {
	return physics.Heading(s.Angle)
}

// Steer applies one tick of rotation and thrust.
func (s *Ship) Steer(left, right, thrust bool) {
	if left {
		s.Angle -= config.ShipTurnSpeed
	}
	if right {
		s.Angle += config.ShipTurnSpeed
	}
	s.Thrusting = thrust
	if thrust {
		s.Vel = s.Vel.Add(s.Heading().Scale(config.ShipThrust))
	}
}

// Integrate moves the ship, applies friction and wraps it around the screen.
func (s *Ship) Integrate(screen Screen) {
	s.Move()
	s.Vel = s.Vel.Scale(config.ShipFriction)
	screen.WrapPosition(&s.Pos)
}

// CanFire reports whether the cooldown since the last shot has strictly elapsed.
func (s *Ship) CanFire(now int64) bool {
	return now-s.LastShotAt > config.BulletCooldownTicks
}

// Nose returns the tip of the hull, where bullets spawn.
func (s *Ship) Nose() physics.Vec2 {
	return s.Pos.Add(s.Heading().Scale(s.Radius))
}

// Tail returns the back of the hull, where thrust particles spawn.
func (s *Ship) Tail() physics.Vec2 {
	return s.Pos.Add(s.Heading().Scale(-s.Radius))
}

// Invulnerable reports whether asteroid collisions are ignored at tick now.
func (s *Ship) Invulnerable(now int64) bool {
	return now <= s.InvulnerableUntil
}

// Visible reports whether the ship is drawn at tick now (blinks while protected).
func (s *Ship) Visible(now int64) bool {
	return ShouldRenderBlink(now, s.InvulnerableUntil, config.BlinkHalfPeriodTicks)
}

// Hull returns the four outline vertices in world coordinates:
// nose, left wing, notch, right wing.
func (s *Ship) Hull() [4]physics.Vec2 {
	r := s.Radius
	local := [4]physics.Vec2{
		{X: r, Y: 0},
		{X: -r, Y: 0.7 * r},
		{X: -0.6 * r, Y: 0},
		{X: -r, Y: -0.7 * r},
	}
	var out [4]physics.Vec2
	for i, p := range local {
		out[i] = s.Pos.Add(p.Rotate(s.Angle))
	}
	return out
}

// Flame returns the thrust flame segment in world coordinates. flicker in
// [0,1) lengthens the flame by up to 0.5 radius.
func (s *Ship) Flame(flicker float64) [2]physics.Vec2 {
	r := s.Radius
	start := physics.Vec2{X: -0.6 * r, Y: 0}
	end := physics.Vec2{X: -1.5*r - flicker*0.5*r, Y: 0}
	return [2]physics.Vec2{
		s.Pos.Add(start.Rotate(s.Angle)),
		s.Pos.Add(end.Rotate(s.Angle)),
	}
}
