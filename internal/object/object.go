// Package object defines the game entities and how each one moves.
package object

import (
	"github.com/tomz197/vectoroids/internal/physics"
)

// Body is the kinematic state shared by every entity.
type Body struct {
	ID     uint64
	Pos    physics.Vec2
	Vel    physics.Vec2
	Angle  float64 // radians, 0 = pointing right, increases clockwise on screen
	Radius float64 // collision radius, always > 0
	Dead   bool    // marked for removal at the end of the tick
}

// Move applies one tick of velocity.
func (b *Body) Move() {
	b.Pos = b.Pos.Add(b.Vel)
}

// MarkDestroyed marks the entity for removal (implements Destructible).
func (b *Body) MarkDestroyed() {
	b.Dead = true
}

// IsDestroyed returns true if the entity is marked for removal (implements Destructible).
func (b *Body) IsDestroyed() bool {
	return b.Dead
}

// Overlaps reports whether two bodies' collision circles intersect.
func (b *Body) Overlaps(o *Body) bool {
	return physics.CirclesOverlap(b.Pos, b.Radius, o.Pos, o.Radius)
}

// Destructible is implemented by entities that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on next update cycle.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// IDs hands out monotonically increasing entity identifiers.
type IDs struct {
	next uint64
}

// Next returns a fresh identifier. The first one is 1.
func (g *IDs) Next() uint64 {
	g.next++
	return g.next
}

// Screen is the playfield size in world units.
type Screen struct {
	Width  float64
	Height float64
}

// Center returns the middle of the playfield.
func (s Screen) Center() physics.Vec2 {
	return physics.Vec2{X: s.Width / 2, Y: s.Height / 2}
}

// WrapPosition wraps p edge-to-edge around the playfield (Asteroids-style).
func (s Screen) WrapPosition(p *physics.Vec2) {
	physics.Wrap(p, s.Width, s.Height)
}

// WrapPositionMargin wraps p only after it is margin units past an edge.
func (s Screen) WrapPositionMargin(p *physics.Vec2, margin float64) {
	physics.WrapMargin(p, s.Width, s.Height, margin)
}

// ClampPositionMargin pulls p back to at most margin units past any edge.
func (s Screen) ClampPositionMargin(p *physics.Vec2, margin float64) {
	p.X = min(max(p.X, -margin), s.Width+margin)
	p.Y = min(max(p.Y, -margin), s.Height+margin)
}

// ShouldRenderBlink returns true if an entity protected through the given tick
// should be drawn at tick now. Unprotected entities are always drawn; protected
// ones alternate every halfPeriod ticks, starting hidden.
func ShouldRenderBlink(now, protectedUntil, halfPeriod int64) bool {
	if now > protectedUntil || halfPeriod <= 0 {
		return true
	}
	return (now/halfPeriod)%2 != 0
}
