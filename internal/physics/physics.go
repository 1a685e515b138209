// Package physics provides vectors, collision detection and screen wrapping.
package physics

import "math"

// Vec2 is a 2D position or velocity.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Heading returns the unit vector pointing at angle (radians).
func Heading(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Rotate returns v rotated by angle around the origin.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap. Touching circles
// (distance exactly equal to the sum of radii) do not overlap.
func CirclesOverlap(a Vec2, ar float64, b Vec2, br float64) bool {
	minDist := ar + br
	return DistanceSquared(a, b) < minDist*minDist
}

// Wrap moves a point that left [0,width]×[0,height] to the opposite edge.
// Points exactly on an edge stay where they are.
func Wrap(p *Vec2, width, height float64) {
	WrapMargin(p, width, height, 0)
}

// WrapMargin is Wrap with the boundary pushed out by margin on every side,
// so the point only wraps once it is fully off-screen.
func WrapMargin(p *Vec2, width, height, margin float64) {
	if p.X < -margin {
		p.X = width + margin
	} else if p.X > width+margin {
		p.X = -margin
	}
	if p.Y < -margin {
		p.Y = height + margin
	} else if p.Y > height+margin {
		p.Y = -margin
	}
}
