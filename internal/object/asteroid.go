package object

import (
	"github.com/tomz197/vectoroids/internal/loop/config"
	"github.com/tomz197/vectoroids/internal/physics"
)

// AsteroidSize represents the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

// Radius returns the collision radius for the size category.
func (s AsteroidSize) Radius() float64 {
	switch s {
	case AsteroidLarge:
		return config.AsteroidRadiusLarge
	case AsteroidMedium:
		return config.AsteroidRadiusMed
	default:
		return config.AsteroidRadiusSmall
	}
}

// Points returns the score awarded for destroying an asteroid of this size.
// Smaller asteroids are worth more.
func (s AsteroidSize) Points() int {
	switch s {
	case AsteroidLarge:
		return config.ScoreLargeAsteroid
	case AsteroidMedium:
		return config.ScoreMediumAsteroid
	default:
		return config.ScoreSmallAsteroid
	}
}

// Smaller returns the next size down and false for the smallest size.
func (s AsteroidSize) Smaller() (AsteroidSize, bool) {
	if s <= AsteroidSmall {
		return 0, false
	}
	return s - 1, true
}

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidLarge:
		return "large"
	case AsteroidMedium:
		return "medium"
	case AsteroidSmall:
		return "small"
	}
	return "unknown"
}

// Asteroid is a destructible space rock. It drifts without spinning.
type Asteroid struct {
	Body
	Size       AsteroidSize
	Silhouette []physics.Vec2 // outline relative to the center, fixed at creation
}

// NewAsteroid creates an asteroid at pos with a random velocity and outline.
// Smaller asteroids move faster: each velocity component is uniform in
// ±AsteroidSpeedBase scaled by (4 - size).
func NewAsteroid(id uint64, r physics.Rand, pos physics.Vec2, size AsteroidSize) *Asteroid {
	speed := float64(4 - size)
	radius := size.Radius()
	return &Asteroid{
		Body: Body{
			ID:  id,
			Pos: pos,
			Vel: physics.Vec2{
				X: physics.RandomRange(r, -config.AsteroidSpeedBase, config.AsteroidSpeedBase) * speed,
				Y: physics.RandomRange(r, -config.AsteroidSpeedBase, config.AsteroidSpeedBase) * speed,
			},
			Radius: radius,
		},
		Size:       size,
		Silhouette: physics.Silhouette(r, radius),
	}
}

// Step moves the asteroid and wraps it once it is fully off-screen.
func (a *Asteroid) Step(screen Screen) {
	a.Move()
	screen.WrapPositionMargin(&a.Pos, a.Radius)
}

// Split returns the fragments of a destroyed asteroid: two of the next size
// down at the same position, or none for small asteroids. A parent partly past
// an edge leaves its fragments within their own, smaller wrap margin.
func (a *Asteroid) Split(ids *IDs, r physics.Rand, screen Screen) []*Asteroid {
	next, ok := a.Size.Smaller()
	if !ok {
		return nil
	}
	pos := a.Pos
	screen.ClampPositionMargin(&pos, next.Radius())
	children := make([]*Asteroid, config.AsteroidChildren)
	for i := range children {
		children[i] = NewAsteroid(ids.Next(), r, pos, next)
	}
	return children
}

// Outline returns the silhouette translated to world coordinates, appended to dst.
func (a *Asteroid) Outline(dst []physics.Vec2) []physics.Vec2 {
	for _, p := range a.Silhouette {
		dst = append(dst, a.Pos.Add(p))
	}
	return dst
}
