package object

import (
	"math"

	"github.com/tomz197/vectoroids/internal/physics"
)

// maxSpawnAttempts bounds the rejection sampling for one asteroid. A safe zone
// that covers the whole screen falls back to the last candidate.
const maxSpawnAttempts = 1000

// SpawnWave appends count large asteroids at random positions, avoiding the
// axis-aligned box of half-extent safeHalf around the screen center.
func SpawnWave(dst []*Asteroid, ids *IDs, r physics.Rand, screen Screen, count int, safeHalf float64) []*Asteroid {
	for range count {
		pos := SafeSpawnPoint(r, screen, safeHalf)
		dst = append(dst, NewAsteroid(ids.Next(), r, pos, AsteroidLarge))
	}
	return dst
}

// SafeSpawnPoint picks a uniform point on screen outside the center safe zone.
func SafeSpawnPoint(r physics.Rand, screen Screen, safeHalf float64) physics.Vec2 {
	center := screen.Center()
	var p physics.Vec2
	for range maxSpawnAttempts {
		p = physics.Vec2{X: r.Float64() * screen.Width, Y: r.Float64() * screen.Height}
		if !InSafeZone(p, center, safeHalf) {
			return p
		}
	}
	return p
}

// InSafeZone reports whether p lies strictly inside the box around center.
func InSafeZone(p, center physics.Vec2, half float64) bool {
	return math.Abs(p.X-center.X) < half && math.Abs(p.Y-center.Y) < half
}
