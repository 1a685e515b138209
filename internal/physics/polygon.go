package physics

import "math"

// Silhouette vertex bounds and radius jitter.
const (
	SilhouetteMinVertices = 8
	SilhouetteMaxVertices = 12 // exclusive
	SilhouetteMinJitter   = 0.8
	SilhouetteMaxJitter   = 1.2
)

// Silhouette generates a jagged closed polygon around the origin.
// Vertices are evenly spaced in angle; each one's distance from the center is
// radius scaled by a random factor in [0.8, 1.2].
func Silhouette(r Rand, radius float64) []Vec2 {
	n := SilhouetteMinVertices + r.IntN(SilhouetteMaxVertices-SilhouetteMinVertices)
	points := make([]Vec2, n)
	for i := range n {
		angle := float64(i) / float64(n) * 2 * math.Pi
		dist := radius * RandomRange(r, SilhouetteMinJitter, SilhouetteMaxJitter)
		points[i] = Vec2{X: math.Cos(angle) * dist, Y: math.Sin(angle) * dist}
	}
	return points
}
