package loop

import "github.com/tomz197/vectoroids/internal/object"

// Snapshot is a read-only copy of the game for renderers. Asteroid
// silhouettes are shared with the game; they never change after creation.
type Snapshot struct {
	Now       int64
	Session   Session
	Ship      object.Ship
	HasShip   bool
	Bullets   []object.Bullet
	Asteroids []object.Asteroid
	Particles []object.Particle
}

// Snapshot returns a fresh copy of the current state.
func (g *Game) Snapshot() Snapshot {
	var s Snapshot
	g.SnapshotInto(&s)
	return s
}

// SnapshotInto copies the current state into dst, reusing its slices.
func (g *Game) SnapshotInto(dst *Snapshot) {
	dst.Now = g.now
	dst.Session = g.session

	dst.HasShip = g.world.Ship != nil
	if dst.HasShip {
		dst.Ship = *g.world.Ship
	} else {
		dst.Ship = object.Ship{}
	}

	dst.Bullets = dst.Bullets[:0]
	for _, b := range g.world.Bullets {
		dst.Bullets = append(dst.Bullets, *b)
	}
	dst.Asteroids = dst.Asteroids[:0]
	for _, a := range g.world.Asteroids {
		dst.Asteroids = append(dst.Asteroids, *a)
	}
	dst.Particles = dst.Particles[:0]
	for _, p := range g.world.Particles {
		dst.Particles = append(dst.Particles, *p)
	}
}
