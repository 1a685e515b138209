package loop

import (
	"github.com/tomz197/vectoroids/internal/object"
)

// Status represents the current game phase.
type Status int

const (
	StatusMenu     Status = iota // Title screen
	StatusPlaying                // Active gameplay
	StatusGameOver               // Lives exhausted, show restart prompt
)

func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game-over"
	}
	return "unknown"
}

// Session holds the player's progress and the playfield size.
type Session struct {
	Score  int
	Lives  int
	Level  int
	Status Status
	Screen object.Screen
}

// World holds every live entity. The ship is nil while the player is dead.
type World struct {
	Ship      *object.Ship
	Bullets   []*object.Bullet
	Asteroids []*object.Asteroid
	Particles []*object.Particle

	spawned []*object.Asteroid // fragments to add after the bullet pass
}

// Spawn queues an asteroid to be added after the current collision pass.
func (w *World) Spawn(a ...*object.Asteroid) {
	w.spawned = append(w.spawned, a...)
}

// FlushSpawned adds all queued asteroids to the world and clears the queue.
func (w *World) FlushSpawned() {
	w.Asteroids = append(w.Asteroids, w.spawned...)
	clear(w.spawned)
	w.spawned = w.spawned[:0]
}

// Clear removes every entity, returning particles to their pool.
func (w *World) Clear() {
	for _, p := range w.Particles {
		p.Release()
	}
	w.Ship = nil
	clear(w.Bullets)
	w.Bullets = w.Bullets[:0]
	clear(w.Asteroids)
	w.Asteroids = w.Asteroids[:0]
	clear(w.Particles)
	w.Particles = w.Particles[:0]
	clear(w.spawned)
	w.spawned = w.spawned[:0]
}

// removeDead drops every entity marked dead, reusing the backing arrays.
func (w *World) removeDead() {
	if w.Ship != nil && w.Ship.IsDestroyed() {
		w.Ship = nil
	}

	bullets := w.Bullets[:0]
	for _, b := range w.Bullets {
		if !b.IsDestroyed() {
			bullets = append(bullets, b)
		}
	}
	clear(w.Bullets[len(bullets):])
	w.Bullets = bullets

	asteroids := w.Asteroids[:0]
	for _, a := range w.Asteroids {
		if !a.IsDestroyed() {
			asteroids = append(asteroids, a)
		}
	}
	clear(w.Asteroids[len(asteroids):])
	w.Asteroids = asteroids

	particles := w.Particles[:0]
	for _, p := range w.Particles {
		if p.IsDestroyed() {
			p.Release()
			continue
		}
		particles = append(particles, p)
	}
	clear(w.Particles[len(particles):])
	w.Particles = particles
}
