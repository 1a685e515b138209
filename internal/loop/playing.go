package loop

import (
	"github.com/tomz197/vectoroids/internal/input"
	"github.com/tomz197/vectoroids/internal/loop/config"
	"github.com/tomz197/vectoroids/internal/object"
)

// Advance runs one simulation tick with the given controls and returns the
// events it produced. Outside of play it does nothing and returns nil.
// The returned slice is reused by the next call.
func (g *Game) Advance(controls input.Controls) []Event {
	if g.stopped || g.session.Status != StatusPlaying {
		return nil
	}
	g.now++
	g.events = g.events[:0]

	g.respawnIfDue()
	if g.session.Status != StatusPlaying {
		return g.events
	}

	g.updateShip(controls)
	g.updateBullets()
	g.updateAsteroids()
	g.updateParticles()

	g.checkBulletAsteroidCollisions()
	g.world.FlushSpawned()
	g.checkShipCollision()

	g.world.removeDead()
	g.levelUpIfCleared()

	return g.events
}

// updateShip steers, moves and fires the ship.
func (g *Game) updateShip(controls input.Controls) {
	s := g.world.Ship
	if s == nil || s.IsDestroyed() {
		return
	}

	s.Steer(controls.TurnLeft, controls.TurnRight, controls.Thrust)
	if s.Thrusting {
		if g.rng.Float64() < config.ThrustParticleChance {
			g.world.Particles = object.SpawnThrust(g.world.Particles, &g.ids, g.rng, s)
		}
		if g.rng.Float64() < config.ThrustCueChance {
			g.emit(Event{Kind: EventThrust})
		}
	}

	s.Integrate(g.session.Screen)

	if controls.Fire && s.CanFire(g.now) {
		g.world.Bullets = append(g.world.Bullets, object.NewBullet(g.ids.Next(), s.Nose(), s.Angle))
		s.LastShotAt = g.now
		g.emit(Event{Kind: EventShoot})
	}
}

func (g *Game) updateBullets() {
	for _, b := range g.world.Bullets {
		b.Step(g.session.Screen)
	}
}

func (g *Game) updateAsteroids() {
	for _, a := range g.world.Asteroids {
		a.Step(g.session.Screen)
	}
}

func (g *Game) updateParticles() {
	for _, p := range g.world.Particles {
		p.Step()
	}
}
