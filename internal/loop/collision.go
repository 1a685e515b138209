package loop

import (
	"github.com/tomz197/vectoroids/internal/loop/config"
	"github.com/tomz197/vectoroids/internal/object"
)

// checkBulletAsteroidCollisions handles bullet hits on asteroids. Each bullet
// destroys at most one asteroid; fragments are queued and join the world
// after the pass.
func (g *Game) checkBulletAsteroidCollisions() {
	for _, b := range g.world.Bullets {
		if b.IsDestroyed() {
			continue
		}
		for _, a := range g.world.Asteroids {
			if a.IsDestroyed() {
				continue
			}
			if b.Overlaps(&a.Body) {
				b.MarkDestroyed()
				g.destroyAsteroid(a)
				break
			}
		}
	}
}

// destroyAsteroid scores, bursts and splits an asteroid.
func (g *Game) destroyAsteroid(a *object.Asteroid) {
	a.MarkDestroyed()

	points := a.Size.Points()
	g.session.Score += points
	g.emit(Event{Kind: EventScore, Points: points, Target: a.Size})

	g.world.Particles = object.SpawnExplosion(g.world.Particles, &g.ids, g.rng, a.Pos, config.AsteroidBurstParticles, object.ColorVector)
	g.emit(Event{Kind: EventExplosion, Size: ExplosionSmall})

	g.world.Spawn(a.Split(&g.ids, g.rng, g.session.Screen)...)
}

// checkShipCollision destroys the ship on its first overlap with an asteroid
// unless it is still invulnerable.
func (g *Game) checkShipCollision() {
	s := g.world.Ship
	if s == nil || s.IsDestroyed() || s.Invulnerable(g.now) {
		return
	}
	for _, a := range g.world.Asteroids {
		if a.IsDestroyed() {
			continue
		}
		if s.Overlaps(&a.Body) {
			g.destroyShip(s)
			return
		}
	}
}

// destroyShip costs a life and either schedules a respawn or ends the game.
func (g *Game) destroyShip(s *object.Ship) {
	s.MarkDestroyed()
	if g.session.Lives > 0 {
		g.session.Lives--
	}

	g.world.Particles = object.SpawnExplosion(g.world.Particles, &g.ids, g.rng, s.Pos, config.ShipBurstParticles, object.ColorDanger)
	g.emit(Event{Kind: EventExplosion, Size: ExplosionLarge})
	g.emit(Event{Kind: EventShipDestroyed})

	if g.session.Lives > 0 {
		g.scheduleRespawn()
		return
	}
	g.gameOver()
}
