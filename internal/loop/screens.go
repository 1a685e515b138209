package loop

import (
	"github.com/tomz197/vectoroids/internal/loop/config"
	"github.com/tomz197/vectoroids/internal/object"
)

// StartOrRestart begins a new game from any phase: score, lives and level are
// reset, every entity is cleared, a ship appears at the center and the first
// wave spawns. A pending respawn from the previous game is cancelled.
func (g *Game) StartOrRestart() {
	g.world.Clear()
	g.respawnPending = false
	g.stopped = false

	g.session.Score = 0
	g.session.Lives = config.InitialLives
	g.session.Level = config.InitialLevel
	g.session.Status = StatusPlaying

	g.world.Ship = object.NewShip(g.ids.Next(), g.session.Screen.Center(), g.now, 0)
	g.spawnWave()

	g.logger.Info("game started", "asteroids", len(g.world.Asteroids))
}

// spawnWave adds 2 + level large asteroids outside the center safe zone.
func (g *Game) spawnWave() {
	count := config.WaveBaseAsteroids + g.session.Level
	g.world.Asteroids = object.SpawnWave(g.world.Asteroids, &g.ids, g.rng, g.session.Screen, count, config.SafeZoneHalfExtent)
}

// scheduleRespawn arranges for a new ship after the respawn delay.
func (g *Game) scheduleRespawn() {
	g.respawnAt = g.now + config.RespawnDelayTicks
	g.respawnPending = true
}

// respawnIfDue places a protected ship at the center once the delay elapses.
func (g *Game) respawnIfDue() {
	if !g.respawnPending || g.now < g.respawnAt {
		return
	}
	g.respawnPending = false

	if g.session.Lives <= 0 {
		g.gameOver()
		return
	}
	g.world.Ship = object.NewShip(g.ids.Next(), g.session.Screen.Center(), g.now, config.InvulnerabilityTicks)
	g.emit(Event{Kind: EventRespawn})
	g.logger.Debug("ship respawned", "lives", g.session.Lives)
}

// gameOver ends the session. Entities stay in place for the game-over screen.
func (g *Game) gameOver() {
	g.session.Status = StatusGameOver
	g.respawnPending = false
	g.emit(Event{Kind: EventGameOver})
	g.logger.Info("game over", "score", g.session.Score, "level", g.session.Level)
}

// levelUpIfCleared starts the next wave once every asteroid is destroyed.
func (g *Game) levelUpIfCleared() {
	if g.session.Status != StatusPlaying || len(g.world.Asteroids) > 0 {
		return
	}
	g.session.Level++
	g.spawnWave()
	g.emit(Event{Kind: EventLevelUp, Level: g.session.Level})
	g.logger.Debug("level up", "level", g.session.Level, "asteroids", len(g.world.Asteroids))
}
