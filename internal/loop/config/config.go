// Package config centralizes all tunable game parameters.
// Every duration is expressed in simulation ticks; the game advances one tick per frame.
package config

import "time"

// World dimensions in logical units. Rendering scales to fit the terminal.
const (
	WorldWidth  = 800
	WorldHeight = 600
)

// Tick rate
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Ship
const (
	ShipRadius    = 20.0
	ShipThrust    = 0.15
	ShipTurnSpeed = 0.08 // radians per tick
	ShipFriction  = 0.99

	// Chance per thrusting tick of a thrust particle and of a thrust sound cue.
	ThrustParticleChance = 0.5
	ThrustCueChance      = 0.2
)

// Bullets
const (
	BulletSpeed         = 7.0
	BulletRadius        = 2.0
	BulletLifetimeTicks = 60
	BulletCooldownTicks = 15
)

// Asteroids
const (
	AsteroidSpeedBase   = 1.5
	AsteroidRadiusLarge = 40.0
	AsteroidRadiusMed   = 20.0
	AsteroidRadiusSmall = 10.0
	AsteroidChildren    = 2
)

// Particles
const (
	ParticleLifeTicks       = 30
	ParticleRadius          = 1.0
	ParticleMaxSpeed        = 3.0
	ThrustParticleLifeTicks = 10
	AsteroidBurstParticles  = 10
	ShipBurstParticles      = 30
)

// Scoring
const (
	ScoreLargeAsteroid  = 20
	ScoreMediumAsteroid = 50
	ScoreSmallAsteroid  = 100
)

// Player
const (
	InitialLives         = 3
	InvulnerabilityTicks = 180
	RespawnDelayTicks    = 60
	BlinkHalfPeriodTicks = 6
	MaxUsernameLength    = 16 // Maximum display length for player usernames
)

// Levels
const (
	InitialLevel       = 1
	WaveBaseAsteroids  = 2 // a level spawns WaveBaseAsteroids + level large asteroids
	SafeZoneHalfExtent = 200.0
)

// Terminal limits. Larger terminals are rendered into a centered box.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 60
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = TickRate
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)
