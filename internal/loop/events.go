package loop

import "github.com/tomz197/vectoroids/internal/object"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventShoot         EventKind = iota + 1 // a bullet was fired
	EventThrust                             // engine noise, emitted on some thrusting ticks
	EventExplosion                          // see Event.Size
	EventScore                              // see Event.Points
	EventShipDestroyed                      // the ship hit an asteroid
	EventRespawn                            // a new ship appeared
	EventLevelUp                            // see Event.Level
	EventGameOver                           // lives exhausted
)

func (k EventKind) String() string {
	switch k {
	case EventShoot:
		return "shoot"
	case EventThrust:
		return "thrust"
	case EventExplosion:
		return "explosion"
	case EventScore:
		return "score"
	case EventShipDestroyed:
		return "ship-destroyed"
	case EventRespawn:
		return "respawn"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// ExplosionSize selects the explosion sound.
type ExplosionSize int

const (
	ExplosionSmall ExplosionSize = iota // asteroid destroyed
	ExplosionLarge                      // ship destroyed
)

func (s ExplosionSize) String() string {
	if s == ExplosionLarge {
		return "large"
	}
	return "small"
}

// Event is one cue for audio and overlays.
type Event struct {
	Kind   EventKind
	Size   ExplosionSize       // EventExplosion
	Points int                 // EventScore
	Level  int                 // EventLevelUp
	Target object.AsteroidSize // EventScore: size of the destroyed asteroid
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}
