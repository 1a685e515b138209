// Package loop runs the game simulation: the session state machine and the
// fixed-step update that moves, collides, spawns and scores every entity.
package loop

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/vectoroids/internal/loop/config"
	"github.com/tomz197/vectoroids/internal/object"
	"github.com/tomz197/vectoroids/internal/physics"
)

// Game owns the session and every entity. Time is counted in ticks; each
// call to Advance is one tick. A Game is not safe for concurrent use.
type Game struct {
	session Session
	world   World
	ids     object.IDs
	rng     physics.Rand
	logger  *log.Logger

	now            int64
	respawnAt      int64
	respawnPending bool
	stopped        bool

	events []Event
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGame creates a game on the title screen. A zero screen uses the default
// world size; a nil rng uses a time-seeded source.
func NewGame(screen object.Screen, rng physics.Rand, opts ...Option) *Game {
	if screen.Width <= 0 || screen.Height <= 0 {
		screen = object.Screen{Width: config.WorldWidth, Height: config.WorldHeight}
	}
	if rng == nil {
		rng = physics.NewRand(0)
	}
	g := &Game{
		session: Session{
			Lives:  config.InitialLives,
			Level:  config.InitialLevel,
			Status: StatusMenu,
			Screen: screen,
		},
		rng:    rng,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Session returns a copy of the current score, lives, level and status.
func (g *Game) Session() Session {
	return g.session
}

// Now returns the current tick.
func (g *Game) Now() int64 {
	return g.now
}

// RespawnPending reports whether a new ship is scheduled and at which tick.
func (g *Game) RespawnPending() (int64, bool) {
	return g.respawnAt, g.respawnPending
}

// Stop cancels any pending respawn and freezes the game until the next
// StartOrRestart. Call it when the host shuts down.
func (g *Game) Stop() {
	g.respawnPending = false
	g.stopped = true
}
