package client

import (
	"time"

	"github.com/tomz197/vectoroids/internal/input"
	"github.com/tomz197/vectoroids/internal/loop"
)

// restartDelay keeps a held fire key from skipping the game-over screen.
const restartDelay = time.Second

// ClientState holds per-connection state that lives outside the simulation:
// overlays, timers and what was shown on the previous frame.
type ClientState struct {
	Input   input.Input
	Running bool // Client loop running

	lastInput  time.Time // Last frame with any key activity
	isInactive bool      // Whether the client is in inactive warning state

	shutdown   bool      // Server announced a shutdown
	shutdownAt time.Time // When the client disconnects itself

	gameOverAt time.Time   // When the current game-over screen appeared
	status     loop.Status // Status seen on the last update
	reported   loop.Session

	// Previous frame's overlay, to clear the terminal on transitions.
	prevStatus  loop.Status
	wasInactive bool
	wasShutdown bool
	drawnOnce   bool
}

// NewClientState creates a new initialized client state.
func NewClientState(now time.Time) *ClientState {
	return &ClientState{
		Running:   true,
		lastInput: now,
		status:    loop.StatusMenu,
	}
}

// restartReady reports whether the game-over screen has been up long enough
// to accept a restart.
func (s *ClientState) restartReady(now time.Time) bool {
	return now.Sub(s.gameOverAt) >= restartDelay
}

// overlayChanged reports whether the overlay differs from the previous frame
// and records the current one.
func (s *ClientState) overlayChanged(status loop.Status) bool {
	changed := !s.drawnOnce ||
		status != s.prevStatus ||
		s.isInactive != s.wasInactive ||
		s.shutdown != s.wasShutdown
	s.drawnOnce = true
	s.prevStatus = status
	s.wasInactive = s.isInactive
	s.wasShutdown = s.shutdown
	return changed
}
