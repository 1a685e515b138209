// Package audio plays short procedural sound cues for game events.
// Every Sink is fire-and-forget: failures degrade to silence and never reach
// the simulation.
package audio

import (
	"io"

	"github.com/tomz197/vectoroids/internal/loop"
)

// Sink receives sound cues.
type Sink interface {
	// Resume enables output. Cues before the first Resume are dropped.
	Resume()
	Shoot()
	Thrust()
	Explosion(size loop.ExplosionSize)
}

// Dispatch forwards the sound cues among events to sink.
func Dispatch(sink Sink, events []loop.Event) {
	for _, e := range events {
		switch e.Kind {
		case loop.EventShoot:
			sink.Shoot()
		case loop.EventThrust:
			sink.Thrust()
		case loop.EventExplosion:
			sink.Explosion(e.Size)
		}
	}
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Resume()                      {}
func (Nop) Shoot()                       {}
func (Nop) Thrust()                      {}
func (Nop) Explosion(loop.ExplosionSize) {}

// Bell rings the terminal bell for large explosions. Used where the game has
// no audio device of its own, such as SSH sessions.
type Bell struct {
	w       io.Writer
	resumed bool
}

// NewBell creates a bell that writes to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Resume() { b.resumed = true }
func (b *Bell) Shoot()  {}
func (b *Bell) Thrust() {}

func (b *Bell) Explosion(size loop.ExplosionSize) {
	if !b.resumed || size != loop.ExplosionLarge {
		return
	}
	_, _ = io.WriteString(b.w, "\a")
}
