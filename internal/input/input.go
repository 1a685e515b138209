// Package input turns raw key presses into per-frame control snapshots.
package input

import (
	"time"
)

// Control is a logical key the game reacts to.
type Control int

const (
	TurnLeft Control = iota
	TurnRight
	Thrust
	Fire
	Start // start or restart from the title and game-over screens
	Quit
	numControls
)

func (c Control) String() string {
	switch c {
	case TurnLeft:
		return "turn-left"
	case TurnRight:
		return "turn-right"
	case Thrust:
		return "thrust"
	case Fire:
		return "fire"
	case Start:
		return "start"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Controls is the set of ship controls held during one tick.
type Controls struct {
	TurnLeft  bool
	TurnRight bool
	Thrust    bool
	Fire      bool
}

// Input represents the current frame's input state.
type Input struct {
	Controls
	Start bool
	Quit  bool

	// Active is set when any byte arrived this frame, known key or not.
	Active bool
}

// Held reports whether control c is down in this snapshot.
func (in Input) Held(c Control) bool {
	switch c {
	case TurnLeft:
		return in.TurnLeft
	case TurnRight:
		return in.TurnRight
	case Thrust:
		return in.Thrust
	case Fire:
		return in.Fire
	case Start:
		return in.Start
	case Quit:
		return in.Quit
	}
	return false
}

// Collector tracks which controls are held. A press marks a control down
// until hold elapses or a Release arrives; the latest event for a control wins.
// Hosts with real key-up events pass a zero hold, so presses last until released.
// Collector is not safe for concurrent use; feed it from the frame loop.
type Collector struct {
	hold    time.Duration
	pressed [numControls]time.Time
	down    [numControls]bool
}

// NewCollector creates a collector. hold <= 0 disables expiry.
func NewCollector(hold time.Duration) *Collector {
	return &Collector{hold: hold}
}

// Press records a key-down for c at time at.
func (c *Collector) Press(ctrl Control, at time.Time) {
	if ctrl < 0 || ctrl >= numControls {
		return
	}
	c.pressed[ctrl] = at
	c.down[ctrl] = true
}

// Release records a key-up for c.
func (c *Collector) Release(ctrl Control) {
	if ctrl < 0 || ctrl >= numControls {
		return
	}
	c.down[ctrl] = false
}

// Set is Press or Release depending on down.
func (c *Collector) Set(ctrl Control, down bool, at time.Time) {
	if down {
		c.Press(ctrl, at)
	} else {
		c.Release(ctrl)
	}
}

// Reset releases every control.
func (c *Collector) Reset() {
	c.down = [numControls]bool{}
}

// Snapshot returns the controls held at time now.
func (c *Collector) Snapshot(now time.Time) Input {
	held := func(ctrl Control) bool {
		if !c.down[ctrl] {
			return false
		}
		if c.hold <= 0 {
			return true
		}
		return now.Sub(c.pressed[ctrl]) < c.hold
	}
	return Input{
		Controls: Controls{
			TurnLeft:  held(TurnLeft),
			TurnRight: held(TurnRight),
			Thrust:    held(Thrust),
			Fire:      held(Fire),
		},
		Start: held(Start),
		Quit:  held(Quit),
	}
}
