package input

import (
	"io"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals send no key-up, so holding a key relies on auto-repeat bytes
// arriving within this window. Taps shorter than a frame may be missed.
const keyHoldDuration = 60 * time.Millisecond

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	keys  *Collector
	close bool

	done     chan struct{} // closed by Close; the reader stops sending
	stopped  chan struct{} // closed when the reader goroutine returns
	stopOnce sync.Once
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine returns when r ends or, once Close is called, at its next send.
func StartStream(r io.Reader) *Stream {
	s := newStream()
	go func() {
		defer close(s.stopped)
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				select {
				case s.ch <- b:
				case <-s.done:
					return
				}
			}
			if err != nil {
				close(s.ch)
				return
			}
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		ch:      make(chan byte, 128),
		keys:    NewCollector(keyHoldDuration),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Close stops delivering input. Call it when the frame loop no longer drains
// the stream. A reader blocked in Read still exits when its source closes.
func (s *Stream) Close() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.close
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the controls held right now.
func ReadInput(s *Stream) Input {
	return s.read(time.Now())
}

// ResetKeyInput forgets every held key, e.g. when switching screens.
func ResetKeyInput(s *Stream) {
	s.keys.Reset()
}

func (s *Stream) read(now time.Time) Input {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.close = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	s.feed(buf, now)

	in := s.keys.Snapshot(now)
	in.Active = len(buf) > 0
	if s.close {
		in.Quit = true
	}
	return in
}

// feed parses the collected bytes and updates key state timestamps.
func (s *Stream) feed(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if ctrl, ok := arrowControl(buf[i+2]); ok {
				s.keys.Press(ctrl, now)
				i += 2
				continue
			}
		}

		if ctrl, ok := byteControl(b); ok {
			s.keys.Press(ctrl, now)
		}
	}
}

func arrowControl(code byte) (Control, bool) {
	switch code {
	case 'A':
		return Thrust, true
	case 'C':
		return TurnRight, true
	case 'D':
		return TurnLeft, true
	}
	return 0, false
}

func byteControl(b byte) (Control, bool) {
	switch b {
	case 'q', 'Q', '\x03':
		return Quit, true
	case 'a', 'A', 'j', 'J':
		return TurnLeft, true
	case 'd', 'D', 'l', 'L':
		return TurnRight, true
	case 'w', 'W', 'i', 'I':
		return Thrust, true
	case ' ':
		return Fire, true
	case '\n', '\r':
		return Start, true
	}
	return 0, false
}

// StartPressed reports whether in should start or restart a game:
// enter, or space (which doubles as fire).
func StartPressed(in Input) bool {
	return in.Start || in.Fire
}
