package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/vectoroids/internal/loop"
)

const (
	sampleRate = beep.SampleRate(48000)
	masterGain = 0.3
)

// Speaker synthesizes cues on the local audio device.
type Speaker struct {
	mu     sync.Mutex
	logger *log.Logger
	ready  bool
	failed bool

	// swapped in tests
	initFn func(beep.SampleRate, int) error
	playFn func(...beep.Streamer)
}

// NewSpeaker creates a speaker. The device is opened on the first Resume.
func NewSpeaker(logger *log.Logger) *Speaker {
	return &Speaker{
		logger: logger,
		initFn: speaker.Init,
		playFn: speaker.Play,
	}
}

// Resume opens the audio device. A failure is logged once and the speaker
// stays silent.
func (s *Speaker) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready || s.failed {
		return
	}
	if err := s.initFn(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		s.failed = true
		if s.logger != nil {
			s.logger.Warn("audio disabled", "err", err)
		}
		return
	}
	s.ready = true
}

func (s *Speaker) Shoot()  { s.play(ShootTone) }
func (s *Speaker) Thrust() { s.play(ThrustTone) }

func (s *Speaker) Explosion(size loop.ExplosionSize) {
	if size == loop.ExplosionLarge {
		s.play(LargeExplosionTone)
		return
	}
	s.play(SmallExplosionTone)
}

func (s *Speaker) play(tone Tone) {
	s.mu.Lock()
	ready := s.ready
	s.mu.Unlock()
	if !ready {
		return
	}
	s.playFn(newVolume(NewSweep(tone, sampleRate), masterGain))
}
