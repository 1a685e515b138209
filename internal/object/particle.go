package object

import (
	"math"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/vectoroids/internal/loop/config"
	"github.com/tomz197/vectoroids/internal/physics"
)

// Palette of the vector display.
var (
	ColorBackground = colorful.Color{R: 0, G: 0, B: 0}
	ColorVector     = colorful.Color{R: 0, G: 1, B: 0}     // #00ff00
	ColorThrust     = colorful.Color{R: 1, G: 0.6, B: 0}   // #ff9900
	ColorDanger     = colorful.Color{R: 1, G: 0.2, B: 0.2} // #ff3333
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect. It never collides and never wraps.
type Particle struct {
	Body
	Life    int // ticks remaining
	MaxLife int // initial life (for fade calculation)
	Color   colorful.Color
}

// NewParticle creates a single particle from the pool.
func NewParticle(id uint64, pos, vel physics.Vec2, life int, color colorful.Color) *Particle {
	p := particlePool.Get().(*Particle)
	*p = Particle{
		Body: Body{
			ID:     id,
			Pos:    pos,
			Vel:    vel,
			Radius: config.ParticleRadius,
		},
		Life:    life,
		MaxLife: life,
		Color:   color,
	}
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Step moves the particle and ages it.
func (p *Particle) Step() {
	p.Move()
	p.Life--
	if p.Life <= 0 {
		p.MarkDestroyed()
	}
}

// Alpha returns the remaining opacity in [0,1].
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(p.Life)/float64(p.MaxLife)))
}

// SpawnExplosion appends count particles bursting from pos in random
// directions at speeds up to ParticleMaxSpeed.
func SpawnExplosion(dst []*Particle, ids *IDs, r physics.Rand, pos physics.Vec2, count int, color colorful.Color) []*Particle {
	for range count {
		vel := physics.Heading(physics.RandomAngle(r)).Scale(r.Float64() * config.ParticleMaxSpeed)
		dst = append(dst, NewParticle(ids.Next(), pos, vel, config.ParticleLifeTicks, color))
	}
	return dst
}

// SpawnThrust appends one exhaust particle behind a thrusting ship.
func SpawnThrust(dst []*Particle, ids *IDs, r physics.Rand, s *Ship) []*Particle {
	vel := s.Heading().Scale(-2).Add(physics.Vec2{X: r.Float64() - 0.5, Y: r.Float64() - 0.5})
	return append(dst, NewParticle(ids.Next(), s.Tail(), vel, config.ThrustParticleLifeTicks, ColorThrust))
}
