package object

import (
	"github.com/tomz197/vectoroids/internal/loop/config"
	"github.com/tomz197/vectoroids/internal/physics"
)

// Bullet is a projectile fired by the ship.
type Bullet struct {
	Body
	Remaining int // ticks left before the bullet expires
}

// NewBullet creates a bullet at pos traveling along angle at BulletSpeed.
// Bullets do not inherit the shooter's velocity.
func NewBullet(id uint64, pos physics.Vec2, angle float64) *Bullet {
	return &Bullet{
		Body: Body{
			ID:     id,
			Pos:    pos,
			Vel:    physics.Heading(angle).Scale(config.BulletSpeed),
			Angle:  angle,
			Radius: config.BulletRadius,
		},
		Remaining: config.BulletLifetimeTicks,
	}
}

// Step moves the bullet, ages it and wraps it around the screen.
func (b *Bullet) Step(screen Screen) {
	b.Move()
	b.Remaining--
	if b.Remaining <= 0 {
		b.MarkDestroyed()
	}
	screen.WrapPosition(&b.Pos)
}
