// Package render draws game snapshots as vector graphics.
package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/vectoroids/internal/draw"
	"github.com/tomz197/vectoroids/internal/loop"
	"github.com/tomz197/vectoroids/internal/object"
	"github.com/tomz197/vectoroids/internal/physics"
)

// Surface is what a Scene draws onto. *draw.Canvas implements it.
type Surface interface {
	Clear()
	DrawLine(p1, p2 draw.Point, col colorful.Color)
	DrawPolygon(points []draw.Point, col colorful.Color, filled bool)
	FillCircle(center draw.Point, r float64, col colorful.Color)
}

var _ Surface = (*draw.Canvas)(nil)

// Scene draws snapshots, reusing its buffers between frames.
type Scene struct {
	outline []physics.Vec2
	points  []draw.Point
}

// Draw clears s and draws every entity in snap: particles first, then
// asteroids, bullets and the ship on top.
func (sc *Scene) Draw(s Surface, snap *loop.Snapshot) {
	s.Clear()

	for i := range snap.Particles {
		p := &snap.Particles[i]
		col := p.Color.BlendRgb(object.ColorBackground, 1-p.Alpha())
		s.FillCircle(point(p.Pos), p.Radius, col)
	}

	for i := range snap.Asteroids {
		a := &snap.Asteroids[i]
		sc.outline = a.Outline(sc.outline[:0])
		s.DrawPolygon(sc.toPoints(sc.outline), object.ColorVector, false)
	}

	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		s.FillCircle(point(b.Pos), b.Radius, object.ColorVector)
	}

	if snap.HasShip && snap.Ship.Visible(snap.Now) {
		sc.drawShip(s, &snap.Ship, snap.Now)
	}
}

func (sc *Scene) drawShip(s Surface, ship *object.Ship, now int64) {
	hull := ship.Hull()
	s.DrawPolygon(sc.toPoints(hull[:]), object.ColorVector, false)
	if ship.Thrusting {
		flame := ship.Flame(Flicker(now))
		s.DrawLine(point(flame[0]), point(flame[1]), object.ColorThrust)
	}
}

// Flicker returns a flame length jitter in [0,1) derived from the tick, so
// drawing never consumes the simulation's random source.
func Flicker(now int64) float64 {
	h := uint64(now) * 0x9e3779b97f4a7c15
	return float64(h>>11) / (1 << 53)
}

func (sc *Scene) toPoints(vs []physics.Vec2) []draw.Point {
	sc.points = sc.points[:0]
	for _, v := range vs {
		sc.points = append(sc.points, point(v))
	}
	return sc.points
}

func point(v physics.Vec2) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}
