package render

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/vectoroids/internal/draw"
	"github.com/tomz197/vectoroids/internal/loop"
	"github.com/tomz197/vectoroids/internal/object"
	"github.com/tomz197/vectoroids/internal/physics"
)

type call struct {
	kind  string
	n     int
	color colorful.Color
}

type recordingSurface struct {
	calls   []call
	cleared int
}

func (r *recordingSurface) Clear() { r.cleared++ }

func (r *recordingSurface) DrawLine(_, _ draw.Point, col colorful.Color) {
	r.calls = append(r.calls, call{kind: "line", n: 2, color: col})
}

func (r *recordingSurface) DrawPolygon(points []draw.Point, col colorful.Color, _ bool) {
	r.calls = append(r.calls, call{kind: "polygon", n: len(points), color: col})
}

func (r *recordingSurface) FillCircle(_ draw.Point, _ float64, col colorful.Color) {
	r.calls = append(r.calls, call{kind: "circle", n: 1, color: col})
}

func (r *recordingSurface) count(kind string) int {
	n := 0
	for _, c := range r.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func snapshotWithShip(now, invulnerableUntil int64, thrusting bool) *loop.Snapshot {
	ship := object.NewShip(1, physics.Vec2{X: 400, Y: 300}, 0, 0)
	ship.InvulnerableUntil = invulnerableUntil
	ship.Thrusting = thrusting
	return &loop.Snapshot{Now: now, Ship: *ship, HasShip: true}
}

func TestDrawShip(t *testing.T) {
	var sc Scene
	var s recordingSurface
	sc.Draw(&s, snapshotWithShip(100, 0, false))

	if s.cleared != 1 {
		t.Fatalf("cleared %d times, want 1", s.cleared)
	}
	if len(s.calls) != 1 || s.calls[0].kind != "polygon" || s.calls[0].n != 4 {
		t.Fatalf("calls = %+v, want one 4-point hull", s.calls)
	}
	if s.calls[0].color != object.ColorVector {
		t.Fatalf("hull color = %v", s.calls[0].color)
	}
}

func TestThrustFlame(t *testing.T) {
	var sc Scene
	var s recordingSurface
	sc.Draw(&s, snapshotWithShip(100, 0, true))
	if s.count("line") != 1 {
		t.Fatalf("calls = %+v, want a flame line", s.calls)
	}
	for _, c := range s.calls {
		if c.kind == "line" && c.color != object.ColorThrust {
			t.Fatalf("flame color = %v", c.color)
		}
	}
}

func TestInvulnerableShipBlinks(t *testing.T) {
	tests := []struct {
		now     int64
		visible bool
	}{
		{0, false},
		{6, true},
		{12, false},
		{200, true}, // protection over
	}
	for _, tt := range tests {
		var sc Scene
		var s recordingSurface
		sc.Draw(&s, snapshotWithShip(tt.now, 180, false))
		if got := s.count("polygon") == 1; got != tt.visible {
			t.Errorf("tick %d: ship drawn = %v, want %v", tt.now, got, tt.visible)
		}
	}
}

func TestDrawEntities(t *testing.T) {
	r := physics.NewRand(1)
	a := object.NewAsteroid(2, r, physics.Vec2{X: 100, Y: 100}, object.AsteroidLarge)
	b := object.NewBullet(3, physics.Vec2{X: 50, Y: 50}, 0)
	p := object.NewParticle(4, physics.Vec2{X: 10, Y: 10}, physics.Vec2{}, 10, object.ColorDanger)
	p.Life = 5
	snap := &loop.Snapshot{
		Asteroids: []object.Asteroid{*a},
		Bullets:   []object.Bullet{*b},
		Particles: []object.Particle{*p},
	}

	var sc Scene
	var s recordingSurface
	sc.Draw(&s, snap)

	if len(s.calls) != 3 {
		t.Fatalf("calls = %+v, want 3", s.calls)
	}
	// particles are drawn first, faded halfway toward black
	faded := s.calls[0]
	if faded.kind != "circle" || faded.color.R >= object.ColorDanger.R || faded.color.R <= 0 {
		t.Fatalf("particle call = %+v", faded)
	}
	if s.calls[1].kind != "polygon" || s.calls[1].n != len(a.Silhouette) {
		t.Fatalf("asteroid call = %+v", s.calls[1])
	}
	if s.calls[2].kind != "circle" || s.calls[2].color != object.ColorVector {
		t.Fatalf("bullet call = %+v", s.calls[2])
	}
}

func TestFlickerRange(t *testing.T) {
	for now := int64(0); now < 1000; now++ {
		f := Flicker(now)
		if f < 0 || f >= 1 {
			t.Fatalf("Flicker(%d) = %v", now, f)
		}
	}
}

func TestDrawOnCanvas(t *testing.T) {
	c := draw.NewScaledCanvas(80, 30, 800, 600)
	var sc Scene
	sc.Draw(c, snapshotWithShip(100, 0, true))
	col, row := c.LogicalToTerminal(400, 300)
	if col < 1 || row < 1 {
		t.Fatalf("ship maps to (%d,%d)", col, row)
	}
}
