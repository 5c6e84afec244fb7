package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/starvingfish/components"
)

func newBubbleBody(scale float64) components.Body {
	return components.Body{
		Radius:            50 * scale,
		Mass:              scale,
		LinearDamping:     0.1 / scale,
		AffectedByGravity: true,
		Category:          components.KindBubble,
	}
}

func TestPhysicsClampsEachAxis(t *testing.T) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap3[components.Position, components.Velocity, components.Body](w)
	body := newBubbleBody(0.2)
	e := mapper.NewEntity(&components.Position{}, &components.Velocity{X: 900, Y: -900}, &body)

	s := NewPhysicsSystem(w, 150)
	gravity := r2.Vec{X: 5, Y: -5}
	for range 120 {
		s.Update(1.0/60, gravity, 200)
		_, vel, _ := mapper.Get(e)
		if math.Abs(vel.X) > 200 || math.Abs(vel.Y) > 200 {
			t.Fatalf("velocity (%v, %v) exceeds cap 200", vel.X, vel.Y)
		}
	}
}

func TestPhysicsZeroCapFreezes(t *testing.T) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap3[components.Position, components.Velocity, components.Body](w)
	body := newBubbleBody(0.4)
	e := mapper.NewEntity(&components.Position{X: 10, Y: 10}, &components.Velocity{X: 150, Y: 150}, &body)

	s := NewPhysicsSystem(w, 150)
	for range 10 {
		s.Update(1.0/60, r2.Vec{Y: 5}, 0)
	}

	pos, vel, _ := mapper.Get(e)
	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("velocity = (%v, %v), want zero", vel.X, vel.Y)
	}
	if pos.X != 10 || pos.Y != 10 {
		t.Errorf("position moved to (%v, %v) with zero cap", pos.X, pos.Y)
	}
}

func TestPhysicsSkipsUnaffectedBodies(t *testing.T) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap3[components.Position, components.Velocity, components.Body](w)
	body := components.Body{Radius: 20, Category: components.KindFish}
	e := mapper.NewEntity(&components.Position{X: 50, Y: 50}, &components.Velocity{}, &body)

	s := NewPhysicsSystem(w, 150)
	s.Update(0.5, r2.Vec{Y: 5}, 200)

	pos, _, _ := mapper.Get(e)
	if pos.X != 50 || pos.Y != 50 {
		t.Errorf("fish moved under gravity to (%v, %v)", pos.X, pos.Y)
	}
}

func TestPhysicsLargerBubblesLessDamped(t *testing.T) {
	small := newBubbleBody(0.2)
	large := newBubbleBody(0.5)

	var ps, pl components.Position
	vs := components.Velocity{Y: 100}
	vl := components.Velocity{Y: 100}
	integrate(&ps, &vs, &small, r2.Vec{}, 0.1, 200)
	integrate(&pl, &vl, &large, r2.Vec{}, 0.1, 200)

	if vl.Y <= vs.Y {
		t.Errorf("large bubble speed %v should exceed small bubble speed %v", vl.Y, vs.Y)
	}
}

func TestPhysicsGravityRisesBubbles(t *testing.T) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap3[components.Position, components.Velocity, components.Body](w)
	body := newBubbleBody(0.3)
	e := mapper.NewEntity(&components.Position{}, &components.Velocity{}, &body)

	s := NewPhysicsSystem(w, 150)
	for range 30 {
		s.Update(1.0/60, r2.Vec{Y: 5}, 200)
	}

	pos, vel, _ := mapper.Get(e)
	if vel.Y <= 0 || pos.Y <= 0 {
		t.Errorf("bubble should rise under upward gravity, got pos %v vel %v", pos.Y, vel.Y)
	}
	if pos.X != 0 {
		t.Errorf("bubble drifted sideways to %v", pos.X)
	}
}
