package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/starvingfish/components"
)

type collisionFixture struct {
	world   *ecs.World
	mapper  *ecs.Map2[components.Position, components.Body]
	bubbles *ecs.Map3[components.Position, components.Body, components.Bubble]
	fish    ecs.Entity
	fishPos components.Position
	fishBod components.Body
	sys     *CollisionSystem
}

func newCollisionFixture() *collisionFixture {
	w := ecs.NewWorld()
	f := &collisionFixture{
		world:   w,
		mapper:  ecs.NewMap2[components.Position, components.Body](w),
		bubbles: ecs.NewMap3[components.Position, components.Body, components.Bubble](w),
		fishPos: components.Position{X: 100, Y: 100},
		fishBod: components.Body{
			Radius:   20,
			Category: components.KindFish,
			Contacts: components.NewKindSet(components.KindFood, components.KindBubble),
		},
	}
	f.fish = f.mapper.NewEntity(&f.fishPos, &f.fishBod)
	f.sys = NewCollisionSystem(w)
	return f
}

func (f *collisionFixture) addFood(x, y float64) ecs.Entity {
	return f.mapper.NewEntity(&components.Position{X: x, Y: y}, &components.Body{Radius: 3, Category: components.KindFood})
}

func (f *collisionFixture) addBubble(id uint64, x, y float64) ecs.Entity {
	return f.bubbles.NewEntity(
		&components.Position{X: x, Y: y},
		&components.Body{Radius: 10, Category: components.KindBubble, AffectedByGravity: true},
		&components.Bubble{ID: id},
	)
}

func (f *collisionFixture) detect() (Contact, bool) {
	return f.sys.Detect(f.fish, f.fishPos, f.fishBod)
}

func TestContactFiresOnceWhileOverlapping(t *testing.T) {
	f := newCollisionFixture()
	food := f.addFood(105, 100)

	events := 0
	for range 3 {
		if c, ok := f.detect(); ok {
			events++
			if c.Entity != food || c.Kind != components.KindFood {
				t.Errorf("unexpected contact %+v", c)
			}
		}
	}
	if events != 1 {
		t.Errorf("got %d contact events over 3 overlapping ticks, want 1", events)
	}
}

func TestContactFiresAgainAfterSeparation(t *testing.T) {
	f := newCollisionFixture()
	food := f.addFood(105, 100)
	posMap := ecs.NewMap1[components.Position](f.world)

	if _, ok := f.detect(); !ok {
		t.Fatal("expected first contact")
	}

	posMap.Get(food).X = 500
	if _, ok := f.detect(); ok {
		t.Fatal("no contact expected while separated")
	}

	posMap.Get(food).X = 100
	if _, ok := f.detect(); !ok {
		t.Error("expected contact after re-entering")
	}
}

func TestBubbleWinsSimultaneousContact(t *testing.T) {
	f := newCollisionFixture()
	f.addFood(100, 110)
	bubble := f.addBubble(7, 110, 100)

	c, ok := f.detect()
	if !ok {
		t.Fatal("expected a contact")
	}
	if c.Kind != components.KindBubble || c.Entity != bubble || c.BubbleID != 7 {
		t.Errorf("got %+v, want bubble 7", c)
	}

	// The food overlap began on the same tick and is not reported later.
	if c, ok := f.detect(); ok {
		t.Errorf("unexpected follow-up contact %+v", c)
	}
}

func TestLowestBubbleIDWins(t *testing.T) {
	f := newCollisionFixture()
	f.addBubble(9, 100, 105)
	f.addBubble(4, 105, 100)

	c, ok := f.detect()
	if !ok || c.BubbleID != 4 {
		t.Errorf("got %+v (ok=%v), want bubble 4", c, ok)
	}
}

func TestNoContactWhenSeparated(t *testing.T) {
	f := newCollisionFixture()
	f.addFood(200, 200)
	f.addBubble(1, 0, 0)

	if c, ok := f.detect(); ok {
		t.Errorf("unexpected contact %+v", c)
	}
}

func TestContactTrackerReset(t *testing.T) {
	tr := NewContactTracker()
	c := Contact{Kind: components.KindFood}

	tr.Begin()
	tr.Observe(c, true)
	if _, ok := tr.End(); !ok {
		t.Fatal("expected contact")
	}

	tr.Reset()
	tr.Begin()
	tr.Observe(c, true)
	if _, ok := tr.End(); !ok {
		t.Error("expected contact again after reset")
	}
}

func TestForgetMakesOverlapNew(t *testing.T) {
	f := newCollisionFixture()
	food := f.addFood(105, 100)

	if _, ok := f.detect(); !ok {
		t.Fatal("expected first contact")
	}
	if _, ok := f.detect(); ok {
		t.Fatal("no contact expected while overlap is held")
	}

	f.sys.Forget(food)
	c, ok := f.detect()
	if !ok || c.Entity != food {
		t.Errorf("after Forget got %+v, %v; want a new food contact", c, ok)
	}
}
