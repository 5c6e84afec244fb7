package game

import (
	"slices"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/starvingfish/components"
	"github.com/pthm-cable/starvingfish/systems"
)

// World owns every entity of one round. It is discarded on restart.
type World struct {
	ecs *ecs.World

	// Entity mappers
	fishMapper *ecs.Map7[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Scale,
		components.Body,
		components.Fish,
		components.Motion,
	]
	foodMapper *ecs.Map6[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Scale,
		components.Body,
		components.Food,
	]
	bubbleMapper *ecs.Map6[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Scale,
		components.Body,
		components.Bubble,
	]

	// Individual component mappers for lookups
	posMap    *ecs.Map1[components.Position]
	velMap    *ecs.Map1[components.Velocity]
	rotMap    *ecs.Map1[components.Rotation]
	scaleMap  *ecs.Map1[components.Scale]
	bodyMap   *ecs.Map1[components.Body]
	fishMap   *ecs.Map1[components.Fish]
	motionMap *ecs.Map1[components.Motion]

	// Systems
	physics   *systems.PhysicsSystem
	collision *systems.CollisionSystem
	motion    *systems.MotionSystem

	Gravity r2.Vec
	Elapsed float64

	fish    ecs.Entity
	hasFish bool
	food    ecs.Entity
	bubbles map[uint64]ecs.Entity
}

// newWorld creates an empty world.
func newWorld(pointsPerUnit float64, gravity r2.Vec) *World {
	w := ecs.NewWorld()
	return &World{
		ecs: w,
		fishMapper: ecs.NewMap7[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Scale,
			components.Body,
			components.Fish,
			components.Motion,
		](w),
		foodMapper: ecs.NewMap6[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Scale,
			components.Body,
			components.Food,
		](w),
		bubbleMapper: ecs.NewMap6[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Scale,
			components.Body,
			components.Bubble,
		](w),
		posMap:    ecs.NewMap1[components.Position](w),
		velMap:    ecs.NewMap1[components.Velocity](w),
		rotMap:    ecs.NewMap1[components.Rotation](w),
		scaleMap:  ecs.NewMap1[components.Scale](w),
		bodyMap:   ecs.NewMap1[components.Body](w),
		fishMap:   ecs.NewMap1[components.Fish](w),
		motionMap: ecs.NewMap1[components.Motion](w),
		physics:   systems.NewPhysicsSystem(w, pointsPerUnit),
		collision: systems.NewCollisionSystem(w),
		motion:    systems.NewMotionSystem(w),
		Gravity:   gravity,
		bubbles:   make(map[uint64]ecs.Entity),
	}
}

// spawnFish creates the fish facing right at p.
func (w *World) spawnFish(p r2.Vec, radius, scale float64) ecs.Entity {
	pos := components.Position{X: p.X, Y: p.Y}
	vel := components.Velocity{}
	rot := components.Rotation{}
	sc := components.Scale{X: -scale, Y: scale}
	body := components.Body{
		Radius:   radius,
		Mass:     1,
		Category: components.KindFish,
		Contacts: components.NewKindSet(components.KindFood, components.KindBubble),
	}
	fish := components.Fish{Texture: components.TextureFish}
	motion := components.Motion{}

	w.fish = w.fishMapper.NewEntity(&pos, &vel, &rot, &sc, &body, &fish, &motion)
	w.hasFish = true
	return w.fish
}

// removeFish deletes the fish if it still exists.
func (w *World) removeFish() bool {
	if !w.hasFish {
		return false
	}
	if w.ecs.Alive(w.fish) {
		w.ecs.RemoveEntity(w.fish)
	}
	w.hasFish = false
	w.collision.Reset()
	return true
}

// spawnFood creates the food particle at p.
func (w *World) spawnFood(p r2.Vec, radius float64) ecs.Entity {
	pos := components.Position{X: p.X, Y: p.Y}
	vel := components.Velocity{}
	rot := components.Rotation{}
	sc := components.Scale{X: 1, Y: 1}
	body := components.Body{Radius: radius, Category: components.KindFood}
	food := components.Food{}

	w.food = w.foodMapper.NewEntity(&pos, &vel, &rot, &sc, &body, &food)
	return w.food
}

// moveFood relocates the food particle. A relocated particle counts as a
// fresh one, so landing on the fish is a new contact.
func (w *World) moveFood(p r2.Vec) {
	pos := w.posMap.Get(w.food)
	pos.X, pos.Y = p.X, p.Y
	w.collision.Forget(w.food)
}

// spawnBubble creates a bubble from spec.
func (w *World) spawnBubble(id uint64, spec systems.BubbleSpec, now float64) ecs.Entity {
	pos := components.Position{X: spec.Position.X, Y: spec.Position.Y}
	vel := components.Velocity{}
	rot := components.Rotation{}
	sc := components.Scale{X: -spec.Scale, Y: spec.Scale}
	body := components.Body{
		Radius:            spec.Radius,
		Mass:              spec.Mass,
		LinearDamping:     spec.Damping,
		AffectedByGravity: true,
		Category:          components.KindBubble,
	}
	bubble := components.Bubble{ID: id, CreatedAt: now}

	e := w.bubbleMapper.NewEntity(&pos, &vel, &rot, &sc, &body, &bubble)
	w.bubbles[id] = e
	return e
}

// removeBubble deletes a bubble by ID. Unknown IDs are ignored.
func (w *World) removeBubble(id uint64) bool {
	e, ok := w.bubbles[id]
	if !ok {
		return false
	}
	delete(w.bubbles, id)
	if w.ecs.Alive(e) {
		w.ecs.RemoveEntity(e)
	}
	return true
}

// bubbleIDs returns live bubble IDs in ascending order.
func (w *World) bubbleIDs() []uint64 {
	ids := make([]uint64, 0, len(w.bubbles))
	for id := range w.bubbles {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// BubbleCount returns the number of live bubbles.
func (w *World) BubbleCount() int {
	return len(w.bubbles)
}

// HasFish reports whether the fish is still in the world.
func (w *World) HasFish() bool {
	return w.hasFish
}

// FishPosition returns the fish position.
func (w *World) FishPosition() (r2.Vec, bool) {
	if !w.hasFish {
		return r2.Vec{}, false
	}
	pos := w.posMap.Get(w.fish)
	return r2.Vec{X: pos.X, Y: pos.Y}, true
}

// FoodPosition returns the food position.
func (w *World) FoodPosition() r2.Vec {
	pos := w.posMap.Get(w.food)
	return r2.Vec{X: pos.X, Y: pos.Y}
}
