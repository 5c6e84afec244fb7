// Package systems contains ECS systems for the simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/starvingfish/components"
)

// PhysicsSystem integrates gravity-driven bodies.
type PhysicsSystem struct {
	filter        *ecs.Filter3[components.Position, components.Velocity, components.Body]
	pointsPerUnit float64
}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem(w *ecs.World, pointsPerUnit float64) *PhysicsSystem {
	return &PhysicsSystem{
		filter:        ecs.NewFilter3[components.Position, components.Velocity, components.Body](w),
		pointsPerUnit: pointsPerUnit,
	}
}

// Update advances every gravity-affected body by dt. Each velocity axis is
// clamped to [-maxSpeed, maxSpeed] before positions move, so a zero cap
// freezes bodies in place.
func (s *PhysicsSystem) Update(dt float64, gravity r2.Vec, maxSpeed float64) {
	accel := r2.Scale(s.pointsPerUnit*dt, gravity)

	query := s.filter.Query()
	for query.Next() {
		pos, vel, body := query.Get()
		if !body.AffectedByGravity {
			continue
		}
		integrate(pos, vel, body, accel, dt, maxSpeed)
	}
}

// integrate applies one step to a single body.
func integrate(pos *components.Position, vel *components.Velocity, body *components.Body, accel r2.Vec, dt, maxSpeed float64) {
	vel.X += accel.X
	vel.Y += accel.Y

	// Linear damping: larger bubbles carry less damping
	damp := 1 / (1 + body.LinearDamping*dt)
	vel.X *= damp
	vel.Y *= damp

	vel.X = clampFloat(vel.X, -maxSpeed, maxSpeed)
	vel.Y = clampFloat(vel.Y, -maxSpeed, maxSpeed)

	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
}
