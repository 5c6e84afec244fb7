package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/starvingfish/components"
)

// MotionSystem runs scripted move/rotate actions. The fish moves only
// through this system; physics never touches it.
type MotionSystem struct {
	filter *ecs.Filter3[components.Position, components.Rotation, components.Motion]
}

// NewMotionSystem creates a new motion system.
func NewMotionSystem(w *ecs.World) *MotionSystem {
	return &MotionSystem{
		filter: ecs.NewFilter3[components.Position, components.Rotation, components.Motion](w),
	}
}

// Update advances every motion queue by dt.
func (s *MotionSystem) Update(dt float64) {
	query := s.filter.Query()
	for query.Next() {
		pos, rot, motion := query.Get()
		AdvanceMotion(motion, pos, rot, dt)
	}
}

// AdvanceMotion runs the queue for dt seconds. Time left over when an
// action finishes carries into the next one.
func AdvanceMotion(m *components.Motion, pos *components.Position, rot *components.Rotation, dt float64) {
	remaining := dt
	for len(m.Queue) > 0 {
		a := &m.Queue[0]
		if !a.Started {
			startAction(a, pos, rot)
		}

		step := min(remaining, a.Duration-a.Elapsed)
		a.Elapsed += step
		remaining -= step

		t := 1.0
		if a.Duration > 0 {
			t = clampFloat(a.Elapsed/a.Duration, 0, 1)
		}
		applyAction(a, pos, rot, t)

		if a.Elapsed < a.Duration {
			return
		}
		m.Queue = m.Queue[1:]
		if remaining <= 0 && len(m.Queue) > 0 && m.Queue[0].Duration > 0 {
			return
		}
	}
}

func startAction(a *components.Action, pos *components.Position, rot *components.Rotation) {
	a.Started = true
	a.FromX, a.FromY = pos.X, pos.Y
	a.FromAngle = rot.Angle
	if a.Kind == components.ActionRotate {
		if a.ShortestArc {
			a.Sweep = ShortestArc(rot.Angle, a.TargetAngle)
		} else {
			a.Sweep = a.TargetAngle - rot.Angle
		}
	}
}

func applyAction(a *components.Action, pos *components.Position, rot *components.Rotation, t float64) {
	switch a.Kind {
	case components.ActionMove:
		pos.X = a.FromX + (a.TargetX-a.FromX)*t
		pos.Y = a.FromY + (a.TargetY-a.FromY)*t
	case components.ActionRotate:
		rot.Angle = a.FromAngle + a.Sweep*t
		if t >= 1 {
			rot.Angle = normalizeAngle(rot.Angle)
		}
	}
}
