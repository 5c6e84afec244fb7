package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/starvingfish/components"
)

func TestAdvanceMotionMoveThenRotate(t *testing.T) {
	var m components.Motion
	pos := components.Position{X: 0, Y: 0}
	rot := components.Rotation{}
	m.Run(components.MoveTo(100, 50, 1), components.RotateTo(math.Pi/2, 0.5, true))

	AdvanceMotion(&m, &pos, &rot, 0.5)
	if math.Abs(pos.X-50) > 1e-9 || math.Abs(pos.Y-25) > 1e-9 {
		t.Errorf("halfway position = (%v, %v), want (50, 25)", pos.X, pos.Y)
	}
	if rot.Angle != 0 {
		t.Errorf("rotation started early: %v", rot.Angle)
	}

	// Finishes the move and carries 0.25s into the rotation.
	AdvanceMotion(&m, &pos, &rot, 0.75)
	if pos.X != 100 || pos.Y != 50 {
		t.Errorf("final position = (%v, %v), want (100, 50)", pos.X, pos.Y)
	}
	if math.Abs(rot.Angle-math.Pi/4) > 1e-9 {
		t.Errorf("rotation = %v, want Pi/4", rot.Angle)
	}

	AdvanceMotion(&m, &pos, &rot, 1)
	if m.Busy() {
		t.Error("queue should be drained")
	}
	if math.Abs(rot.Angle-math.Pi/2) > 1e-9 {
		t.Errorf("rotation = %v, want Pi/2", rot.Angle)
	}
}

func TestAdvanceMotionShortestArc(t *testing.T) {
	var m components.Motion
	var pos components.Position
	rot := components.Rotation{Angle: 0.9 * math.Pi}
	m.Run(components.RotateTo(-0.9*math.Pi, 1, true))

	AdvanceMotion(&m, &pos, &rot, 0.5)
	// Halfway along the short arc crosses Pi rather than passing through 0.
	if math.Abs(math.Abs(rot.Angle)-math.Pi) > 1e-9 {
		t.Errorf("halfway angle = %v, want +-Pi", rot.Angle)
	}
}

func TestAdvanceMotionZeroDuration(t *testing.T) {
	var m components.Motion
	var pos components.Position
	var rot components.Rotation
	m.Run(components.MoveTo(5, 5, 0))

	AdvanceMotion(&m, &pos, &rot, 0)
	if pos.X != 5 || pos.Y != 5 || m.Busy() {
		t.Errorf("instant move not applied: pos=(%v,%v) busy=%v", pos.X, pos.Y, m.Busy())
	}
}
