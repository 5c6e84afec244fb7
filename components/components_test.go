package components

import "testing"

func TestKindSet(t *testing.T) {
	s := NewKindSet(KindFood, KindBubble)
	if !s.Has(KindFood) || !s.Has(KindBubble) {
		t.Error("set should contain food and bubble")
	}
	if s.Has(KindFish) {
		t.Error("set should not contain fish")
	}
	if NewKindSet().Has(KindFish) {
		t.Error("empty set should contain nothing")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindFish, "fish"},
		{KindFood, "food"},
		{KindBubble, "bubble"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestMotionQueue(t *testing.T) {
	var m Motion
	if m.Busy() {
		t.Fatal("new motion should be idle")
	}

	m.Run(MoveTo(10, 20, 1), RotateTo(1.5, 0.1, true))
	if !m.Busy() || len(m.Queue) != 2 {
		t.Fatalf("expected 2 queued actions, got %d", len(m.Queue))
	}
	if m.Queue[0].Kind != ActionMove || m.Queue[1].Kind != ActionRotate {
		t.Error("actions queued out of order")
	}

	m.Clear()
	if m.Busy() {
		t.Error("cleared motion should be idle")
	}
}

func TestScaleFacing(t *testing.T) {
	if !(Scale{X: -0.1, Y: 0.1}).FacingRight() {
		t.Error("negative x scale should face right")
	}
	if (Scale{X: 0.1, Y: 0.1}).FacingRight() {
		t.Error("positive x scale should face left")
	}
}
