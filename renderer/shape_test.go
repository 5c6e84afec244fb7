package renderer

import (
	"math"
	"testing"
)

func TestFishShapeFacing(t *testing.T) {
	tests := []struct {
		name      string
		scaleX    float64
		angle     float64
		wantEyeX  float64 // sign of eye offset
		wantEyeY  float64
		checkAxis string
	}{
		{"mirrored faces right", -0.1, 0, 1, 0, "x"},
		{"unmirrored faces left", 0.1, 0, -1, 0, "x"},
		{"mirrored rotated quarter turn faces up", -0.1, math.Pi / 2, 0, 1, "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := buildFishShape(100, 200, tt.angle, tt.scaleX, 20, 12)
			dx, dy := s.Eye.X-100, s.Eye.Y-200
			switch tt.checkAxis {
			case "x":
				if math.Signbit(dx) != math.Signbit(tt.wantEyeX) {
					t.Errorf("eye dx = %v, want sign of %v", dx, tt.wantEyeX)
				}
			case "y":
				if math.Signbit(dy) != math.Signbit(tt.wantEyeY) || math.Abs(dy) < 5 {
					t.Errorf("eye dy = %v, want clearly positive", dy)
				}
			}
			// The tail always sits opposite the eye.
			tx := s.Tail[0].X - 100
			ty := s.Tail[0].Y - 200
			if dx*tx+dy*ty >= 0 {
				t.Errorf("tail (%v,%v) not opposite eye (%v,%v)", tx, ty, dx, dy)
			}
		})
	}
}

func TestFishShapeBodyExtent(t *testing.T) {
	s := buildFishShape(0, 0, 0, -0.1, 10, 16)
	if len(s.Body) != 16 {
		t.Fatalf("segments = %d, want 16", len(s.Body))
	}
	for i, p := range s.Body {
		if math.Abs(p.X) > 10+1e-9 || math.Abs(p.Y) > 6+1e-9 {
			t.Errorf("body[%d] = %+v outside 10x6 ellipse bounds", i, p)
		}
	}
}

func TestCounterClockwise(t *testing.T) {
	// top-left, bottom-left, top-right on a y-down screen
	if !counterClockwise(0, 0, 0, 10, 10, 0) {
		t.Error("expected counter-clockwise")
	}
	if counterClockwise(0, 0, 10, 0, 0, 10) {
		t.Error("expected clockwise")
	}
}
