package systems

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestGravityForOrientation(t *testing.T) {
	tests := []struct {
		o    Orientation
		want r2.Vec
	}{
		{OrientationLandscapeRight, r2.Vec{X: 1}},
		{OrientationPortraitUpsideDown, r2.Vec{Y: 1}},
		{OrientationLandscapeLeft, r2.Vec{X: -1}},
		{OrientationPortrait, r2.Vec{Y: -1}},
		{OrientationUnknown, r2.Vec{Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.o.String(), func(t *testing.T) {
			if got := GravityForOrientation(tt.o); got != tt.want {
				t.Errorf("GravityForOrientation(%v) = %v, want %v", tt.o, got, tt.want)
			}
		})
	}
}

func TestFacingFlip(t *testing.T) {
	center := r2.Vec{X: 100, Y: 100}
	tests := []struct {
		name        string
		point       r2.Vec
		facingRight bool
		want        bool
	}{
		{"tap right while facing right", r2.Vec{X: 150, Y: 100}, true, false},
		{"tap left while facing right", r2.Vec{X: 50, Y: 100}, true, true},
		{"tap right while facing left", r2.Vec{X: 150, Y: 100}, false, true},
		{"tap left while facing left", r2.Vec{X: 50, Y: 100}, false, false},
		{"tap on axis", r2.Vec{X: 100, Y: 300}, true, false},
		{"tap on axis facing left", r2.Vec{X: 100, Y: 0}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FacingFlip(tt.point, center, 0, tt.facingRight, 1e-9); got != tt.want {
				t.Errorf("FacingFlip = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampToPlayfield(t *testing.T) {
	got := ClampToPlayfield(r2.Vec{X: -10, Y: 900}, 390, 844)
	if got != (r2.Vec{X: 0, Y: 844}) {
		t.Errorf("ClampToPlayfield = %v, want (0, 844)", got)
	}
}
