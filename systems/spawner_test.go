package systems

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/starvingfish/config"
)

func testBubbleConfig() config.BubbleConfig {
	return config.BubbleConfig{
		TextureSize:   100,
		MinScale:      0.2,
		ScaleStep:     0.1,
		ScaleSteps:    4,
		DampingFactor: 0.1,
		Lifetime:      10,
	}
}

func TestRandomPointRespectsMargin(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(1)), 390, 844, testBubbleConfig())
	for range 1000 {
		p := s.RandomPoint(50)
		if p.X < 50 || p.X > 340 || p.Y < 50 || p.Y > 794 {
			t.Fatalf("point %v violates margin", p)
		}
	}
}

func TestBubbleScaleRange(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(2)), 390, 844, testBubbleConfig())
	seen := map[int]bool{}
	for range 500 {
		sc := s.BubbleScale()
		if sc < 0.2-1e-9 || sc >= 0.6 {
			t.Fatalf("scale %v outside [0.2, 0.6)", sc)
		}
		seen[int(math.Round(sc*10))] = true
	}
	for _, k := range []int{2, 3, 4, 5} {
		if !seen[k] {
			t.Errorf("scale 0.%d never produced", k)
		}
	}
}

func TestBubbleSpecDerivedFields(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(3)), 390, 844, testBubbleConfig())
	spec := s.Bubble(r2.Vec{Y: -1})

	if spec.Mass != spec.Scale {
		t.Errorf("mass %v should equal scale %v", spec.Mass, spec.Scale)
	}
	if math.Abs(spec.Damping*spec.Scale-0.1) > 1e-12 {
		t.Errorf("damping %v not inversely proportional to scale %v", spec.Damping, spec.Scale)
	}
	if math.Abs(spec.Radius-50*spec.Scale) > 1e-12 {
		t.Errorf("radius = %v, want %v", spec.Radius, 50*spec.Scale)
	}
}

func TestBubbleEntersFromTiltSide(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(4)), 390, 844, testBubbleConfig())

	// Portrait: tilt points down, bubbles start below the playfield.
	for range 100 {
		spec := s.Bubble(r2.Vec{Y: -1})
		if spec.Position.Y >= -spec.Radius+1e-9 {
			t.Fatalf("bubble at y=%v should start below the playfield", spec.Position.Y)
		}
		if spec.Position.X < 0 || spec.Position.X > 390 {
			t.Fatalf("bubble x=%v should stay within playfield width", spec.Position.X)
		}
	}

	// Landscape right: tilt points +x, bubbles start past the right edge.
	for range 100 {
		spec := s.Bubble(r2.Vec{X: 1})
		if spec.Position.X <= 390 {
			t.Fatalf("bubble at x=%v should start right of the playfield", spec.Position.X)
		}
	}
}

func TestBubbleZeroTiltFallsBackToPortrait(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(5)), 390, 844, testBubbleConfig())
	spec := s.Bubble(r2.Vec{})
	if spec.Position.Y >= 0 {
		t.Errorf("zero tilt should spawn below the playfield, got y=%v", spec.Position.Y)
	}
}
