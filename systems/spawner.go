package systems

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/starvingfish/config"
)

// BubbleSpec describes a bubble about to be created.
type BubbleSpec struct {
	Position r2.Vec
	Scale    float64
	Radius   float64
	Mass     float64
	Damping  float64
}

// Spawner produces random placements for food and bubbles.
type Spawner struct {
	rng    *rand.Rand
	width  float64
	height float64
	bubble config.BubbleConfig
}

// NewSpawner creates a spawner for a playfield of the given size.
func NewSpawner(rng *rand.Rand, width, height float64, bubble config.BubbleConfig) *Spawner {
	return &Spawner{rng: rng, width: width, height: height, bubble: bubble}
}

// RandomPoint returns a uniform point at least margin from every edge.
func (s *Spawner) RandomPoint(margin float64) r2.Vec {
	return r2.Vec{
		X: margin + s.rng.Float64()*max(s.width-2*margin, 0),
		Y: margin + s.rng.Float64()*max(s.height-2*margin, 0),
	}
}

// BubbleScale picks one of the configured discrete scales.
func (s *Spawner) BubbleScale() float64 {
	return s.bubble.MinScale + float64(s.rng.Intn(s.bubble.ScaleSteps))*s.bubble.ScaleStep
}

// Bubble returns a spec for a bubble entering from the side the tilt points
// toward, so it rises across the playfield against the tilt.
func (s *Spawner) Bubble(tilt r2.Vec) BubbleSpec {
	scale := s.BubbleScale()
	radius := s.bubble.TextureSize * scale / 2

	dir := unitOr(tilt, r2.Vec{X: 0, Y: -1})
	p := s.RandomPoint(0)
	p.X += dir.X * (s.width + radius)
	p.Y += dir.Y * (s.height + radius)

	return BubbleSpec{
		Position: p,
		Scale:    scale,
		Radius:   radius,
		Mass:     scale,
		Damping:  s.bubble.DampingFactor / scale,
	}
}
