// Package sensor delivers tilt samples to the simulation from a polling
// goroutine.
package sensor

import (
	"errors"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/starvingfish/systems"
)

// ErrUnavailable is returned by sources that have no hardware behind them.
var ErrUnavailable = errors.New("sensor: unavailable")

// Source produces tilt vectors in playfield axes.
type Source interface {
	Sample() (r2.Vec, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (r2.Vec, error)

// Sample calls f.
func (f SourceFunc) Sample() (r2.Vec, error) {
	return f()
}

// Unavailable is a Source that always fails.
var Unavailable Source = SourceFunc(func() (r2.Vec, error) {
	return r2.Vec{}, ErrUnavailable
})

// Latest holds the most recent tilt written by an input handler.
type Latest struct {
	mu  sync.Mutex
	v   r2.Vec
	set bool
}

// Set stores v.
func (l *Latest) Set(v r2.Vec) {
	l.mu.Lock()
	l.v = v
	l.set = true
	l.mu.Unlock()
}

// Sample returns the stored tilt, or ErrUnavailable before the first Set.
func (l *Latest) Sample() (r2.Vec, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.set {
		return r2.Vec{}, ErrUnavailable
	}
	return l.v, nil
}

// OrientationSource synthesizes tilt from a coarse device orientation.
type OrientationSource struct {
	mu sync.Mutex
	o  systems.Orientation
}

// Set records the current orientation.
func (s *OrientationSource) Set(o systems.Orientation) {
	s.mu.Lock()
	s.o = o
	s.mu.Unlock()
}

// Orientation returns the recorded orientation.
func (s *OrientationSource) Orientation() systems.Orientation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.o
}

// Sample returns the unit tilt for the recorded orientation.
func (s *OrientationSource) Sample() (r2.Vec, error) {
	return systems.GravityForOrientation(s.Orientation()), nil
}
