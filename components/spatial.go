package components

// Position represents an entity's playfield position (y up).
type Position struct {
	X, Y float64
}

// Velocity represents an entity's velocity in playfield units per second.
type Velocity struct {
	X, Y float64
}

// Rotation represents an entity's orientation in radians.
type Rotation struct {
	Angle float64
}

// Scale holds per-axis sprite scale. A negative X mirrors the sprite.
type Scale struct {
	X, Y float64
}

// FacingRight reports whether a mirrored fish sprite faces +x.
func (s Scale) FacingRight() bool {
	return s.X < 0
}
