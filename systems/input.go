package systems

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Orientation is a coarse device orientation bucket.
type Orientation uint8

const (
	OrientationPortrait Orientation = iota
	OrientationPortraitUpsideDown
	OrientationLandscapeLeft
	OrientationLandscapeRight
	OrientationUnknown
)

// String returns the display name for an Orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationPortrait:
		return "portrait"
	case OrientationPortraitUpsideDown:
		return "portrait_upside_down"
	case OrientationLandscapeLeft:
		return "landscape_left"
	case OrientationLandscapeRight:
		return "landscape_right"
	default:
		return "unknown"
	}
}

// GravityForOrientation returns the synthetic unit tilt used when no motion
// sensor is available.
func GravityForOrientation(o Orientation) r2.Vec {
	switch o {
	case OrientationLandscapeRight:
		return r2.Vec{X: 1}
	case OrientationPortraitUpsideDown:
		return r2.Vec{Y: 1}
	case OrientationLandscapeLeft:
		return r2.Vec{X: -1}
	default:
		return r2.Vec{Y: -1}
	}
}

// FacingFlip reports whether a fish at center with the given rotation and
// facing must mirror itself to face a tap at point. A tap on the fish's own
// axis never flips.
func FacingFlip(point, center r2.Vec, rotation float64, facingRight bool, eps float64) bool {
	switch OrientationAfterRotation(point, center, rotation, eps) {
	case SideRight:
		return !facingRight
	case SideLeft:
		return facingRight
	default:
		return false
	}
}

// ClampToPlayfield pulls p inside [0,w]x[0,h].
func ClampToPlayfield(p r2.Vec, w, h float64) r2.Vec {
	return r2.Vec{X: clampFloat(p.X, 0, w), Y: clampFloat(p.Y, 0, h)}
}
