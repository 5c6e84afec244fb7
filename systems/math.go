package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Side is the result of a left/right test in a rotated frame.
type Side uint8

const (
	SideNone Side = iota // on the axis
	SideLeft
	SideRight
)

// String returns the display name for a Side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// OrientationAfterRotation reports which side of center the point falls on
// once the frame is rotated by angle. Points within eps of the axis report
// SideNone.
func OrientationAfterRotation(point, center r2.Vec, angle, eps float64) Side {
	local := rotate(r2.Sub(point, center), -angle)
	switch {
	case local.X > eps:
		return SideRight
	case local.X < -eps:
		return SideLeft
	default:
		return SideNone
	}
}

// AngleTo returns the angle of the vector from one point to another.
func AngleTo(from, to r2.Vec) float64 {
	d := r2.Sub(to, from)
	return math.Atan2(d.Y, d.X)
}

// HeadingFromTilt returns the fish heading for a tilt vector. The result
// depends only on direction, not magnitude.
func HeadingFromTilt(tilt r2.Vec) float64 {
	return math.Atan2(tilt.Y, tilt.X) + math.Pi/2
}

// ShortestArc returns the signed rotation in [-Pi, Pi] that takes from to to.
func ShortestArc(from, to float64) float64 {
	return normalizeAngle(to - from)
}

// CirclesOverlap reports whether two circles intersect.
func CirclesOverlap(a r2.Vec, ra float64, b r2.Vec, rb float64) bool {
	r := ra + rb
	return r2.Norm2(r2.Sub(a, b)) < r*r
}

// rotate rotates v counter-clockwise by angle.
func rotate(v r2.Vec, angle float64) r2.Vec {
	sin, cos := math.Sincos(angle)
	return r2.Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// unitOr returns v normalized, or fallback if v has no length.
func unitOr(v, fallback r2.Vec) r2.Vec {
	n := r2.Norm(v)
	if n == 0 {
		return fallback
	}
	return r2.Scale(1/n, v)
}

// clampFloat clamps v between minVal and maxVal.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// normalizeAngle wraps an angle to [-Pi, Pi].
func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
