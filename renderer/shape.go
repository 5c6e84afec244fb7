package renderer

import "math"

// point is a 2D point in playfield units.
type point struct{ X, Y float64 }

// fishShape holds the outline of a fish sprite in playfield coordinates.
type fishShape struct {
	Body []point // closed outline, center excluded
	Tail [3]point
	Eye  point
}

// buildFishShape lays out a fish of the given radius around (x, y). The
// unmirrored sprite faces left; a negative scaleX mirrors it to face right.
// The outline is then rotated by angle (radians, counter-clockwise).
func buildFishShape(x, y, angle, scaleX, radius float64, segments int) fishShape {
	facing := 1.0
	if scaleX > 0 {
		facing = -1
	}
	sin, cos := math.Sincos(angle)
	place := func(lx, ly float64) point {
		lx *= facing
		return point{
			X: x + lx*cos - ly*sin,
			Y: y + lx*sin + ly*cos,
		}
	}

	var s fishShape
	s.Body = make([]point, segments)
	for i := range segments {
		t := 2 * math.Pi * float64(i) / float64(segments)
		s.Body[i] = place(radius*math.Cos(t), 0.6*radius*math.Sin(t))
	}
	s.Tail = [3]point{
		place(-0.8*radius, 0),
		place(-1.5*radius, 0.5*radius),
		place(-1.5*radius, -0.5*radius),
	}
	s.Eye = place(0.5*radius, 0.2*radius)
	return s
}

// counterClockwise reports whether a, b, c wind counter-clockwise on a
// y-down screen.
func counterClockwise(ax, ay, bx, by, cx, cy float64) bool {
	return (bx-ax)*(cy-ay)-(by-ay)*(cx-ax) < 0
}
