// Package camera maps the playfield onto the window.
package camera

import "math"

// Camera fits the playfield (y up) into a viewport (y down), preserving
// aspect ratio and letterboxing the remainder.
type Camera struct {
	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Playfield dimensions
	WorldW, WorldH float32

	// Zoom is screen pixels per playfield unit
	Zoom float32

	// Letterbox offset of the playfield's top-left corner on screen
	OffsetX, OffsetY float32
}

// New creates a camera that fits the world into the viewport.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
	}
	c.fit()
	return c
}

func (c *Camera) fit() {
	c.Zoom = min(c.ViewportW/c.WorldW, c.ViewportH/c.WorldH)
	c.OffsetX = (c.ViewportW - c.WorldW*c.Zoom) / 2
	c.OffsetY = (c.ViewportH - c.WorldH*c.Zoom) / 2
}

// WorldToScreen converts playfield coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.OffsetX + wx*c.Zoom
	sy = c.OffsetY + (c.WorldH-wy)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to playfield coordinates.
// Points in the letterbox map outside the playfield.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = (sx - c.OffsetX) / c.Zoom
	wy = c.WorldH - (sy-c.OffsetY)/c.Zoom
	return wx, wy
}

// RotationDegrees converts a playfield rotation (radians, counter-clockwise)
// to a screen rotation (degrees, clockwise).
func (c *Camera) RotationDegrees(angle float64) float32 {
	return float32(-angle * 180 / math.Pi)
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// overlaps the playfield.
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	return wx+radius >= 0 && wx-radius <= c.WorldW &&
		wy+radius >= 0 && wy-radius <= c.WorldH
}

// PlayfieldRect returns the screen rectangle covered by the playfield.
func (c *Camera) PlayfieldRect() (x, y, w, h float32) {
	return c.OffsetX, c.OffsetY, c.WorldW * c.Zoom, c.WorldH * c.Zoom
}

// Resize updates viewport dimensions and refits the playfield.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.fit()
}
