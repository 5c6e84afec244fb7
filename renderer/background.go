package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starvingfish/camera"
)

// BackgroundRenderer fills the playfield with a vertical water gradient and
// a few slow light bands. The letterbox outside the playfield stays dark.
type BackgroundRenderer struct {
	base      rl.Color
	deep      rl.Color
	letterbox rl.Color
	bands     int
}

// NewBackgroundRenderer creates a background renderer around a base color.
func NewBackgroundRenderer(baseR, baseG, baseB uint8) *BackgroundRenderer {
	base := rl.Color{R: baseR, G: baseG, B: baseB, A: 255}
	return &BackgroundRenderer{
		base:      base,
		deep:      shade(base, 0.8),
		letterbox: rl.Color{R: 10, G: 20, B: 30, A: 255},
		bands:     3,
	}
}

// Draw renders the background for the camera's current viewport.
func (b *BackgroundRenderer) Draw(cam *camera.Camera, time float32) {
	rl.ClearBackground(b.letterbox)

	x, y, w, h := cam.PlayfieldRect()
	rl.DrawRectangleGradientV(int32(x), int32(y), int32(w), int32(h), b.base, b.deep)

	// Light bands drift down the playfield.
	bandH := h / float32(b.bands*4)
	for i := 0; i < b.bands; i++ {
		phase := float64(time)*0.05 + float64(i)/float64(b.bands)
		frac := float32(phase - math.Floor(phase))
		by := y + frac*(h-bandH)
		rl.DrawRectangle(int32(x), int32(by), int32(w), int32(bandH), rl.Color{R: 255, G: 255, B: 255, A: 18})
	}
}

// shade scales a color's RGB channels by f.
func shade(c rl.Color, f float32) rl.Color {
	return rl.Color{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}
