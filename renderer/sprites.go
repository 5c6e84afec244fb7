package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starvingfish/camera"
	"github.com/pthm-cable/starvingfish/components"
	"github.com/pthm-cable/starvingfish/game"
)

// SpriteRenderer draws the entities of a frame with raylib primitives.
type SpriteRenderer struct {
	FishColor     rl.Color
	DeadFishColor rl.Color
	FoodColor     rl.Color
	BubbleColor   rl.Color
	Segments      int
}

// NewSpriteRenderer creates a sprite renderer with the default palette.
func NewSpriteRenderer() *SpriteRenderer {
	return &SpriteRenderer{
		FishColor:     rl.Color{R: 255, G: 140, B: 40, A: 255},
		DeadFishColor: rl.Color{R: 130, G: 130, B: 140, A: 255},
		FoodColor:     rl.Color{R: 120, G: 80, B: 40, A: 255},
		BubbleColor:   rl.Color{R: 255, G: 255, B: 255, A: 200},
		Segments:      20,
	}
}

// Draw renders every visible sprite in frame order.
func (r *SpriteRenderer) Draw(cam *camera.Camera, f game.Frame) {
	for _, s := range f.Sprites {
		if !cam.IsVisible(float32(s.X), float32(s.Y), float32(s.Radius)*2) {
			continue
		}
		switch s.Kind {
		case components.KindFish:
			r.drawFish(cam, s)
		case components.KindFood:
			r.drawFood(cam, s)
		case components.KindBubble:
			r.drawBubble(cam, s)
		}
	}
}

func (r *SpriteRenderer) drawFish(cam *camera.Camera, s game.Sprite) {
	color := r.FishColor
	if s.Texture == components.TextureDeadFish {
		color = r.DeadFishColor
	}

	shape := buildFishShape(s.X, s.Y, s.Rotation, s.ScaleX, s.Radius, r.Segments)
	center := screenPoint(cam, point{s.X, s.Y})

	// Body as a fan of triangles around the center.
	for i := range shape.Body {
		a := screenPoint(cam, shape.Body[i])
		b := screenPoint(cam, shape.Body[(i+1)%len(shape.Body)])
		triangle(center, a, b, color)
	}
	triangle(
		screenPoint(cam, shape.Tail[0]),
		screenPoint(cam, shape.Tail[1]),
		screenPoint(cam, shape.Tail[2]),
		shade(color, 0.85),
	)

	eye := screenPoint(cam, shape.Eye)
	eyeR := float32(s.Radius) * cam.Zoom * 0.15
	if s.Texture == components.TextureDeadFish {
		rl.DrawLineEx(rl.Vector2{X: eye.X - eyeR, Y: eye.Y - eyeR}, rl.Vector2{X: eye.X + eyeR, Y: eye.Y + eyeR}, 2, rl.Black)
		rl.DrawLineEx(rl.Vector2{X: eye.X - eyeR, Y: eye.Y + eyeR}, rl.Vector2{X: eye.X + eyeR, Y: eye.Y - eyeR}, 2, rl.Black)
		return
	}
	rl.DrawCircleV(eye, eyeR, rl.White)
	rl.DrawCircleV(eye, eyeR*0.5, rl.Black)
}

func (r *SpriteRenderer) drawFood(cam *camera.Camera, s game.Sprite) {
	c := screenPoint(cam, point{s.X, s.Y})
	rl.DrawCircleV(c, max(float32(s.Radius)*cam.Zoom, 2), r.FoodColor)
}

func (r *SpriteRenderer) drawBubble(cam *camera.Camera, s game.Sprite) {
	c := screenPoint(cam, point{s.X, s.Y})
	radius := float32(s.Radius) * cam.Zoom
	rl.DrawCircleV(c, radius, rl.ColorAlpha(r.BubbleColor, 0.25))
	rl.DrawCircleLines(int32(c.X), int32(c.Y), radius, r.BubbleColor)
	// highlight
	rl.DrawCircleV(rl.Vector2{X: c.X - radius*0.35, Y: c.Y - radius*0.35}, radius*0.18, r.BubbleColor)
}

func screenPoint(cam *camera.Camera, p point) rl.Vector2 {
	x, y := cam.WorldToScreen(float32(p.X), float32(p.Y))
	return rl.Vector2{X: x, Y: y}
}

// triangle draws a filled triangle regardless of the winding the
// playfield-to-screen flip produced.
func triangle(a, b, c rl.Vector2, color rl.Color) {
	if !counterClockwise(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y), float64(c.X), float64(c.Y)) {
		b, c = c, b
	}
	rl.DrawTriangle(a, b, c, color)
}
