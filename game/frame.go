package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/starvingfish/components"
)

// Sprite is one drawable entity in playfield coordinates (y up).
type Sprite struct {
	Kind     components.Kind
	Texture  components.Texture
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	Radius   float64
	BubbleID uint64
}

// Frame is a read-only snapshot of what to draw.
type Frame struct {
	Width, Height float64
	Time          float64

	// Fish first, then food, then bubbles by ascending ID
	Sprites []Sprite

	Score     int
	ScoreText string
	Phase     Phase
	ShowTitle bool
	ShowBody  bool
	TitleText string
	BodyText  string
}

// Frame builds a snapshot of the current state. It does not modify the game.
func (g *Game) Frame() Frame {
	w := g.world
	f := Frame{
		Width:     g.cfg.Derived.PlayfieldW,
		Height:    g.cfg.Derived.PlayfieldH,
		Time:      g.now,
		Sprites:   make([]Sprite, 0, 2+len(w.bubbles)),
		Score:     g.session.Score,
		ScoreText: fmt.Sprintf(g.cfg.Text.ScoreFormat, g.session.Score),
		Phase:     g.session.Phase,
		ShowTitle: g.session.ShowTitle,
		ShowBody:  g.session.ShowBody,
		TitleText: g.cfg.Text.GameOverTitle,
		BodyText:  g.cfg.Text.GameOverBody,
	}

	if w.hasFish {
		s := w.sprite(w.fish)
		s.Texture = w.fishMap.Get(w.fish).Texture
		f.Sprites = append(f.Sprites, s)
	}

	food := w.sprite(w.food)
	food.Texture = components.TextureFood
	f.Sprites = append(f.Sprites, food)

	for _, id := range w.bubbleIDs() {
		s := w.sprite(w.bubbles[id])
		s.Texture = components.TextureBubble
		s.BubbleID = id
		f.Sprites = append(f.Sprites, s)
	}

	return f
}

// sprite reads the shared drawable components of e.
func (w *World) sprite(e ecs.Entity) Sprite {
	pos := w.posMap.Get(e)
	rot := w.rotMap.Get(e)
	sc := w.scaleMap.Get(e)
	body := w.bodyMap.Get(e)
	return Sprite{
		Kind:     body.Category,
		X:        pos.X,
		Y:        pos.Y,
		Rotation: rot.Angle,
		ScaleX:   sc.X,
		ScaleY:   sc.Y,
		Radius:   body.Radius,
	}
}
