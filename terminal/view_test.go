package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/starvingfish/components"
	"github.com/pthm-cable/starvingfish/game"
)

// newTestScreen returns an 80x20 simulation screen. With a 80x40
// playfield every cell covers exactly one unit by two.
func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(80, 20)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, col, row int) rune {
	r, _, _, _ := s.GetContent(col, row)
	return r
}

func TestViewCellMapping(t *testing.T) {
	v := NewView(newTestScreen(t), 80, 40)

	tests := []struct {
		x, y     float64
		col, row int
	}{
		{10.5, 30.5, 10, 4},
		{0.5, 39.5, 0, 0},
		{79.5, 0.5, 79, 19},
	}
	for _, tt := range tests {
		col, row := v.Cell(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("Cell(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
		}
		x, y := v.ToWorld(col, row)
		if c2, r2 := v.Cell(x, y); c2 != col || r2 != row {
			t.Errorf("ToWorld(%d, %d) = (%v, %v) maps back to (%d, %d)", col, row, x, y, c2, r2)
		}
	}
}

func TestViewDrawsFrame(t *testing.T) {
	s := newTestScreen(t)
	v := NewView(s, 80, 40)

	f := game.Frame{
		Width:  80,
		Height: 40,
		Sprites: []game.Sprite{
			{Kind: components.KindFish, Texture: components.TextureFish, X: 40.5, Y: 34.5, ScaleX: -0.1, ScaleY: 0.1, Radius: 2},
			{Kind: components.KindFood, Texture: components.TextureFood, X: 10.5, Y: 30.5, Radius: 1},
			{Kind: components.KindBubble, Texture: components.TextureBubble, X: 60.5, Y: 10.5, Radius: 3, BubbleID: 1},
		},
		ScoreText: "Score: 3",
		ShowTitle: true,
		ShowBody:  true,
		TitleText: "Hi!",
		BodyText:  "Go",
	}
	v.Draw(f)

	checks := []struct {
		name     string
		col, row int
		want     rune
	}{
		{"fish tail", 39, 2, '>'},
		{"fish body", 40, 2, '<'},
		{"fish head", 41, 2, '>'},
		{"food", 10, 4, '*'},
		{"bubble", 60, 14, 'O'},
		{"score", 20, 10, 'S'},
		{"title", 39, 9, 'H'},
		{"body", 39, 11, 'G'},
		{"water", 5, 5, ' '},
	}
	for _, c := range checks {
		if got := runeAt(s, c.col, c.row); got != c.want {
			t.Errorf("%s at (%d, %d) = %q, want %q", c.name, c.col, c.row, got, c.want)
		}
	}
}

func TestViewHidesOverlaysWhilePlaying(t *testing.T) {
	s := newTestScreen(t)
	v := NewView(s, 80, 40)
	v.Draw(game.Frame{Width: 80, Height: 40, TitleText: "Hi!", BodyText: "Go"})

	if got := runeAt(s, 39, 9); got != ' ' {
		t.Errorf("title cell = %q, want blank", got)
	}
}

func TestFishGlyph(t *testing.T) {
	v := NewView(newTestScreen(t), 80, 40)
	tests := []struct {
		name    string
		scaleX  float64
		texture components.Texture
		want    string
	}{
		{"alive right", -0.1, components.TextureFish, "><>"},
		{"alive left", 0.1, components.TextureFish, "<><"},
		{"dead right", -0.1, components.TextureDeadFish, "><x"},
		{"dead left", 0.1, components.TextureDeadFish, "x><"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := v.fishGlyph(game.Sprite{ScaleX: tt.scaleX, Texture: tt.texture})
			if got != tt.want {
				t.Errorf("glyph = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBubbleRune(t *testing.T) {
	tests := []struct {
		cols float64
		want rune
	}{
		{3, 'O'},
		{1.2, 'o'},
		{0.4, '°'},
	}
	for _, tt := range tests {
		if got := bubbleRune(tt.cols); got != tt.want {
			t.Errorf("bubbleRune(%v) = %q, want %q", tt.cols, got, tt.want)
		}
	}
}
