// Package terminal plays the game in a text terminal using tcell.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/starvingfish/camera"
	"github.com/pthm-cable/starvingfish/components"
	"github.com/pthm-cable/starvingfish/game"
)

// cellAspect is the height of a terminal cell in units of its width.
const cellAspect = 2

// scoreInset matches the graphical score label anchor, in playfield units.
const scoreInset = 20

// Styles holds the cell styles used by the view.
type Styles struct {
	Letterbox tcell.Style
	Water     tcell.Style
	Fish      tcell.Style
	DeadFish  tcell.Style
	Food      tcell.Style
	Bubble    tcell.Style
	Score     tcell.Style
	Alert     tcell.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	water := tcell.StyleDefault.Background(tcell.NewRGBColor(180, 230, 255))
	return Styles{
		Letterbox: tcell.StyleDefault.Background(tcell.ColorBlack),
		Water:     water,
		Fish:      water.Foreground(tcell.ColorOrange).Bold(true),
		DeadFish:  water.Foreground(tcell.ColorGray),
		Food:      water.Foreground(tcell.ColorMaroon).Bold(true),
		Bubble:    water.Foreground(tcell.ColorNavy),
		Score:     water.Foreground(tcell.ColorBlack),
		Alert:     water.Foreground(tcell.ColorRed).Bold(true),
	}
}

// View draws frames onto a tcell screen.
type View struct {
	screen tcell.Screen
	cam    *camera.Camera
	Styles Styles
}

// NewView creates a view fitting a playfield of the given size.
func NewView(screen tcell.Screen, worldW, worldH float64) *View {
	cols, rows := screen.Size()
	return &View{
		screen: screen,
		cam:    camera.New(float32(cols), float32(rows*cellAspect), float32(worldW), float32(worldH)),
		Styles: DefaultStyles(),
	}
}

// Resize refits the playfield after the terminal size changed.
func (v *View) Resize() {
	cols, rows := v.screen.Size()
	v.cam.Resize(float32(cols), float32(rows*cellAspect))
}

// Cell returns the terminal cell containing playfield point (x, y).
func (v *View) Cell(x, y float64) (col, row int) {
	sx, sy := v.cam.WorldToScreen(float32(x), float32(y))
	return int(math.Floor(float64(sx))), int(math.Floor(float64(sy) / cellAspect))
}

// ToWorld returns the playfield point at the center of a cell.
func (v *View) ToWorld(col, row int) (x, y float64) {
	wx, wy := v.cam.ScreenToWorld(float32(col)+0.5, (float32(row)+0.5)*cellAspect)
	return float64(wx), float64(wy)
}

// Draw renders a frame and shows it.
func (v *View) Draw(f game.Frame) {
	v.screen.Fill(' ', v.Styles.Letterbox)

	x, y, w, h := v.cam.PlayfieldRect()
	c0, r0 := int(x), int(y/cellAspect)
	c1, r1 := int(math.Ceil(float64(x+w))), int(math.Ceil(float64(y+h)/cellAspect))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			v.screen.SetContent(col, row, ' ', nil, v.Styles.Water)
		}
	}

	for _, s := range f.Sprites {
		if !v.cam.IsVisible(float32(s.X), float32(s.Y), float32(s.Radius)) {
			continue
		}
		col, row := v.Cell(s.X, s.Y)
		switch s.Kind {
		case components.KindFish:
			glyph, style := v.fishGlyph(s)
			v.text(col-1, row, glyph, style)
		case components.KindFood:
			v.screen.SetContent(col, row, '*', nil, v.Styles.Food)
		case components.KindBubble:
			v.screen.SetContent(col, row, bubbleRune(s.Radius*float64(v.cam.Zoom)), nil, v.Styles.Bubble)
		}
	}

	col, row := v.Cell(scoreInset, scoreInset)
	v.text(col, row, f.ScoreText, v.Styles.Score)

	if f.ShowTitle {
		col, row := v.Cell(f.Width/2, f.Height/2)
		v.centered(col, row-1, f.TitleText, v.Styles.Alert)
	}
	if f.ShowBody {
		col, row := v.Cell(f.Width/2, f.Height/2)
		v.centered(col, row+1, f.BodyText, v.Styles.Alert)
	}

	v.screen.Show()
}

func (v *View) fishGlyph(s game.Sprite) (string, tcell.Style) {
	right := s.ScaleX < 0
	if s.Texture == components.TextureDeadFish {
		if right {
			return "><x", v.Styles.DeadFish
		}
		return "x><", v.Styles.DeadFish
	}
	if right {
		return "><>", v.Styles.Fish
	}
	return "<><", v.Styles.Fish
}

// bubbleRune picks a glyph by on-screen radius in columns.
func bubbleRune(cols float64) rune {
	switch {
	case cols >= 2:
		return 'O'
	case cols >= 1:
		return 'o'
	default:
		return '°'
	}
}

func (v *View) text(col, row int, s string, style tcell.Style) {
	cols, rows := v.screen.Size()
	if row < 0 || row >= rows {
		return
	}
	for i, r := range []rune(s) {
		if c := col + i; c >= 0 && c < cols {
			v.screen.SetContent(c, row, r, nil, style)
		}
	}
}

func (v *View) centered(col, row int, s string, style tcell.Style) {
	v.text(col-len([]rune(s))/2, row, s, style)
}
