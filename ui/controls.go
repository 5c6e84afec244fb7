package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starvingfish/config"
)

// TuningPanel renders raygui sliders that edit the live config.
type TuningPanel struct {
	renderer *Renderer
	params   []TuningParam
	x, y     int32
	width    int32
	visible  bool
}

// NewTuningPanel creates a hidden tuning panel.
func NewTuningPanel(x, y, width int32) *TuningPanel {
	return &TuningPanel{
		renderer: NewRenderer(),
		params:   DefaultTuning(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// IsVisible returns whether the panel is shown.
func (c *TuningPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *TuningPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Height returns the panel height in pixels.
func (c *TuningPanel) Height() int32 {
	r := c.renderer
	return int32(len(c.params))*(r.Theme.LineHeight+24) + r.Theme.LineHeight + r.Theme.Padding*2 + 34
}

// Bounds returns the panel rectangle in screen pixels.
func (c *TuningPanel) Bounds() rl.Rectangle {
	return rl.Rectangle{X: float32(c.x), Y: float32(c.y), Width: float32(c.width), Height: float32(c.Height())}
}

// Draw renders the panel and applies slider edits to cfg. It reports
// whether the restart button was pressed.
func (c *TuningPanel) Draw(cfg *config.Config) (restart bool) {
	if !c.visible {
		return false
	}

	r := c.renderer
	pad := r.Theme.Padding
	r.DrawPanel(c.x, c.y, c.width, c.Height())

	x := c.x + pad
	y := r.DrawSectionHeader(x, c.y+pad, "Tuning")
	sliderW := float32(c.width - pad*2 - 50)

	for _, p := range c.params {
		rl.DrawText(p.Label, x, y, r.Theme.FontSize, r.Theme.LabelColor)
		y += r.Theme.LineHeight

		v := gui.SliderBar(
			rl.Rectangle{X: float32(x), Y: float32(y), Width: sliderW, Height: 16},
			"", "",
			p.Value(cfg), p.Min, p.Max,
		)
		p.Apply(cfg, v)
		rl.DrawText(p.Text(cfg), x+int32(sliderW)+6, y+2, r.Theme.FontSize, r.Theme.ValueColor)
		y += 24
	}

	return gui.Button(rl.Rectangle{X: float32(x), Y: float32(y + 4), Width: 100, Height: 24}, "Restart")
}
