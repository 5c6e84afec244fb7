package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starvingfish/camera"
	"github.com/pthm-cable/starvingfish/game"
	"github.com/pthm-cable/starvingfish/telemetry"
)

// Label anchors in playfield units (y up).
const (
	scoreInset   = 20
	titleOffsetY = 30
)

// HUD renders the score label and the game-over overlay.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// hudLayout holds screen anchors for the HUD labels. Each Y is the text
// baseline, as the labels are positioned in playfield space.
type hudLayout struct {
	ScoreX, ScoreY int32
	CenterX        int32
	TitleY, BodyY  int32
}

func layoutFor(cam *camera.Camera, f game.Frame) hudLayout {
	sx, sy := cam.WorldToScreen(scoreInset, scoreInset)
	cx, ty := cam.WorldToScreen(float32(f.Width/2), float32(f.Height/2+titleOffsetY))
	_, by := cam.WorldToScreen(float32(f.Width/2), float32(f.Height/2))
	return hudLayout{
		ScoreX:  int32(sx),
		ScoreY:  int32(sy),
		CenterX: int32(cx),
		TitleY:  int32(ty),
		BodyY:   int32(by),
	}
}

// Draw renders the HUD for a frame.
func (h *HUD) Draw(cam *camera.Camera, f game.Frame) {
	th := h.renderer.Theme
	l := layoutFor(cam, f)

	rl.DrawText(f.ScoreText, l.ScoreX, l.ScoreY-th.ScoreFontSize, th.ScoreFontSize, th.ScoreColor)

	if f.ShowTitle {
		h.renderer.DrawCenteredText(f.TitleText, l.CenterX, l.TitleY-th.TitleFontSize, th.TitleFontSize, th.AlertColor)
	}
	if f.ShowBody {
		h.renderer.DrawCenteredText(f.BodyText, l.CenterX, l.BodyY-th.BodyFontSize, th.BodyFontSize, th.AlertColor)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-20, 10, rl.DarkGray)
}

// PerfPanel renders tick timing per simulation phase.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, phase game.Phase) {
	phases := telemetry.Phases()
	r := p.renderer
	pad := r.Theme.Padding
	height := int32(len(phases)+5)*r.Theme.LineHeight + pad*2
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + pad
	y := r.DrawSectionHeader(x, p.y+pad, "Performance")
	y = r.DrawLabelValue(x, y, "Tick", stats.MeanTick.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%.0f", stats.FPS()))
	y = r.DrawLabelValue(x, y, "Bubbles", fmt.Sprintf("%d (peak %d)", stats.Bubbles, stats.PeakBubbles))
	y = r.DrawLabelValue(x, y, "Phase", phase.String())

	for _, ph := range phases {
		y = r.DrawBar(x, y, ph.String(), float32(stats.Share(ph)), p.width-pad*2)
	}
}
