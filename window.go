package main

import (
	"context"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/starvingfish/audio"
	"github.com/pthm-cable/starvingfish/camera"
	"github.com/pthm-cable/starvingfish/config"
	"github.com/pthm-cable/starvingfish/game"
	"github.com/pthm-cable/starvingfish/renderer"
	"github.com/pthm-cable/starvingfish/sensor"
	"github.com/pthm-cable/starvingfish/systems"
	"github.com/pthm-cable/starvingfish/ui"
)

const controlsText = "Click: swim | Arrows: tilt | 1-4: orientation | Tab: tuning | F3: perf | P: pause"

type windowOptions struct {
	maxTicks int
	audio    bool
}

// orientationKeys select a device orientation when no tilt key is held.
var orientationKeys = map[int32]systems.Orientation{
	rl.KeyOne:   systems.OrientationPortrait,
	rl.KeyTwo:   systems.OrientationLandscapeLeft,
	rl.KeyThree: systems.OrientationPortraitUpsideDown,
	rl.KeyFour:  systems.OrientationLandscapeRight,
}

// runWindow plays the game in a raylib window until it is closed.
func runWindow(g *game.Game, cfg *config.Config, opts windowOptions) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Starving Fish")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	var player *audio.Player
	if opts.audio {
		p, err := audio.NewPlayer()
		if err != nil {
			// Non-fatal, game can run without sound
			slog.Warn("audio unavailable", "error", err)
		}
		player = p
		defer player.Close()
	}

	cam := camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32,
		float32(cfg.Derived.PlayfieldW), float32(cfg.Derived.PlayfieldH))
	background := renderer.NewBackgroundRenderer(180, 230, 255)
	sprites := renderer.NewSpriteRenderer()
	hud := ui.NewHUD()
	perfPanel := ui.NewPerfPanel(10, 40, 220)
	tuning := ui.NewTuningPanel(10, 40, 240)
	showPerf := false

	// Arrow keys act as the motion sensor. Until one is pressed the poller
	// falls back to the orientation picked with the number keys.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	keys := &sensor.Latest{}
	orient := &sensor.OrientationSource{}
	poller := &sensor.Poller{
		Primary:  keys,
		Fallback: orient,
		Interval: time.Duration(cfg.Input.SensorInterval * float64(time.Second)),
		Out:      g.Inbox(),
	}
	go poller.Run(ctx)

	var simTime float64
	paused := false

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			cam.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
		}

		if rl.IsKeyPressed(rl.KeyTab) {
			tuning.Toggle()
		}
		if rl.IsKeyPressed(rl.KeyF3) {
			showPerf = !showPerf
		}
		if rl.IsKeyPressed(rl.KeyP) {
			paused = !paused
		}
		for key, o := range orientationKeys {
			if rl.IsKeyPressed(key) {
				orient.Set(o)
			}
		}
		if tilt, ok := keyboardTilt(); ok {
			keys.Set(tilt)
		}

		if !paused {
			if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !overPanel(tuning) {
				m := rl.GetMousePosition()
				x, y := cam.ScreenToWorld(m.X, m.Y)
				g.Tap(float64(x), float64(y))
			}

			simTime += float64(rl.GetFrameTime())
			g.Update(simTime)
			for _, e := range g.Events() {
				player.Play(e)
			}
		}

		frame := g.Frame()

		rl.BeginDrawing()
		background.Draw(cam, float32(simTime))
		sprites.Draw(cam, frame)
		hud.Draw(cam, frame)
		if showPerf {
			perfPanel.Draw(g.PerfStats(), frame.Phase)
		}
		if tuning.Draw(cfg) {
			g.Restart()
		}
		hud.DrawControls(int32(rl.GetScreenHeight()), controlsText)
		rl.EndDrawing()
		g.RecordFrame()

		if opts.maxTicks > 0 && g.Tick() >= opts.maxTicks {
			break
		}
	}
}

// keyboardTilt returns the tilt that makes bubbles drift toward the held
// arrow keys.
func keyboardTilt() (r2.Vec, bool) {
	var d r2.Vec
	if rl.IsKeyDown(rl.KeyUp) {
		d.Y++
	}
	if rl.IsKeyDown(rl.KeyDown) {
		d.Y--
	}
	if rl.IsKeyDown(rl.KeyRight) {
		d.X++
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		d.X--
	}
	if d == (r2.Vec{}) {
		return d, false
	}
	return r2.Scale(-1/r2.Norm(d), d), true
}

func overPanel(p *ui.TuningPanel) bool {
	if !p.IsVisible() {
		return false
	}
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), p.Bounds())
}
