package terminal

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/starvingfish/game"
	"github.com/pthm-cable/starvingfish/sensor"
)

// Options configures Run.
type Options struct {
	FPS            int
	SensorInterval time.Duration
	Width, Height  float64 // playfield size

	// OnEvent receives game events after every tick. Optional.
	OnEvent func(game.Event)
}

// Run plays g on screen until the player quits or ctx is cancelled. The
// caller owns screen initialization and teardown.
func Run(ctx context.Context, g *game.Game, screen tcell.Screen, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen.EnableMouse()
	view := NewView(screen, opts.Width, opts.Height)
	input := NewInput(view)

	// Terminals have no motion sensor: the poller falls back to the
	// orientation chosen with the arrow keys.
	orient := &sensor.OrientationSource{}
	poller := &sensor.Poller{
		Primary:  sensor.Unavailable,
		Fallback: orient,
		Interval: opts.SensorInterval,
		Out:      g.Inbox(),
	}
	go poller.Run(ctx)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(max(opts.FPS, 1)))
	defer ticker.Stop()

	// Simulation time excludes paused spans.
	var simTime float64
	last := time.Now()
	paused := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			cmd := input.Translate(ev, opts.Width, opts.Height)
			switch cmd.Kind {
			case CommandQuit:
				return nil
			case CommandTap:
				if !paused {
					g.Tap(cmd.X, cmd.Y)
				}
			case CommandOrient:
				orient.Set(cmd.Orientation)
				slog.Debug("orientation", "value", cmd.Orientation.String())
			case CommandResize:
				view.Resize()
				screen.Sync()
			case CommandTogglePause:
				paused = !paused
			}

		case now := <-ticker.C:
			if !paused {
				simTime += now.Sub(last).Seconds()
				g.Update(simTime)
				for _, e := range g.Events() {
					if opts.OnEvent != nil {
						opts.OnEvent(e)
					}
				}
			}
			last = now
			view.Draw(g.Frame())
		}
	}
}
