package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/starvingfish/config"
	"github.com/pthm-cable/starvingfish/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, steered by the autopilot")
	logStats := flag.Bool("log-stats", false, "Output round and perf stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	noAudio := flag.Bool("no-audio", false, "Disable sound cues")
	autopilot := flag.Float64("autopilot-interval", 1, "Seconds between autopilot taps in headless mode")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}

	g, err := game.New(cfg, opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := g.Close(); err != nil {
			slog.Error("failed to close game", "error", err)
		}
	}()

	if *headless {
		// Headless mode - fixed-step simulation, no raylib needed
		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
			"autopilot_interval", *autopilot,
		)
		runHeadless(g, cfg, *maxTicks, *autopilot)
		return
	}

	runWindow(g, cfg, windowOptions{
		maxTicks: *maxTicks,
		audio:    !*noAudio,
	})
}

// runHeadless steps the game at the target frame rate on a simulated clock.
func runHeadless(g *game.Game, cfg *config.Config, maxTicks int, interval float64) {
	pilot := game.NewAutopilot(interval)
	step := 1 / float64(max(cfg.Screen.TargetFPS, 1))

	for {
		pilot.Step(g)
		g.Update(g.Now() + step)
		g.Events()

		if maxTicks > 0 && g.Tick() >= maxTicks {
			slog.Info("max ticks reached",
				"tick", g.Tick(),
				"rounds", len(g.Rounds()),
			)
			return
		}
	}
}
