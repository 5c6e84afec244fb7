// Command fishterm plays the game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/starvingfish/audio"
	"github.com/pthm-cable/starvingfish/config"
	"github.com/pthm-cable/starvingfish/game"
	"github.com/pthm-cable/starvingfish/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logFile := flag.String("log-file", "", "Write JSON logs to this file (empty = discard)")
	logStats := flag.Bool("log-stats", false, "Output round stats via slog")
	noAudio := flag.Bool("no-audio", false, "Disable sound cues")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()

	// The terminal owns stdout, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			return fmt.Errorf("creating log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	g, err := game.New(cfg, game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	defer g.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	var player *audio.Player
	if !*noAudio {
		p, err := audio.NewPlayer()
		if err != nil {
			// Non-fatal, game can run without sound
			slog.Warn("audio unavailable", "error", err)
		}
		player = p
		defer player.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = terminal.Run(ctx, g, screen, terminal.Options{
		FPS:            cfg.Screen.TargetFPS,
		SensorInterval: time.Duration(cfg.Input.SensorInterval * float64(time.Second)),
		Width:          cfg.Derived.PlayfieldW,
		Height:         cfg.Derived.PlayfieldH,
		OnEvent:        player.Play,
	})
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
