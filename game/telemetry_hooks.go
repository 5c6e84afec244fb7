package game

import (
	"log/slog"

	"github.com/pthm-cable/starvingfish/telemetry"
)

// beginRound starts round telemetry.
func (g *Game) beginRound() {
	g.collector.BeginRound(g.now)
	slog.Info("round_start",
		"generation", g.session.Generation,
		"time", g.now,
	)
}

// endRound closes round telemetry and writes it out.
func (g *Game) endRound(reason telemetry.EndReason) {
	stats, ok := g.collector.EndRound(g.now, g.session.Score, reason)
	if !ok {
		return
	}

	if g.logStats {
		slog.Info("round_end", "stats", stats)
	}

	if err := g.output.WriteRound(stats); err != nil {
		slog.Error("failed to write round", "error", err)
	}

	every := g.cfg.Telemetry.SummaryEvery
	if g.logStats && every > 0 && stats.Round%every == 0 {
		telemetry.Summarize(g.collector.Rounds()).LogStats()
	}
}

// flushPerf emits perf stats once per window of ticks.
func (g *Game) flushPerf() {
	window := max(g.cfg.Screen.TargetFPS, 1) * 10
	if g.tick%window != 0 {
		return
	}

	stats := g.perf.Stats()
	if g.logStats {
		slog.Info("perf", "stats", stats)
	}
	if err := g.output.WritePerf(stats, g.now); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
