// Package game runs the fish simulation: one round at a time, driven by an
// external clock, with tilt and tap input.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/starvingfish/components"
	"github.com/pthm-cable/starvingfish/config"
	"github.com/pthm-cable/starvingfish/scheduler"
	"github.com/pthm-cable/starvingfish/sensor"
	"github.com/pthm-cable/starvingfish/systems"
	"github.com/pthm-cable/starvingfish/telemetry"
)

// Options configures a Game.
type Options struct {
	Seed      int64
	LogStats  bool   // log round and perf stats via slog
	OutputDir string // directory for CSV output (empty = disabled)
}

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	rng   *rand.Rand
	sched *scheduler.Scheduler
	spawn *systems.Spawner

	world   *World
	session Session

	inbox    *sensor.Mailbox
	pollTok  scheduler.Token
	tilt     r2.Vec
	nextID   uint64 // bubble IDs, unique across rounds
	now      float64
	tick     int
	events   []Event
	logStats bool

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
}

// New creates a game and starts the first round at time 0.
func New(cfg *config.Config, opts Options) (*Game, error) {
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	g := &Game{
		cfg:       cfg,
		rng:       rng,
		sched:     scheduler.New(),
		spawn:     systems.NewSpawner(rng, cfg.Derived.PlayfieldW, cfg.Derived.PlayfieldH, cfg.Bubble),
		inbox:     sensor.NewMailbox(),
		tilt:      systems.GravityForOrientation(systems.OrientationPortrait),
		logStats:  opts.LogStats,
		collector: telemetry.NewCollector(),
		perf:      telemetry.NewPerfCollector(cfg.Screen.TargetFPS),
		output:    output,
	}
	g.session.PendingHeading = systems.HeadingFromTilt(g.tilt)

	g.Restart()
	return g, nil
}

// Restart discards the current round and starts a new one. Every pending
// one-shot callback of the old round is invalidated.
func (g *Game) Restart() {
	if g.collector.Active() {
		g.endRound(telemetry.ReasonRestart)
	}

	gen := g.sched.NextGeneration()
	heading := g.session.PendingHeading

	g.world = newWorld(g.cfg.Physics.PointsPerUnit, g.gravityFor(g.tilt))
	center := r2.Vec{X: g.cfg.Derived.PlayfieldW / 2, Y: g.cfg.Derived.PlayfieldH / 2}
	g.world.spawnFish(center, g.cfg.Fish.Radius, g.cfg.Fish.Scale)
	g.world.spawnFood(g.spawn.RandomPoint(g.cfg.Food.Margin), g.cfg.Food.Radius)

	g.session = Session{
		Phase:          PhasePlaying,
		Generation:     gen,
		PendingHeading: heading,
	}

	g.beginRound()
	g.emit(EventRoundStart)
}

// Update advances the simulation to now (seconds). Time never runs
// backwards; a smaller now is treated as no elapsed time.
func (g *Game) Update(now float64) {
	now = max(now, g.now)
	dt := min(now-g.now, g.cfg.Physics.MaxStep)
	g.now = now
	g.tick++

	g.perf.BeginTick(g.tick)

	g.perf.Phase(telemetry.PhaseInput)
	if v, ok := g.inbox.Drain(); ok {
		g.ProcessGravity(v)
	}

	g.perf.Phase(telemetry.PhaseTimers)
	g.sched.Advance(now)

	g.perf.Phase(telemetry.PhaseSpawn)
	if g.session.Phase == PhasePlaying && now-g.session.LastBubbleSpawn > g.cfg.Spawner.Interval {
		g.session.LastBubbleSpawn = now
		g.spawnBubble()
	}

	w := g.world
	w.Elapsed += dt

	g.perf.Phase(telemetry.PhaseMotion)
	w.motion.Update(dt)

	g.perf.Phase(telemetry.PhasePhysics)
	maxSpeed := 0.0
	if g.session.Phase == PhasePlaying {
		maxSpeed = g.cfg.Physics.MaxBubbleSpeed
	}
	w.physics.Update(dt, w.Gravity, maxSpeed)

	g.perf.Phase(telemetry.PhaseCollision)
	if w.hasFish {
		pos := *w.posMap.Get(w.fish)
		body := *w.bodyMap.Get(w.fish)
		if c, ok := w.collision.Detect(w.fish, pos, body); ok {
			g.handleContact(c)
		}
	}

	g.perf.EndTick(g.world.BubbleCount())
	g.flushPerf()
}

// ProcessGravity applies a tilt vector: world gravity points against it and
// an idle fish turns toward the derived heading.
func (g *Game) ProcessGravity(v r2.Vec) {
	heading := systems.HeadingFromTilt(v)
	g.tilt = v
	g.world.Gravity = g.gravityFor(v)
	g.session.PendingHeading = heading
	g.collector.Record(telemetry.EventTilt, g.now)

	if g.session.Phase != PhasePlaying || !g.world.hasFish {
		return
	}
	motion := g.world.motionMap.Get(g.world.fish)
	if motion.Busy() {
		return
	}
	motion.Run(components.RotateTo(heading, g.cfg.Input.HeadingDuration, true))
}

// SetOrientation applies the gravity implied by a device orientation, for
// hosts without a motion sensor.
func (g *Game) SetOrientation(o systems.Orientation) {
	g.ProcessGravity(systems.GravityForOrientation(o))
}

// Tap handles a touch at playfield point (x, y).
func (g *Game) Tap(x, y float64) {
	g.collector.Record(telemetry.EventTap, g.now)

	if g.session.CanRestart {
		g.Restart()
		return
	}
	if g.session.Phase != PhasePlaying || !g.world.hasFish {
		return
	}

	w := g.world
	target := systems.ClampToPlayfield(r2.Vec{X: x, Y: y}, g.cfg.Derived.PlayfieldW, g.cfg.Derived.PlayfieldH)
	pos := w.posMap.Get(w.fish)
	rot := w.rotMap.Get(w.fish)
	scale := w.scaleMap.Get(w.fish)
	motion := w.motionMap.Get(w.fish)

	motion.Clear()
	motion.Run(
		components.MoveTo(target.X, target.Y, g.cfg.Input.MoveDuration),
		components.RotateTo(g.session.PendingHeading, g.cfg.Input.TapRotateDuration, true),
	)

	center := r2.Vec{X: pos.X, Y: pos.Y}
	if systems.FacingFlip(target, center, rot.Angle, scale.FacingRight(), g.cfg.Input.FacingEpsilon) {
		scale.X = -scale.X
	}
}

// PostTilt queues a tilt sample for the next Update. Safe to call from any
// goroutine.
func (g *Game) PostTilt(v r2.Vec) {
	g.inbox.Post(v)
}

// Inbox returns the mailbox drained at the start of every Update, for use
// as a sensor.Poller output.
func (g *Game) Inbox() *sensor.Mailbox {
	return g.inbox
}

// PollSource samples src on the simulation clock every sensor interval and
// feeds the result to ProcessGravity. It replaces any previous poll. Used
// when no background sensor is available.
func (g *Game) PollSource(src sensor.Source) {
	g.sched.Cancel(g.pollTok)
	g.pollTok = g.sched.Every(g.cfg.Input.SensorInterval, func() {
		v, err := src.Sample()
		if err != nil {
			return
		}
		g.ProcessGravity(v)
	})
}

// StopPolling cancels a poll started by PollSource.
func (g *Game) StopPolling() {
	g.sched.Cancel(g.pollTok)
	g.pollTok = scheduler.Token{}
}

// Session returns a copy of the round state.
func (g *Game) Session() Session {
	return g.session
}

// World returns the current round's world.
func (g *Game) World() *World {
	return g.world
}

// Now returns the simulation time of the last Update.
func (g *Game) Now() float64 {
	return g.now
}

// Tick returns the number of Update calls.
func (g *Game) Tick() int {
	return g.tick
}

// PerfStats returns the rolling tick timing.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perf.Stats()
}

// RecordFrame marks a rendered frame for FPS measurement.
func (g *Game) RecordFrame() {
	g.perf.RecordFrame()
}

// Rounds returns stats for every finished round.
func (g *Game) Rounds() []telemetry.RoundStats {
	return g.collector.Rounds()
}

// Close ends the round in progress and flushes telemetry output.
func (g *Game) Close() error {
	if g.collector.Active() {
		g.endRound(telemetry.ReasonShutdown)
	}
	if g.logStats {
		telemetry.Summarize(g.collector.Rounds()).LogStats()
	}
	return g.output.Close()
}

func (g *Game) gravityFor(tilt r2.Vec) r2.Vec {
	return r2.Scale(-g.cfg.Physics.GravityMultiplier, tilt)
}

// spawnBubble adds a bubble entering against the tilt and schedules its
// expiry.
func (g *Game) spawnBubble() {
	g.nextID++
	id := g.nextID
	w := g.world
	e := w.spawnBubble(id, g.spawn.Bubble(g.tilt), g.now)
	g.collector.Record(telemetry.EventBubbleSpawned, g.now)

	g.sched.After(g.cfg.Bubble.Lifetime, func() {
		if g.world != w || !w.ecs.Alive(e) {
			return
		}
		if w.removeBubble(id) {
			g.collector.Record(telemetry.EventBubbleExpired, g.now)
		}
	})
}

// handleContact applies a contact to the round. Only a playing round
// reacts.
func (g *Game) handleContact(c systems.Contact) {
	if g.session.Phase != PhasePlaying {
		return
	}

	switch c.Kind {
	case components.KindFood:
		g.session.Score++
		g.world.moveFood(g.spawn.RandomPoint(g.cfg.Food.Margin))
		g.collector.Record(telemetry.EventFoodEaten, g.now)
		g.emit(EventFoodEaten)
	case components.KindBubble:
		g.gameOver(c.BubbleID)
	default:
		slog.Debug("ignored contact", "kind", c.Kind)
	}
}

// gameOver freezes the round and schedules the fish removal and the
// overlay reveal.
func (g *Game) gameOver(bubbleID uint64) {
	w := g.world
	fish := w.fish

	g.session.Phase = PhaseGameOver
	g.session.ShowTitle = true
	w.motionMap.Get(fish).Clear()
	w.fishMap.Get(fish).Texture = components.TextureDeadFish

	g.sched.After(g.cfg.Timers.FishRemoval, func() {
		if g.world != w || !w.ecs.Alive(fish) {
			return
		}
		w.removeFish()
		slog.Debug("fish_removed", "generation", g.session.Generation)
	})
	g.sched.After(g.cfg.Timers.BodyReveal, func() {
		if g.world != w {
			return
		}
		g.session.ShowBody = true
		g.session.CanRestart = true
		g.session.Phase = PhaseAwaitingRestart
	})

	slog.Info("game_over",
		"score", g.session.Score,
		"bubble", bubbleID,
		"time", g.now,
	)
	g.endRound(telemetry.ReasonBubble)
	g.emit(EventBubbleHit)
}
