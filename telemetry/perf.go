package telemetry

import (
	"log/slog"
	"time"
)

// TickPhase identifies one stage of a simulation tick.
type TickPhase int

const (
	PhaseInput TickPhase = iota
	PhaseTimers
	PhaseSpawn
	PhaseMotion
	PhasePhysics
	PhaseCollision
	numPhases
)

var phaseNames = [numPhases]string{"input", "timers", "spawn", "motion", "physics", "collision"}

func (p TickPhase) String() string {
	if p < 0 || p >= numPhases {
		return "unknown"
	}
	return phaseNames[p]
}

// Phases returns every tick phase in execution order.
func Phases() []TickPhase {
	out := make([]TickPhase, numPhases)
	for i := range out {
		out[i] = TickPhase(i)
	}
	return out
}

// tickSample is the timing of one simulation tick.
type tickSample struct {
	tick    int
	bubbles int
	total   time.Duration
	phases  [numPhases]time.Duration
}

// PerfCollector keeps the timings of the last N simulation ticks.
type PerfCollector struct {
	now func() time.Time

	ring   []tickSample
	next   int
	filled int

	cur    tickSample
	active TickPhase
	start  time.Time
	mark   time.Time

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector over a window of ticks.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		now:    time.Now,
		ring:   make([]tickSample, window),
		active: -1,
	}
}

// BeginTick starts timing simulation tick n.
func (p *PerfCollector) BeginTick(n int) {
	p.start = p.now()
	p.mark = p.start
	p.cur = tickSample{tick: n}
	p.active = -1
}

// Phase closes the running phase, if any, and opens ph.
func (p *PerfCollector) Phase(ph TickPhase) {
	t := p.now()
	p.closePhase(t)
	p.active = ph
	p.mark = t
}

// EndTick closes the tick and stores it with the live bubble count.
func (p *PerfCollector) EndTick(bubbles int) {
	t := p.now()
	p.closePhase(t)
	p.active = -1

	p.cur.bubbles = bubbles
	p.cur.total = t.Sub(p.start)
	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	p.filled = min(p.filled+1, len(p.ring))
}

func (p *PerfCollector) closePhase(t time.Time) {
	if p.active >= 0 && p.active < numPhases {
		p.cur.phases[p.active] += t.Sub(p.mark)
	}
}

// RecordFrame marks a presented frame.
func (p *PerfCollector) RecordFrame() {
	t := p.now()
	if !p.lastFrame.IsZero() {
		p.frame = t.Sub(p.lastFrame)
	}
	p.lastFrame = t
}

// PerfStats summarizes the tick window.
type PerfStats struct {
	Tick        int // most recent tick in the window
	Ticks       int // ticks in the window
	Bubbles     int // live bubbles after the most recent tick
	PeakBubbles int
	MeanTick    time.Duration
	WorstTick   time.Duration
	PhaseMean   [numPhases]time.Duration
	Frame       time.Duration
}

// Stats aggregates the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Ticks: p.filled, Frame: p.frame}
	if p.filled == 0 {
		return s
	}

	latest := p.ring[(p.next-1+len(p.ring))%len(p.ring)]
	s.Tick = latest.tick
	s.Bubbles = latest.bubbles

	var total time.Duration
	var phases [numPhases]time.Duration
	for _, smp := range p.ring[:p.filled] {
		total += smp.total
		s.WorstTick = max(s.WorstTick, smp.total)
		s.PeakBubbles = max(s.PeakBubbles, smp.bubbles)
		for i, d := range smp.phases {
			phases[i] += d
		}
	}

	n := time.Duration(p.filled)
	s.MeanTick = total / n
	for i := range phases {
		s.PhaseMean[i] = phases[i] / n
	}
	return s
}

// Share returns the fraction of the mean tick spent in ph.
func (s PerfStats) Share(ph TickPhase) float64 {
	if s.MeanTick <= 0 || ph < 0 || ph >= numPhases {
		return 0
	}
	return float64(s.PhaseMean[ph]) / float64(s.MeanTick)
}

// FPS is derived from the last frame interval.
func (s PerfStats) FPS() float64 {
	if s.Frame <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.Frame)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("tick", s.Tick),
		slog.Int("bubbles", s.Bubbles),
		slog.Int("peak_bubbles", s.PeakBubbles),
		slog.Int64("mean_tick_us", s.MeanTick.Microseconds()),
		slog.Int64("worst_tick_us", s.WorstTick.Microseconds()),
	}
	if fps := s.FPS(); fps > 0 {
		attrs = append(attrs, slog.Int("fps", int(fps)))
	}
	for _, ph := range Phases() {
		attrs = append(attrs, slog.Int64(ph.String()+"_us", s.PhaseMean[ph].Microseconds()))
	}
	return slog.GroupValue(attrs...)
}

// PerfRow is one perf.csv record.
type PerfRow struct {
	SimTime     float64 `csv:"sim_time"`
	Tick        int     `csv:"tick"`
	Bubbles     int     `csv:"bubbles"`
	PeakBubbles int     `csv:"peak_bubbles"`
	MeanTickUS  int64   `csv:"mean_tick_us"`
	WorstTickUS int64   `csv:"worst_tick_us"`
	FPS         float64 `csv:"fps"`
	InputUS     int64   `csv:"input_us"`
	TimersUS    int64   `csv:"timers_us"`
	SpawnUS     int64   `csv:"spawn_us"`
	MotionUS    int64   `csv:"motion_us"`
	PhysicsUS   int64   `csv:"physics_us"`
	CollisionUS int64   `csv:"collision_us"`
}

// Row flattens the stats for CSV output.
func (s PerfStats) Row(simTime float64) PerfRow {
	us := func(ph TickPhase) int64 { return s.PhaseMean[ph].Microseconds() }
	return PerfRow{
		SimTime:     simTime,
		Tick:        s.Tick,
		Bubbles:     s.Bubbles,
		PeakBubbles: s.PeakBubbles,
		MeanTickUS:  s.MeanTick.Microseconds(),
		WorstTickUS: s.WorstTick.Microseconds(),
		FPS:         s.FPS(),
		InputUS:     us(PhaseInput),
		TimersUS:    us(PhaseTimers),
		SpawnUS:     us(PhaseSpawn),
		MotionUS:    us(PhaseMotion),
		PhysicsUS:   us(PhasePhysics),
		CollisionUS: us(PhaseCollision),
	}
}
