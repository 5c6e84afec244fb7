package telemetry

// Collector accumulates events for the round in progress and keeps the
// history of finished rounds.
type Collector struct {
	active  bool
	round   int
	start   float64
	counts  [EventTilt + 1]int
	lastAte float64
	meals   []float64

	history []RoundStats
}

// NewCollector creates an idle collector.
func NewCollector() *Collector {
	return &Collector{}
}

// BeginRound starts counting a new round at sim time now. A round still in
// progress is discarded.
func (c *Collector) BeginRound(now float64) {
	c.active = true
	c.round++
	c.start = now
	c.lastAte = now
	c.counts = [EventTilt + 1]int{}
	c.meals = c.meals[:0]
}

// Active reports whether a round is being counted.
func (c *Collector) Active() bool {
	return c.active
}

// Record counts one event at sim time now. Events outside a round are
// ignored.
func (c *Collector) Record(e EventType, now float64) {
	if !c.active || int(e) >= len(c.counts) {
		return
	}
	c.counts[e]++
	if e == EventFoodEaten {
		c.meals = append(c.meals, now-c.lastAte)
		c.lastAte = now
	}
}

// Count returns how many events of type e the current round has seen.
func (c *Collector) Count(e EventType) int {
	if int(e) >= len(c.counts) {
		return 0
	}
	return c.counts[e]
}

// EndRound closes the current round and returns its stats. The second
// result is false when no round was active.
func (c *Collector) EndRound(now float64, score int, reason EndReason) (RoundStats, bool) {
	if !c.active {
		return RoundStats{}, false
	}
	c.active = false

	mealMean, _ := MeanStd(c.meals)
	rs := RoundStats{
		Round:            c.round,
		StartTime:        c.start,
		Duration:         now - c.start,
		Score:            score,
		Reason:           reason,
		FoodEaten:        c.counts[EventFoodEaten],
		BubblesSpawned:   c.counts[EventBubbleSpawned],
		BubblesExpired:   c.counts[EventBubbleExpired],
		Taps:             c.counts[EventTap],
		Tilts:            c.counts[EventTilt],
		MealIntervalMean: mealMean,
	}
	c.history = append(c.history, rs)
	return rs, true
}

// Rounds returns every finished round in order.
func (c *Collector) Rounds() []RoundStats {
	return c.history
}
