package game

// Autopilot plays the game without a human: it taps toward the food on a
// fixed cadence and taps to restart once a round has ended. Used for
// headless soak runs.
type Autopilot struct {
	Interval float64 // seconds between steering taps
	next     float64
}

// NewAutopilot creates an autopilot that steers every interval seconds.
func NewAutopilot(interval float64) *Autopilot {
	return &Autopilot{Interval: interval}
}

// Step issues at most one tap for the current state.
func (a *Autopilot) Step(g *Game) {
	s := g.Session()
	switch {
	case s.CanRestart:
		g.Tap(0, 0)
		a.next = g.Now()
	case s.Phase == PhasePlaying && g.Now() >= a.next:
		food := g.World().FoodPosition()
		g.Tap(food.X, food.Y)
		a.next = g.Now() + a.Interval
	}
}
