package game

// Event is a notable moment for frontends that play sounds or effects.
type Event uint8

const (
	EventRoundStart Event = iota
	EventFoodEaten
	EventBubbleHit
)

// String returns the snake_case event name.
func (e Event) String() string {
	switch e {
	case EventRoundStart:
		return "round_start"
	case EventFoodEaten:
		return "food_eaten"
	case EventBubbleHit:
		return "bubble_hit"
	default:
		return "unknown"
	}
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// Events returns the events raised since the previous call and clears
// the queue.
func (g *Game) Events() []Event {
	out := g.events
	g.events = nil
	return out
}
