package game

// Phase is the round state.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseAwaitingRestart
)

// String returns the display name for a Phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseAwaitingRestart:
		return "awaiting_restart"
	default:
		return "unknown"
	}
}

// Session holds per-round game state. A fresh Session is installed by
// every restart.
type Session struct {
	Score           int
	Phase           Phase
	CanRestart      bool
	Generation      uint64
	LastBubbleSpawn float64
	PendingHeading  float64 // heading derived from the latest tilt

	// Overlay visibility
	ShowTitle bool
	ShowBody  bool
}
