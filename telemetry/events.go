// Package telemetry records per-round gameplay statistics and tick timing.
package telemetry

// EndReason records why a round ended.
type EndReason string

const (
	ReasonBubble   EndReason = "bubble"   // fish touched a bubble
	ReasonRestart  EndReason = "restart"  // restarted while playing
	ReasonShutdown EndReason = "shutdown" // process exited mid-round
)

// EventType identifies a countable in-round event.
type EventType uint8

const (
	EventFoodEaten EventType = iota
	EventBubbleSpawned
	EventBubbleExpired
	EventTap
	EventTilt
)

// String returns the snake_case name used in logs.
func (e EventType) String() string {
	switch e {
	case EventFoodEaten:
		return "food_eaten"
	case EventBubbleSpawned:
		return "bubble_spawned"
	case EventBubbleExpired:
		return "bubble_expired"
	case EventTap:
		return "tap"
	case EventTilt:
		return "tilt"
	default:
		return "unknown"
	}
}
