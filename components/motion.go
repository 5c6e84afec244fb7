package components

// ActionKind identifies a scripted motion step.
type ActionKind uint8

const (
	ActionMove ActionKind = iota
	ActionRotate
)

// Action is one timed step of scripted motion. From* fields are captured
// when the action starts running.
type Action struct {
	Kind     ActionKind
	Duration float64

	TargetX, TargetY float64
	TargetAngle      float64
	ShortestArc      bool

	Elapsed   float64
	Started   bool
	FromX     float64
	FromY     float64
	FromAngle float64
	Sweep     float64 // signed rotation to cover
}

// MoveTo returns an action that moves linearly to (x, y).
func MoveTo(x, y, duration float64) Action {
	return Action{Kind: ActionMove, TargetX: x, TargetY: y, Duration: duration}
}

// RotateTo returns an action that rotates to angle, taking the shorter arc
// when shortest is set.
func RotateTo(angle, duration float64, shortest bool) Action {
	return Action{Kind: ActionRotate, TargetAngle: angle, Duration: duration, ShortestArc: shortest}
}

// Motion is a sequential queue of actions.
type Motion struct {
	Queue []Action
}

// Busy reports whether any action is pending.
func (m *Motion) Busy() bool {
	return len(m.Queue) > 0
}

// Clear drops all pending actions.
func (m *Motion) Clear() {
	m.Queue = m.Queue[:0]
}

// Run appends actions to run after the current ones.
func (m *Motion) Run(actions ...Action) {
	m.Queue = append(m.Queue, actions...)
}
