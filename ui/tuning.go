package ui

import (
	"fmt"

	"github.com/pthm-cable/starvingfish/config"
)

// TuningParam is one live-editable config value.
type TuningParam struct {
	Label    string
	Min, Max float32
	Format   string
	Get      func(*config.Config) float64
	Set      func(*config.Config, float64)
}

// Value reads the parameter clamped to its range.
func (p TuningParam) Value(cfg *config.Config) float32 {
	return max(p.Min, min(float32(p.Get(cfg)), p.Max))
}

// Apply writes v, clamped to the range, and reports whether the config changed.
func (p TuningParam) Apply(cfg *config.Config, v float32) bool {
	v = max(p.Min, min(v, p.Max))
	if float64(v) == p.Get(cfg) {
		return false
	}
	p.Set(cfg, float64(v))
	return true
}

// Text formats the current value for display.
func (p TuningParam) Text(cfg *config.Config) string {
	return fmt.Sprintf(p.Format, p.Get(cfg))
}

// DefaultTuning returns the parameters exposed on the tuning panel. The game
// reads each of them on every tick or input, so edits apply immediately.
func DefaultTuning() []TuningParam {
	return []TuningParam{
		{
			Label: "Spawn interval", Min: 0.1, Max: 5, Format: "%.1fs",
			Get: func(c *config.Config) float64 { return c.Spawner.Interval },
			Set: func(c *config.Config, v float64) { c.Spawner.Interval = v },
		},
		{
			Label: "Gravity", Min: 0, Max: 20, Format: "%.1f",
			Get: func(c *config.Config) float64 { return c.Physics.GravityMultiplier },
			Set: func(c *config.Config, v float64) { c.Physics.GravityMultiplier = v },
		},
		{
			Label: "Max speed", Min: 0, Max: 600, Format: "%.0f",
			Get: func(c *config.Config) float64 { return c.Physics.MaxBubbleSpeed },
			Set: func(c *config.Config, v float64) { c.Physics.MaxBubbleSpeed = v },
		},
		{
			Label: "Move time", Min: 0.1, Max: 3, Format: "%.1fs",
			Get: func(c *config.Config) float64 { return c.Input.MoveDuration },
			Set: func(c *config.Config, v float64) { c.Input.MoveDuration = v },
		},
	}
}
