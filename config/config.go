// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Playfield PlayfieldConfig `yaml:"playfield"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Fish      FishConfig      `yaml:"fish"`
	Food      FoodConfig      `yaml:"food"`
	Bubble    BubbleConfig    `yaml:"bubble"`
	Spawner   SpawnerConfig   `yaml:"spawner"`
	Input     InputConfig     `yaml:"input"`
	Timers    TimersConfig    `yaml:"timers"`
	Text      TextConfig      `yaml:"text"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PlayfieldConfig holds the simulation area size in playfield units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`  // 0 = use screen width
	Height float64 `yaml:"height"` // 0 = use screen height
}

// PhysicsConfig holds integration parameters.
type PhysicsConfig struct {
	GravityMultiplier float64 `yaml:"gravity_multiplier"` // world gravity = -tilt * this
	PointsPerUnit     float64 `yaml:"points_per_unit"`    // gravity units to playfield units
	MaxBubbleSpeed    float64 `yaml:"max_bubble_speed"`   // per-axis clamp while playing
	MaxStep           float64 `yaml:"max_step"`           // longest dt a single tick may integrate
}

// FishConfig holds the fish body and pose.
type FishConfig struct {
	Radius float64 `yaml:"radius"`
	Scale  float64 `yaml:"scale"` // initial |scale| on both axes; x is mirrored so the fish faces right
}

// FoodConfig holds food body and placement parameters.
type FoodConfig struct {
	Radius float64 `yaml:"radius"`
	Margin float64 `yaml:"margin"` // minimum distance from every playfield edge
}

// BubbleConfig holds bubble generation parameters.
type BubbleConfig struct {
	TextureSize   float64 `yaml:"texture_size"`   // unscaled sprite width; radius = size*scale/2
	MinScale      float64 `yaml:"min_scale"`      // smallest scale
	ScaleStep     float64 `yaml:"scale_step"`     // scale granularity
	ScaleSteps    int     `yaml:"scale_steps"`    // number of distinct scales
	DampingFactor float64 `yaml:"damping_factor"` // damping = factor / scale
	Lifetime      float64 `yaml:"lifetime"`       // seconds before automatic removal
}

// SpawnerConfig holds spawn cadence.
type SpawnerConfig struct {
	Interval float64 `yaml:"interval"` // seconds between bubbles while playing
}

// InputConfig holds steering parameters.
type InputConfig struct {
	SensorInterval    float64 `yaml:"sensor_interval"`     // seconds between tilt samples
	HeadingDuration   float64 `yaml:"heading_duration"`    // rotate-to-heading after tilt
	MoveDuration      float64 `yaml:"move_duration"`       // move-to-tap duration
	TapRotateDuration float64 `yaml:"tap_rotate_duration"` // rotate-to-heading after a tap move
	FacingEpsilon     float64 `yaml:"facing_epsilon"`      // on-axis tolerance for facing decisions
}

// TimersConfig holds game-over sequencing delays.
type TimersConfig struct {
	FishRemoval float64 `yaml:"fish_removal"` // seconds after a fatal contact
	BodyReveal  float64 `yaml:"body_reveal"`  // seconds after a fatal contact
}

// TextConfig holds overlay strings.
type TextConfig struct {
	ScoreFormat   string `yaml:"score_format"`
	GameOverTitle string `yaml:"game_over_title"`
	GameOverBody  string `yaml:"game_over_body"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	SummaryEvery int `yaml:"summary_every"` // rounds between summary log lines (0 = never)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	PlayfieldW float64 // effective playfield width
	PlayfieldH float64 // effective playfield height
	ScreenW32  float32 // Screen.Width as float32
	ScreenH32  float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Bubble.MinScale <= 0:
		return fmt.Errorf("bubble.min_scale must be positive, got %v", c.Bubble.MinScale)
	case c.Bubble.ScaleSteps < 1:
		return fmt.Errorf("bubble.scale_steps must be at least 1, got %d", c.Bubble.ScaleSteps)
	case c.Spawner.Interval <= 0:
		return fmt.Errorf("spawner.interval must be positive, got %v", c.Spawner.Interval)
	case c.Input.SensorInterval <= 0:
		return fmt.Errorf("input.sensor_interval must be positive, got %v", c.Input.SensorInterval)
	case c.Physics.MaxBubbleSpeed < 0:
		return fmt.Errorf("physics.max_bubble_speed must not be negative, got %v", c.Physics.MaxBubbleSpeed)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// Playfield defaults to screen size if not specified
	c.Derived.PlayfieldW = c.Playfield.Width
	if c.Derived.PlayfieldW == 0 {
		c.Derived.PlayfieldW = float64(c.Screen.Width)
	}
	c.Derived.PlayfieldH = c.Playfield.Height
	if c.Derived.PlayfieldH == 0 {
		c.Derived.PlayfieldH = float64(c.Screen.Height)
	}

	// The food margin cannot exceed half the playfield on either axis.
	maxMargin := min(c.Derived.PlayfieldW, c.Derived.PlayfieldH) / 2
	if c.Food.Margin > maxMargin {
		c.Food.Margin = maxMargin
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
