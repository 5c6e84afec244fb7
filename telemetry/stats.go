package telemetry

import (
	"log/slog"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// RoundStats holds the outcome of one round.
type RoundStats struct {
	Round     int       `csv:"round"`
	StartTime float64   `csv:"start"`
	Duration  float64   `csv:"duration"`
	Score     int       `csv:"score"`
	Reason    EndReason `csv:"reason"`

	FoodEaten      int `csv:"food_eaten"`
	BubblesSpawned int `csv:"bubbles_spawned"`
	BubblesExpired int `csv:"bubbles_expired"`
	Taps           int `csv:"taps"`
	Tilts          int `csv:"tilts"`

	// Seconds between consecutive meals, including round start to first meal
	MealIntervalMean float64 `csv:"meal_interval_mean"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s RoundStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("round", s.Round),
		slog.Float64("start", s.StartTime),
		slog.Float64("duration", s.Duration),
		slog.Int("score", s.Score),
		slog.String("reason", string(s.Reason)),
		slog.Int("food_eaten", s.FoodEaten),
		slog.Int("bubbles_spawned", s.BubblesSpawned),
		slog.Int("bubbles_expired", s.BubblesExpired),
		slog.Int("taps", s.Taps),
		slog.Int("tilts", s.Tilts),
		slog.Float64("meal_interval_mean", s.MealIntervalMean),
	)
}

// Summary aggregates a series of rounds.
type Summary struct {
	Rounds       int
	TotalFood    int
	MaxScore     int
	MeanScore    float64
	StdScore     float64
	MedianScore  float64
	P90Score     float64
	MeanDuration float64
	P90Duration  float64
}

// Summarize computes aggregate statistics over rounds.
func Summarize(rounds []RoundStats) Summary {
	s := Summary{Rounds: len(rounds)}
	if len(rounds) == 0 {
		return s
	}

	scores := make([]float64, len(rounds))
	durations := make([]float64, len(rounds))
	for i, r := range rounds {
		scores[i] = float64(r.Score)
		durations[i] = r.Duration
		s.TotalFood += r.FoodEaten
		s.MaxScore = max(s.MaxScore, r.Score)
	}

	s.MeanScore, s.StdScore = MeanStd(scores)
	s.MeanDuration, _ = MeanStd(durations)

	slices.Sort(scores)
	slices.Sort(durations)
	s.MedianScore = Percentile(scores, 0.5)
	s.P90Score = Percentile(scores, 0.9)
	s.P90Duration = Percentile(durations, 0.9)

	return s
}

// MeanStd returns the mean and sample standard deviation of values.
// Standard deviation is 0 for fewer than two values.
func MeanStd(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	mean, std = stat.MeanStdDev(values, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return mean, std
}

// Percentile returns the empirical p-quantile of a sorted slice: the
// smallest value at or above fraction p of the data. p is clamped to
// [0, 1]. Returns 0 if the slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	p = min(max(p, 0), 1)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("rounds", s.Rounds),
		slog.Int("total_food", s.TotalFood),
		slog.Int("max_score", s.MaxScore),
		slog.Float64("mean_score", s.MeanScore),
		slog.Float64("std_score", s.StdScore),
		slog.Float64("median_score", s.MedianScore),
		slog.Float64("p90_score", s.P90Score),
		slog.Float64("mean_duration", s.MeanDuration),
		slog.Float64("p90_duration", s.P90Duration),
	)
}

// LogStats logs the summary using slog.
func (s Summary) LogStats() {
	slog.Info("summary", "stats", s)
}
