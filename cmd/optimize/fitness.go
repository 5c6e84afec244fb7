package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/starvingfish/config"
	"github.com/pthm-cable/starvingfish/game"
	"github.com/pthm-cable/starvingfish/telemetry"
)

// FitnessEvaluator runs headless autopilot sessions and scores how close
// their mean round length is to a target.
type FitnessEvaluator struct {
	params     *ParamVector
	maxSeconds float64
	target     float64
	seeds      []int64
	baseConfig *config.Config
	autopilot  float64 // seconds between autopilot taps

	mu         sync.Mutex
	lastResult evalResult
}

// evalResult summarizes one Evaluate call across seeds.
type evalResult struct {
	MeanRound float64
	StdRound  float64
	MeanScore float64
	Rounds    int
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxSeconds, target float64, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxSeconds: maxSeconds,
		target:     target,
		seeds:      seeds,
		baseConfig: baseCfg,
		autopilot:  1.0,
	}
}

// LastResult returns the summary of the most recent evaluation.
func (fe *FitnessEvaluator) LastResult() evalResult {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastResult
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	// Run all seeds in parallel
	results := make([][]telemetry.RoundStats, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var all []telemetry.RoundStats
	for _, r := range results {
		all = append(all, r...)
	}

	res, fitness := fe.score(all)

	fe.mu.Lock()
	fe.lastResult = res
	fe.mu.Unlock()

	return fitness
}

// score turns finished rounds into a fitness value: squared relative error
// of the mean round length plus a smaller term for its spread.
func (fe *FitnessEvaluator) score(rounds []telemetry.RoundStats) (evalResult, float64) {
	if len(rounds) == 0 {
		// The autopilot never died: far too easy.
		return evalResult{MeanRound: fe.maxSeconds}, math.Pow((fe.maxSeconds-fe.target)/fe.target, 2) + 1
	}

	durations := make([]float64, len(rounds))
	scores := make([]float64, len(rounds))
	for i, r := range rounds {
		durations[i] = r.Duration
		scores[i] = float64(r.Score)
	}
	mean, std := telemetry.MeanStd(durations)
	meanScore, _ := telemetry.MeanStd(scores)

	res := evalResult{MeanRound: mean, StdRound: std, MeanScore: meanScore, Rounds: len(rounds)}
	rel := (mean - fe.target) / fe.target
	spread := std / fe.target
	return res, rel*rel + 0.1*spread*spread
}

// runSimulation plays one seed for maxSeconds of simulation time and
// returns the rounds that ended on a bubble.
func (fe *FitnessEvaluator) runSimulation(base *config.Config, seed int64) []telemetry.RoundStats {
	cfg := *base
	g, err := game.New(&cfg, game.Options{Seed: seed})
	if err != nil {
		return nil
	}

	pilot := game.NewAutopilot(fe.autopilot)
	step := 1 / float64(max(cfg.Screen.TargetFPS, 1))
	for g.Now() < fe.maxSeconds {
		pilot.Step(g)
		g.Update(g.Now() + step)
		g.Events()
	}
	g.Close()

	var out []telemetry.RoundStats
	for _, r := range g.Rounds() {
		if r.Reason == telemetry.ReasonBubble {
			out = append(out, r)
		}
	}
	return out
}

// copyConfig returns a copy of the base config. Config holds only values.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
