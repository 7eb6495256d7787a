// Package sim runs Monte Carlo playthroughs with randomized policies to
// calibrate tuning, chiefly the rebellion extreme-choice gate against the
// 5-15% hidden-ending target.
package sim

import (
	"fmt"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/engine"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/rng"
)

// Policy is the record-action strategy of a simulated player, as relative
// weights. Event choices are drawn uniformly.
type Policy struct {
	Truthful  float64
	Embellish float64
	Obscure   float64
	Seal      float64
}

// DefaultPolicy spreads record actions evenly.
func DefaultPolicy() Policy {
	return Policy{Truthful: 0.25, Embellish: 0.25, Obscure: 0.25, Seal: 0.25}
}

var recordActions = []game.RecordAction{
	game.RecordTruthful,
	game.RecordEmbellish,
	game.RecordObscure,
	game.RecordSeal,
}

func (p Policy) normalized() ([4]float64, error) {
	w := [4]float64{p.Truthful, p.Embellish, p.Obscure, p.Seal}
	sum := 0.0
	for _, v := range w {
		if v < 0 {
			return w, fmt.Errorf("policy weights must be non-negative")
		}
		sum += v
	}
	if sum <= 0 {
		return w, fmt.Errorf("policy weights must sum to a positive value")
	}
	for i := range w {
		w[i] /= sum
	}
	return w, nil
}

func pickAction(weights [4]float64, draw float64) game.RecordAction {
	acc := 0.0
	for i, w := range weights {
		acc += w
		if draw <= acc {
			return recordActions[i]
		}
	}
	return recordActions[len(recordActions)-1]
}

// RunOne plays a single randomized playthrough to its ending.
func RunOne(rules engine.Rules, pool []game.Event, src rng.Source, policy Policy) (game.EndingID, *game.State, error) {
	weights, err := policy.normalized()
	if err != nil {
		return "", nil, err
	}
	seq, err := engine.BuildSequence(pool, src)
	if err != nil {
		return "", nil, err
	}
	s := engine.NewState(rules, seq)
	for {
		ev := s.CurrentEvent()
		idx := int(src.Float64() * float64(len(ev.Choices)))
		if idx >= len(ev.Choices) {
			idx = len(ev.Choices) - 1
		}
		if _, err := engine.ApplyEventChoice(s, ev.Choices[idx].ID); err != nil {
			return "", nil, err
		}
		if _, err := engine.ApplyRecordChoice(rules, s, pickAction(weights, src.Float64()), src); err != nil {
			return "", nil, err
		}
		out, err := engine.AdvanceRound(rules, s)
		if err != nil {
			return "", nil, err
		}
		if out.Ending != nil {
			return out.Ending.EndingID, s, nil
		}
	}
}

// Summary aggregates a Monte Carlo batch.
type Summary struct {
	Runs                int                      `json:"n_runs"`
	EndingProbabilities map[game.EndingID]float64 `json:"ending_probabilities"`
	ExtremeDistribution map[int]float64          `json:"extreme_count_distribution"`
	AvgExtremeChoices   float64                  `json:"avg_extreme_count"`
	AvgHeaven           float64                  `json:"avg_final_heaven"`
	AvgHell             float64                  `json:"avg_final_hell"`
	AvgStability        float64                  `json:"avg_final_stability"`
	AvgPressure         float64                  `json:"avg_final_pressure"`
	RebellionFlagRate   float64                  `json:"rebellion_flag_rate"`
}

// MonteCarlo simulates runs playthroughs and aggregates their outcomes.
func MonteCarlo(rules engine.Rules, pool []game.Event, src rng.Source, policy Policy, runs int) (Summary, error) {
	if runs <= 0 {
		return Summary{}, fmt.Errorf("runs must be positive, got %d", runs)
	}
	sum := Summary{
		Runs:                runs,
		EndingProbabilities: make(map[game.EndingID]float64),
		ExtremeDistribution: make(map[int]float64),
	}
	var heaven, hell, stability, pressure, extreme, flagged int
	for i := 0; i < runs; i++ {
		ending, s, err := RunOne(rules, pool, src, policy)
		if err != nil {
			return Summary{}, err
		}
		sum.EndingProbabilities[ending]++
		sum.ExtremeDistribution[s.ExtremeChoiceCount]++
		heaven += s.Heaven
		hell += s.Hell
		stability += s.Stability
		pressure += s.Pressure
		extreme += s.ExtremeChoiceCount
		if s.RebellionFlag {
			flagged++
		}
	}
	n := float64(runs)
	for k := range sum.EndingProbabilities {
		sum.EndingProbabilities[k] /= n
	}
	for k := range sum.ExtremeDistribution {
		sum.ExtremeDistribution[k] /= n
	}
	sum.AvgExtremeChoices = float64(extreme) / n
	sum.AvgHeaven = float64(heaven) / n
	sum.AvgHell = float64(hell) / n
	sum.AvgStability = float64(stability) / n
	sum.AvgPressure = float64(pressure) / n
	sum.RebellionFlagRate = float64(flagged) / n
	return sum, nil
}

// Target band for the hidden ending's trigger rate.
const (
	RebellionTargetMin = 0.05
	RebellionTargetMax = 0.15
)

// Suggestions returns tuning advice derived from the batch, mirroring the
// calibration heuristics the design targets.
func (s Summary) Suggestions() []string {
	var out []string
	hr := s.EndingProbabilities[game.EndingHumanRebellion]
	switch {
	case hr < RebellionTargetMin:
		out = append(out, "human_rebellion is below target: relax the pressure threshold or raise max_extreme_choices to 2")
	case hr > RebellionTargetMax:
		out = append(out, "human_rebellion is above target: tighten the pressure threshold or the balance window")
	default:
		out = append(out, "human_rebellion is inside the 5-15% target band")
	}
	fp := s.EndingProbabilities[game.EndingFalsePeace]
	switch {
	case fp > 0.70:
		out = append(out, "false_peace is dominant: increase late-game event volatility or ending sensitivity")
	case fp < 0.25:
		out = append(out, "false_peace is rare: first runs may feel too sharp, consider softening thresholds")
	default:
		out = append(out, "false_peace share looks reasonable")
	}
	return out
}
