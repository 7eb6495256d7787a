package engine

import "github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"

// ResolveEnding selects exactly one ending from the final state via a
// first-match priority chain. It computes the rebellion flag immediately
// before the chain runs and marks the state terminal. Called exactly once,
// after round 7's clamp step.
func ResolveEnding(r Rules, s *game.State) game.EndingResult {
	s.RebellionFlag = s.ConsecutiveBalanceCount >= r.ConsecutiveRequired &&
		s.ExtremeChoiceCount <= r.MaxExtremeChoices
	s.Phase = game.PhaseEnding

	return game.EndingResult{
		EndingID: endingFor(r, s),
		Final:    s.Snapshot(),
	}
}

// endingFor evaluates the priority chain top to bottom. The order matters:
// collapse outranks dominance, dominance outranks rebellion.
func endingFor(r Rules, s *game.State) game.EndingID {
	switch {
	case s.Stability < r.CollapseStabilityBelow:
		return game.EndingHumanCollapse
	case s.Heaven >= r.HeavenDominanceAt:
		return game.EndingHeavenDominance
	case s.Hell >= r.HellDominanceAt:
		return game.EndingHellDominance
	case s.RebellionFlag && s.Pressure < r.RebellionPressureBelow:
		return game.EndingHumanRebellion
	default:
		return game.EndingFalsePeace
	}
}
