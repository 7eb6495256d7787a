package engine

import (
	"errors"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/rng"
)

// Protocol violations: the caller submitted an input that is not valid for
// the current phase or references an unknown id. These indicate a caller
// bug and are never silently ignored.
var (
	ErrWrongPhase    = errors.New("input is not valid for the current phase")
	ErrUnknownChoice = errors.New("unknown event choice id")
	ErrUnknownAction = errors.New("unknown record action")
	ErrGameFinished  = errors.New("playthrough already reached an ending")
)

// EventOutcome reports what applying an event choice did.
type EventOutcome struct {
	Applied game.Effect `json:"applied"`
	Extreme bool        `json:"extreme"`
}

// ApplyEventChoice performs steps 1-2 of the round sequence: apply the
// chosen choice's effect vector (no clamp yet) and track extreme choices.
// Valid while the phase is event (or penalty: choosing dismisses the
// penalty screen). Transitions to the record phase.
func ApplyEventChoice(s *game.State, choiceID string) (EventOutcome, error) {
	if s.Phase != game.PhaseEvent && s.Phase != game.PhasePenalty {
		return EventOutcome{}, ErrWrongPhase
	}
	ev := s.CurrentEvent()
	if ev == nil {
		return EventOutcome{}, ErrGameFinished
	}
	ch := ev.Choice(choiceID)
	if ch == nil {
		return EventOutcome{}, ErrUnknownChoice
	}

	s.Heaven += ch.Effect.Heaven
	s.Hell += ch.Effect.Hell
	s.Stability += ch.Effect.Stability
	s.Pressure += ch.Effect.Pressure

	// Cumulative across the whole game, never reset.
	if ch.IsExtreme {
		s.ExtremeChoiceCount++
	}

	s.Phase = game.PhaseRecord
	s.History = append(s.History, game.HistoryEntry{
		Round:     s.Round,
		EventID:   ev.ID,
		ChoiceID:  ch.ID,
		IsExtreme: ch.IsExtreme,
	})
	return EventOutcome{Applied: ch.Effect, Extreme: ch.IsExtreme}, nil
}

// RecordOutcome reports what applying a record action did.
type RecordOutcome struct {
	Applied game.Effect `json:"applied"`
	// TruthBonusFired is true when the third consecutive truthful record
	// granted the stability bonus (the presentation layer shows flavor
	// feedback for it).
	TruthBonusFired bool `json:"truth_bonus_fired"`
	// PenaltyArmed is true when a seal roll just set the pending archive
	// penalty for the next round.
	PenaltyArmed bool `json:"penalty_armed"`
}

// ApplyRecordChoice performs steps 3-6 of the round sequence: record action
// effect (including truth-counter logic and the seal roll), rebellion
// balance tracking, pressure growth and the clamp. The order is load-bearing;
// reordering any of these steps is a correctness bug. Transitions to the
// complete phase.
func ApplyRecordChoice(r Rules, s *game.State, action game.RecordAction, src rng.Source) (RecordOutcome, error) {
	if s.Phase != game.PhaseRecord {
		return RecordOutcome{}, ErrWrongPhase
	}
	if !action.Valid() {
		return RecordOutcome{}, ErrUnknownAction
	}

	var out RecordOutcome
	switch action {
	case game.RecordTruthful:
		s.TruthCounter++
		if s.TruthCounter >= r.TruthStreakTarget {
			s.Stability += r.TruthStabilityBonus
			s.TruthCounter = 0
			out.TruthBonusFired = true
			out.Applied.Stability = r.TruthStabilityBonus
		}
	case game.RecordEmbellish:
		s.Heaven += r.EmbellishHeavenBonus
		s.TruthCounter = 0
		out.Applied.Heaven = r.EmbellishHeavenBonus
	case game.RecordObscure:
		s.Hell += r.ObscureHellBonus
		s.TruthCounter = 0
		out.Applied.Hell = r.ObscureHellBonus
	case game.RecordSeal:
		s.Pressure += r.SealPressureDelta
		s.TruthCounter = 0
		out.Applied.Pressure = r.SealPressureDelta
		// The roll happens on every seal, even while a penalty is already
		// pending; a true result leaves the flag true, it never stacks.
		if src.Float64() < r.SealPenaltyChance {
			s.SealPenaltyNextRound = true
			out.PenaltyArmed = true
		}
	}

	// Consecutive balance window for the hidden rebellion path.
	balanced := abs(s.Heaven-s.Hell) <= r.BalanceDiffMax && s.Stability >= r.BalanceStabilityMin
	if balanced {
		s.ConsecutiveBalanceCount++
	} else {
		s.ConsecutiveBalanceCount = 0
	}

	// Round-indexed base pressure growth, added exactly once per round.
	if s.Round >= 1 && s.Round <= len(r.PressureRamp) {
		s.Pressure += r.PressureRamp[s.Round-1]
	}

	s.ClampMeters()

	// Complete the history entry started by the event choice.
	h := &s.History[len(s.History)-1]
	h.RecordAction = action
	h.Heaven = s.Heaven
	h.Hell = s.Hell
	h.Stability = s.Stability
	h.Pressure = s.Pressure

	s.Phase = game.PhaseComplete
	return out, nil
}

// AdvanceOutcome reports the result of finishing a round.
type AdvanceOutcome struct {
	// Ending is non-nil only when round 7 just completed.
	Ending *game.EndingResult `json:"ending,omitempty"`
	// PenaltyApplied is true when the pending archive penalty fired at the
	// start of the new round; Applied carries its effect so the caller can
	// display the fixed penalty text.
	PenaltyApplied bool        `json:"penalty_applied"`
	Applied        game.Effect `json:"applied"`
}

// AdvanceRound moves a completed round forward. On round 7 it computes the
// rebellion flag and resolves the ending (terminal). Otherwise it
// increments the round and consumes a pending seal penalty, applying
// stability/heaven deltas before the new round's event choice.
func AdvanceRound(r Rules, s *game.State) (AdvanceOutcome, error) {
	switch s.Phase {
	case game.PhaseComplete:
	case game.PhaseEnding:
		return AdvanceOutcome{}, ErrGameFinished
	default:
		return AdvanceOutcome{}, ErrWrongPhase
	}

	if s.Round >= game.TotalRounds {
		res := ResolveEnding(r, s)
		return AdvanceOutcome{Ending: &res}, nil
	}

	s.Round++
	s.Phase = game.PhaseEvent

	var out AdvanceOutcome
	if s.SealPenaltyNextRound {
		s.Stability += r.SealPenaltyStability
		s.Heaven += r.SealPenaltyHeaven
		s.ClampMeters()
		s.SealPenaltyNextRound = false
		s.Phase = game.PhasePenalty
		out.PenaltyApplied = true
		out.Applied = game.Effect{Stability: r.SealPenaltyStability, Heaven: r.SealPenaltyHeaven}
	}
	return out, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
