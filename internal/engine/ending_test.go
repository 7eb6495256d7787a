package engine

import (
	"testing"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/rng"
)

func finalState(r Rules) *game.State {
	s := NewState(r, zeroSequence())
	s.Round = game.TotalRounds
	s.Phase = game.PhaseComplete
	return s
}

func TestResolveEnding_CollapsePrecedesHeavenDominance(t *testing.T) {
	r := DefaultRules()
	s := finalState(r)
	s.Stability = 15
	s.Heaven = 95

	res := ResolveEnding(r, s)
	if res.EndingID != game.EndingHumanCollapse {
		t.Fatalf("expected human_collapse, got %s", res.EndingID)
	}
}

func TestResolveEnding_Dominance(t *testing.T) {
	r := DefaultRules()

	s := finalState(r)
	s.Heaven = 90
	if res := ResolveEnding(r, s); res.EndingID != game.EndingHeavenDominance {
		t.Fatalf("expected heaven_dominance, got %s", res.EndingID)
	}

	s = finalState(r)
	s.Hell = 92
	if res := ResolveEnding(r, s); res.EndingID != game.EndingHellDominance {
		t.Fatalf("expected hell_dominance, got %s", res.EndingID)
	}
}

func TestResolveEnding_RebellionGating(t *testing.T) {
	r := DefaultRules()
	s := finalState(r)
	s.Heaven = 60
	s.Hell = 55
	s.Stability = 70
	s.Pressure = 80
	s.ConsecutiveBalanceCount = 3
	s.ExtremeChoiceCount = 1

	res := ResolveEnding(r, s)
	if !s.RebellionFlag {
		t.Fatalf("expected rebellion flag to be set")
	}
	if res.EndingID != game.EndingHumanRebellion {
		t.Fatalf("expected human_rebellion, got %s", res.EndingID)
	}
}

func TestResolveEnding_RebellionBlockedByExtremeChoices(t *testing.T) {
	r := DefaultRules()
	s := finalState(r)
	s.Stability = 70
	s.Pressure = 80
	s.ConsecutiveBalanceCount = 3
	s.ExtremeChoiceCount = 2 // above the default gate of 1

	res := ResolveEnding(r, s)
	if s.RebellionFlag {
		t.Fatalf("rebellion flag must not be set with %d extreme choices", s.ExtremeChoiceCount)
	}
	if res.EndingID != game.EndingFalsePeace {
		t.Fatalf("expected false_peace, got %s", res.EndingID)
	}
}

func TestResolveEnding_RebellionGateConfigurable(t *testing.T) {
	r := DefaultRules()
	r.MaxExtremeChoices = 2
	s := finalState(r)
	s.Stability = 70
	s.Pressure = 80
	s.ConsecutiveBalanceCount = 3
	s.ExtremeChoiceCount = 2

	if res := ResolveEnding(r, s); res.EndingID != game.EndingHumanRebellion {
		t.Fatalf("expected human_rebellion with the relaxed gate, got %s", res.EndingID)
	}
}

func TestResolveEnding_RebellionBlockedByPressure(t *testing.T) {
	r := DefaultRules()
	s := finalState(r)
	s.Stability = 70
	s.Pressure = 85 // not < 85
	s.ConsecutiveBalanceCount = 3
	s.ExtremeChoiceCount = 0

	if res := ResolveEnding(r, s); res.EndingID != game.EndingFalsePeace {
		t.Fatalf("expected false_peace, got %s", res.EndingID)
	}
}

func TestResolveEnding_FalsePeaceFallback(t *testing.T) {
	r := DefaultRules()
	s := finalState(r)
	s.Heaven = 55
	s.Hell = 50
	s.Stability = 60
	s.Pressure = 40

	res := ResolveEnding(r, s)
	if s.RebellionFlag {
		t.Fatalf("expected rebellion flag false")
	}
	if res.EndingID != game.EndingFalsePeace {
		t.Fatalf("expected false_peace, got %s", res.EndingID)
	}
}

func TestFullPlaythrough_RebellionPath(t *testing.T) {
	r := DefaultRules()
	// Events whose A choice keeps heaven/hell balanced and stability high.
	seq := make([]game.Event, game.TotalRounds)
	for i := range seq {
		seq[i] = game.Event{
			ID: "calm",
			Choices: []game.Choice{
				{ID: "A", Effect: game.Effect{Stability: 3}},
				{ID: "B", Effect: game.Effect{Heaven: 20}},
				{ID: "C", Effect: game.Effect{Hell: 20}, IsExtreme: true},
			},
		}
	}
	s := NewState(r, seq)
	src := &rng.Script{Floats: []float64{0.9}}

	for round := 1; round <= game.TotalRounds; round++ {
		mustEvent(t, s, "A")
		if _, err := ApplyRecordChoice(r, s, game.RecordTruthful, src); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		out, err := AdvanceRound(r, s)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if round < game.TotalRounds && out.Ending != nil {
			t.Fatalf("round %d: premature ending", round)
		}
		if round == game.TotalRounds {
			if out.Ending == nil {
				t.Fatalf("expected an ending after round 7")
			}
			if out.Ending.EndingID != game.EndingHumanRebellion {
				t.Fatalf("expected human_rebellion, got %s (state %+v)", out.Ending.EndingID, s)
			}
		}
	}
	if s.Phase != game.PhaseEnding {
		t.Fatalf("expected ending phase, got %s", s.Phase)
	}
	if _, err := AdvanceRound(r, s); err != ErrGameFinished {
		t.Fatalf("expected ErrGameFinished after the ending, got %v", err)
	}
}
