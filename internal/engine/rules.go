package engine

import "github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"

// Rules holds every tunable the round engine and ending resolver consume.
// Values come from game-config.json; DefaultRules mirrors the shipped
// defaults so tests and the simulator can run without a config file.
type Rules struct {
	// PressureRamp[n-1] is added to pressure once, during round n.
	PressureRamp []int

	InitialHeaven    int
	InitialHell      int
	InitialStability int
	InitialPressure  int

	// Record action tuning.
	TruthStreakTarget    int
	TruthStabilityBonus  int
	EmbellishHeavenBonus int
	ObscureHellBonus     int
	SealPressureDelta    int
	SealPenaltyChance    float64
	SealPenaltyStability int
	SealPenaltyHeaven    int

	// Hidden rebellion tracking.
	BalanceDiffMax      int
	BalanceStabilityMin int
	ConsecutiveRequired int
	// MaxExtremeChoices is the rebellion gate K. The most sensitive tuning
	// constant in the system; calibrated with cmd/simulate.
	MaxExtremeChoices int

	// Ending thresholds.
	CollapseStabilityBelow int
	HeavenDominanceAt      int
	HellDominanceAt        int
	RebellionPressureBelow int
}

// DefaultRules returns the shipped tuning values.
func DefaultRules() Rules {
	return Rules{
		PressureRamp:     []int{3, 4, 5, 6, 8, 10, 12},
		InitialHeaven:    50,
		InitialHell:      50,
		InitialStability: 50,
		InitialPressure:  0,

		TruthStreakTarget:    3,
		TruthStabilityBonus:  3,
		EmbellishHeavenBonus: 2,
		ObscureHellBonus:     2,
		SealPressureDelta:    -2,
		SealPenaltyChance:    0.2,
		SealPenaltyStability: -5,
		SealPenaltyHeaven:    3,

		BalanceDiffMax:      10,
		BalanceStabilityMin: 65,
		ConsecutiveRequired: 3,
		MaxExtremeChoices:   1,

		CollapseStabilityBelow: 20,
		HeavenDominanceAt:      90,
		HellDominanceAt:        90,
		RebellionPressureBelow: 85,
	}
}

// NewState creates a fresh playthrough state over the given 7-event
// sequence. Meters, counters, hidden trackers and history all start from
// scratch; nothing persists across playthroughs.
func NewState(r Rules, events []game.Event) *game.State {
	return &game.State{
		Round:     1,
		Heaven:    r.InitialHeaven,
		Hell:      r.InitialHell,
		Stability: r.InitialStability,
		Pressure:  r.InitialPressure,
		Phase:     game.PhaseEvent,
		Events:    events,
		History:   make([]game.HistoryEntry, 0, game.TotalRounds),
	}
}
