package engine

import (
	"fmt"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
)

// testPool builds a valid 10-event pool: one event fixed to each of
// positions 1, 6 and 7 plus seven random-pool events.
func testPool() []game.Event {
	pool := make([]game.Event, 0, 10)
	pool = append(pool, testEvent("fixed_1", 1))
	for i := 1; i <= 7; i++ {
		pool = append(pool, testEvent(fmt.Sprintf("rand_%d", i), 0))
	}
	pool = append(pool, testEvent("fixed_6", 6))
	pool = append(pool, testEvent("fixed_7", 7))
	return pool
}

func testEvent(id string, fixed int) game.Event {
	return game.Event{
		ID:            id,
		FixedPosition: fixed,
		Choices: []game.Choice{
			{ID: "A", Effect: game.Effect{Heaven: 5, Hell: -3}},
			{ID: "B", Effect: game.Effect{Hell: 5, Stability: -2}},
			{ID: "C", Effect: game.Effect{Stability: 4, Pressure: 2}, IsExtreme: true},
		},
	}
}

// zeroEvent returns an event whose choices change nothing, so tests can
// isolate record-action and ramp behavior.
func zeroEvent(id string) game.Event {
	return game.Event{
		ID: id,
		Choices: []game.Choice{
			{ID: "A"},
			{ID: "B"},
			{ID: "C", IsExtreme: true},
		},
	}
}

func zeroSequence() []game.Event {
	seq := make([]game.Event, game.TotalRounds)
	for i := range seq {
		seq[i] = zeroEvent(fmt.Sprintf("ev_%d", i+1))
	}
	return seq
}
