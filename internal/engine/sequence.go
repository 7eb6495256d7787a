package engine

import (
	"fmt"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/rng"
)

// randomSlots is how many rounds (2-5) are filled from the random pool.
const randomSlots = 4

// BuildSequence builds the ordered 7-event sequence for one playthrough:
// [pos1, rand1, rand2, rand3, rand4, pos6, pos7]. The pool must contain
// exactly one event fixed to each of positions 1, 6 and 7 and at least four
// unfixed events. The unfixed remainder is shuffled with an unbiased
// shuffle and the first four fill rounds 2-5 in shuffled order.
//
// BuildSequence runs exactly once per playthrough; Play Again rebuilds the
// sequence from scratch with fresh randomness.
func BuildSequence(pool []game.Event, src rng.Source) ([]game.Event, error) {
	fixed := make(map[int]game.Event, 3)
	unfixed := make([]game.Event, 0, len(pool))
	for _, ev := range pool {
		switch ev.FixedPosition {
		case 0:
			unfixed = append(unfixed, ev)
		case 1, 6, game.TotalRounds:
			if _, dup := fixed[ev.FixedPosition]; dup {
				return nil, fmt.Errorf("event pool: more than one event fixed to position %d", ev.FixedPosition)
			}
			fixed[ev.FixedPosition] = ev
		default:
			return nil, fmt.Errorf("event pool: event %s has unsupported fixed position %d", ev.ID, ev.FixedPosition)
		}
	}
	for _, pos := range []int{1, 6, game.TotalRounds} {
		if _, ok := fixed[pos]; !ok {
			return nil, fmt.Errorf("event pool: no event fixed to position %d", pos)
		}
	}
	if len(unfixed) < randomSlots {
		return nil, fmt.Errorf("event pool: need at least %d random events, have %d", randomSlots, len(unfixed))
	}

	shuffled := append([]game.Event(nil), unfixed...)
	src.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	seq := make([]game.Event, 0, game.TotalRounds)
	seq = append(seq, fixed[1])
	seq = append(seq, shuffled[:randomSlots]...)
	seq = append(seq, fixed[6], fixed[game.TotalRounds])
	return seq, nil
}
