// Package content loads the externally authored event pool and endings.
// The core treats both as static data from a content provider; anything
// malformed or incomplete is a content error surfaced at load time so the
// game never starts on bad data.
package content

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
)

const (
	// PoolSize is the required size of the event pool.
	PoolSize = 10
	// ChoicesPerEvent is the required number of choices per event.
	ChoicesPerEvent = 3
)

// LoadEvents reads the event pool from a JSON file (a top-level array of
// events) and validates it: exactly 10 events with unique ids, exactly one
// event fixed to each of positions 1, 6 and 7, three choices per event and
// at least one non-extreme choice among them.
func LoadEvents(path string) ([]game.Event, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read events file %s: %w", path, err)
	}
	var events []game.Event
	if err := json.Unmarshal(b, &events); err != nil {
		return nil, fmt.Errorf("failed to parse events file %s: %w", path, err)
	}
	if err := ValidateEvents(events); err != nil {
		return nil, fmt.Errorf("events file %s: %w", path, err)
	}
	return events, nil
}

// ValidateEvents enforces the event pool contract. Exported so the
// simulator can validate pools it builds in memory.
func ValidateEvents(events []game.Event) error {
	if len(events) != PoolSize {
		return fmt.Errorf("pool must contain exactly %d events, got %d", PoolSize, len(events))
	}

	ids := make(map[string]struct{}, len(events))
	fixedSeen := make(map[int]string, 3)
	for i := range events {
		ev := &events[i]
		if ev.ID == "" {
			return fmt.Errorf("event at index %d is missing an id", i)
		}
		if _, dup := ids[ev.ID]; dup {
			return fmt.Errorf("duplicate event id %q", ev.ID)
		}
		ids[ev.ID] = struct{}{}

		switch ev.FixedPosition {
		case 0:
			// random-pool event
		case 1, 6, game.TotalRounds:
			if prev, dup := fixedSeen[ev.FixedPosition]; dup {
				return fmt.Errorf("events %q and %q are both fixed to position %d", prev, ev.ID, ev.FixedPosition)
			}
			fixedSeen[ev.FixedPosition] = ev.ID
		default:
			return fmt.Errorf("event %q has invalid fixed position %d (allowed: 1, 6, 7)", ev.ID, ev.FixedPosition)
		}

		if len(ev.Choices) != ChoicesPerEvent {
			return fmt.Errorf("event %q must have exactly %d choices, got %d", ev.ID, ChoicesPerEvent, len(ev.Choices))
		}
		nonExtreme := false
		seenChoice := make(map[string]struct{}, ChoicesPerEvent)
		for _, ch := range ev.Choices {
			if ch.ID != "A" && ch.ID != "B" && ch.ID != "C" {
				return fmt.Errorf("event %q has invalid choice id %q", ev.ID, ch.ID)
			}
			if _, dup := seenChoice[ch.ID]; dup {
				return fmt.Errorf("event %q has duplicate choice id %q", ev.ID, ch.ID)
			}
			seenChoice[ch.ID] = struct{}{}
			if !ch.IsExtreme {
				nonExtreme = true
			}
		}
		if !nonExtreme {
			return fmt.Errorf("event %q has no non-extreme choice", ev.ID)
		}
	}

	for _, pos := range []int{1, 6, game.TotalRounds} {
		if _, ok := fixedSeen[pos]; !ok {
			return fmt.Errorf("no event fixed to position %d", pos)
		}
	}
	return nil
}

// LoadEndings reads the endings file (a top-level array) and verifies all
// five ending ids used by the resolver are present.
func LoadEndings(path string) (map[game.EndingID]game.Ending, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read endings file %s: %w", path, err)
	}
	var list []game.Ending
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("failed to parse endings file %s: %w", path, err)
	}

	out := make(map[game.EndingID]game.Ending, len(list))
	for _, e := range list {
		if e.ID == "" {
			return nil, fmt.Errorf("endings file %s: ending missing id", path)
		}
		if _, dup := out[e.ID]; dup {
			return nil, fmt.Errorf("endings file %s: duplicate ending id %q", path, e.ID)
		}
		out[e.ID] = e
	}
	for _, id := range game.AllEndingIDs {
		if _, ok := out[id]; !ok {
			return nil, fmt.Errorf("endings file %s: missing required ending %q", path, id)
		}
	}
	return out, nil
}
