package service

import (
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/engine"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
)

// EventChoiceResult reports the effect delta applied by an event choice and
// the updated public state.
type EventChoiceResult struct {
	Outcome engine.EventOutcome `json:"outcome"`
	State   game.Snapshot       `json:"state"`
}

// SubmitEventChoice applies the A/B/C decision for the current round's
// event. Submitting outside the event phase or with an unknown choice id is
// a protocol violation and returns an engine sentinel error.
func (m *Manager) SubmitEventChoice(id, choiceID string) (EventChoiceResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.get(id)
	if err != nil {
		return EventChoiceResult{}, err
	}
	out, err := engine.ApplyEventChoice(s.state, choiceID)
	if err != nil {
		return EventChoiceResult{}, err
	}
	return EventChoiceResult{Outcome: out, State: s.state.Snapshot()}, nil
}

// RecordChoiceResult reports the record action's applied delta, whether a
// penalty/feedback text should display, and the updated public state.
type RecordChoiceResult struct {
	Outcome engine.RecordOutcome `json:"outcome"`
	State   game.Snapshot        `json:"state"`
}

// SubmitRecordChoice applies the round's record action, which also runs the
// rebellion balance tracking, the round's pressure growth and the clamp.
func (m *Manager) SubmitRecordChoice(id string, action game.RecordAction) (RecordChoiceResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.get(id)
	if err != nil {
		return RecordChoiceResult{}, err
	}
	out, err := engine.ApplyRecordChoice(m.rules, s.state, action, m.src)
	if err != nil {
		return RecordChoiceResult{}, err
	}
	return RecordChoiceResult{Outcome: out, State: s.state.Snapshot()}, nil
}
