package service

import (
	"time"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/constants"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/engine"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/logging"
)

// AdvanceResult reports what happened when a completed round advanced:
// either the next round's phase (with an archive penalty, if one fired) or
// the terminal ending with its authored content.
type AdvanceResult struct {
	Outcome engine.AdvanceOutcome `json:"outcome"`
	// Ending carries the authored ending text when Outcome.Ending is set.
	Ending *game.Ending  `json:"ending,omitempty"`
	State  game.Snapshot `json:"state"`
}

// AdvanceRound finishes a completed round. On round 7 this resolves the
// ending and persists the playthrough result; persistence failures are
// logged but do not fail the playthrough.
func (m *Manager) AdvanceRound(id string) (AdvanceResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.get(id)
	if err != nil {
		return AdvanceResult{}, err
	}
	out, err := engine.AdvanceRound(m.rules, s.state)
	if err != nil {
		return AdvanceResult{}, err
	}

	res := AdvanceResult{Outcome: out, State: s.state.Snapshot()}
	if out.Ending != nil {
		s.result = out.Ending
		if e, ok := m.endings[out.Ending.EndingID]; ok {
			res.Ending = &e
		}
		logging.Info("playthrough finished", logging.Fields{
			constants.LogFieldGameID: s.id,
			constants.LogFieldEnding: string(out.Ending.EndingID),
		})
		m.persistResult(s, out.Ending)
	}
	return res, nil
}

func (m *Manager) persistResult(s *session, ending *game.EndingResult) {
	if m.repo == nil {
		return
	}
	row := &game.PlaythroughResult{
		SessionID:      s.id,
		EndingID:       string(ending.EndingID),
		Heaven:         s.state.Heaven,
		Hell:           s.state.Hell,
		Stability:      s.state.Stability,
		Pressure:       s.state.Pressure,
		ExtremeChoices: s.state.ExtremeChoiceCount,
		RoundsPlayed:   s.state.Round,
		StartedAt:      s.startedAt,
		FinishedAt:     time.Now(),
	}
	if err := m.repo.SaveResult(row); err != nil {
		logging.Error("failed to persist playthrough result", err, logging.Fields{constants.LogFieldGameID: s.id})
	}
}
