package service

import (
	"time"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/constants"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/engine"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/logging"

	"github.com/google/uuid"
)

// StartGame creates a fresh playthrough: it builds the 7-event sequence
// from the pool with fresh randomness and resets all state, counters and
// history. Playing again is just another StartGame call; nothing carries
// over between sessions.
func (m *Manager) StartGame() (string, game.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seq, err := engine.BuildSequence(m.pool, m.src)
	if err != nil {
		return "", game.Snapshot{}, err
	}

	s := &session{
		id:        uuid.NewString(),
		state:     engine.NewState(m.rules, seq),
		startedAt: time.Now(),
	}
	m.sessions[s.id] = s

	logging.Info("playthrough started", logging.Fields{constants.LogFieldGameID: s.id})
	return s.id, s.state.Snapshot(), nil
}
