package service

import (
	"errors"
	"sync"
	"time"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/engine"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/rng"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/storage"
)

var ErrGameNotFound = errors.New("game not found")

// Manager owns all live playthrough sessions. Each session is strictly
// sequential: the manager lock guarantees a round's mutations complete
// atomically before the next input is accepted. In-progress sessions are
// memory only; a session is persisted (as a PlaythroughResult) exactly once,
// when it reaches an ending.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session

	rules   engine.Rules
	pool    []game.Event
	endings map[game.EndingID]game.Ending
	repo    storage.Repository
	src     rng.Source
}

type session struct {
	id        string
	state     *game.State
	startedAt time.Time
	result    *game.EndingResult
}

// NewManager wires the engine tuning, the validated content and the
// randomness source into a session manager. repo may be nil when result
// persistence is not wanted (tests, simulator).
func NewManager(rules engine.Rules, pool []game.Event, endings map[game.EndingID]game.Ending, repo storage.Repository, src rng.Source) *Manager {
	return &Manager{
		sessions: make(map[string]*session),
		rules:    rules,
		pool:     pool,
		endings:  endings,
		repo:     repo,
		src:      src,
	}
}

func (m *Manager) get(id string) (*session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

// Snapshot returns the public view of a session's state. Hidden rebellion
// trackers are structurally absent from the snapshot type.
func (m *Manager) Snapshot(id string) (game.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.get(id)
	if err != nil {
		return game.Snapshot{}, err
	}
	return s.state.Snapshot(), nil
}

// Ending returns the authored ending content for an id.
func (m *Manager) Ending(id game.EndingID) (game.Ending, bool) {
	e, ok := m.endings[id]
	return e, ok
}
