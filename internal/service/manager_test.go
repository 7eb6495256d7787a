package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/engine"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/rng"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/storage"
)

type mockRepo struct {
	saved []*game.PlaythroughResult
}

func (m *mockRepo) SaveResult(r *game.PlaythroughResult) error {
	m.saved = append(m.saved, r)
	return nil
}

func (m *mockRepo) EndingStats() ([]storage.EndingStat, error) { return nil, nil }

func (m *mockRepo) RecentResults(limit int) ([]game.PlaythroughResult, error) { return nil, nil }

func testPool() []game.Event {
	pool := make([]game.Event, 0, 10)
	add := func(id string, fixed int) {
		pool = append(pool, game.Event{
			ID:            id,
			FixedPosition: fixed,
			Choices: []game.Choice{
				{ID: "A", Effect: game.Effect{Heaven: 4, Hell: -2}},
				{ID: "B", Effect: game.Effect{Hell: 4, Stability: -2}},
				{ID: "C", Effect: game.Effect{Stability: 3, Pressure: 1}, IsExtreme: true},
			},
		})
	}
	add("e1", 1)
	for i := 2; i <= 8; i++ {
		add(fmt.Sprintf("e%d", i), 0)
	}
	add("e9", 6)
	add("e10", 7)
	return pool
}

func testEndings() map[game.EndingID]game.Ending {
	out := make(map[game.EndingID]game.Ending)
	for _, id := range game.AllEndingIDs {
		out[id] = game.Ending{ID: id, TitleEN: string(id)}
	}
	return out
}

func newTestManager(repo storage.Repository, src rng.Source) *Manager {
	return NewManager(engine.DefaultRules(), testPool(), testEndings(), repo, src)
}

// playThrough drives a session to its ending with a fixed decision script.
func playThrough(t *testing.T, m *Manager, id string) AdvanceResult {
	t.Helper()
	for round := 1; round <= game.TotalRounds; round++ {
		if _, err := m.SubmitEventChoice(id, "A"); err != nil {
			t.Fatalf("round %d event: %v", round, err)
		}
		if _, err := m.SubmitRecordChoice(id, game.RecordTruthful); err != nil {
			t.Fatalf("round %d record: %v", round, err)
		}
		res, err := m.AdvanceRound(id)
		if err != nil {
			t.Fatalf("round %d advance: %v", round, err)
		}
		if round == game.TotalRounds {
			return res
		}
		if res.Outcome.Ending != nil {
			t.Fatalf("round %d: premature ending", round)
		}
	}
	panic("unreachable")
}

func TestStartGame_FreshState(t *testing.T) {
	m := newTestManager(&mockRepo{}, rng.NewSeeded(1))
	id, snap, err := m.StartGame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatalf("expected a session id")
	}
	if snap.Round != 1 || snap.Phase != game.PhaseEvent {
		t.Fatalf("expected round 1 event phase, got round %d phase %s", snap.Round, snap.Phase)
	}
	if snap.Heaven != 50 || snap.Hell != 50 || snap.Stability != 50 || snap.Pressure != 0 {
		t.Fatalf("unexpected initial meters: %+v", snap)
	}
	if len(snap.History) != 0 {
		t.Fatalf("expected empty history")
	}
	if snap.Event == nil || snap.Event.ID != "e1" {
		t.Fatalf("expected the position-1 event first")
	}
}

func TestPlaythrough_CompletesAndPersists(t *testing.T) {
	repo := &mockRepo{}
	m := newTestManager(repo, rng.NewSeeded(1))
	id, _, err := m.StartGame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := playThrough(t, m, id)
	if res.Outcome.Ending == nil {
		t.Fatalf("expected an ending after round 7")
	}
	if res.Ending == nil || res.Ending.ID != res.Outcome.Ending.EndingID {
		t.Fatalf("expected authored ending content for %s", res.Outcome.Ending.EndingID)
	}
	if res.State.Phase != game.PhaseEnding {
		t.Fatalf("expected ending phase, got %s", res.State.Phase)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("expected one persisted result, got %d", len(repo.saved))
	}
	saved := repo.saved[0]
	if saved.SessionID != id || saved.EndingID != string(res.Outcome.Ending.EndingID) {
		t.Fatalf("persisted result malformed: %+v", saved)
	}
	if saved.RoundsPlayed != game.TotalRounds {
		t.Fatalf("expected %d rounds played, got %d", game.TotalRounds, saved.RoundsPlayed)
	}
}

func TestPlaythrough_DeterministicUnderSeededRandomness(t *testing.T) {
	run := func() (game.EndingID, game.Snapshot) {
		m := newTestManager(&mockRepo{}, rng.NewSeeded(1234))
		id, _, err := m.StartGame()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		res := playThrough(t, m, id)
		return res.Outcome.Ending.EndingID, res.Outcome.Ending.Final
	}

	e1, f1 := run()
	e2, f2 := run()
	if e1 != e2 {
		t.Fatalf("endings diverged: %s vs %s", e1, e2)
	}
	if f1.Heaven != f2.Heaven || f1.Hell != f2.Hell || f1.Stability != f2.Stability || f1.Pressure != f2.Pressure {
		t.Fatalf("final states diverged: %+v vs %+v", f1, f2)
	}
}

func TestStartGame_ResetAfterCompletedPlaythrough(t *testing.T) {
	m := newTestManager(&mockRepo{}, rng.NewSeeded(5))
	id, first, err := m.StartGame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	playThrough(t, m, id)

	_, again, err := m.StartGame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Round != first.Round || again.Phase != first.Phase {
		t.Fatalf("replay shape differs: %+v vs %+v", again, first)
	}
	if len(again.History) != 0 || again.TruthCounter != 0 {
		t.Fatalf("replay must start with cleared history and counters")
	}
}

func TestProtocolViolations(t *testing.T) {
	m := newTestManager(&mockRepo{}, rng.NewSeeded(1))
	id, _, err := m.StartGame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.SubmitEventChoice("missing", "A"); err != ErrGameNotFound {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	if _, err := m.SubmitRecordChoice(id, game.RecordTruthful); err != engine.ErrWrongPhase {
		t.Fatalf("expected ErrWrongPhase, got %v", err)
	}
	if _, err := m.AdvanceRound(id); err != engine.ErrWrongPhase {
		t.Fatalf("expected ErrWrongPhase, got %v", err)
	}
	if _, err := m.SubmitEventChoice(id, "Q"); err != engine.ErrUnknownChoice {
		t.Fatalf("expected ErrUnknownChoice, got %v", err)
	}
	if _, err := m.SubmitEventChoice(id, "A"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.SubmitRecordChoice(id, game.RecordAction("invent")); err != engine.ErrUnknownAction {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestSnapshotNeverExposesHiddenTrackers(t *testing.T) {
	m := newTestManager(&mockRepo{}, rng.NewSeeded(1))
	id, _, err := m.StartGame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, err := m.Snapshot(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	for _, hidden := range []string{"balance", "extreme_choice", "consecutive"} {
		if strings.Contains(strings.ToLower(string(b)), hidden) {
			t.Fatalf("snapshot leaks hidden tracker %q: %s", hidden, b)
		}
	}
}
