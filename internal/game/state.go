package game

const (
	// MeterMin and MeterMax bound heaven, hell, stability and pressure.
	MeterMin = 0
	MeterMax = 100
)

// State is the single mutable aggregate for one playthrough. The engine
// owns it for the duration of a game; every other component sees it only
// through Snapshot.
type State struct {
	Round int `json:"round"`

	Heaven    int `json:"heaven"`
	Hell      int `json:"hell"`
	Stability int `json:"stability"`
	Pressure  int `json:"pressure"`

	// TruthCounter counts consecutive truthful record actions. It is
	// exempt from the meter cap (unbounded above, floor 0).
	TruthCounter int `json:"truth_counter"`

	// SealPenaltyNextRound is set probabilistically by the seal action and
	// consumed at the start of the following round.
	SealPenaltyNextRound bool `json:"seal_penalty_next_round"`

	// RebellionFlag is computed once, after round 7, immediately before
	// ending resolution.
	RebellionFlag bool `json:"rebellion_flag"`

	// Hidden rebellion trackers. Excluded from JSON and from Snapshot so
	// presentation code structurally cannot depend on them.
	ConsecutiveBalanceCount int `json:"-"`
	ExtremeChoiceCount      int `json:"-"`

	Phase Phase `json:"phase"`

	// Events is the ordered 7-event sequence, fixed once built.
	Events []Event `json:"events"`

	History []HistoryEntry `json:"history"`
}

// CurrentEvent returns the event for the current round.
func (s *State) CurrentEvent() *Event {
	if s.Round < 1 || s.Round > len(s.Events) {
		return nil
	}
	return &s.Events[s.Round-1]
}

// ClampMeters applies the [0,100] clamp to the four bounded meters. It is
// the only clamp operation in the system and is applied after each round's
// mutation batch. TruthCounter is intentionally not touched.
func (s *State) ClampMeters() {
	s.Heaven = clamp(s.Heaven)
	s.Hell = clamp(s.Hell)
	s.Stability = clamp(s.Stability)
	s.Pressure = clamp(s.Pressure)
}

func clamp(v int) int {
	if v < MeterMin {
		return MeterMin
	}
	if v > MeterMax {
		return MeterMax
	}
	return v
}

// Snapshot is the read-only, player-visible view of a playthrough. The
// hidden rebellion trackers never appear here.
type Snapshot struct {
	Round        int            `json:"round"`
	Phase        Phase          `json:"phase"`
	Heaven       int            `json:"heaven"`
	Hell         int            `json:"hell"`
	Stability    int            `json:"stability"`
	Pressure     int            `json:"pressure"`
	TruthCounter int            `json:"truth_counter"`
	Event        *Event         `json:"event,omitempty"`
	History      []HistoryEntry `json:"history"`
}

// Snapshot builds the public view of the state. The current event is
// included only while the playthrough is still running.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Round:        s.Round,
		Phase:        s.Phase,
		Heaven:       s.Heaven,
		Hell:         s.Hell,
		Stability:    s.Stability,
		Pressure:     s.Pressure,
		TruthCounter: s.TruthCounter,
		History:      append([]HistoryEntry(nil), s.History...),
	}
	if s.Phase != PhaseEnding {
		snap.Event = s.CurrentEvent()
	}
	return snap
}
