package game

// TotalRounds is the fixed length of a playthrough.
const TotalRounds = 7

// Phase tells which input is currently valid for a playthrough.
// Using a dedicated type instead of plain string makes code safer and
// self-documenting.
type Phase string

const (
	// PhaseEvent: waiting for the round's event choice (A/B/C).
	PhaseEvent Phase = "event"
	// PhaseRecord: waiting for the round's record action.
	PhaseRecord Phase = "record"
	// PhasePenalty: an archive penalty from last round's seal was just
	// applied; the penalty text is shown and the next event choice
	// dismisses it.
	PhasePenalty Phase = "penalty"
	// PhaseComplete: the round resolved; waiting for advance.
	PhaseComplete Phase = "complete"
	// PhaseEnding: round 7 resolved and an ending was selected.
	PhaseEnding Phase = "ending"
)

// RecordAction is the archivist's record decision for a round.
type RecordAction string

const (
	RecordTruthful  RecordAction = "truthful"
	RecordEmbellish RecordAction = "embellish"
	RecordObscure   RecordAction = "obscure"
	RecordSeal      RecordAction = "seal"
)

// Valid reports whether the action is one of the four known record actions.
func (a RecordAction) Valid() bool {
	switch a {
	case RecordTruthful, RecordEmbellish, RecordObscure, RecordSeal:
		return true
	}
	return false
}

// EndingID identifies one of the five mutually exclusive endings.
type EndingID string

const (
	EndingHumanCollapse   EndingID = "human_collapse"
	EndingHeavenDominance EndingID = "heaven_dominance"
	EndingHellDominance   EndingID = "hell_dominance"
	EndingHumanRebellion  EndingID = "human_rebellion"
	EndingFalsePeace      EndingID = "false_peace"
)

// AllEndingIDs lists every ending the resolver can return. Content loading
// uses it to verify the endings file is complete.
var AllEndingIDs = []EndingID{
	EndingHumanCollapse,
	EndingHeavenDominance,
	EndingHellDominance,
	EndingHumanRebellion,
	EndingFalsePeace,
}

// Effect is a signed delta vector over the four bounded meters.
type Effect struct {
	Heaven    int `json:"heaven"`
	Hell      int `json:"hell"`
	Stability int `json:"stability"`
	Pressure  int `json:"pressure"`
}

// Add accumulates another effect into this one.
func (e *Effect) Add(o Effect) {
	e.Heaven += o.Heaven
	e.Hell += o.Hell
	e.Stability += o.Stability
	e.Pressure += o.Pressure
}

// IsZero reports whether the effect changes nothing.
func (e Effect) IsZero() bool {
	return e == Effect{}
}

// Choice is one of the three options offered by an event.
type Choice struct {
	ID        string `json:"id"` // "A", "B" or "C"
	LabelEN   string `json:"label_en"`
	LabelZH   string `json:"label_zh"`
	Effect    Effect `json:"effect"`
	IsExtreme bool   `json:"is_extreme"`
}

// Event is an externally authored narrative event. Immutable once loaded.
type Event struct {
	ID      string   `json:"id"`
	TitleEN string   `json:"title_en"`
	TitleZH string   `json:"title_zh"`
	TextEN  string   `json:"text_en"`
	TextZH  string   `json:"text_zh"`
	Choices []Choice `json:"choices"`
	// FixedPosition pins the event to a round (1, 6 or 7). Zero means the
	// event belongs to the random pool for rounds 2-5.
	FixedPosition int      `json:"fixed_position"`
	IsDilemma     bool     `json:"is_dilemma"`
	Tags          []string `json:"tags"`
}

// Choice returns the choice with the given id, or nil.
func (e *Event) Choice(id string) *Choice {
	for i := range e.Choices {
		if e.Choices[i].ID == id {
			return &e.Choices[i]
		}
	}
	return nil
}

// Ending is an externally authored ending. TriggerTag is display-only and
// never consumed by resolution logic.
type Ending struct {
	ID         EndingID `json:"id"`
	TitleEN    string   `json:"title_en"`
	TitleZH    string   `json:"title_zh"`
	TextEN     string   `json:"text_en"`
	TextZH     string   `json:"text_zh"`
	TriggerTag string   `json:"trigger_tag"`
}

// HistoryEntry records one completed round: the decisions made and the
// clamped meter values after the round resolved. History is append-only.
type HistoryEntry struct {
	Round        int          `json:"round"`
	EventID      string       `json:"event_id"`
	ChoiceID     string       `json:"choice_id"`
	IsExtreme    bool         `json:"is_extreme"`
	RecordAction RecordAction `json:"record_action"`
	Heaven       int          `json:"heaven"`
	Hell         int          `json:"hell"`
	Stability    int          `json:"stability"`
	Pressure     int          `json:"pressure"`
}

// EndingResult is the terminal outcome of a playthrough.
type EndingResult struct {
	EndingID EndingID `json:"ending_id"`
	Final    Snapshot `json:"final_state"`
}
