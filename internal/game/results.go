package game

import (
	"time"

	"gorm.io/gorm"
)

// PlaythroughResult is the persisted record of a completed playthrough.
// Only finished games are stored; in-progress state never touches the
// database (there is no save/load across sessions).
type PlaythroughResult struct {
	gorm.Model
	SessionID string `json:"session_id" gorm:"index"`
	EndingID  string `json:"ending_id" gorm:"index"`

	Heaven    int `json:"heaven"`
	Hell      int `json:"hell"`
	Stability int `json:"stability"`
	Pressure  int `json:"pressure"`

	ExtremeChoices int `json:"extreme_choices"`
	RoundsPlayed   int `json:"rounds_played"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// TableName overrides the default GORM table name so the persisted table
// is `playthrough_results`.
func (PlaythroughResult) TableName() string { return "playthrough_results" }
