package storage

import "github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"

// EndingStat is one row of the aggregate ending distribution.
type EndingStat struct {
	EndingID string `json:"ending_id"`
	Count    int64  `json:"count"`
}

// Repository persists completed playthroughs only. In-progress games live
// in memory and are never written here.
type Repository interface {
	SaveResult(r *game.PlaythroughResult) error
	// EndingStats returns the count of finished playthroughs per ending id,
	// most frequent first.
	EndingStats() ([]EndingStat, error)
	// RecentResults returns the latest finished playthroughs, newest first.
	RecentResults(limit int) ([]game.PlaythroughResult, error)
}
