package storage

import (
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository returns a Repository backed by the given gorm DB.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveResult(res *game.PlaythroughResult) error {
	return r.db.Create(res).Error
}

func (r *sqliteRepository) EndingStats() ([]EndingStat, error) {
	var stats []EndingStat
	err := r.db.Model(&game.PlaythroughResult{}).
		Select("ending_id, count(*) as count").
		Group("ending_id").
		Order("count desc").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *sqliteRepository) RecentResults(limit int) ([]game.PlaythroughResult, error) {
	if limit <= 0 {
		limit = 20
	}
	var results []game.PlaythroughResult
	err := r.db.Order("finished_at desc").Limit(limit).Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
