package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsRepositoryImpl struct {
	db *gorm.DB
}

// NewStatsRepository creates the gorm-backed stats repository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &StatsRepositoryImpl{db: db}
}

// Get returns the counter value, 0 for an unknown name without creating a row.
func (r *StatsRepositoryImpl) Get(ctx context.Context, name string) (int64, error) {
	var stat model.SystemStat
	err := r.db.WithContext(ctx).Where("stat_name = ?", name).First(&stat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return stat.StatValue, nil
}

// Set upserts the counter to an absolute value.
func (r *StatsRepositoryImpl) Set(ctx context.Context, name string, value int64) error {
	stat := model.SystemStat{
		StatName:  name,
		StatValue: value,
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "stat_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"stat_value", "updated_at"}),
	}).Create(&stat).Error
}

// Increment upserts the counter by delta. The addition happens inside the
// database so concurrent increments never lose writes.
func (r *StatsRepositoryImpl) Increment(ctx context.Context, name string, delta int64) error {
	stat := model.SystemStat{
		StatName:  name,
		StatValue: delta,
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "stat_name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"stat_value": gorm.Expr("system_stats.stat_value + ?", delta),
			"updated_at": time.Now().UTC(),
		}),
	}).Create(&stat).Error
}

// All returns every stored counter.
func (r *StatsRepositoryImpl) All(ctx context.Context) ([]model.SystemStat, error) {
	var stats []model.SystemStat
	if err := r.db.WithContext(ctx).Order("stat_name ASC").Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
