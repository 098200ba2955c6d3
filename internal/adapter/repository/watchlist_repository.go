package repository

import (
	"context"
	"errors"

	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/domain/repository"
	"gorm.io/gorm"
)

type WatchlistRepositoryImpl struct {
	db *gorm.DB
}

// NewWatchlistRepository creates the gorm-backed watchlist repository.
func NewWatchlistRepository(db *gorm.DB) repository.WatchlistRepository {
	return &WatchlistRepositoryImpl{db: db}
}

// Create persists a new entry. A duplicate (owner, symbol, market) triple
// surfaces as gorm.ErrDuplicatedKey from the composite unique index, so two
// racing inserts cannot both win.
func (r *WatchlistRepositoryImpl) Create(ctx context.Context, entry *model.WatchlistEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByIDAndOwner returns the entry, treating foreign rows as absent.
func (r *WatchlistRepositoryImpl) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.WatchlistEntry, error) {
	var entry model.WatchlistEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// ListByOwner returns all of the owner's entries, newest first.
func (r *WatchlistRepositoryImpl) ListByOwner(ctx context.Context, ownerID uint) ([]model.WatchlistEntry, error) {
	var entries []model.WatchlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes the entry.
func (r *WatchlistRepositoryImpl) Delete(ctx context.Context, entry *model.WatchlistEntry) error {
	return r.db.WithContext(ctx).Delete(entry).Error
}
