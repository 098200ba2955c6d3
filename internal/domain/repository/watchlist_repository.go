package repository

import (
	"context"

	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
)

// WatchlistRepository defines the interface for watchlist persistence.
type WatchlistRepository interface {
	// Create persists a new entry; a duplicate (owner, symbol, market) triple
	// surfaces as gorm.ErrDuplicatedKey from the composite unique index.
	Create(ctx context.Context, entry *model.WatchlistEntry) error

	// FindByIDAndOwner returns the entry, or (nil, nil) when it does not
	// exist or belongs to someone else.
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.WatchlistEntry, error)

	// ListByOwner returns all of the owner's entries, newest first.
	ListByOwner(ctx context.Context, ownerID uint) ([]model.WatchlistEntry, error)

	// Delete removes the entry.
	Delete(ctx context.Context, entry *model.WatchlistEntry) error
}
