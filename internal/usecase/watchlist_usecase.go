package usecase

import (
	"context"

	apperrors "github.com/ericwen511/fintentacle-backend/internal/domain/errors"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AddWatchParams carries the fields for a new watchlist entry.
type AddWatchParams struct {
	StockSymbol string
	StockName   string
	Market      string
	StockType   string
	Notes       string
}

// WatchlistUseCase implements the per-user stock watchlist.
type WatchlistUseCase struct {
	logger        *zap.Logger
	watchlistRepo repository.WatchlistRepository
}

// NewWatchlistUseCase creates a new watchlist use case.
func NewWatchlistUseCase(logger *zap.Logger, watchlistRepo repository.WatchlistRepository) *WatchlistUseCase {
	return &WatchlistUseCase{
		logger:        logger,
		watchlistRepo: watchlistRepo,
	}
}

// List returns the owner's watchlist, newest first.
func (uc *WatchlistUseCase) List(ctx context.Context, ownerID uint) ([]model.WatchlistEntry, error) {
	entries, err := uc.watchlistRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.Internal("failed to list watchlist", err)
	}
	return entries, nil
}

// Add creates a watchlist entry. The same symbol may be watched on different
// markets; the composite unique index rejects a repeat on the same market.
func (uc *WatchlistUseCase) Add(ctx context.Context, ownerID uint, params AddWatchParams) (*model.WatchlistEntry, error) {
	entry := &model.WatchlistEntry{
		UserID:      ownerID,
		StockSymbol: params.StockSymbol,
		StockName:   params.StockName,
		Market:      params.Market,
		StockType:   params.StockType,
		Notes:       params.Notes,
	}
	if entry.StockType == "" {
		entry.StockType = model.StockTypeListed
	}

	if err := uc.watchlistRepo.Create(ctx, entry); err != nil {
		if apperrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("already watching this stock on this market")
		}
		return nil, apperrors.Internal("failed to add watchlist entry", err)
	}
	return entry, nil
}

// Remove deletes one of the owner's entries; foreign entries are reported as
// missing.
func (uc *WatchlistUseCase) Remove(ctx context.Context, ownerID, entryID uint) error {
	entry, err := uc.watchlistRepo.FindByIDAndOwner(ctx, entryID, ownerID)
	if err != nil {
		return apperrors.Internal("failed to look up watchlist entry", err)
	}
	if entry == nil {
		return apperrors.NotFound("watchlist entry not found")
	}

	if err := uc.watchlistRepo.Delete(ctx, entry); err != nil {
		return apperrors.Internal("failed to delete watchlist entry", err)
	}
	return nil
}
