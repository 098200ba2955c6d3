package usecase

import (
	"context"
	"time"

	"github.com/ericwen511/fintentacle-backend/internal/domain/entity"
	apperrors "github.com/ericwen511/fintentacle-backend/internal/domain/errors"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/domain/repository"
	"go.uber.org/zap"
)

// AddBookmarkParams carries the fields for a new news bookmark.
type AddBookmarkParams struct {
	Title       string
	URL         string
	Source      string
	StockSymbol string
	StockName   string
	Summary     string
	PublishedAt *time.Time
}

// NewsUseCase implements per-user news bookmarks.
type NewsUseCase struct {
	logger   *zap.Logger
	newsRepo repository.NewsBookmarkRepository
	stats    repository.StatsRepository
}

// NewNewsUseCase creates a new news use case.
func NewNewsUseCase(logger *zap.Logger, newsRepo repository.NewsBookmarkRepository, stats repository.StatsRepository) *NewsUseCase {
	return &NewsUseCase{
		logger:   logger,
		newsRepo: newsRepo,
		stats:    stats,
	}
}

// List returns a page of the owner's bookmarks, newest first.
func (uc *NewsUseCase) List(ctx context.Context, ownerID uint, params entity.PaginationParams) ([]model.NewsBookmark, entity.PaginationMeta, error) {
	params.Validate()
	bookmarks, total, err := uc.newsRepo.ListByOwner(ctx, ownerID, params)
	if err != nil {
		return nil, entity.PaginationMeta{}, apperrors.Internal("failed to list bookmarks", err)
	}
	return bookmarks, entity.NewPaginationMeta(params.Page, params.PerPage, total), nil
}

// Add stores a bookmark and bumps the news counter.
func (uc *NewsUseCase) Add(ctx context.Context, ownerID uint, params AddBookmarkParams) (*model.NewsBookmark, error) {
	bookmark := &model.NewsBookmark{
		UserID:      ownerID,
		Title:       params.Title,
		URL:         params.URL,
		Source:      params.Source,
		StockSymbol: params.StockSymbol,
		StockName:   params.StockName,
		Summary:     params.Summary,
		PublishedAt: params.PublishedAt,
	}

	if err := uc.newsRepo.Create(ctx, bookmark); err != nil {
		return nil, apperrors.Internal("failed to create bookmark", err)
	}

	if err := uc.stats.Increment(ctx, model.StatTotalNews, 1); err != nil {
		uc.logger.Warn("failed to bump news counter", zap.Error(err))
	}
	return bookmark, nil
}

// Remove deletes one of the owner's bookmarks; foreign bookmarks are reported
// as missing.
func (uc *NewsUseCase) Remove(ctx context.Context, ownerID, bookmarkID uint) error {
	bookmark, err := uc.newsRepo.FindByIDAndOwner(ctx, bookmarkID, ownerID)
	if err != nil {
		return apperrors.Internal("failed to look up bookmark", err)
	}
	if bookmark == nil {
		return apperrors.NotFound("bookmark not found")
	}

	if err := uc.newsRepo.Delete(ctx, bookmark); err != nil {
		return apperrors.Internal("failed to delete bookmark", err)
	}

	if err := uc.stats.Increment(ctx, model.StatTotalNews, -1); err != nil {
		uc.logger.Warn("failed to bump news counter", zap.Error(err))
	}
	return nil
}
