package repository

import (
	"context"
	"errors"

	"github.com/ericwen511/fintentacle-backend/internal/domain/entity"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/domain/repository"
	"gorm.io/gorm"
)

type NewsBookmarkRepositoryImpl struct {
	db *gorm.DB
}

// NewNewsBookmarkRepository creates the gorm-backed news bookmark repository.
func NewNewsBookmarkRepository(db *gorm.DB) repository.NewsBookmarkRepository {
	return &NewsBookmarkRepositoryImpl{db: db}
}

// Create persists a new bookmark.
func (r *NewsBookmarkRepositoryImpl) Create(ctx context.Context, bookmark *model.NewsBookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

// FindByIDAndOwner returns the bookmark, treating foreign rows as absent.
func (r *NewsBookmarkRepositoryImpl) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.NewsBookmark, error) {
	var bookmark model.NewsBookmark
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&bookmark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bookmark, nil
}

// ListByOwner returns a page of the owner's bookmarks, newest first.
func (r *NewsBookmarkRepositoryImpl) ListByOwner(ctx context.Context, ownerID uint, params entity.PaginationParams) ([]model.NewsBookmark, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.NewsBookmark{}).Where("user_id = ?", ownerID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookmarks []model.NewsBookmark
	err := base.
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&bookmarks).Error
	if err != nil {
		return nil, 0, err
	}
	return bookmarks, total, nil
}

// Delete removes the bookmark.
func (r *NewsBookmarkRepositoryImpl) Delete(ctx context.Context, bookmark *model.NewsBookmark) error {
	return r.db.WithContext(ctx).Delete(bookmark).Error
}

// Count returns the total number of bookmarks across all users.
func (r *NewsBookmarkRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.NewsBookmark{}).Count(&count).Error
	return count, err
}
