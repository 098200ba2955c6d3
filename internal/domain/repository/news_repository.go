package repository

import (
	"context"

	"github.com/ericwen511/fintentacle-backend/internal/domain/entity"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
)

// NewsBookmarkRepository defines the interface for news bookmark persistence.
type NewsBookmarkRepository interface {
	// Create persists a new bookmark.
	Create(ctx context.Context, bookmark *model.NewsBookmark) error

	// FindByIDAndOwner returns the bookmark, or (nil, nil) when it does not
	// exist or belongs to someone else.
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.NewsBookmark, error)

	// ListByOwner returns a page of the owner's bookmarks, newest first.
	ListByOwner(ctx context.Context, ownerID uint, params entity.PaginationParams) ([]model.NewsBookmark, int64, error)

	// Delete removes the bookmark.
	Delete(ctx context.Context, bookmark *model.NewsBookmark) error

	// Count returns the total number of bookmarks across all users.
	Count(ctx context.Context) (int64, error)
}
