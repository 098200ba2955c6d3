package repository

import (
	"context"

	"github.com/ericwen511/fintentacle-backend/internal/domain/entity"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
)

// NoteFilter narrows a note listing. Zero values mean "no filter".
type NoteFilter struct {
	// TagID keeps only notes carrying the tag.
	TagID uint
	// StockSymbol keeps notes whose symbol contains the substring.
	StockSymbol string
	// Query OR-matches a substring over title, content, stock symbol and
	// stock name.
	Query string
}

// NoteRepository defines the interface for note persistence. All lookups are
// owner-scoped: a note id belonging to another user behaves as absent.
type NoteRepository interface {
	// Create persists the note and binds the resolved tag set in one
	// transaction.
	Create(ctx context.Context, note *model.Note, tags []model.Tag) error

	// FindByIDAndOwner returns the note with tags preloaded, or (nil, nil)
	// when it does not exist or belongs to someone else.
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Note, error)

	// ListByOwner returns a page of the owner's notes, newest first.
	ListByOwner(ctx context.Context, ownerID uint, filter NoteFilter, params entity.PaginationParams) ([]model.Note, int64, error)

	// RecentByOwner returns the owner's latest notes.
	RecentByOwner(ctx context.Context, ownerID uint, limit int) ([]model.Note, error)

	// Update saves the note and, when tags is non-nil, replaces the whole
	// association set (empty slice clears it) in the same transaction.
	Update(ctx context.Context, note *model.Note, tags *[]model.Tag) error

	// Delete removes the note and its tag association rows.
	Delete(ctx context.Context, note *model.Note) error

	// Count returns the total number of notes across all users.
	Count(ctx context.Context) (int64, error)
}

// TagRepository defines the interface for the global tag namespace.
type TagRepository interface {
	// Create persists a new tag; duplicate names surface as
	// gorm.ErrDuplicatedKey.
	Create(ctx context.Context, tag *model.Tag) error

	// FindByIDs resolves existing tags, silently skipping unknown ids.
	FindByIDs(ctx context.Context, ids []uint) ([]model.Tag, error)

	// FindByName looks a tag up by exact name, (nil, nil) when absent.
	FindByName(ctx context.Context, name string) (*model.Tag, error)

	// List returns all tags.
	List(ctx context.Context) ([]model.Tag, error)

	// Count returns the number of tags.
	Count(ctx context.Context) (int64, error)
}
