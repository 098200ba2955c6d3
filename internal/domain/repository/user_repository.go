package repository

import (
	"context"

	"github.com/ericwen511/fintentacle-backend/internal/domain/entity"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
)

// UserRepository defines the interface for user persistence.
//
// Find methods return (nil, nil) when no row matches. Create and Update
// surface unique-constraint violations as gorm.ErrDuplicatedKey so callers
// can map them to a conflict without a check-then-act race.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *model.User) error

	// FindByID looks a user up by primary key.
	FindByID(ctx context.Context, id uint) (*model.User, error)

	// FindByUsername looks a user up by exact username.
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// FindByEmail looks a user up by exact email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByIDs returns the users matching the given ids, skipping unknown ids.
	FindByIDs(ctx context.Context, ids []uint) ([]model.User, error)

	// List returns a page of users ordered by creation time.
	List(ctx context.Context, params entity.PaginationParams) ([]model.User, int64, error)

	// Search returns a page of users whose username or email contains q.
	Search(ctx context.Context, q string, params entity.PaginationParams) ([]model.User, int64, error)

	// Update saves the full user row.
	Update(ctx context.Context, user *model.User) error

	// UpdateLastLogin stamps the last successful login time.
	UpdateLastLogin(ctx context.Context, id uint) error

	// Delete removes the user; owned notes, bookmarks and watchlist rows are
	// cascaded by the database, tag associations go with the notes.
	Delete(ctx context.Context, id uint) error

	// SetActive flips is_active for the given ids and reports affected rows.
	SetActive(ctx context.Context, ids []uint, active bool) (int64, error)

	// SetAdmin flips is_admin for the given ids and reports affected rows.
	SetAdmin(ctx context.Context, ids []uint, admin bool) (int64, error)

	// DeleteMany removes the given users in one transaction and reports
	// affected rows.
	DeleteMany(ctx context.Context, ids []uint) (int64, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// CountActive returns the number of active users.
	CountActive(ctx context.Context) (int64, error)

	// CountAdmins returns the number of admin users.
	CountAdmins(ctx context.Context) (int64, error)
}
