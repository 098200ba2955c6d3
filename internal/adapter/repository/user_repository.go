package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ericwen511/fintentacle-backend/internal/domain/entity"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/domain/repository"
	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates the gorm-backed user repository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create persists a new user. Duplicate username or email surfaces as
// gorm.ErrDuplicatedKey from the unique indexes.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID looks a user up by primary key.
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername looks a user up by exact username.
func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks a user up by exact email.
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByIDs returns the users matching the given ids.
func (r *UserRepositoryImpl) FindByIDs(ctx context.Context, ids []uint) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// List returns a page of users ordered by creation time.
func (r *UserRepositoryImpl) List(ctx context.Context, params entity.PaginationParams) ([]model.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Search returns users whose username or email contains q.
func (r *UserRepositoryImpl) Search(ctx context.Context, q string, params entity.PaginationParams) ([]model.User, int64, error) {
	pattern := "%" + q + "%"
	base := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username LIKE ? OR email LIKE ?", pattern, pattern)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := base.
		Order("created_at ASC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update saves the full user row.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// UpdateLastLogin stamps the last successful login time.
func (r *UserRepositoryImpl) UpdateLastLogin(ctx context.Context, id uint) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login_at", now).Error
}

// Delete removes the user. Notes, bookmarks and watchlist rows go with it via
// the ON DELETE CASCADE constraints; note_tags rows cascade from the notes.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetActive flips is_active for the given ids.
func (r *UserRepositoryImpl) SetActive(ctx context.Context, ids []uint, active bool) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id IN ?", ids).
		Update("is_active", active)
	return result.RowsAffected, result.Error
}

// SetAdmin flips is_admin for the given ids.
func (r *UserRepositoryImpl) SetAdmin(ctx context.Context, ids []uint, admin bool) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id IN ?", ids).
		Update("is_admin", admin)
	return result.RowsAffected, result.Error
}

// DeleteMany removes the given users in one transaction.
func (r *UserRepositoryImpl) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.User{}, "id IN ?", ids)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}

// Count returns the total number of users.
func (r *UserRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}

// CountActive returns the number of active users.
func (r *UserRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// CountAdmins returns the number of admin users.
func (r *UserRepositoryImpl) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("is_admin = ?", true).Count(&count).Error
	return count, err
}
