package repository

import (
	"context"
	"errors"

	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/domain/repository"
	"gorm.io/gorm"
)

type TagRepositoryImpl struct {
	db *gorm.DB
}

// NewTagRepository creates the gorm-backed tag repository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &TagRepositoryImpl{db: db}
}

// Create persists a new tag. A duplicate name surfaces as
// gorm.ErrDuplicatedKey from the unique index.
func (r *TagRepositoryImpl) Create(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

// FindByIDs resolves existing tags; ids without a matching row are skipped.
func (r *TagRepositoryImpl) FindByIDs(ctx context.Context, ids []uint) ([]model.Tag, error) {
	if len(ids) == 0 {
		return []model.Tag{}, nil
	}
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByName looks a tag up by exact name.
func (r *TagRepositoryImpl) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// List returns all tags.
func (r *TagRepositoryImpl) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Count returns the number of tags.
func (r *TagRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Tag{}).Count(&count).Error
	return count, err
}
