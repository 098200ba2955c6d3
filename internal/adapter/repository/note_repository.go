package repository

import (
	"context"
	"errors"

	"github.com/ericwen511/fintentacle-backend/internal/domain/entity"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/domain/repository"
	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db *gorm.DB
}

// NewNoteRepository creates the gorm-backed note repository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &NoteRepositoryImpl{db: db}
}

// Create persists the note and its tag associations in one transaction so a
// failure binding tags leaves no orphaned note behind.
func (r *NoteRepositoryImpl) Create(ctx context.Context, note *model.Note, tags []model.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(note).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(note).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		note.Tags = tags
		return nil
	})
}

// FindByIDAndOwner returns the note with tags preloaded. A note owned by a
// different user is reported as absent.
func (r *NoteRepositoryImpl) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// ListByOwner returns a page of the owner's notes, newest first.
func (r *NoteRepositoryImpl) ListByOwner(ctx context.Context, ownerID uint, filter repository.NoteFilter, params entity.PaginationParams) ([]model.Note, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Note{}).Where("notes.user_id = ?", ownerID)

	if filter.TagID != 0 {
		query = query.
			Joins("JOIN note_tags ON note_tags.note_id = notes.id").
			Where("note_tags.tag_id = ?", filter.TagID)
	}
	if filter.StockSymbol != "" {
		query = query.Where("notes.stock_symbol LIKE ?", "%"+filter.StockSymbol+"%")
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where(
			"notes.title LIKE ? OR notes.content LIKE ? OR notes.stock_symbol LIKE ? OR notes.stock_name LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notes []model.Note
	err := query.
		Preload("Tags").
		Order("notes.created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&notes).Error
	if err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

// RecentByOwner returns the owner's latest notes.
func (r *NoteRepositoryImpl) RecentByOwner(ctx context.Context, ownerID uint, limit int) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Update saves the note and, when tags is non-nil, replaces the association
// set in the same transaction. An empty slice clears all tags.
func (r *NoteRepositoryImpl) Update(ctx context.Context, note *model.Note, tags *[]model.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Save(note).Error; err != nil {
			return err
		}
		if tags != nil {
			if err := tx.Model(note).Association("Tags").Replace(*tags); err != nil {
				return err
			}
			note.Tags = *tags
		}
		return nil
	})
}

// Delete removes the note together with its tag association rows. The tags
// themselves are never touched.
func (r *NoteRepositoryImpl) Delete(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(note).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(note).Error
	})
}

// Count returns the total number of notes across all users.
func (r *NoteRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Note{}).Count(&count).Error
	return count, err
}
