package usecase

import (
	"context"
	"strings"

	"github.com/ericwen511/fintentacle-backend/internal/domain/entity"
	apperrors "github.com/ericwen511/fintentacle-backend/internal/domain/errors"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateNoteParams carries the fields for a new note.
type CreateNoteParams struct {
	Title       string
	Content     string
	StockSymbol string
	StockName   string
	TagIDs      []uint
}

// NotePatch carries optional note changes. A nil field means "leave
// unchanged"; an empty StockSymbol or StockName clears the column. A non-nil
// TagIDs replaces the whole tag set, the empty list clearing it.
type NotePatch struct {
	Title       *string
	Content     *string
	StockSymbol *string
	StockName   *string
	TagIDs      *[]uint
}

// NoteUseCase implements note and tag management. Every note operation is
// scoped to the calling owner; someone else's note behaves as missing.
type NoteUseCase struct {
	logger   *zap.Logger
	noteRepo repository.NoteRepository
	tagRepo  repository.TagRepository
	stats    repository.StatsRepository
}

// NewNoteUseCase creates a new note use case.
func NewNoteUseCase(logger *zap.Logger, noteRepo repository.NoteRepository, tagRepo repository.TagRepository, stats repository.StatsRepository) *NoteUseCase {
	return &NoteUseCase{
		logger:   logger,
		noteRepo: noteRepo,
		tagRepo:  tagRepo,
		stats:    stats,
	}
}

// optionalColumn maps a trimmed form value to a nullable column: empty
// becomes NULL.
func optionalColumn(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Create stores a new note for the owner. Unknown tag ids are dropped
// silently; only the resolvable part of the requested set is bound.
func (uc *NoteUseCase) Create(ctx context.Context, ownerID uint, params CreateNoteParams) (*model.Note, error) {
	tags, err := uc.tagRepo.FindByIDs(ctx, params.TagIDs)
	if err != nil {
		return nil, apperrors.Internal("failed to resolve tags", err)
	}

	note := &model.Note{
		UserID:      ownerID,
		Title:       params.Title,
		Content:     params.Content,
		StockSymbol: optionalColumn(params.StockSymbol),
		StockName:   optionalColumn(params.StockName),
	}

	if err := uc.noteRepo.Create(ctx, note, tags); err != nil {
		return nil, apperrors.Internal("failed to create note", err)
	}

	if err := uc.stats.Increment(ctx, model.StatTotalNotes, 1); err != nil {
		uc.logger.Warn("failed to bump note counter", zap.Error(err))
	}

	return note, nil
}

// Get returns one of the owner's notes.
func (uc *NoteUseCase) Get(ctx context.Context, ownerID, noteID uint) (*model.Note, error) {
	note, err := uc.noteRepo.FindByIDAndOwner(ctx, noteID, ownerID)
	if err != nil {
		return nil, apperrors.Internal("failed to look up note", err)
	}
	if note == nil {
		return nil, apperrors.NotFound("note not found")
	}
	return note, nil
}

// List returns a filtered page of the owner's notes, newest first.
func (uc *NoteUseCase) List(ctx context.Context, ownerID uint, filter repository.NoteFilter, params entity.PaginationParams) ([]model.Note, entity.PaginationMeta, error) {
	params.Validate()
	notes, total, err := uc.noteRepo.ListByOwner(ctx, ownerID, filter, params)
	if err != nil {
		return nil, entity.PaginationMeta{}, apperrors.Internal("failed to list notes", err)
	}
	return notes, entity.NewPaginationMeta(params.Page, params.PerPage, total), nil
}

// Search OR-matches q as a substring over title, content, stock symbol and
// stock name within the owner's notes.
func (uc *NoteUseCase) Search(ctx context.Context, ownerID uint, q string, params entity.PaginationParams) ([]model.Note, entity.PaginationMeta, error) {
	if strings.TrimSpace(q) == "" {
		return nil, entity.PaginationMeta{}, apperrors.InvalidArgument("search query is required")
	}
	return uc.List(ctx, ownerID, repository.NoteFilter{Query: strings.TrimSpace(q)}, params)
}

// Recent returns the owner's latest notes, default 5.
func (uc *NoteUseCase) Recent(ctx context.Context, ownerID uint, limit int) ([]model.Note, error) {
	if limit <= 0 {
		limit = 5
	}
	notes, err := uc.noteRepo.RecentByOwner(ctx, ownerID, limit)
	if err != nil {
		return nil, apperrors.Internal("failed to list recent notes", err)
	}
	return notes, nil
}

// Update applies the patch to one of the owner's notes. The tag set, when
// present, fully replaces the previous one in the same transaction.
func (uc *NoteUseCase) Update(ctx context.Context, ownerID, noteID uint, patch NotePatch) (*model.Note, error) {
	note, err := uc.noteRepo.FindByIDAndOwner(ctx, noteID, ownerID)
	if err != nil {
		return nil, apperrors.Internal("failed to look up note", err)
	}
	if note == nil {
		return nil, apperrors.NotFound("note not found")
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.StockSymbol != nil {
		note.StockSymbol = optionalColumn(*patch.StockSymbol)
	}
	if patch.StockName != nil {
		note.StockName = optionalColumn(*patch.StockName)
	}

	var tags *[]model.Tag
	if patch.TagIDs != nil {
		resolved, err := uc.tagRepo.FindByIDs(ctx, *patch.TagIDs)
		if err != nil {
			return nil, apperrors.Internal("failed to resolve tags", err)
		}
		tags = &resolved
	}

	if err := uc.noteRepo.Update(ctx, note, tags); err != nil {
		return nil, apperrors.Internal("failed to update note", err)
	}
	return note, nil
}

// Delete removes one of the owner's notes and decrements the note counter.
func (uc *NoteUseCase) Delete(ctx context.Context, ownerID, noteID uint) error {
	note, err := uc.noteRepo.FindByIDAndOwner(ctx, noteID, ownerID)
	if err != nil {
		return apperrors.Internal("failed to look up note", err)
	}
	if note == nil {
		return apperrors.NotFound("note not found")
	}

	if err := uc.noteRepo.Delete(ctx, note); err != nil {
		return apperrors.Internal("failed to delete note", err)
	}

	if err := uc.stats.Increment(ctx, model.StatTotalNotes, -1); err != nil {
		uc.logger.Warn("failed to bump note counter", zap.Error(err))
	}
	return nil
}

// ListTags returns the global tag namespace.
func (uc *NoteUseCase) ListTags(ctx context.Context) ([]model.Tag, error) {
	tags, err := uc.tagRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list tags", err)
	}
	return tags, nil
}

// CreateTag adds a tag to the global namespace. Any authenticated user may
// create tags; the unique name index arbitrates races.
func (uc *NoteUseCase) CreateTag(ctx context.Context, name, color string) (*model.Tag, error) {
	existing, err := uc.tagRepo.FindByName(ctx, name)
	if err != nil {
		return nil, apperrors.Internal("failed to check tag name", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("tag already exists")
	}

	tag := &model.Tag{Name: name}
	if color != "" {
		tag.Color = color
	}

	if err := uc.tagRepo.Create(ctx, tag); err != nil {
		if apperrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("tag already exists")
		}
		return nil, apperrors.Internal("failed to create tag", err)
	}
	return tag, nil
}
