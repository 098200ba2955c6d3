package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ericwen511/fintentacle-backend/internal/domain/entity"
	apperrors "github.com/ericwen511/fintentacle-backend/internal/domain/errors"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/domain/repository"
	"github.com/ericwen511/fintentacle-backend/internal/middleware"
	"github.com/ericwen511/fintentacle-backend/internal/usecase"
)

// NoteHandler handles note and tag HTTP requests. All note routes sit behind
// the auth guard, so the current user is always resolved.
type NoteHandler struct {
	logger      *zap.Logger
	noteUseCase *usecase.NoteUseCase
}

// NewNoteHandler creates a new note handler instance.
func NewNoteHandler(logger *zap.Logger, noteUseCase *usecase.NoteUseCase) *NoteHandler {
	return &NoteHandler{
		logger:      logger,
		noteUseCase: noteUseCase,
	}
}

type createNoteRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Content     string `json:"content" validate:"required"`
	StockSymbol string `json:"stock_symbol" validate:"max=20"`
	StockName   string `json:"stock_name" validate:"max=100"`
	TagIDs      []uint `json:"tag_ids"`
}

type updateNoteRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content     *string `json:"content" validate:"omitempty,min=1"`
	StockSymbol *string `json:"stock_symbol" validate:"omitempty,max=20"`
	StockName   *string `json:"stock_name" validate:"omitempty,max=100"`
	TagIDs      *[]uint `json:"tag_ids"`
}

type createTagRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color" validate:"omitempty,len=7"`
}

// List handles GET /api/notes
func (h *NoteHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)
	params := bindPagination(c)

	filter := repository.NoteFilter{
		StockSymbol: c.QueryParam("stock_symbol"),
	}
	if tagStr := c.QueryParam("tag_id"); tagStr != "" {
		tagID, err := strconv.ParseUint(tagStr, 10, 32)
		if err != nil {
			return apperrors.JSON(c, apperrors.InvalidArgument("invalid tag_id parameter"))
		}
		filter.TagID = uint(tagID)
	}

	notes, meta, err := h.noteUseCase.List(c.Request().Context(), user.ID, filter, params)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, notePage(notes, meta))
}

// Create handles POST /api/notes
func (h *NoteHandler) Create(c echo.Context) error {
	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("title and content are required"))
	}

	user := middleware.CurrentUser(c)
	note, err := h.noteUseCase.Create(c.Request().Context(), user.ID, usecase.CreateNoteParams{
		Title:       req.Title,
		Content:     req.Content,
		StockSymbol: req.StockSymbol,
		StockName:   req.StockName,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		return apperrors.JSON(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "note created",
		"note":    note,
	})
}

// Get handles GET /api/notes/:id
func (h *NoteHandler) Get(c echo.Context) error {
	noteID, err := pathID(c)
	if err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid note id"))
	}

	user := middleware.CurrentUser(c)
	note, err := h.noteUseCase.Get(c.Request().Context(), user.ID, noteID)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"note": note,
	})
}

// Update handles PUT /api/notes/:id
func (h *NoteHandler) Update(c echo.Context) error {
	noteID, err := pathID(c)
	if err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid note id"))
	}

	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid note fields"))
	}

	user := middleware.CurrentUser(c)
	note, err := h.noteUseCase.Update(c.Request().Context(), user.ID, noteID, usecase.NotePatch{
		Title:       req.Title,
		Content:     req.Content,
		StockSymbol: req.StockSymbol,
		StockName:   req.StockName,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		return apperrors.JSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "note updated",
		"note":    note,
	})
}

// Delete handles DELETE /api/notes/:id
func (h *NoteHandler) Delete(c echo.Context) error {
	noteID, err := pathID(c)
	if err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid note id"))
	}

	user := middleware.CurrentUser(c)
	if err := h.noteUseCase.Delete(c.Request().Context(), user.ID, noteID); err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "note deleted",
	})
}

// Search handles GET /api/notes/search
func (h *NoteHandler) Search(c echo.Context) error {
	user := middleware.CurrentUser(c)
	params := bindPagination(c)

	notes, meta, err := h.noteUseCase.Search(c.Request().Context(), user.ID, c.QueryParam("q"), params)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, notePage(notes, meta))
}

// Recent handles GET /api/notes/recent
func (h *NoteHandler) Recent(c echo.Context) error {
	user := middleware.CurrentUser(c)

	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			return apperrors.JSON(c, apperrors.InvalidArgument("invalid limit parameter"))
		}
		limit = parsed
	}

	notes, err := h.noteUseCase.Recent(c.Request().Context(), user.ID, limit)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"notes": notes,
	})
}

// ListTags handles GET /api/notes/tags
func (h *NoteHandler) ListTags(c echo.Context) error {
	tags, err := h.noteUseCase.ListTags(c.Request().Context())
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"tags": tags,
	})
}

// CreateTag handles POST /api/notes/tags
func (h *NoteHandler) CreateTag(c echo.Context) error {
	var req createTagRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("tag name is required"))
	}

	tag, err := h.noteUseCase.CreateTag(c.Request().Context(), req.Name, req.Color)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "tag created",
		"tag":     tag,
	})
}

// notePage formats the flat paginated note response.
func notePage(notes []model.Note, meta entity.PaginationMeta) echo.Map {
	return echo.Map{
		"notes":        notes,
		"total":        meta.Total,
		"pages":        meta.Pages,
		"current_page": meta.CurrentPage,
		"per_page":     meta.PerPage,
	}
}
