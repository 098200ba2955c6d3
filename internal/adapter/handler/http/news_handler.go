package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/ericwen511/fintentacle-backend/internal/domain/errors"
	"github.com/ericwen511/fintentacle-backend/internal/middleware"
	"github.com/ericwen511/fintentacle-backend/internal/usecase"
)

// NewsHandler handles news bookmark HTTP requests.
type NewsHandler struct {
	logger      *zap.Logger
	newsUseCase *usecase.NewsUseCase
}

// NewNewsHandler creates a new news handler instance.
func NewNewsHandler(logger *zap.Logger, newsUseCase *usecase.NewsUseCase) *NewsHandler {
	return &NewsHandler{
		logger:      logger,
		newsUseCase: newsUseCase,
	}
}

type addBookmarkRequest struct {
	Title       string     `json:"title" validate:"required,max=300"`
	URL         string     `json:"url" validate:"required,url"`
	Source      string     `json:"source" validate:"omitempty,max=100"`
	StockSymbol string     `json:"stock_symbol" validate:"omitempty,max=20"`
	StockName   string     `json:"stock_name" validate:"omitempty,max=100"`
	Summary     string     `json:"summary"`
	PublishedAt *time.Time `json:"published_at"`
}

// List handles GET /api/news
func (h *NewsHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)
	params := bindPagination(c)

	bookmarks, meta, err := h.newsUseCase.List(c.Request().Context(), user.ID, params)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"news":         bookmarks,
		"total":        meta.Total,
		"pages":        meta.Pages,
		"current_page": meta.CurrentPage,
		"per_page":     meta.PerPage,
	})
}

// Add handles POST /api/news
func (h *NewsHandler) Add(c echo.Context) error {
	var req addBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("title and url are required"))
	}

	user := middleware.CurrentUser(c)
	bookmark, err := h.newsUseCase.Add(c.Request().Context(), user.ID, usecase.AddBookmarkParams{
		Title:       req.Title,
		URL:         req.URL,
		Source:      req.Source,
		StockSymbol: req.StockSymbol,
		StockName:   req.StockName,
		Summary:     req.Summary,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		return apperrors.JSON(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "news bookmarked",
		"news":    bookmark,
	})
}

// Remove handles DELETE /api/news/:id
func (h *NewsHandler) Remove(c echo.Context) error {
	bookmarkID, err := pathID(c)
	if err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid bookmark id"))
	}

	user := middleware.CurrentUser(c)
	if err := h.newsUseCase.Remove(c.Request().Context(), user.ID, bookmarkID); err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "bookmark removed",
	})
}
