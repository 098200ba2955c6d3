package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/ericwen511/fintentacle-backend/internal/domain/errors"
	"github.com/ericwen511/fintentacle-backend/internal/middleware"
	"github.com/ericwen511/fintentacle-backend/internal/usecase"
)

// WatchlistHandler handles watchlist HTTP requests.
type WatchlistHandler struct {
	logger           *zap.Logger
	watchlistUseCase *usecase.WatchlistUseCase
}

// NewWatchlistHandler creates a new watchlist handler instance.
func NewWatchlistHandler(logger *zap.Logger, watchlistUseCase *usecase.WatchlistUseCase) *WatchlistHandler {
	return &WatchlistHandler{
		logger:           logger,
		watchlistUseCase: watchlistUseCase,
	}
}

type addWatchRequest struct {
	StockSymbol string `json:"stock_symbol" validate:"required,max=20"`
	StockName   string `json:"stock_name" validate:"required,max=100"`
	Market      string `json:"market" validate:"required,max=10"`
	StockType   string `json:"stock_type" validate:"omitempty,oneof=listed unlisted ipo unicorn"`
	Notes       string `json:"notes"`
}

// List handles GET /api/watchlist
func (h *WatchlistHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)
	entries, err := h.watchlistUseCase.List(c.Request().Context(), user.ID)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"watchlist": entries,
	})
}

// Add handles POST /api/watchlist
func (h *WatchlistHandler) Add(c echo.Context) error {
	var req addWatchRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("stock_symbol, stock_name and market are required"))
	}

	user := middleware.CurrentUser(c)
	entry, err := h.watchlistUseCase.Add(c.Request().Context(), user.ID, usecase.AddWatchParams{
		StockSymbol: req.StockSymbol,
		StockName:   req.StockName,
		Market:      req.Market,
		StockType:   req.StockType,
		Notes:       req.Notes,
	})
	if err != nil {
		return apperrors.JSON(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "stock added to watchlist",
		"item":    entry,
	})
}

// Remove handles DELETE /api/watchlist/:id
func (h *WatchlistHandler) Remove(c echo.Context) error {
	entryID, err := pathID(c)
	if err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid watchlist id"))
	}

	user := middleware.CurrentUser(c)
	if err := h.watchlistUseCase.Remove(c.Request().Context(), user.ID, entryID); err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "stock removed from watchlist",
	})
}
