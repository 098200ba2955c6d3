package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ericwen511/fintentacle-backend/internal/domain/entity"
	apperrors "github.com/ericwen511/fintentacle-backend/internal/domain/errors"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/middleware"
	"github.com/ericwen511/fintentacle-backend/internal/usecase"
)

// AdminHandler handles user administration HTTP requests. All routes sit
// behind the admin guard.
type AdminHandler struct {
	logger       *zap.Logger
	adminUseCase *usecase.AdminUseCase
}

// NewAdminHandler creates a new admin handler instance.
func NewAdminHandler(logger *zap.Logger, adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		logger:       logger,
		adminUseCase: adminUseCase,
	}
}

type adminUpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	IsAdmin  *bool   `json:"is_admin"`
	IsActive *bool   `json:"is_active"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

type bulkActionRequest struct {
	UserIDs []uint `json:"user_ids" validate:"required,min=1"`
	Action  string `json:"action" validate:"required"`
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(c echo.Context) error {
	params := bindPagination(c)
	users, meta, err := h.adminUseCase.ListUsers(c.Request().Context(), params)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, userPage(users, meta))
}

// SearchUsers handles GET /api/admin/users/search
func (h *AdminHandler) SearchUsers(c echo.Context) error {
	params := bindPagination(c)
	users, meta, err := h.adminUseCase.SearchUsers(c.Request().Context(), c.QueryParam("q"), params)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, userPage(users, meta))
}

// UpdateUser handles PUT /api/admin/users/:id
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	userID, err := pathID(c)
	if err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid user id"))
	}

	var req adminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid user fields"))
	}

	user, err := h.adminUseCase.UpdateUser(c.Request().Context(), userID, usecase.AdminUserPatch{
		Username: req.Username,
		Email:    req.Email,
		IsAdmin:  req.IsAdmin,
		IsActive: req.IsActive,
		Password: req.Password,
	})
	if err != nil {
		return apperrors.JSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "user updated",
		"user":    user,
	})
}

// DeleteUser handles DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userID, err := pathID(c)
	if err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid user id"))
	}

	actor := middleware.CurrentUser(c)
	if err := h.adminUseCase.DeleteUser(c.Request().Context(), userID, actor.ID); err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "user deleted",
	})
}

// BulkAction handles POST /api/admin/users/bulk-action
func (h *AdminHandler) BulkAction(c echo.Context) error {
	var req bulkActionRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("user_ids and action are required"))
	}

	actor := middleware.CurrentUser(c)
	affected, err := h.adminUseCase.BulkAction(c.Request().Context(), req.UserIDs, req.Action, actor.ID)
	if err != nil {
		return apperrors.JSON(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":        "bulk action completed",
		"affected_count": affected,
	})
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(c echo.Context) error {
	report, err := h.adminUseCase.Stats(c.Request().Context())
	if err != nil {
		return apperrors.JSON(c, err)
	}

	resp := echo.Map{
		"active_users": report.ActiveUsers,
		"admin_users":  report.AdminUsers,
	}
	for name, value := range report.Counters {
		resp[name] = value
	}
	return c.JSON(http.StatusOK, resp)
}

// userPage formats the flat paginated user response.
func userPage(users []model.User, meta entity.PaginationMeta) echo.Map {
	return echo.Map{
		"users":        users,
		"total":        meta.Total,
		"pages":        meta.Pages,
		"current_page": meta.CurrentPage,
		"per_page":     meta.PerPage,
	}
}
