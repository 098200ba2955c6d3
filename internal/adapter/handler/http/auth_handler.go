package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/ericwen511/fintentacle-backend/internal/domain/errors"
	"github.com/ericwen511/fintentacle-backend/internal/middleware"
	"github.com/ericwen511/fintentacle-backend/internal/usecase"
)

// AuthHandler handles registration, login and profile HTTP requests.
type AuthHandler struct {
	logger        *zap.Logger
	authUseCase   *usecase.AuthUseCase
	sessionMaxAge int
	sessionSecure bool
}

// NewAuthHandler creates a new auth handler instance.
func NewAuthHandler(logger *zap.Logger, authUseCase *usecase.AuthUseCase, sessionMaxAge int, sessionSecure bool) *AuthHandler {
	return &AuthHandler{
		logger:        logger,
		authUseCase:   authUseCase,
		sessionMaxAge: sessionMaxAge,
		sessionSecure: sessionSecure,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type profileUpdateRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("username, email and password are required"))
	}

	user, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return apperrors.JSON(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "registration successful",
		"user":    user,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("username and password are required"))
	}

	user, err := h.authUseCase.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return apperrors.JSON(c, err)
	}

	if err := middleware.SaveLogin(c, user, h.sessionMaxAge, h.sessionSecure); err != nil {
		h.logger.Error("failed to save session", zap.Error(err))
		return apperrors.JSON(c, apperrors.Internal("failed to establish session", err))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "login successful",
		"user":    user,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := middleware.ClearLogin(c); err != nil {
		h.logger.Warn("failed to clear session", zap.Error(err))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "logout successful",
	})
}

// GetProfile handles GET /api/auth/profile
func (h *AuthHandler) GetProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)
	profile, err := h.authUseCase.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user": profile,
	})
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.JSON(c, apperrors.InvalidArgument("invalid profile fields"))
	}

	user := middleware.CurrentUser(c)
	updated, err := h.authUseCase.UpdateProfile(c.Request().Context(), user.ID, usecase.ProfilePatch{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return apperrors.JSON(c, err)
	}

	// A username change must be reflected in the session copy.
	if req.Username != nil {
		if err := middleware.SaveLogin(c, updated, h.sessionMaxAge, h.sessionSecure); err != nil {
			h.logger.Warn("failed to refresh session", zap.Error(err))
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "profile updated",
		"user":    updated,
	})
}

// Check handles GET /api/auth/check. It is mounted outside the auth guard and
// never returns an error status: an anonymous or stale session just reports
// authenticated=false.
func (h *AuthHandler) Check(c echo.Context) error {
	userID, ok := sessionUserID(c)
	if !ok {
		return c.JSON(http.StatusOK, echo.Map{"authenticated": false})
	}

	user, err := h.authUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil || !user.IsActive {
		return c.JSON(http.StatusOK, echo.Map{"authenticated": false})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"authenticated": true,
		"user":          user,
	})
}
