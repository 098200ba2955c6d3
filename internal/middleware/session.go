package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/domain/repository"
)

// SessionName is the cookie name shared by the store and the guards.
const SessionName = "session"

// Context keys set by the guards.
const (
	UserKey   = "user"
	UserIDKey = "user_id"
)

// SessionGuard resolves the session cookie to a live user account. Guarded
// routes always see fresh admin and active flags, so deactivating an account
// takes effect on the next request rather than at cookie expiry.
type SessionGuard struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewSessionGuard creates a new session guard.
func NewSessionGuard(userRepo repository.UserRepository, logger *zap.Logger) *SessionGuard {
	return &SessionGuard{
		userRepo: userRepo,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a valid logged-in session. On success
// the resolved user is stored in the echo context under UserKey.
func (g *SessionGuard) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(SessionName, c)
			if err != nil {
				resetSession(c)
				g.logger.Warn("session decode failed",
					zap.Error(err),
					zap.String("ip", c.RealIP()),
				)
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
				})
			}

			userID, ok := sess.Values[UserIDKey].(uint)
			if !ok || userID == 0 {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
				})
			}

			user, err := g.userRepo.FindByID(c.Request().Context(), userID)
			if err != nil {
				g.logger.Error("failed to resolve session user", zap.Error(err))
				return c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "internal server error",
				})
			}
			if user == nil || !user.IsActive {
				// Deleted or deactivated since login: the cookie is dead.
				resetSession(c)
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
				})
			}

			c.Set(UserKey, user)
			c.Set(UserIDKey, user.ID)
			return next(c)
		}
	}
}

// RequireAdmin rejects non-admin users. It must be chained after RequireAuth.
func (g *SessionGuard) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
				})
			}
			if !user.IsAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "admin access required",
				})
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by RequireAuth, or nil on unguarded
// routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(UserKey).(*model.User)
	return user
}

// SaveLogin writes the login state into the session cookie.
func SaveLogin(c echo.Context, user *model.User, maxAge int, secure bool) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	sess.Values[UserIDKey] = user.ID
	sess.Values["username"] = user.Username
	sess.Values["is_admin"] = user.IsAdmin
	return sess.Save(c.Request(), c.Response())
}

// ClearLogin drops the session server-side and expires the cookie.
func ClearLogin(c echo.Context) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		resetSession(c)
		return nil
	}
	sess.Values = make(map[interface{}]interface{})
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return sess.Save(c.Request(), c.Response())
}

// resetSession expires the session cookie on the client.
func resetSession(c echo.Context) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		cookie := &http.Cookie{
			Name:     SessionName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		}
		c.SetCookie(cookie)
		return
	}
	sess.Values = make(map[interface{}]interface{})
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	sess.Save(c.Request(), c.Response())
}
