package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/ericwen511/fintentacle-backend/internal/adapter/handler/http"
	"github.com/ericwen511/fintentacle-backend/internal/config"
	"github.com/ericwen511/fintentacle-backend/internal/infrastructure/database"
	"github.com/ericwen511/fintentacle-backend/internal/middleware"
	"github.com/ericwen511/fintentacle-backend/internal/usecase"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Server is the HTTP entry point wiring middleware, handlers and routes.
type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
}

// NewServer creates the echo instance with the full middleware chain. The
// session store is injected so tests can swap the Redis store for an
// in-memory cookie store.
func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories, store sessions.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &Validator{validate: validator.New()}

	e.Use(echomw.Recover())
	e.Use(newRequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.HTTP.AllowOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(session.Middleware(store))
	e.Use(echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(20)))

	s := &Server{
		config: cfg,
		logger: logger,
		echo:   e,
		repos:  repos,
	}
	s.setupRoutes()
	return s
}

// Start runs the HTTP listener.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("starting HTTP server", zap.String("address", addr))
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// ServeHTTP lets the server act as a plain http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	s.echo.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"service": s.config.Service.Name,
			"version": s.config.Service.Version,
			"status":  "running",
		})
	})
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	authUC := usecase.NewAuthUseCase(s.logger, s.repos.User, s.repos.Stats)
	noteUC := usecase.NewNoteUseCase(s.logger, s.repos.Note, s.repos.Tag, s.repos.Stats)
	watchlistUC := usecase.NewWatchlistUseCase(s.logger, s.repos.Watchlist)
	newsUC := usecase.NewNewsUseCase(s.logger, s.repos.News, s.repos.Stats)
	adminUC := usecase.NewAdminUseCase(s.logger, s.repos.User, s.repos.Note, s.repos.News, s.repos.Stats)

	sessionMaxAge := s.config.Session.ExpireMin * 60
	authHandler := handlers.NewAuthHandler(s.logger, authUC, sessionMaxAge, s.config.Session.Secure)
	noteHandler := handlers.NewNoteHandler(s.logger, noteUC)
	watchlistHandler := handlers.NewWatchlistHandler(s.logger, watchlistUC)
	newsHandler := handlers.NewNewsHandler(s.logger, newsUC)
	adminHandler := handlers.NewAdminHandler(s.logger, adminUC)

	guard := middleware.NewSessionGuard(s.repos.User, s.logger)

	api := s.echo.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/check", authHandler.Check)
	auth.POST("/logout", authHandler.Logout, guard.RequireAuth())
	auth.GET("/profile", authHandler.GetProfile, guard.RequireAuth())
	auth.PUT("/profile", authHandler.UpdateProfile, guard.RequireAuth())

	notes := api.Group("/notes", guard.RequireAuth())
	notes.GET("", noteHandler.List)
	notes.POST("", noteHandler.Create)
	notes.GET("/search", noteHandler.Search)
	notes.GET("/recent", noteHandler.Recent)
	notes.GET("/tags", noteHandler.ListTags)
	notes.POST("/tags", noteHandler.CreateTag)
	notes.GET("/:id", noteHandler.Get)
	notes.PUT("/:id", noteHandler.Update)
	notes.DELETE("/:id", noteHandler.Delete)

	watchlist := api.Group("/watchlist", guard.RequireAuth())
	watchlist.GET("", watchlistHandler.List)
	watchlist.POST("", watchlistHandler.Add)
	watchlist.DELETE("/:id", watchlistHandler.Remove)

	news := api.Group("/news", guard.RequireAuth())
	news.GET("", newsHandler.List)
	news.POST("", newsHandler.Add)
	news.DELETE("/:id", newsHandler.Remove)

	admin := api.Group("/admin", guard.RequireAuth(), guard.RequireAdmin())
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/search", adminHandler.SearchUsers)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.POST("/users/bulk-action", adminHandler.BulkAction)
	admin.GET("/stats", adminHandler.Stats)
}
