package database

import (
	"github.com/ericwen511/fintentacle-backend/internal/adapter/repository"
	domainRepo "github.com/ericwen511/fintentacle-backend/internal/domain/repository"
	"gorm.io/gorm"
)

// Repositories holds all repository instances.
type Repositories struct {
	User      domainRepo.UserRepository
	Note      domainRepo.NoteRepository
	Tag       domainRepo.TagRepository
	News      domainRepo.NewsBookmarkRepository
	Watchlist domainRepo.WatchlistRepository
	Stats     domainRepo.StatsRepository
}

// NewRepositories creates new repository instances with the database connection.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:      repository.NewUserRepository(db),
		Note:      repository.NewNoteRepository(db),
		Tag:       repository.NewTagRepository(db),
		News:      repository.NewNewsBookmarkRepository(db),
		Watchlist: repository.NewWatchlistRepository(db),
		Stats:     repository.NewStatsRepository(db),
	}
}
