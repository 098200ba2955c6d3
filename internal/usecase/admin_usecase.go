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

// Bulk action names accepted by BulkAction.
const (
	BulkActionActivate    = "activate"
	BulkActionDeactivate  = "deactivate"
	BulkActionMakeAdmin   = "make_admin"
	BulkActionRemoveAdmin = "remove_admin"
	BulkActionDelete      = "delete"
)

// AdminUserPatch carries optional admin-side user changes. A nil field means
// "leave unchanged".
type AdminUserPatch struct {
	Username *string
	Email    *string
	IsAdmin  *bool
	IsActive *bool
	Password *string
}

// SystemStatsReport is the admin statistics payload: the stored counters
// refreshed from live counts, plus the derived user breakdown.
type SystemStatsReport struct {
	Counters    map[string]int64
	ActiveUsers int64
	AdminUsers  int64
}

// AdminUseCase implements user administration and system statistics.
type AdminUseCase struct {
	logger   *zap.Logger
	userRepo repository.UserRepository
	noteRepo repository.NoteRepository
	newsRepo repository.NewsBookmarkRepository
	stats    repository.StatsRepository
}

// NewAdminUseCase creates a new admin use case.
func NewAdminUseCase(
	logger *zap.Logger,
	userRepo repository.UserRepository,
	noteRepo repository.NoteRepository,
	newsRepo repository.NewsBookmarkRepository,
	stats repository.StatsRepository,
) *AdminUseCase {
	return &AdminUseCase{
		logger:   logger,
		userRepo: userRepo,
		noteRepo: noteRepo,
		newsRepo: newsRepo,
		stats:    stats,
	}
}

// ListUsers returns a page of all users.
func (uc *AdminUseCase) ListUsers(ctx context.Context, params entity.PaginationParams) ([]model.User, entity.PaginationMeta, error) {
	params.Validate()
	users, total, err := uc.userRepo.List(ctx, params)
	if err != nil {
		return nil, entity.PaginationMeta{}, apperrors.Internal("failed to list users", err)
	}
	return users, entity.NewPaginationMeta(params.Page, params.PerPage, total), nil
}

// SearchUsers returns users whose username or email contains q.
func (uc *AdminUseCase) SearchUsers(ctx context.Context, q string, params entity.PaginationParams) ([]model.User, entity.PaginationMeta, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, entity.PaginationMeta{}, apperrors.InvalidArgument("search query is required")
	}
	params.Validate()
	users, total, err := uc.userRepo.Search(ctx, q, params)
	if err != nil {
		return nil, entity.PaginationMeta{}, apperrors.Internal("failed to search users", err)
	}
	return users, entity.NewPaginationMeta(params.Page, params.PerPage, total), nil
}

// UpdateUser applies the patch to any account, including admin and active
// flags and password resets.
func (uc *AdminUseCase) UpdateUser(ctx context.Context, userID uint, patch AdminUserPatch) (*model.User, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to look up user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	if patch.Username != nil && *patch.Username != user.Username {
		existing, err := uc.userRepo.FindByUsername(ctx, *patch.Username)
		if err != nil {
			return nil, apperrors.Internal("failed to check username", err)
		}
		if existing != nil {
			return nil, apperrors.Conflict("username already exists")
		}
		user.Username = *patch.Username
	}

	if patch.Email != nil && *patch.Email != user.Email {
		existing, err := uc.userRepo.FindByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, apperrors.Internal("failed to check email", err)
		}
		if existing != nil {
			return nil, apperrors.Conflict("email already exists")
		}
		user.Email = *patch.Email
	}

	if patch.IsAdmin != nil {
		user.IsAdmin = *patch.IsAdmin
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}
	if patch.Password != nil && *patch.Password != "" {
		hash, err := HashPassword(*patch.Password)
		if err != nil {
			return nil, apperrors.Internal("failed to hash password", err)
		}
		user.PasswordHash = hash
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		if apperrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("username or email already exists")
		}
		return nil, apperrors.Internal("failed to update user", err)
	}
	return user, nil
}

// DeleteUser removes an account with all owned rows. The acting admin cannot
// delete their own account.
func (uc *AdminUseCase) DeleteUser(ctx context.Context, userID, actorID uint) error {
	if userID == actorID {
		return apperrors.InvalidArgument("cannot delete your own account")
	}

	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("user not found")
		}
		return apperrors.Internal("failed to delete user", err)
	}

	if err := uc.stats.Increment(ctx, model.StatTotalUsers, -1); err != nil {
		uc.logger.Warn("failed to bump user counter", zap.Error(err))
	}

	uc.logger.Info("user deleted", zap.Uint("user_id", userID), zap.Uint("actor_id", actorID))
	return nil
}

// BulkAction applies one action to a set of users and returns the affected
// count. The acting admin is filtered out of deactivate and delete so a bulk
// request cannot lock out its own session.
func (uc *AdminUseCase) BulkAction(ctx context.Context, userIDs []uint, action string, actorID uint) (int64, error) {
	if len(userIDs) == 0 || action == "" {
		return 0, apperrors.InvalidArgument("user ids and action are required")
	}

	targets := userIDs
	if action == BulkActionDeactivate || action == BulkActionDelete {
		targets = make([]uint, 0, len(userIDs))
		for _, id := range userIDs {
			if id != actorID {
				targets = append(targets, id)
			}
		}
		if len(targets) == 0 {
			return 0, nil
		}
	}

	var (
		affected int64
		err      error
	)
	switch action {
	case BulkActionActivate:
		affected, err = uc.userRepo.SetActive(ctx, targets, true)
	case BulkActionDeactivate:
		affected, err = uc.userRepo.SetActive(ctx, targets, false)
	case BulkActionMakeAdmin:
		affected, err = uc.userRepo.SetAdmin(ctx, targets, true)
	case BulkActionRemoveAdmin:
		affected, err = uc.userRepo.SetAdmin(ctx, targets, false)
	case BulkActionDelete:
		affected, err = uc.userRepo.DeleteMany(ctx, targets)
		if err == nil {
			if statErr := uc.stats.Increment(ctx, model.StatTotalUsers, -affected); statErr != nil {
				uc.logger.Warn("failed to bump user counter", zap.Error(statErr))
			}
		}
	default:
		return 0, apperrors.InvalidArgument("invalid action")
	}

	if err != nil {
		return 0, apperrors.Internal("bulk action failed", err)
	}
	return affected, nil
}

// Stats recomputes the headline counters from live counts, overwrites the
// stored rows, and returns everything stored plus the active and admin user
// breakdown. Incremental drift accumulated between fetches is corrected here.
func (uc *AdminUseCase) Stats(ctx context.Context) (*SystemStatsReport, error) {
	totalUsers, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to count users", err)
	}
	totalNotes, err := uc.noteRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to count notes", err)
	}
	totalNews, err := uc.newsRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to count bookmarks", err)
	}

	refreshed := map[string]int64{
		model.StatTotalUsers: totalUsers,
		model.StatTotalNotes: totalNotes,
		model.StatTotalNews:  totalNews,
	}
	for name, value := range refreshed {
		if err := uc.stats.Set(ctx, name, value); err != nil {
			return nil, apperrors.Internal("failed to refresh counters", err)
		}
	}

	stored, err := uc.stats.All(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to read counters", err)
	}
	counters := make(map[string]int64, len(stored))
	for _, stat := range stored {
		counters[stat.StatName] = stat.StatValue
	}

	activeUsers, err := uc.userRepo.CountActive(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to count active users", err)
	}
	adminUsers, err := uc.userRepo.CountAdmins(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to count admin users", err)
	}

	return &SystemStatsReport{
		Counters:    counters,
		ActiveUsers: activeUsers,
		AdminUsers:  adminUsers,
	}, nil
}
