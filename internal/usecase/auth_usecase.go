package usecase

import (
	"context"

	apperrors "github.com/ericwen511/fintentacle-backend/internal/domain/errors"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterParams carries the fields required to create an account.
type RegisterParams struct {
	Username string
	Email    string
	Password string
}

// ProfilePatch carries optional profile changes. A nil field means "leave
// unchanged".
type ProfilePatch struct {
	Username *string
	Email    *string
	Password *string
}

// AuthUseCase implements registration, login and profile management.
type AuthUseCase struct {
	logger   *zap.Logger
	userRepo repository.UserRepository
	stats    repository.StatsRepository
}

// NewAuthUseCase creates a new auth use case.
func NewAuthUseCase(logger *zap.Logger, userRepo repository.UserRepository, stats repository.StatsRepository) *AuthUseCase {
	return &AuthUseCase{
		logger:   logger,
		userRepo: userRepo,
		stats:    stats,
	}
}

// Register creates a new account. Username and email collisions are
// pre-checked for a precise message, but the unique indexes still close the
// race: a duplicate-key error from Create maps to a conflict too.
func (uc *AuthUseCase) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	existing, err := uc.userRepo.FindByUsername(ctx, params.Username)
	if err != nil {
		return nil, apperrors.Internal("failed to check username", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("username already exists")
	}

	existing, err = uc.userRepo.FindByEmail(ctx, params.Email)
	if err != nil {
		return nil, apperrors.Internal("failed to check email", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("email already exists")
	}

	hash, err := HashPassword(params.Password)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	user := &model.User{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if apperrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("username or email already exists")
		}
		return nil, apperrors.Internal("failed to create user", err)
	}

	if err := uc.stats.Increment(ctx, model.StatTotalUsers, 1); err != nil {
		uc.logger.Warn("failed to bump user counter", zap.Error(err))
	}

	uc.logger.Info("user registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// Login checks the credentials against the stored hash. Unknown username and
// wrong password produce the same error so callers cannot enumerate accounts
// by status code.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.Internal("failed to look up user", err)
	}
	if user == nil || !VerifyPassword(user.PasswordHash, password) {
		return nil, apperrors.Unauthenticated("invalid username or password")
	}
	if !user.IsActive {
		return nil, apperrors.Unauthenticated("account is disabled")
	}

	if err := uc.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		uc.logger.Warn("failed to update last login", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return user, nil
}

// GetProfile returns the live account record.
func (uc *AuthUseCase) GetProfile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to look up user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}
	return user, nil
}

// UpdateProfile applies the patch to the caller's own account. Changed
// usernames and emails are re-checked for uniqueness.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID uint, patch ProfilePatch) (*model.User, error) {
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
