package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/ericwen511/fintentacle-backend/internal/domain/errors"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/usecase"
)

func TestWatchlistUseCase_Add(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("stock type defaults to listed", func(t *testing.T) {
		mockRepo := new(MockWatchlistRepository)
		uc := usecase.NewWatchlistUseCase(logger, mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.WatchlistEntry")).Return(nil)

		entry, err := uc.Add(ctx, 1, usecase.AddWatchParams{
			StockSymbol: "005930",
			StockName:   "Samsung Electronics",
			Market:      "KOSPI",
		})
		require.NoError(t, err)
		assert.Equal(t, model.StockTypeListed, entry.StockType)
	})

	t.Run("duplicate on same market maps to conflict", func(t *testing.T) {
		mockRepo := new(MockWatchlistRepository)
		uc := usecase.NewWatchlistUseCase(logger, mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.WatchlistEntry")).Return(gorm.ErrDuplicatedKey)

		_, err := uc.Add(ctx, 1, usecase.AddWatchParams{
			StockSymbol: "005930",
			StockName:   "Samsung Electronics",
			Market:      "KOSPI",
		})
		assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
	})
}

func TestWatchlistUseCase_Remove(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("foreign entry reads as missing", func(t *testing.T) {
		mockRepo := new(MockWatchlistRepository)
		uc := usecase.NewWatchlistUseCase(logger, mockRepo)

		mockRepo.On("FindByIDAndOwner", ctx, uint(9), uint(1)).Return(nil, nil)

		err := uc.Remove(ctx, 1, 9)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("own entry removed", func(t *testing.T) {
		mockRepo := new(MockWatchlistRepository)
		uc := usecase.NewWatchlistUseCase(logger, mockRepo)

		entry := &model.WatchlistEntry{ID: 9, UserID: 1}
		mockRepo.On("FindByIDAndOwner", ctx, uint(9), uint(1)).Return(entry, nil)
		mockRepo.On("Delete", ctx, entry).Return(nil)

		require.NoError(t, uc.Remove(ctx, 1, 9))
		mockRepo.AssertExpectations(t)
	})
}
