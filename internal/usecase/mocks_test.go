package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ericwen511/fintentacle-backend/internal/domain/entity"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/domain/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, params entity.PaginationParams) ([]model.User, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Search(ctx context.Context, q string, params entity.PaginationParams) ([]model.User, int64, error) {
	args := m.Called(ctx, q, params)
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, ids []uint, active bool) (int64, error) {
	args := m.Called(ctx, ids, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SetAdmin(ctx context.Context, ids []uint, admin bool) (int64, error) {
	args := m.Called(ctx, ids, admin)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountAdmins(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockNoteRepository is a mock implementation of NoteRepository
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *model.Note, tags []model.Tag) error {
	args := m.Called(ctx, note, tags)
	return args.Error(0)
}

func (m *MockNoteRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Note, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteRepository) ListByOwner(ctx context.Context, ownerID uint, filter repository.NoteFilter, params entity.PaginationParams) ([]model.Note, int64, error) {
	args := m.Called(ctx, ownerID, filter, params)
	return args.Get(0).([]model.Note), args.Get(1).(int64), args.Error(2)
}

func (m *MockNoteRepository) RecentByOwner(ctx context.Context, ownerID uint, limit int) ([]model.Note, error) {
	args := m.Called(ctx, ownerID, limit)
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *MockNoteRepository) Update(ctx context.Context, note *model.Note, tags *[]model.Tag) error {
	args := m.Called(ctx, note, tags)
	return args.Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, note *model.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockTagRepository is a mock implementation of TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, tag *model.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Tag, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) List(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockNewsRepository is a mock implementation of NewsBookmarkRepository
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) Create(ctx context.Context, bookmark *model.NewsBookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *MockNewsRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.NewsBookmark, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsBookmark), args.Error(1)
}

func (m *MockNewsRepository) ListByOwner(ctx context.Context, ownerID uint, params entity.PaginationParams) ([]model.NewsBookmark, int64, error) {
	args := m.Called(ctx, ownerID, params)
	return args.Get(0).([]model.NewsBookmark), args.Get(1).(int64), args.Error(2)
}

func (m *MockNewsRepository) Delete(ctx context.Context, bookmark *model.NewsBookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *MockNewsRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockWatchlistRepository is a mock implementation of WatchlistRepository
type MockWatchlistRepository struct {
	mock.Mock
}

func (m *MockWatchlistRepository) Create(ctx context.Context, entry *model.WatchlistEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWatchlistRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.WatchlistEntry, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WatchlistEntry), args.Error(1)
}

func (m *MockWatchlistRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.WatchlistEntry, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]model.WatchlistEntry), args.Error(1)
}

func (m *MockWatchlistRepository) Delete(ctx context.Context, entry *model.WatchlistEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockStatsRepository is a mock implementation of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Get(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) Set(ctx context.Context, name string, value int64) error {
	args := m.Called(ctx, name, value)
	return args.Error(0)
}

func (m *MockStatsRepository) Increment(ctx context.Context, name string, delta int64) error {
	args := m.Called(ctx, name, delta)
	return args.Error(0)
}

func (m *MockStatsRepository) All(ctx context.Context) ([]model.SystemStat, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.SystemStat), args.Error(1)
}
