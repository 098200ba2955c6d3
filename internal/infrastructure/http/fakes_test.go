package http_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/ericwen511/fintentacle-backend/internal/domain/entity"
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"github.com/ericwen511/fintentacle-backend/internal/domain/repository"
)

// In-memory repository fakes backing the route-level tests. They honor the
// same contracts as the gorm implementations: (nil, nil) for missing rows and
// gorm.ErrDuplicatedKey for unique violations.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[uint]*model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByIDs(_ context.Context, ids []uint) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) sorted() []model.User {
	var out []model.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeUserRepo) List(_ context.Context, params entity.PaginationParams) ([]model.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.sorted()
	return page(all, params), int64(len(all)), nil
}

func (f *fakeUserRepo) Search(_ context.Context, q string, params entity.PaginationParams) ([]model.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []model.User
	for _, u := range f.sorted() {
		if strings.Contains(u.Username, q) || strings.Contains(u.Email, q) {
			matched = append(matched, u)
		}
	}
	return page(matched, params), int64(len(matched)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, _ uint) error { return nil }

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, ids []uint, active bool) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			u.IsActive = active
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) SetAdmin(_ context.Context, ids []uint, admin bool) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			u.IsAdmin = admin
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) DeleteMany(_ context.Context, ids []uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, id := range ids {
		if _, ok := f.users[id]; ok {
			delete(f.users, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountActive(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, u := range f.users {
		if u.IsActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountAdmins(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, u := range f.users {
		if u.IsAdmin {
			n++
		}
	}
	return n, nil
}

type fakeNoteRepo struct {
	mu     sync.Mutex
	nextID uint
	notes  map[uint]*model.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{nextID: 1, notes: make(map[uint]*model.Note)}
}

func (f *fakeNoteRepo) Create(_ context.Context, note *model.Note, tags []model.Tag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	note.ID = f.nextID
	f.nextID++
	note.Tags = tags
	clone := *note
	f.notes[note.ID] = &clone
	return nil
}

func (f *fakeNoteRepo) FindByIDAndOwner(_ context.Context, id, ownerID uint) (*model.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n, ok := f.notes[id]; ok && n.UserID == ownerID {
		clone := *n
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeNoteRepo) ListByOwner(_ context.Context, ownerID uint, filter repository.NoteFilter, params entity.PaginationParams) ([]model.Note, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []model.Note
	for _, n := range f.notes {
		if n.UserID != ownerID {
			continue
		}
		if filter.Query != "" && !strings.Contains(n.Title, filter.Query) && !strings.Contains(n.Content, filter.Query) {
			continue
		}
		matched = append(matched, *n)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return page(matched, params), int64(len(matched)), nil
}

func (f *fakeNoteRepo) RecentByOwner(_ context.Context, ownerID uint, limit int) ([]model.Note, error) {
	notes, _, err := f.ListByOwner(context.Background(), ownerID, repository.NoteFilter{}, entity.PaginationParams{Page: 1, PerPage: limit})
	return notes, err
}

func (f *fakeNoteRepo) Update(_ context.Context, note *model.Note, tags *[]model.Tag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if tags != nil {
		note.Tags = *tags
	}
	clone := *note
	f.notes[note.ID] = &clone
	return nil
}

func (f *fakeNoteRepo) Delete(_ context.Context, note *model.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.notes, note.ID)
	return nil
}

func (f *fakeNoteRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.notes)), nil
}

type fakeTagRepo struct {
	mu     sync.Mutex
	nextID uint
	tags   map[uint]*model.Tag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{nextID: 1, tags: make(map[uint]*model.Tag)}
}

func (f *fakeTagRepo) Create(_ context.Context, tag *model.Tag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tags {
		if t.Name == tag.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	tag.ID = f.nextID
	f.nextID++
	clone := *tag
	f.tags[tag.ID] = &clone
	return nil
}

func (f *fakeTagRepo) FindByIDs(_ context.Context, ids []uint) ([]model.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Tag{}
	for _, id := range ids {
		if t, ok := f.tags[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTagRepo) FindByName(_ context.Context, name string) (*model.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tags {
		if t.Name == name {
			clone := *t
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeTagRepo) List(_ context.Context) ([]model.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Tag{}
	for _, t := range f.tags {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTagRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.tags)), nil
}

type fakeNewsRepo struct {
	mu        sync.Mutex
	nextID    uint
	bookmarks map[uint]*model.NewsBookmark
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{nextID: 1, bookmarks: make(map[uint]*model.NewsBookmark)}
}

func (f *fakeNewsRepo) Create(_ context.Context, bookmark *model.NewsBookmark) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	bookmark.ID = f.nextID
	f.nextID++
	clone := *bookmark
	f.bookmarks[bookmark.ID] = &clone
	return nil
}

func (f *fakeNewsRepo) FindByIDAndOwner(_ context.Context, id, ownerID uint) (*model.NewsBookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.bookmarks[id]; ok && b.UserID == ownerID {
		clone := *b
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeNewsRepo) ListByOwner(_ context.Context, ownerID uint, params entity.PaginationParams) ([]model.NewsBookmark, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []model.NewsBookmark
	for _, b := range f.bookmarks {
		if b.UserID == ownerID {
			matched = append(matched, *b)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return page(matched, params), int64(len(matched)), nil
}

func (f *fakeNewsRepo) Delete(_ context.Context, bookmark *model.NewsBookmark) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.bookmarks, bookmark.ID)
	return nil
}

func (f *fakeNewsRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.bookmarks)), nil
}

type fakeWatchlistRepo struct {
	mu      sync.Mutex
	nextID  uint
	entries map[uint]*model.WatchlistEntry
}

func newFakeWatchlistRepo() *fakeWatchlistRepo {
	return &fakeWatchlistRepo{nextID: 1, entries: make(map[uint]*model.WatchlistEntry)}
}

func (f *fakeWatchlistRepo) Create(_ context.Context, entry *model.WatchlistEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.UserID == entry.UserID && e.StockSymbol == entry.StockSymbol && e.Market == entry.Market {
			return gorm.ErrDuplicatedKey
		}
	}
	entry.ID = f.nextID
	f.nextID++
	clone := *entry
	f.entries[entry.ID] = &clone
	return nil
}

func (f *fakeWatchlistRepo) FindByIDAndOwner(_ context.Context, id, ownerID uint) (*model.WatchlistEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.entries[id]; ok && e.UserID == ownerID {
		clone := *e
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeWatchlistRepo) ListByOwner(_ context.Context, ownerID uint) ([]model.WatchlistEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.WatchlistEntry{}
	for _, e := range f.entries {
		if e.UserID == ownerID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeWatchlistRepo) Delete(_ context.Context, entry *model.WatchlistEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, entry.ID)
	return nil
}

type fakeStatsRepo struct {
	mu     sync.Mutex
	values map[string]int64
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{values: make(map[string]int64)}
}

func (f *fakeStatsRepo) Get(_ context.Context, name string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[name], nil
}

func (f *fakeStatsRepo) Set(_ context.Context, name string, value int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name] = value
	return nil
}

func (f *fakeStatsRepo) Increment(_ context.Context, name string, delta int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name] += delta
	return nil
}

func (f *fakeStatsRepo) All(_ context.Context) ([]model.SystemStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.SystemStat{}
	for name, value := range f.values {
		out = append(out, model.SystemStat{StatName: name, StatValue: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StatName < out[j].StatName })
	return out, nil
}

// page slices one page out of an already-sorted result set.
func page[T any](items []T, params entity.PaginationParams) []T {
	start := params.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + params.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
