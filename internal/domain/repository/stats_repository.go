package repository

import (
	"context"

	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
)

// StatsRepository defines the interface for the named counter table.
type StatsRepository interface {
	// Get returns the counter value, 0 for an unknown name. It never creates
	// a row.
	Get(ctx context.Context, name string) (int64, error)

	// Set upserts the counter to an absolute value.
	Set(ctx context.Context, name string, value int64) error

	// Increment upserts the counter by delta, which may be negative. The
	// arithmetic runs in the database so concurrent increments do not lose
	// writes.
	Increment(ctx context.Context, name string, delta int64) error

	// All returns every stored counter.
	All(ctx context.Context) ([]model.SystemStat, error)
}
