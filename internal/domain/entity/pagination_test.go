package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericwen511/fintentacle-backend/internal/domain/entity"
)

func TestPaginationParams_Validate(t *testing.T) {
	tests := []struct {
		name        string
		params      entity.PaginationParams
		wantPage    int
		wantPerPage int
	}{
		{"zero values get defaults", entity.PaginationParams{}, 1, 20},
		{"negative page", entity.PaginationParams{Page: -3, PerPage: 10}, 1, 10},
		{"per_page capped at max", entity.PaginationParams{Page: 2, PerPage: 5000}, 2, 100},
		{"valid values untouched", entity.PaginationParams{Page: 3, PerPage: 50}, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Validate()
			assert.Equal(t, tt.wantPage, tt.params.Page)
			assert.Equal(t, tt.wantPerPage, tt.params.PerPage)
		})
	}
}

func TestPaginationParams_Offset(t *testing.T) {
	params := entity.PaginationParams{Page: 3, PerPage: 20}
	assert.Equal(t, 40, params.Offset())
}

func TestNewPaginationMeta(t *testing.T) {
	t.Run("partial last page rounds up", func(t *testing.T) {
		meta := entity.NewPaginationMeta(1, 20, 41)
		assert.Equal(t, 3, meta.Pages)
		assert.Equal(t, int64(41), meta.Total)
	})

	t.Run("exact fit", func(t *testing.T) {
		meta := entity.NewPaginationMeta(2, 20, 40)
		assert.Equal(t, 2, meta.Pages)
		assert.Equal(t, 2, meta.CurrentPage)
	})

	t.Run("empty result", func(t *testing.T) {
		meta := entity.NewPaginationMeta(1, 20, 0)
		assert.Equal(t, 0, meta.Pages)
	})
}
