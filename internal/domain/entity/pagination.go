package entity

// PaginationParams represents pagination request parameters.
type PaginationParams struct {
	Page    int `json:"page" query:"page"`
	PerPage int `json:"per_page" query:"per_page"`
}

// PaginationMeta represents pagination metadata in responses.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
}

// Pagination constants
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1
	DefaultPage     = 1
)

// Validate normalizes out-of-range pagination parameters in place.
func (p *PaginationParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	if p.PerPage < MinPageSize {
		p.PerPage = DefaultPageSize
	} else if p.PerPage > MaxPageSize {
		p.PerPage = MaxPageSize
	}
}

// Offset calculates the database offset from page and per-page size.
func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// NewPaginationMeta creates pagination metadata from parameters and total count.
func NewPaginationMeta(page, perPage int, total int64) PaginationMeta {
	pages := int(total) / perPage
	if int(total)%perPage > 0 {
		pages++
	}

	return PaginationMeta{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		Pages:       pages,
	}
}
