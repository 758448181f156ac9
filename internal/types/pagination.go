package types

import (
	"math"

	ierr "github.com/staffdesk/staffdesk/internal/errors"
)

const (
	DefaultPage    = 1
	DefaultLimit   = 50
	MaxLimit       = 1000
	DefaultOrderBy = ColumnCreatedAt

	// SearchLimit caps the rows returned by the search verbs
	SearchLimit = 20
)

// Pagination selects one page of rows. Page is 1-based.
type Pagination struct {
	Page      int    `json:"page" form:"page"`
	Limit     int    `json:"limit" form:"limit"`
	OrderBy   string `json:"order_by,omitempty" form:"order_by"`
	Ascending bool   `json:"ascending,omitempty" form:"ascending"`
}

// NewPagination returns a page ordered by created_at descending
func NewPagination(page, limit int) *Pagination {
	return &Pagination{
		Page:    page,
		Limit:   limit,
		OrderBy: DefaultOrderBy,
	}
}

// GetOrderBy returns the order column or the default
func (p *Pagination) GetOrderBy() string {
	if p == nil || p.OrderBy == "" {
		return DefaultOrderBy
	}
	return p.OrderBy
}

// Window returns the inclusive zero-based row range of the page:
// [(page-1)*limit, page*limit-1].
func (p *Pagination) Window() (from, to int) {
	from = (p.Page - 1) * p.Limit
	to = p.Page*p.Limit - 1
	return from, to
}

// Validate validates the pagination fields
func (p *Pagination) Validate() error {
	if p == nil {
		return nil
	}
	if p.Page < 1 {
		return ierr.NewError("page must be at least 1").
			WithHint("Page numbers start at 1").
			Mark(ierr.ErrValidation)
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return ierr.NewError("limit must be between 1 and 1000").
			WithHint("Provide a page size between 1 and 1000").
			Mark(ierr.ErrValidation)
	}
	// the last row of the page must fit in an int
	if p.Page-1 > (math.MaxInt-p.Limit)/p.Limit {
		return ierr.NewErrorf("page %d is out of range", p.Page).
			WithHintf("Page times limit must not exceed %d", math.MaxInt).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ListParams is what services hand to repositories for a list query
type ListParams struct {
	Pagination *Pagination
	Filters    []*Filter
}

// IsPaginated reports whether a row window applies
func (p *ListParams) IsPaginated() bool {
	return p != nil && p.Pagination != nil
}

// GetFilters is nil safe
func (p *ListParams) GetFilters() []*Filter {
	if p == nil {
		return nil
	}
	return p.Filters
}
