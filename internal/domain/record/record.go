// Package record defines the contract shared by every entity repository.
// The hosted store and the in-memory mock both implement it, so services
// never know which backend answered.
package record

import (
	"context"

	"github.com/staffdesk/staffdesk/internal/types"
)

// Record is satisfied by every entity through its embedded types.BaseModel
type Record interface {
	Base() *types.BaseModel
}

// Repository is the per-entity data access contract.
//
// Create persists every column of item and returns the stored row, with the
// identifier assigned by the backend. Update writes only the named columns of
// item to the row with the given id. Both return the row as stored.
// Get, Update and Delete report a missing row with errors.ErrNotFound.
type Repository[T Record] interface {
	Create(ctx context.Context, item T) (T, error)
	Get(ctx context.Context, id string) (T, error)
	List(ctx context.Context, params *types.ListParams) ([]T, error)
	Count(ctx context.Context, filters []*types.Filter) (int, error)
	// CountBy groups the rows matching filters by column and counts each group
	CountBy(ctx context.Context, column string, filters []*types.Filter) (map[string]int, error)
	// Search returns up to limit rows where any of columns contains term, case-insensitively
	Search(ctx context.Context, term string, columns []string, limit int) ([]T, error)
	Update(ctx context.Context, id string, item T, columns []string) (T, error)
	Delete(ctx context.Context, id string) error
}
