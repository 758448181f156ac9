package service

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/record"
	"github.com/staffdesk/staffdesk/internal/types"
)

// request is satisfied by the DTOs and by records with business rules
type request interface {
	Validate() error
}

// crud implements the verbs shared by every entity service over one
// repository. Entity services embed it and add their own verbs.
type crud[T record.Record] struct {
	ServiceParams
	repo record.Repository[T]

	// entity and plural name the records in operations and fallback messages
	entity string
	plural string

	// join fills the read-time relations of items, may be nil
	join func(ctx context.Context, items []T) error
}

func newCRUD[T record.Record](params ServiceParams, repo record.Repository[T], entity, plural string) crud[T] {
	return crud[T]{
		ServiceParams: params,
		repo:          repo,
		entity:        entity,
		plural:        plural,
	}
}

func (c *crud[T]) op(verb string) string {
	return strings.ReplaceAll(c.entity, " ", "_") + "." + verb
}

func (c *crud[T]) joined(ctx context.Context, items []T) ([]T, error) {
	if items == nil {
		items = []T{}
	}
	if c.join == nil || len(items) == 0 {
		return items, nil
	}
	if err := c.join(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *crud[T]) joinedOne(ctx context.Context, item T) (T, error) {
	items, err := c.joined(ctx, []T{item})
	if err != nil {
		var zero T
		return zero, err
	}
	return items[0], nil
}

func (c *crud[T]) GetAll(ctx context.Context, pagination *types.Pagination, filters []*types.Filter) types.Response[[]T] {
	return runCounted(ctx, c.ServiceParams, c.op("get_all"), "Failed to fetch "+c.plural,
		func(ctx context.Context) ([]T, *int, error) {
			return c.list(ctx, pagination, filters)
		})
}

// list applies filters then pagination and counts the filtered rows when a
// page was requested
func (c *crud[T]) list(ctx context.Context, pagination *types.Pagination, filters []*types.Filter) ([]T, *int, error) {
	if err := pagination.Validate(); err != nil {
		return nil, nil, err
	}

	params := &types.ListParams{Pagination: pagination, Filters: filters}
	items, err := c.repo.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	if items, err = c.joined(ctx, items); err != nil {
		return nil, nil, err
	}
	if !params.IsPaginated() {
		return items, nil, nil
	}

	count, err := c.repo.Count(ctx, filters)
	if err != nil {
		return nil, nil, err
	}
	return items, &count, nil
}

func (c *crud[T]) GetByID(ctx context.Context, id string) types.Response[T] {
	return run(ctx, c.ServiceParams, c.op("get"), "Failed to fetch "+c.entity,
		func(ctx context.Context) (T, error) {
			return c.fetch(ctx, id)
		})
}

func (c *crud[T]) fetch(ctx context.Context, id string) (T, error) {
	item, err := c.repo.Get(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.joinedOne(ctx, item)
}

// create validates req, builds the record and persists it
func (c *crud[T]) create(ctx context.Context, req request, build func() T) types.Response[T] {
	return run(ctx, c.ServiceParams, c.op("create"), "Failed to create "+c.entity,
		func(ctx context.Context) (T, error) {
			var zero T
			if err := req.Validate(); err != nil {
				return zero, err
			}
			return c.insert(ctx, build())
		})
}

func (c *crud[T]) insert(ctx context.Context, item T) (T, error) {
	var zero T
	if err := validate(item); err != nil {
		return zero, err
	}
	created, err := c.repo.Create(ctx, item)
	if err != nil {
		return zero, err
	}
	return c.joinedOne(ctx, created)
}

// update writes the non-nil fields of req. prepare, when given, may adjust
// the merged row and name extra columns to write.
func (c *crud[T]) update(ctx context.Context, id string, req request, prepare func(item T, columns []string) []string) types.Response[T] {
	return run(ctx, c.ServiceParams, c.op("update"), "Failed to update "+c.entity,
		func(ctx context.Context) (T, error) {
			if err := req.Validate(); err != nil {
				var zero T
				return zero, err
			}
			return c.mutate(ctx, id, func(item T) ([]string, error) {
				columns := dto.Patch(req, item)
				if prepare != nil {
					columns = prepare(item, columns)
				}
				return columns, nil
			})
		})
}

// mutate loads the row, lets fn change it and writes back the columns fn
// names together with a fresh updated_at. created_at is never written.
func (c *crud[T]) mutate(ctx context.Context, id string, fn func(item T) ([]string, error)) (T, error) {
	var zero T

	item, err := c.repo.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	columns, err := fn(item)
	if err != nil {
		return zero, err
	}
	if err := validate(item); err != nil {
		return zero, err
	}

	item.Base().UpdatedAt = time.Now().UTC()
	updated, err := c.repo.Update(ctx, id, item, lo.Uniq(columns))
	if err != nil {
		return zero, err
	}
	return c.joinedOne(ctx, updated)
}

func (c *crud[T]) Delete(ctx context.Context, id string) types.Response[bool] {
	return run(ctx, c.ServiceParams, c.op("delete"), "Failed to delete "+c.entity,
		func(ctx context.Context) (bool, error) {
			if err := c.repo.Delete(ctx, id); err != nil {
				return false, err
			}
			return true, nil
		})
}

// search matches term against columns, capped at types.SearchLimit rows
func (c *crud[T]) search(ctx context.Context, term string, columns []string) types.Response[[]T] {
	return run(ctx, c.ServiceParams, c.op("search"), "Failed to search "+c.plural,
		func(ctx context.Context) ([]T, error) {
			items, err := c.repo.Search(ctx, strings.TrimSpace(term), columns, types.SearchLimit)
			if err != nil {
				return nil, err
			}
			return c.joined(ctx, items)
		})
}

// listBy returns every row where column equals value, newest first
func (c *crud[T]) listBy(ctx context.Context, verb, column, value string) types.Response[[]T] {
	return run(ctx, c.ServiceParams, c.op(verb), "Failed to fetch "+c.plural,
		func(ctx context.Context) ([]T, error) {
			items, _, err := c.list(ctx, nil, []*types.Filter{types.NewFilter(column, types.FilterOpEq, value)})
			return items, err
		})
}

func validate(item any) error {
	if v, ok := item.(request); ok {
		return v.Validate()
	}
	return nil
}

// lookup loads the rows of repo whose id is one of ids, keyed by id
func lookup[R record.Record](ctx context.Context, repo record.Repository[R], ids []string) (map[string]R, error) {
	ids = lo.Uniq(lo.Compact(ids))
	if len(ids) == 0 {
		return map[string]R{}, nil
	}

	rows, err := repo.List(ctx, &types.ListParams{
		Filters: []*types.Filter{types.NewFilter(types.ColumnID, types.FilterOpIn, ids)},
	})
	if err != nil {
		return nil, err
	}
	return lo.KeyBy(rows, func(r R) string { return r.Base().ID }), nil
}
