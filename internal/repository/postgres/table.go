package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/domain/record"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/logger"
	"github.com/staffdesk/staffdesk/internal/postgres"
	"github.com/staffdesk/staffdesk/internal/query"
	"github.com/staffdesk/staffdesk/internal/types"
)

// pgUniqueViolation is the SQLSTATE for a unique constraint failure
const pgUniqueViolation = "23505"

// Table implements record.Repository[T] for one table of the hosted store.
// Columns are taken from the db tags of T.
type Table[T record.Record] struct {
	db      *postgres.DB
	logger  *logger.Logger
	name    string
	entity  string
	columns []string
}

// NewTable creates a repository over table name. entity is the singular
// noun used in error messages.
func NewTable[T record.Record](db *postgres.DB, logger *logger.Logger, name, entity string) *Table[T] {
	return &Table[T]{
		db:      db,
		logger:  logger,
		name:    name,
		entity:  entity,
		columns: record.Columns[T](),
	}
}

func (t *Table[T]) selector() *entsql.Selector {
	return entsql.Dialect(dialect.Postgres).
		Select(t.columns...).
		From(entsql.Table(t.name))
}

func (t *Table[T]) notFound(id string) error {
	return ierr.NewErrorf("%s not found", t.entity).
		WithHintf("No %s with id %s", t.entity, id).
		WithReportableDetails(map[string]any{"id": id}).
		Mark(ierr.ErrNotFound)
}

// dbError keeps the driver message and marks it with a category
func (t *Table[T]) dbError(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
		return ierr.WithError(err).
			WithHintf("A %s with these details already exists", t.entity).
			WithReportableDetails(map[string]any{"constraint": pqErr.Constraint}).
			Mark(ierr.ErrAlreadyExists)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ierr.WithError(err).
			WithHintf("Request cancelled while trying to %s %s", op, t.entity).
			Mark(ierr.ErrDatabase)
	}
	return ierr.WithError(err).
		WithHintf("Failed to %s %s", op, t.entity).
		Mark(ierr.ErrDatabase)
}

func (t *Table[T]) validateParams(filters []*types.Filter, p *types.Pagination) error {
	if err := query.ValidateColumns(filters, t.columns); err != nil {
		return err
	}
	return query.ValidateOrderBy(p, t.columns)
}

func (t *Table[T]) selectRows(ctx context.Context, q string, args []any, op string) ([]T, error) {
	rows := make([]T, 0)
	if err := t.db.GetQuerier(ctx).SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, t.dbError(err, op)
	}
	return rows, nil
}

func (t *Table[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T

	columns := t.columns
	if item.Base().ID == "" {
		// let the table default assign the identifier
		columns = lo.Without(t.columns, types.ColumnID)
	}

	t.logger.Debugw("creating record", "table", t.name, "id", item.Base().ID)

	q, args := entsql.Dialect(dialect.Postgres).
		Insert(t.name).
		Columns(columns...).
		Values(record.Values(item, columns)...).
		Returning(t.columns...).
		Query()

	rows, err := t.selectRows(ctx, q, args, "create")
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, ierr.NewErrorf("%s was not returned after insert", t.entity).
			Mark(ierr.ErrDatabase)
	}
	return rows[0], nil
}

func (t *Table[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	q, args := t.selector().
		Where(entsql.EQ(types.ColumnID, id)).
		Limit(1).
		Query()

	rows, err := t.selectRows(ctx, q, args, "get")
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, t.notFound(id)
	}
	return rows[0], nil
}

func (t *Table[T]) List(ctx context.Context, params *types.ListParams) ([]T, error) {
	var p *types.Pagination
	if params.IsPaginated() {
		p = params.Pagination
	}
	if err := t.validateParams(params.GetFilters(), p); err != nil {
		return nil, err
	}

	sel, err := query.ApplyFilters(t.selector(), params.GetFilters())
	if err != nil {
		return nil, err
	}
	if p != nil {
		query.ApplyPagination(sel, p)
	} else {
		query.ApplyOrder(sel, nil)
	}

	q, args := sel.Query()
	return t.selectRows(ctx, q, args, "list")
}

func (t *Table[T]) Count(ctx context.Context, filters []*types.Filter) (int, error) {
	if err := t.validateParams(filters, nil); err != nil {
		return 0, err
	}

	sel := entsql.Dialect(dialect.Postgres).
		Select(entsql.Count("*")).
		From(entsql.Table(t.name))
	sel, err := query.ApplyFilters(sel, filters)
	if err != nil {
		return 0, err
	}

	q, args := sel.Query()
	var count int
	if err := t.db.GetQuerier(ctx).GetContext(ctx, &count, q, args...); err != nil {
		return 0, t.dbError(err, "count")
	}
	return count, nil
}

type groupCount struct {
	Key   sql.NullString `db:"key"`
	Count int            `db:"count"`
}

func (t *Table[T]) CountBy(ctx context.Context, column string, filters []*types.Filter) (map[string]int, error) {
	if !lo.Contains(t.columns, column) {
		return nil, ierr.NewErrorf("unknown column %q", column).
			WithHintf("Group %s rows by one of %v", t.entity, t.columns).
			Mark(ierr.ErrValidation)
	}
	if err := t.validateParams(filters, nil); err != nil {
		return nil, err
	}

	sel := entsql.Dialect(dialect.Postgres).
		Select(entsql.As(column, "key"), entsql.As(entsql.Count("*"), "count")).
		From(entsql.Table(t.name))
	sel, err := query.ApplyFilters(sel, filters)
	if err != nil {
		return nil, err
	}
	sel.GroupBy(column)

	q, args := sel.Query()
	groups := make([]groupCount, 0)
	if err := t.db.GetQuerier(ctx).SelectContext(ctx, &groups, q, args...); err != nil {
		return nil, t.dbError(err, "aggregate")
	}

	out := make(map[string]int, len(groups))
	for _, g := range groups {
		out[g.Key.String] += g.Count
	}
	return out, nil
}

func (t *Table[T]) Search(ctx context.Context, term string, columns []string, limit int) ([]T, error) {
	for _, c := range columns {
		if !lo.Contains(t.columns, c) {
			return nil, ierr.NewErrorf("unknown column %q", c).
				Mark(ierr.ErrValidation)
		}
	}

	sel := query.ApplySearch(t.selector(), columns, term, limit)
	query.ApplyOrder(sel, nil)

	q, args := sel.Query()
	return t.selectRows(ctx, q, args, "search")
}

func (t *Table[T]) Update(ctx context.Context, id string, item T, columns []string) (T, error) {
	var zero T

	columns = lo.Uniq(append(lo.Without(columns, types.ColumnID, types.ColumnCreatedAt), types.ColumnUpdatedAt))
	for _, c := range columns {
		if !lo.Contains(t.columns, c) {
			return zero, ierr.NewErrorf("unknown column %q", c).
				WithHintf("Update one of %v", t.columns).
				Mark(ierr.ErrValidation)
		}
	}
	if item.Base().UpdatedAt.IsZero() {
		item.Base().UpdatedAt = time.Now().UTC()
	}

	upd := entsql.Dialect(dialect.Postgres).Update(t.name)
	for _, c := range columns {
		upd.Set(c, record.Value(item, c))
	}
	q, args := upd.Where(entsql.EQ(types.ColumnID, id)).Query()

	t.logger.Debugw("updating record", "table", t.name, "id", id, "columns", columns)

	var out T
	err := t.db.WithTx(ctx, func(ctx context.Context) error {
		res, err := t.db.GetQuerier(ctx).ExecContext(ctx, q, args...)
		if err != nil {
			return t.dbError(err, "update")
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return t.dbError(err, "update")
		}
		if affected == 0 {
			return t.notFound(id)
		}

		out, err = t.Get(ctx, id)
		return err
	})
	if err != nil {
		return zero, err
	}
	return out, nil
}

func (t *Table[T]) Delete(ctx context.Context, id string) error {
	t.logger.Debugw("deleting record", "table", t.name, "id", id)

	q, args := entsql.Dialect(dialect.Postgres).
		Delete(t.name).
		Where(entsql.EQ(types.ColumnID, id)).
		Query()

	res, err := t.db.GetQuerier(ctx).ExecContext(ctx, q, args...)
	if err != nil {
		return t.dbError(err, "delete")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return t.dbError(err, "delete")
	}
	if affected == 0 {
		return t.notFound(id)
	}
	return nil
}
