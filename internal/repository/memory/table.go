// Package memory is the in-process backend. Every table keeps its rows in a
// map guarded by its own mutex and sleeps a fixed delay on each call so the
// UI sees realistic latency. Rows live for the lifetime of the process.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/domain/record"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/logger"
	"github.com/staffdesk/staffdesk/internal/query"
	"github.com/staffdesk/staffdesk/internal/types"
)

// Table implements record.Repository[T] in memory.
//
// Only eq, like and ilike filters narrow the result. The other operators are
// accepted and match every row, so a mock table can return more rows than
// the hosted store would for the same query.
type Table[T record.Record] struct {
	mu    sync.RWMutex
	items map[string]T

	logger  *logger.Logger
	entity  string
	prefix  string
	columns []string
	delay   time.Duration
	now     func() time.Time
}

// NewTable creates an empty table. prefix is prepended to generated ids.
func NewTable[T record.Record](logger *logger.Logger, entity, prefix string, delay time.Duration) *Table[T] {
	return &Table[T]{
		items:   make(map[string]T),
		logger:  logger,
		entity:  entity,
		prefix:  prefix,
		columns: record.Columns[T](),
		delay:   delay,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// wait imitates a network round trip
func (t *Table[T]) wait(ctx context.Context) error {
	if t.delay <= 0 {
		if err := ctx.Err(); err != nil {
			return t.cancelled(err)
		}
		return nil
	}

	timer := time.NewTimer(t.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return t.cancelled(ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (t *Table[T]) cancelled(err error) error {
	return ierr.WithError(err).
		WithHintf("Request cancelled while waiting for %s data", t.entity).
		Mark(ierr.ErrDatabase)
}

func (t *Table[T]) notFound(id string) error {
	return ierr.NewErrorf("%s not found", t.entity).
		WithHintf("No %s with id %s", t.entity, id).
		WithReportableDetails(map[string]any{"id": id}).
		Mark(ierr.ErrNotFound)
}

func (t *Table[T]) unknownColumn(column string) error {
	return ierr.NewErrorf("unknown column %q", column).
		WithHintf("Use one of %v", t.columns).
		Mark(ierr.ErrValidation)
}

func (t *Table[T]) validateFilters(filters []*types.Filter) error {
	if err := types.ValidateFilters(filters); err != nil {
		return err
	}
	return query.ValidateColumns(filters, t.columns)
}

// matches reports whether item satisfies every filter
func (t *Table[T]) matches(item T, filters []*types.Filter) bool {
	for _, f := range filters {
		if !t.match(item, f) {
			return false
		}
	}
	return true
}

func (t *Table[T]) match(item T, f *types.Filter) bool {
	got, ok := stringValue(record.Value(item, f.Column))

	switch f.Operator {
	case types.FilterOpEq:
		want, wantOK := stringValue(f.Value)
		return ok == wantOK && got == want
	case types.FilterOpLike, types.FilterOpIlike:
		if !ok {
			return false
		}
		re, err := likePattern(f.Value.(string), f.Operator == types.FilterOpIlike)
		if err != nil {
			return false
		}
		return re.MatchString(got)
	default:
		t.logger.Debugw("mock backend ignores filter operator",
			"entity", t.entity,
			"column", f.Column,
			"operator", f.Operator,
		)
		return true
	}
}

// sortRows orders rows by the pagination column, then by id
func (t *Table[T]) sortRows(rows []T, p *types.Pagination) {
	orderBy := p.GetOrderBy()
	ascending := p != nil && p.Ascending

	sort.SliceStable(rows, func(i, j int) bool {
		c := compareValues(record.Value(rows[i], orderBy), record.Value(rows[j], orderBy))
		if c == 0 {
			c = strings.Compare(rows[i].Base().ID, rows[j].Base().ID)
		}
		if ascending {
			return c < 0
		}
		return c > 0
	})
}

// filtered returns clones of the rows matching filters. Callers hold the lock.
func (t *Table[T]) filtered(filters []*types.Filter) []T {
	rows := make([]T, 0, len(t.items))
	for _, item := range t.items {
		if t.matches(item, filters) {
			rows = append(rows, record.Clone(item))
		}
	}
	return rows
}

func (t *Table[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	if err := t.wait(ctx); err != nil {
		return zero, err
	}

	stored := record.Clone(item)
	base := stored.Base()
	if base.ID == "" {
		base.ID = types.GenerateUUIDWithPrefix(t.prefix)
	}
	if base.CreatedAt.IsZero() {
		base.Touch(t.now())
	}
	if base.UpdatedAt.IsZero() {
		base.UpdatedAt = base.CreatedAt
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.items[base.ID]; exists {
		return zero, ierr.NewErrorf("%s already exists", t.entity).
			WithHintf("A %s with id %s already exists", t.entity, base.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	t.items[base.ID] = stored
	return record.Clone(stored), nil
}

func (t *Table[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := t.wait(ctx); err != nil {
		return zero, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	item, ok := t.items[id]
	if !ok {
		return zero, t.notFound(id)
	}
	return record.Clone(item), nil
}

func (t *Table[T]) List(ctx context.Context, params *types.ListParams) ([]T, error) {
	if err := t.wait(ctx); err != nil {
		return nil, err
	}

	var p *types.Pagination
	if params.IsPaginated() {
		p = params.Pagination
	}
	if err := t.validateFilters(params.GetFilters()); err != nil {
		return nil, err
	}
	if err := query.ValidateOrderBy(p, t.columns); err != nil {
		return nil, err
	}

	t.mu.RLock()
	rows := t.filtered(params.GetFilters())
	t.mu.RUnlock()

	t.sortRows(rows, p)

	if p == nil {
		return rows, nil
	}

	from, to := p.Window()
	if from >= len(rows) {
		return []T{}, nil
	}
	return rows[from:min(to+1, len(rows))], nil
}

func (t *Table[T]) Count(ctx context.Context, filters []*types.Filter) (int, error) {
	if err := t.wait(ctx); err != nil {
		return 0, err
	}
	if err := t.validateFilters(filters); err != nil {
		return 0, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, item := range t.items {
		if t.matches(item, filters) {
			count++
		}
	}
	return count, nil
}

func (t *Table[T]) CountBy(ctx context.Context, column string, filters []*types.Filter) (map[string]int, error) {
	if err := t.wait(ctx); err != nil {
		return nil, err
	}
	if !lo.Contains(t.columns, column) {
		return nil, t.unknownColumn(column)
	}
	if err := t.validateFilters(filters); err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]int)
	for _, item := range t.items {
		if !t.matches(item, filters) {
			continue
		}
		key, _ := stringValue(record.Value(item, column))
		out[key]++
	}
	return out, nil
}

func (t *Table[T]) Search(ctx context.Context, term string, columns []string, limit int) ([]T, error) {
	if err := t.wait(ctx); err != nil {
		return nil, err
	}
	for _, c := range columns {
		if !lo.Contains(t.columns, c) {
			return nil, t.unknownColumn(c)
		}
	}

	needle := strings.ToLower(term)

	t.mu.RLock()
	rows := make([]T, 0)
	for _, item := range t.items {
		hit := lo.SomeBy(columns, func(c string) bool {
			v, ok := stringValue(record.Value(item, c))
			return ok && strings.Contains(strings.ToLower(v), needle)
		})
		if hit {
			rows = append(rows, record.Clone(item))
		}
	}
	t.mu.RUnlock()

	t.sortRows(rows, nil)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (t *Table[T]) Update(ctx context.Context, id string, item T, columns []string) (T, error) {
	var zero T
	if err := t.wait(ctx); err != nil {
		return zero, err
	}

	columns = lo.Without(columns, types.ColumnID, types.ColumnCreatedAt, types.ColumnUpdatedAt)
	for _, c := range columns {
		if !lo.Contains(t.columns, c) {
			return zero, t.unknownColumn(c)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	existing, ok := t.items[id]
	if !ok {
		return zero, t.notFound(id)
	}

	stored := record.Clone(existing)
	record.Copy(stored, item, columns)

	// updated_at never moves backwards
	updatedAt := item.Base().UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = t.now()
	}
	if updatedAt.Before(existing.Base().UpdatedAt) {
		updatedAt = existing.Base().UpdatedAt
	}
	stored.Base().UpdatedAt = updatedAt

	t.items[id] = stored
	return record.Clone(stored), nil
}

func (t *Table[T]) Delete(ctx context.Context, id string) error {
	if err := t.wait(ctx); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.items[id]; !ok {
		return t.notFound(id)
	}
	delete(t.items, id)
	return nil
}

// Insert stores rows as given, without delay. Used for seed data.
func (t *Table[T]) Insert(items ...T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, item := range items {
		stored := record.Clone(item)
		base := stored.Base()
		if base.ID == "" {
			base.ID = types.GenerateUUIDWithPrefix(t.prefix)
		}
		if base.CreatedAt.IsZero() {
			base.Touch(t.now())
		}
		t.items[base.ID] = stored
	}
}

// Len returns the number of stored rows
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}
