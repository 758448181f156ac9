// Package query translates filter and pagination descriptors onto an SQL
// selector. It holds no state and never touches a connection.
package query

import (
	"entgo.io/ent/dialect/sql"
	"github.com/samber/lo"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/types"
)

// Predicate builds the clause for one filter descriptor
func Predicate(f *types.Filter) (*sql.Predicate, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	switch f.Operator {
	case types.FilterOpEq:
		return sql.EQ(f.Column, f.Value), nil
	case types.FilterOpNeq:
		return sql.NEQ(f.Column, f.Value), nil
	case types.FilterOpGt:
		return sql.GT(f.Column, f.Value), nil
	case types.FilterOpGte:
		return sql.GTE(f.Column, f.Value), nil
	case types.FilterOpLt:
		return sql.LT(f.Column, f.Value), nil
	case types.FilterOpLte:
		return sql.LTE(f.Column, f.Value), nil
	case types.FilterOpLike:
		return sql.Like(f.Column, f.Value.(string)), nil
	case types.FilterOpIlike:
		return ilike(f.Column, f.Value.(string)), nil
	case types.FilterOpIn:
		values, _ := types.FilterValues(f.Value)
		return sql.In(f.Column, values...), nil
	}

	// Validate already rejects unknown operators
	return nil, ierr.NewErrorf("unsupported filter operator: %q", f.Operator).
		Mark(ierr.ErrValidation)
}

// ilike matches a caller supplied pattern case-insensitively. Unlike
// sql.ContainsFold the pattern is passed through, so % and _ keep their meaning.
func ilike(column, pattern string) *sql.Predicate {
	return sql.P(func(b *sql.Builder) {
		b.Ident(column).WriteString(" ILIKE ").Arg(pattern)
	})
}

// ApplyFilters ANDs one predicate per filter onto sel, in input order. An
// empty list returns sel untouched.
func ApplyFilters(sel *sql.Selector, filters []*types.Filter) (*sql.Selector, error) {
	if len(filters) == 0 {
		return sel, nil
	}

	for _, f := range filters {
		p, err := Predicate(f)
		if err != nil {
			return nil, err
		}
		sel.Where(p)
	}
	return sel, nil
}

// ApplyOrder orders by the pagination column, then by id so rows with equal
// keys come back in a stable order.
func ApplyOrder(sel *sql.Selector, p *types.Pagination) *sql.Selector {
	orderBy := p.GetOrderBy()
	ascending := p != nil && p.Ascending

	order := sql.Desc
	if ascending {
		order = sql.Asc
	}

	sel.OrderBy(order(orderBy))
	if orderBy != types.ColumnID {
		sel.OrderBy(order(types.ColumnID))
	}
	return sel
}

// ApplyPagination orders sel and restricts it to the page window
// [(page-1)*limit, page*limit-1]. Order is applied first.
func ApplyPagination(sel *sql.Selector, p *types.Pagination) *sql.Selector {
	if p == nil {
		return sel
	}

	ApplyOrder(sel, p)

	from, to := p.Window()
	sel.Offset(from)
	sel.Limit(to - from + 1)
	return sel
}

// ApplySearch keeps rows where any of columns contains term, ignoring case,
// and caps the result at limit rows.
func ApplySearch(sel *sql.Selector, columns []string, term string, limit int) *sql.Selector {
	preds := lo.Map(columns, func(c string, _ int) *sql.Predicate {
		return sql.ContainsFold(c, term)
	})

	switch len(preds) {
	case 0:
	case 1:
		sel.Where(preds[0])
	default:
		sel.Where(sql.Or(preds...))
	}

	if limit > 0 {
		sel.Limit(limit)
	}
	return sel
}

// ValidateColumns rejects filters on columns the entity does not have
func ValidateColumns(filters []*types.Filter, allowed []string) error {
	for _, f := range filters {
		if f == nil {
			continue
		}
		if !lo.Contains(allowed, f.Column) {
			return ierr.NewErrorf("unknown column %q", f.Column).
				WithHintf("Filter on one of %v", allowed).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// ValidateOrderBy rejects an order column the entity does not have
func ValidateOrderBy(p *types.Pagination, allowed []string) error {
	if p == nil {
		return nil
	}
	if !lo.Contains(allowed, p.GetOrderBy()) {
		return ierr.NewErrorf("unknown order column %q", p.GetOrderBy()).
			WithHintf("Order by one of %v", allowed).
			Mark(ierr.ErrValidation)
	}
	return nil
}
