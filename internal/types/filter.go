package types

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/samber/lo"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
)

// FilterOperator is the comparison applied by a Filter
type FilterOperator string

const (
	FilterOpEq    FilterOperator = "eq"
	FilterOpNeq   FilterOperator = "neq"
	FilterOpGt    FilterOperator = "gt"
	FilterOpGte   FilterOperator = "gte"
	FilterOpLt    FilterOperator = "lt"
	FilterOpLte   FilterOperator = "lte"
	FilterOpLike  FilterOperator = "like"
	FilterOpIlike FilterOperator = "ilike"
	FilterOpIn    FilterOperator = "in"
)

// FilterOperators lists every operator the translator understands
var FilterOperators = []FilterOperator{
	FilterOpEq,
	FilterOpNeq,
	FilterOpGt,
	FilterOpGte,
	FilterOpLt,
	FilterOpLte,
	FilterOpLike,
	FilterOpIlike,
	FilterOpIn,
}

func (o FilterOperator) IsValid() bool {
	return lo.Contains(FilterOperators, o)
}

// Filter is a single column predicate. A list of filters is a conjunction.
type Filter struct {
	Column   string         `json:"column" form:"column" validate:"required"`
	Operator FilterOperator `json:"operator" form:"operator" validate:"required"`
	Value    any            `json:"value" form:"value"`
}

// NewFilter is a small constructor used by services for their fixed queries
func NewFilter(column string, operator FilterOperator, value any) *Filter {
	return &Filter{Column: column, Operator: operator, Value: value}
}

func (f *Filter) Validate() error {
	if f == nil {
		return ierr.NewError("filter is nil").
			WithHint("Filter cannot be empty").
			Mark(ierr.ErrValidation)
	}

	if f.Column == "" {
		return ierr.NewError("filter column is required").
			WithHint("Column is required").
			Mark(ierr.ErrValidation)
	}

	if !f.Operator.IsValid() {
		return ierr.NewErrorf("unsupported filter operator: %q", f.Operator).
			WithHintf("Operator must be one of %v", FilterOperators).
			Mark(ierr.ErrValidation)
	}

	if f.Operator == FilterOpIn {
		if _, ok := FilterValues(f.Value); !ok {
			return ierr.NewErrorf("filter on %s: in requires a list value", f.Column).
				WithHint("Provide a list of values for the in operator").
				Mark(ierr.ErrValidation)
		}
	}

	if (f.Operator == FilterOpLike || f.Operator == FilterOpIlike) && !isString(f.Value) {
		return ierr.NewErrorf("filter on %s: %s requires a string pattern", f.Column, f.Operator).
			WithHint("Provide a text pattern for like and ilike").
			Mark(ierr.ErrValidation)
	}

	return nil
}

func (f *Filter) String() string {
	return fmt.Sprintf("%s:%s:%v", f.Column, f.Operator, f.Value)
}

// ValidateFilters validates every filter in order and returns the first failure
func ValidateFilters(filters []*Filter) error {
	for _, f := range filters {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FilterValues returns the elements of a sequence value. Strings and byte
// slices are not sequences.
func FilterValues(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

// ParseFilter parses the "column:operator:value" form used by query strings
// and the CLI. Values for in are comma separated.
func ParseFilter(s string) (*Filter, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return nil, ierr.NewErrorf("invalid filter %q", s).
			WithHint("Filters must look like column:operator:value").
			Mark(ierr.ErrValidation)
	}

	f := &Filter{
		Column:   strings.TrimSpace(parts[0]),
		Operator: FilterOperator(strings.ToLower(strings.TrimSpace(parts[1]))),
		Value:    parts[2],
	}
	if f.Operator == FilterOpIn {
		f.Value = lo.Map(strings.Split(parts[2], ","), func(v string, _ int) string {
			return strings.TrimSpace(v)
		})
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseFilters parses a list of filter expressions, preserving order
func ParseFilters(exprs []string) ([]*Filter, error) {
	filters := make([]*Filter, 0, len(exprs))
	for _, expr := range exprs {
		if strings.TrimSpace(expr) == "" {
			continue
		}
		f, err := ParseFilter(expr)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}
