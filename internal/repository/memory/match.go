package memory

import (
	"cmp"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// deref follows pointers. ok is false for a nil pointer or nil value.
func deref(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	return rv.Interface(), true
}

// stringValue renders a column value the way it is compared with filter
// values and used as a group key
func stringValue(v any) (string, bool) {
	v, ok := deref(v)
	if !ok {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case time.Time:
		return x.UTC().Format(time.RFC3339), true
	case decimal.Decimal:
		return x.String(), true
	case fmt.Stringer:
		return x.String(), true
	}
	return fmt.Sprint(v), true
}

// likePattern turns an SQL LIKE pattern into an anchored regular expression
func likePattern(pattern string, fold bool) (*regexp.Regexp, error) {
	var b strings.Builder
	if fold {
		b.WriteString("(?i)")
	}
	b.WriteString("(?s)^")
	for _, r := range pattern {
		switch r {
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

// compareValues orders two column values. Nulls sort first.
func compareValues(a, b any) int {
	av, aok := deref(a)
	bv, bok := deref(b)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}

	switch x := av.(type) {
	case time.Time:
		if y, ok := bv.(time.Time); ok {
			return x.Compare(y)
		}
	case decimal.Decimal:
		if y, ok := bv.(decimal.Decimal); ok {
			return x.Cmp(y)
		}
	}

	ra, rb := reflect.ValueOf(av), reflect.ValueOf(bv)
	switch {
	case ra.CanInt() && rb.CanInt():
		return cmp.Compare(ra.Int(), rb.Int())
	case ra.CanUint() && rb.CanUint():
		return cmp.Compare(ra.Uint(), rb.Uint())
	case ra.CanFloat() && rb.CanFloat():
		return cmp.Compare(ra.Float(), rb.Float())
	case ra.Kind() == reflect.Bool && rb.Kind() == reflect.Bool:
		return cmp.Compare(boolInt(ra.Bool()), boolInt(rb.Bool()))
	}

	as, _ := stringValue(av)
	bs, _ := stringValue(bv)
	return strings.Compare(as, bs)
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
