package record

import (
	"reflect"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx/reflectx"
)

// Mapper resolves db tags the same way sqlx does when scanning rows
var Mapper = reflectx.NewMapperFunc("db", strings.ToLower)

// Columns returns the stored columns of T in declaration order. Embedded
// base columns come first. Fields tagged db:"-" are read-time joins and are
// not columns.
func Columns[T Record]() []string {
	var zero T
	t := reflectx.Deref(reflect.TypeOf(zero))

	fields := make([]*reflectx.FieldInfo, 0)
	for _, fi := range Mapper.TypeMap(t).Index {
		tag := fi.Field.Tag.Get("db")
		if tag == "" || tag == "-" || strings.Contains(fi.Path, ".") {
			continue
		}
		fields = append(fields, fi)
	}

	sort.SliceStable(fields, func(i, j int) bool {
		return lessIndex(fields[i].Index, fields[j].Index)
	})

	columns := make([]string, len(fields))
	for i, fi := range fields {
		columns[i] = fi.Path
	}
	return columns
}

func lessIndex(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// Field returns the addressable field of item stored under column, or the
// zero Value when T has no such column
func Field[T Record](item T, column string) reflect.Value {
	v := reflect.Indirect(reflect.ValueOf(item))
	if !v.IsValid() {
		return reflect.Value{}
	}
	fi := Mapper.TypeMap(v.Type()).GetByPath(column)
	if fi == nil {
		return reflect.Value{}
	}
	return reflectx.FieldByIndexes(v, fi.Index)
}

// Value returns the value of item stored under column
func Value[T Record](item T, column string) any {
	f := Field(item, column)
	if !f.IsValid() {
		return nil
	}
	return f.Interface()
}

// Values returns the values of item for each column, in order
func Values[T Record](item T, columns []string) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i] = Value(item, c)
	}
	return out
}

// Copy sets the given columns of dst from src
func Copy[T Record](dst, src T, columns []string) {
	for _, c := range columns {
		d := Field(dst, c)
		s := Field(src, c)
		if d.IsValid() && s.IsValid() && d.CanSet() {
			d.Set(s)
		}
	}
}

// Clone returns a shallow copy of item. Stored rows are cloned on every read
// and write so callers never share memory with a table.
func Clone[T Record](item T) T {
	v := reflect.ValueOf(item)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return item
	}
	c := reflect.New(v.Elem().Type())
	c.Elem().Set(v.Elem())
	return c.Interface().(T)
}
