package dto

import (
	"reflect"
	"time"

	"github.com/staffdesk/staffdesk/internal/domain/record"
	"github.com/staffdesk/staffdesk/internal/types"
)

// SuccessResponse represents a generic success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// Patch copies every non-nil field of req that carries a db tag onto item
// and returns the columns it wrote, in field order. Fields without a db tag
// are not columns and are ignored.
func Patch[T record.Record](req any, item T) []string {
	rv := reflect.Indirect(reflect.ValueOf(req))
	if rv.Kind() != reflect.Struct {
		return nil
	}

	columns := make([]string, 0, rv.NumField())
	for i := 0; i < rv.NumField(); i++ {
		column := rv.Type().Field(i).Tag.Get("db")
		if column == "" || column == "-" {
			continue
		}

		src := rv.Field(i)
		if src.Kind() == reflect.Ptr && src.IsNil() {
			continue
		}

		dst := record.Field(item, column)
		if !dst.IsValid() || !dst.CanSet() {
			continue
		}

		if dst.Kind() != reflect.Ptr && src.Kind() == reflect.Ptr {
			src = src.Elem()
		}
		switch {
		case src.Type().AssignableTo(dst.Type()):
			dst.Set(src)
		case src.Type().ConvertibleTo(dst.Type()):
			dst.Set(src.Convert(dst.Type()))
		default:
			continue
		}
		columns = append(columns, column)
	}
	return columns
}

// newBase stamps a new record: created_at and updated_at are equal
func newBase() types.BaseModel {
	now := time.Now().UTC()
	return types.BaseModel{CreatedAt: now, UpdatedAt: now}
}
