package types

import (
	"time"
)

// BaseModel carries the columns every record has. Entities embed it so the
// repositories can stamp and read them without knowing the concrete type.
type BaseModel struct {
	ID        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Base returns the embedded base model. It is promoted to every entity.
func (b *BaseModel) Base() *BaseModel {
	return b
}

// Touch stamps both timestamps for a new record.
func (b *BaseModel) Touch(now time.Time) {
	b.CreatedAt = now
	b.UpdatedAt = now
}

// Column names shared by every table
const (
	ColumnID        = "id"
	ColumnCreatedAt = "created_at"
	ColumnUpdatedAt = "updated_at"
)
