package asset

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/types"
)

const Table = "assets"

// Asset is company equipment that can be assigned to an employee
type Asset struct {
	types.BaseModel

	Name         string              `db:"name" json:"name"`
	AssetTag     string              `db:"asset_tag" json:"asset_tag"`
	Category     types.AssetCategory `db:"category" json:"category"`
	SerialNumber string              `db:"serial_number" json:"serial_number"`
	Status       types.AssetStatus   `db:"status" json:"status"`
	Condition    string              `db:"condition" json:"condition"`
	Location     string              `db:"location" json:"location"`
	PurchaseDate *time.Time          `db:"purchase_date" json:"purchase_date,omitempty"`
	PurchaseCost decimal.Decimal     `db:"purchase_cost" json:"purchase_cost"`
	AssignedTo   *string             `db:"assigned_to" json:"assigned_to,omitempty"`
	AssignedDate *time.Time          `db:"assigned_date" json:"assigned_date,omitempty"`
	Notes        string              `db:"notes" json:"notes"`

	Assignee *employee.Employee `db:"-" json:"assignee,omitempty"`
}

const (
	ColumnStatus       = "status"
	ColumnCategory     = "category"
	ColumnAssignedTo   = "assigned_to"
	ColumnAssignedDate = "assigned_date"
)

func (a *Asset) Validate() error {
	if a.Status != "" && !a.Status.IsValid() {
		return ierr.NewError("invalid asset status").
			WithHintf("Status %q is not supported", a.Status).
			Mark(ierr.ErrValidation)
	}
	if a.Category != "" && !a.Category.IsValid() {
		return ierr.NewError("invalid asset category").
			WithHintf("Category %q is not supported", a.Category).
			Mark(ierr.ErrValidation)
	}
	if a.PurchaseCost.IsNegative() {
		return ierr.NewError("purchase cost cannot be negative").
			WithHint("Purchase cost must be zero or more").
			Mark(ierr.ErrValidation)
	}
	return nil
}
