package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk/internal/domain/asset"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/staffdesk/staffdesk/internal/validator"
)

type CreateAssetRequest struct {
	Name         string              `json:"name" validate:"required,max=255"`
	AssetTag     string              `json:"asset_tag" validate:"required,max=50"`
	Category     types.AssetCategory `json:"category" validate:"required"`
	SerialNumber string              `json:"serial_number" validate:"omitempty,max=100"`
	Condition    string              `json:"condition" validate:"omitempty,max=50"`
	Location     string              `json:"location" validate:"omitempty,max=100"`
	PurchaseDate *time.Time          `json:"purchase_date,omitempty"`
	PurchaseCost decimal.Decimal     `json:"purchase_cost"`
	Status       types.AssetStatus   `json:"status"`
	Notes        string              `json:"notes"`
}

func (r *CreateAssetRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateAssetRequest) ToAsset() *asset.Asset {
	return &asset.Asset{
		BaseModel:    newBase(),
		Name:         r.Name,
		AssetTag:     r.AssetTag,
		Category:     r.Category,
		SerialNumber: r.SerialNumber,
		Status:       lo.CoalesceOrEmpty(r.Status, types.AssetStatusAvailable),
		Condition:    r.Condition,
		Location:     r.Location,
		PurchaseDate: r.PurchaseDate,
		PurchaseCost: r.PurchaseCost,
		Notes:        r.Notes,
	}
}

type UpdateAssetRequest struct {
	Name         *string              `json:"name,omitempty" db:"name" validate:"omitempty,max=255"`
	AssetTag     *string              `json:"asset_tag,omitempty" db:"asset_tag" validate:"omitempty,max=50"`
	Category     *types.AssetCategory `json:"category,omitempty" db:"category"`
	SerialNumber *string              `json:"serial_number,omitempty" db:"serial_number"`
	Status       *types.AssetStatus   `json:"status,omitempty" db:"status"`
	Condition    *string              `json:"condition,omitempty" db:"condition"`
	Location     *string              `json:"location,omitempty" db:"location"`
	PurchaseDate *time.Time           `json:"purchase_date,omitempty" db:"purchase_date"`
	PurchaseCost *decimal.Decimal     `json:"purchase_cost,omitempty" db:"purchase_cost"`
	Notes        *string              `json:"notes,omitempty" db:"notes"`
}

func (r *UpdateAssetRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type AssignAssetRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
}

func (r *AssignAssetRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type AssetStats struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	ByCategory map[string]int `json:"by_category"`
}
