package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/staffdesk/staffdesk/internal/validator"
)

type CreateEmployeeRequest struct {
	Name           string               `json:"name" validate:"required,max=255"`
	Email          string               `json:"email" validate:"required,email"`
	Phone          string               `json:"phone" validate:"omitempty,max=50"`
	Department     string               `json:"department" validate:"omitempty,max=100"`
	Position       string               `json:"position" validate:"omitempty,max=100"`
	ManagerID      *string              `json:"manager_id,omitempty"`
	HireDate       *time.Time           `json:"hire_date,omitempty"`
	Salary         decimal.Decimal      `json:"salary"`
	EmploymentType types.EmploymentType `json:"employment_type"`
	Location       string               `json:"location" validate:"omitempty,max=100"`
	Status         types.EmployeeStatus `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateEmployeeRequest) ToEmployee() *employee.Employee {
	return &employee.Employee{
		BaseModel:      newBase(),
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Department:     r.Department,
		Position:       r.Position,
		ManagerID:      r.ManagerID,
		HireDate:       r.HireDate,
		Salary:         r.Salary,
		EmploymentType: lo.CoalesceOrEmpty(r.EmploymentType, types.EmploymentTypeFullTime),
		Location:       r.Location,
		Status:         lo.CoalesceOrEmpty(r.Status, types.EmployeeStatusActive),
	}
}

// UpdateEmployeeRequest holds the fields an update may set. Nil fields are
// left as stored.
type UpdateEmployeeRequest struct {
	Name           *string               `json:"name,omitempty" db:"name" validate:"omitempty,max=255"`
	Email          *string               `json:"email,omitempty" db:"email" validate:"omitempty,email"`
	Phone          *string               `json:"phone,omitempty" db:"phone" validate:"omitempty,max=50"`
	Department     *string               `json:"department,omitempty" db:"department" validate:"omitempty,max=100"`
	Position       *string               `json:"position,omitempty" db:"position" validate:"omitempty,max=100"`
	ManagerID      *string               `json:"manager_id,omitempty" db:"manager_id"`
	HireDate       *time.Time            `json:"hire_date,omitempty" db:"hire_date"`
	Salary         *decimal.Decimal      `json:"salary,omitempty" db:"salary"`
	EmploymentType *types.EmploymentType `json:"employment_type,omitempty" db:"employment_type"`
	Location       *string               `json:"location,omitempty" db:"location" validate:"omitempty,max=100"`
	Status         *types.EmployeeStatus `json:"status,omitempty" db:"status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// EmployeeStats is the headcount summary
type EmployeeStats struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	ByDepartment map[string]int `json:"by_department"`
}
