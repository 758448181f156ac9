package employee

import (
	"time"

	"github.com/shopspring/decimal"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/types"
)

const Table = "employees"

// Employee represents an employee in the system
type Employee struct {
	types.BaseModel

	// Name is the full name of the employee
	Name string `db:"name" json:"name"`

	// Email is the work email of the employee
	Email string `db:"email" json:"email"`

	Phone string `db:"phone" json:"phone"`

	Department string `db:"department" json:"department"`

	// Position is the job title held by the employee
	Position string `db:"position" json:"position"`

	// ManagerID references another employee
	ManagerID *string `db:"manager_id" json:"manager_id,omitempty"`

	HireDate *time.Time `db:"hire_date" json:"hire_date,omitempty"`

	Salary decimal.Decimal `db:"salary" json:"salary"`

	EmploymentType types.EmploymentType `db:"employment_type" json:"employment_type"`

	Location string `db:"location" json:"location"`

	Status types.EmployeeStatus `db:"status" json:"status"`
}

// Column names used by the service queries
const (
	ColumnName       = "name"
	ColumnEmail      = "email"
	ColumnDepartment = "department"
	ColumnPosition   = "position"
	ColumnStatus     = "status"
)

// SearchColumns are matched by the employee search
var SearchColumns = []string{ColumnName, ColumnEmail, ColumnDepartment, ColumnPosition}

// Validate checks the fields that carry business rules
func (e *Employee) Validate() error {
	if e.Status != "" && !e.Status.IsValid() {
		return ierr.NewError("invalid employee status").
			WithHintf("Status %q is not supported", e.Status).
			Mark(ierr.ErrValidation)
	}
	if e.EmploymentType != "" && !e.EmploymentType.IsValid() {
		return ierr.NewError("invalid employment type").
			WithHintf("Employment type %q is not supported", e.EmploymentType).
			Mark(ierr.ErrValidation)
	}
	if e.Salary.IsNegative() {
		return ierr.NewError("salary cannot be negative").
			WithHint("Salary must be zero or more").
			Mark(ierr.ErrValidation)
	}
	if e.ManagerID != nil && *e.ManagerID != "" && *e.ManagerID == e.ID {
		return ierr.NewError("employee cannot manage themselves").
			WithHint("Choose a different manager").
			Mark(ierr.ErrValidation)
	}
	return nil
}
