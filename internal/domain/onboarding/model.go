package onboarding

import (
	"time"

	"github.com/staffdesk/staffdesk/internal/domain/employee"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/types"
)

const Table = "onboarding_tasks"

// Task is one checklist item in an employee's onboarding
type Task struct {
	types.BaseModel

	EmployeeID  string                     `db:"employee_id" json:"employee_id"`
	Title       string                     `db:"title" json:"title"`
	Description string                     `db:"description" json:"description"`
	Category    string                     `db:"category" json:"category"`
	DueDate     *time.Time                 `db:"due_date" json:"due_date,omitempty"`
	AssignedTo  *string                    `db:"assigned_to" json:"assigned_to,omitempty"`
	Status      types.OnboardingTaskStatus `db:"status" json:"status"`
	CompletedAt *time.Time                 `db:"completed_at" json:"completed_at,omitempty"`

	Employee *employee.Employee `db:"-" json:"employee,omitempty"`
}

const (
	ColumnEmployeeID  = "employee_id"
	ColumnStatus      = "status"
	ColumnCompletedAt = "completed_at"
)

func (t *Task) Validate() error {
	if t.Status != "" && !t.Status.IsValid() {
		return ierr.NewError("invalid onboarding task status").
			WithHintf("Status %q is not supported", t.Status).
			Mark(ierr.ErrValidation)
	}
	return nil
}
