package training

import (
	"time"

	"github.com/staffdesk/staffdesk/internal/domain/employee"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/types"
)

const (
	ProgramTable    = "training_programs"
	EnrollmentTable = "training_enrollments"
)

// Program is a scheduled training course
type Program struct {
	types.BaseModel

	Title       string               `db:"title" json:"title"`
	Description string               `db:"description" json:"description"`
	Category    string               `db:"category" json:"category"`
	Trainer     string               `db:"trainer" json:"trainer"`
	Location    string               `db:"location" json:"location"`
	StartDate   *time.Time           `db:"start_date" json:"start_date,omitempty"`
	EndDate     *time.Time           `db:"end_date" json:"end_date,omitempty"`
	// Capacity is the seat limit, 0 means unlimited
	Capacity int                  `db:"capacity" json:"capacity"`
	Status   types.TrainingStatus `db:"status" json:"status"`
}

func (p *Program) Validate() error {
	if p.Status != "" && !p.Status.IsValid() {
		return ierr.NewError("invalid training status").
			WithHintf("Status %q is not supported", p.Status).
			Mark(ierr.ErrValidation)
	}
	if p.Capacity < 0 {
		return ierr.NewError("capacity cannot be negative").
			WithHint("Use 0 for unlimited seats").
			Mark(ierr.ErrValidation)
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return ierr.NewError("end_date must not be before start_date").
			WithHint("Check the training dates").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Enrollment places an employee on a training program
type Enrollment struct {
	types.BaseModel

	TrainingID  string                 `db:"training_id" json:"training_id"`
	EmployeeID  string                 `db:"employee_id" json:"employee_id"`
	Status      types.EnrollmentStatus `db:"status" json:"status"`
	Score       *int                   `db:"score" json:"score,omitempty"`
	CompletedAt *time.Time             `db:"completed_at" json:"completed_at,omitempty"`

	Training *Program          `db:"-" json:"training,omitempty"`
	Employee *employee.Employee `db:"-" json:"employee,omitempty"`
}

const (
	ColumnStatus      = "status"
	ColumnTrainingID  = "training_id"
	ColumnEmployeeID  = "employee_id"
	ColumnScore       = "score"
	ColumnCompletedAt = "completed_at"
)
