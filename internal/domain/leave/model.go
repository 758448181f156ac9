package leave

import (
	"time"

	"github.com/staffdesk/staffdesk/internal/domain/employee"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/types"
)

const Table = "leave_requests"

// Request is a leave request raised by an employee
type Request struct {
	types.BaseModel

	EmployeeID string          `db:"employee_id" json:"employee_id"`
	LeaveType  types.LeaveType `db:"leave_type" json:"leave_type"`
	StartDate  time.Time       `db:"start_date" json:"start_date"`
	EndDate    time.Time       `db:"end_date" json:"end_date"`
	// Days is the number of calendar days requested, both ends included
	Days   int               `db:"days" json:"days"`
	Reason string            `db:"reason" json:"reason"`
	Status types.LeaveStatus `db:"status" json:"status"`

	// Approval audit fields, set by approve and reject
	ApproverID       *string    `db:"approver_id" json:"approver_id,omitempty"`
	ApprovalDate     *time.Time `db:"approval_date" json:"approval_date,omitempty"`
	ApproverComments *string    `db:"approver_comments" json:"approver_comments,omitempty"`

	Employee *employee.Employee `db:"-" json:"employee,omitempty"`
}

const (
	ColumnEmployeeID       = "employee_id"
	ColumnLeaveType        = "leave_type"
	ColumnDays             = "days"
	ColumnStatus           = "status"
	ColumnApproverID       = "approver_id"
	ColumnApprovalDate     = "approval_date"
	ColumnApproverComments = "approver_comments"
)

// DaysBetween counts calendar days from start to end inclusive
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

func (r *Request) Validate() error {
	if r.LeaveType != "" && !r.LeaveType.IsValid() {
		return ierr.NewError("invalid leave type").
			WithHintf("Leave type %q is not supported", r.LeaveType).
			Mark(ierr.ErrValidation)
	}
	if r.Status != "" && !r.Status.IsValid() {
		return ierr.NewError("invalid leave status").
			WithHintf("Status %q is not supported", r.Status).
			Mark(ierr.ErrValidation)
	}
	if !r.StartDate.IsZero() && !r.EndDate.IsZero() && r.EndDate.Before(r.StartDate) {
		return ierr.NewError("end_date must not be before start_date").
			WithHint("Check the leave dates").
			Mark(ierr.ErrValidation)
	}
	return nil
}
