package dto

import (
	"time"

	"github.com/staffdesk/staffdesk/internal/domain/leave"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/staffdesk/staffdesk/internal/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string          `json:"employee_id" validate:"required"`
	LeaveType  types.LeaveType `json:"leave_type" validate:"required"`
	StartDate  time.Time       `json:"start_date" validate:"required"`
	EndDate    time.Time       `json:"end_date" validate:"required"`
	Reason     string          `json:"reason" validate:"omitempty,max=1000"`
}

func (r *CreateLeaveRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToLeaveRequest builds a pending request. Days counts both ends.
func (r *CreateLeaveRequest) ToLeaveRequest() *leave.Request {
	return &leave.Request{
		BaseModel:  newBase(),
		EmployeeID: r.EmployeeID,
		LeaveType:  r.LeaveType,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Days:       leave.DaysBetween(r.StartDate, r.EndDate),
		Reason:     r.Reason,
		Status:     types.LeaveStatusPending,
	}
}

type UpdateLeaveRequest struct {
	LeaveType *types.LeaveType `json:"leave_type,omitempty" db:"leave_type"`
	StartDate *time.Time       `json:"start_date,omitempty" db:"start_date"`
	EndDate   *time.Time       `json:"end_date,omitempty" db:"end_date"`
	Reason    *string          `json:"reason,omitempty" db:"reason" validate:"omitempty,max=1000"`
}

func (r *UpdateLeaveRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// LeaveDecisionRequest approves or rejects a pending request
type LeaveDecisionRequest struct {
	ApproverID string  `json:"approver_id" validate:"required"`
	Comments   *string `json:"comments,omitempty"`
}

func (r *LeaveDecisionRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type LeaveStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	ByType   map[string]int `json:"by_type"`
}
