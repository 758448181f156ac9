package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/domain/onboarding"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/staffdesk/staffdesk/internal/validator"
)

type CreateOnboardingTaskRequest struct {
	EmployeeID  string                     `json:"employee_id" validate:"required"`
	Title       string                     `json:"title" validate:"required,max=255"`
	Description string                     `json:"description"`
	Category    string                     `json:"category" validate:"omitempty,max=50"`
	DueDate     *time.Time                 `json:"due_date,omitempty"`
	AssignedTo  *string                    `json:"assigned_to,omitempty"`
	Status      types.OnboardingTaskStatus `json:"status"`
}

func (r *CreateOnboardingTaskRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateOnboardingTaskRequest) ToTask() *onboarding.Task {
	return &onboarding.Task{
		BaseModel:   newBase(),
		EmployeeID:  r.EmployeeID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		DueDate:     r.DueDate,
		AssignedTo:  r.AssignedTo,
		Status:      lo.CoalesceOrEmpty(r.Status, types.OnboardingTaskStatusPending),
	}
}

type UpdateOnboardingTaskRequest struct {
	Title       *string                     `json:"title,omitempty" db:"title" validate:"omitempty,max=255"`
	Description *string                     `json:"description,omitempty" db:"description"`
	Category    *string                     `json:"category,omitempty" db:"category"`
	DueDate     *time.Time                  `json:"due_date,omitempty" db:"due_date"`
	AssignedTo  *string                     `json:"assigned_to,omitempty" db:"assigned_to"`
	Status      *types.OnboardingTaskStatus `json:"status,omitempty" db:"status"`
}

func (r *UpdateOnboardingTaskRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// OnboardingProgress summarises an employee's checklist
type OnboardingProgress struct {
	EmployeeID string `json:"employee_id"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	Percent    int    `json:"percent"`
}
