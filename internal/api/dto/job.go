package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk/internal/domain/job"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/staffdesk/staffdesk/internal/validator"
)

type CreateJobRequest struct {
	Title          string               `json:"title" validate:"required,max=255"`
	Department     string               `json:"department" validate:"required,max=100"`
	Location       string               `json:"location" validate:"omitempty,max=100"`
	EmploymentType types.EmploymentType `json:"employment_type"`
	Description    string               `json:"description"`
	Requirements   string               `json:"requirements"`
	SalaryMin      decimal.Decimal      `json:"salary_min"`
	SalaryMax      decimal.Decimal      `json:"salary_max"`
	Status         types.JobStatus      `json:"status"`
	PostedBy       *string              `json:"posted_by,omitempty"`
	ClosingDate    *time.Time           `json:"closing_date,omitempty"`
}

func (r *CreateJobRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateJobRequest) ToJob() *job.Job {
	return &job.Job{
		BaseModel:      newBase(),
		Title:          r.Title,
		Department:     r.Department,
		Location:       r.Location,
		EmploymentType: lo.CoalesceOrEmpty(r.EmploymentType, types.EmploymentTypeFullTime),
		Description:    r.Description,
		Requirements:   r.Requirements,
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		Status:         lo.CoalesceOrEmpty(r.Status, types.JobStatusDraft),
		PostedBy:       r.PostedBy,
		ClosingDate:    r.ClosingDate,
	}
}

type UpdateJobRequest struct {
	Title          *string               `json:"title,omitempty" db:"title" validate:"omitempty,max=255"`
	Department     *string               `json:"department,omitempty" db:"department" validate:"omitempty,max=100"`
	Location       *string               `json:"location,omitempty" db:"location" validate:"omitempty,max=100"`
	EmploymentType *types.EmploymentType `json:"employment_type,omitempty" db:"employment_type"`
	Description    *string               `json:"description,omitempty" db:"description"`
	Requirements   *string               `json:"requirements,omitempty" db:"requirements"`
	SalaryMin      *decimal.Decimal      `json:"salary_min,omitempty" db:"salary_min"`
	SalaryMax      *decimal.Decimal      `json:"salary_max,omitempty" db:"salary_max"`
	Status         *types.JobStatus      `json:"status,omitempty" db:"status"`
	ClosingDate    *time.Time            `json:"closing_date,omitempty" db:"closing_date"`
}

func (r *UpdateJobRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type JobStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}
