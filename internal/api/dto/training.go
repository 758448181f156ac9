package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/domain/training"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/staffdesk/staffdesk/internal/validator"
)

type CreateTrainingRequest struct {
	Title       string               `json:"title" validate:"required,max=255"`
	Description string               `json:"description"`
	Category    string               `json:"category" validate:"omitempty,max=50"`
	Trainer     string               `json:"trainer" validate:"omitempty,max=255"`
	Location    string               `json:"location" validate:"omitempty,max=100"`
	StartDate   *time.Time           `json:"start_date,omitempty"`
	EndDate     *time.Time           `json:"end_date,omitempty"`
	Capacity    int                  `json:"capacity" validate:"min=0"`
	Status      types.TrainingStatus `json:"status"`
}

func (r *CreateTrainingRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateTrainingRequest) ToProgram() *training.Program {
	return &training.Program{
		BaseModel:   newBase(),
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Trainer:     r.Trainer,
		Location:    r.Location,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Capacity:    r.Capacity,
		Status:      lo.CoalesceOrEmpty(r.Status, types.TrainingStatusScheduled),
	}
}

type UpdateTrainingRequest struct {
	Title       *string               `json:"title,omitempty" db:"title" validate:"omitempty,max=255"`
	Description *string               `json:"description,omitempty" db:"description"`
	Category    *string               `json:"category,omitempty" db:"category"`
	Trainer     *string               `json:"trainer,omitempty" db:"trainer"`
	Location    *string               `json:"location,omitempty" db:"location"`
	StartDate   *time.Time            `json:"start_date,omitempty" db:"start_date"`
	EndDate     *time.Time            `json:"end_date,omitempty" db:"end_date"`
	Capacity    *int                  `json:"capacity,omitempty" db:"capacity" validate:"omitempty,min=0"`
	Status      *types.TrainingStatus `json:"status,omitempty" db:"status"`
}

func (r *UpdateTrainingRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type EnrollRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
}

func (r *EnrollRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type CompleteEnrollmentRequest struct {
	Score *int `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
}

func (r *CompleteEnrollmentRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type TrainingStats struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"by_status"`
	Enrollments map[string]int `json:"enrollments_by_status"`
}
