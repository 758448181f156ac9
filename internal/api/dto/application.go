package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/domain/application"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/staffdesk/staffdesk/internal/validator"
)

type CreateApplicationRequest struct {
	JobID       string                 `json:"job_id" validate:"required"`
	CandidateID string                 `json:"candidate_id" validate:"required"`
	Stage       types.ApplicationStage `json:"stage"`
	Rating      int                    `json:"rating" validate:"min=0,max=5"`
	Notes       string                 `json:"notes"`
	AppliedAt   *time.Time             `json:"applied_at,omitempty"`
}

func (r *CreateApplicationRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateApplicationRequest) ToApplication() *application.Application {
	b := newBase()
	return &application.Application{
		BaseModel:   b,
		JobID:       r.JobID,
		CandidateID: r.CandidateID,
		Stage:       lo.CoalesceOrEmpty(r.Stage, types.ApplicationStageApplied),
		Rating:      r.Rating,
		Notes:       r.Notes,
		AppliedAt:   lo.Ternary(r.AppliedAt != nil, r.AppliedAt, lo.ToPtr(b.CreatedAt)),
	}
}

type UpdateApplicationRequest struct {
	Stage  *types.ApplicationStage `json:"stage,omitempty" db:"stage"`
	Rating *int                    `json:"rating,omitempty" db:"rating" validate:"omitempty,min=0,max=5"`
	Notes  *string                 `json:"notes,omitempty" db:"notes"`
}

func (r *UpdateApplicationRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type MoveToStageRequest struct {
	Stage types.ApplicationStage `json:"stage" validate:"required"`
	Notes *string                `json:"notes,omitempty"`
}

type ApplicationStats struct {
	Total   int            `json:"total"`
	ByStage map[string]int `json:"by_stage"`
}
