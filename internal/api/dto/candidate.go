package dto

import (
	"github.com/staffdesk/staffdesk/internal/domain/candidate"
	"github.com/staffdesk/staffdesk/internal/validator"
)

type CreateCandidateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,max=50"`
	ResumeURL   string `json:"resume_url" validate:"omitempty,url"`
	LinkedInURL string `json:"linkedin_url" validate:"omitempty,url"`
	Source      string `json:"source" validate:"omitempty,max=100"`
	Notes       string `json:"notes"`
}

func (r *CreateCandidateRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateCandidateRequest) ToCandidate() *candidate.Candidate {
	return &candidate.Candidate{
		BaseModel:   newBase(),
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		ResumeURL:   r.ResumeURL,
		LinkedInURL: r.LinkedInURL,
		Source:      r.Source,
		Notes:       r.Notes,
	}
}

type UpdateCandidateRequest struct {
	Name        *string `json:"name,omitempty" db:"name" validate:"omitempty,max=255"`
	Email       *string `json:"email,omitempty" db:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" db:"phone" validate:"omitempty,max=50"`
	ResumeURL   *string `json:"resume_url,omitempty" db:"resume_url" validate:"omitempty,url"`
	LinkedInURL *string `json:"linkedin_url,omitempty" db:"linkedin_url" validate:"omitempty,url"`
	Source      *string `json:"source,omitempty" db:"source" validate:"omitempty,max=100"`
	Notes       *string `json:"notes,omitempty" db:"notes"`
}

func (r *UpdateCandidateRequest) Validate() error {
	return validator.ValidateRequest(r)
}
