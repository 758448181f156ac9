package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk/internal/domain/performance"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/staffdesk/staffdesk/internal/validator"
)

type CreateReviewRequest struct {
	EmployeeID    string     `json:"employee_id" validate:"required"`
	ReviewerID    *string    `json:"reviewer_id,omitempty"`
	ReviewPeriod  string     `json:"review_period" validate:"required,max=50"`
	ReviewDate    *time.Time `json:"review_date,omitempty"`
	OverallRating int        `json:"overall_rating" validate:"omitempty,min=1,max=5"`
	Goals         string     `json:"goals"`
	Strengths     string     `json:"strengths"`
	Improvements  string     `json:"improvements"`
	Comments      string     `json:"comments"`
}

func (r *CreateReviewRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToReview builds a draft review
func (r *CreateReviewRequest) ToReview() *performance.Review {
	return &performance.Review{
		BaseModel:     newBase(),
		EmployeeID:    r.EmployeeID,
		ReviewerID:    r.ReviewerID,
		ReviewPeriod:  r.ReviewPeriod,
		ReviewDate:    r.ReviewDate,
		OverallRating: r.OverallRating,
		Goals:         r.Goals,
		Strengths:     r.Strengths,
		Improvements:  r.Improvements,
		Comments:      r.Comments,
		Status:        types.ReviewStatusDraft,
	}
}

type UpdateReviewRequest struct {
	ReviewerID    *string    `json:"reviewer_id,omitempty" db:"reviewer_id"`
	ReviewPeriod  *string    `json:"review_period,omitempty" db:"review_period" validate:"omitempty,max=50"`
	ReviewDate    *time.Time `json:"review_date,omitempty" db:"review_date"`
	OverallRating *int       `json:"overall_rating,omitempty" db:"overall_rating" validate:"omitempty,min=1,max=5"`
	Goals         *string    `json:"goals,omitempty" db:"goals"`
	Strengths     *string    `json:"strengths,omitempty" db:"strengths"`
	Improvements  *string    `json:"improvements,omitempty" db:"improvements"`
	Comments      *string    `json:"comments,omitempty" db:"comments"`
}

func (r *UpdateReviewRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type ReviewStats struct {
	Total         int             `json:"total"`
	ByStatus      map[string]int  `json:"by_status"`
	ByRating      map[string]int  `json:"by_rating"`
	AverageRating decimal.Decimal `json:"average_rating"`
}
