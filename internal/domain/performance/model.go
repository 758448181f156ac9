package performance

import (
	"time"

	"github.com/staffdesk/staffdesk/internal/domain/employee"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/types"
)

const Table = "performance_reviews"

// Review is a periodic performance review of an employee
type Review struct {
	types.BaseModel

	EmployeeID   string     `db:"employee_id" json:"employee_id"`
	ReviewerID   *string    `db:"reviewer_id" json:"reviewer_id,omitempty"`
	ReviewPeriod string     `db:"review_period" json:"review_period"`
	ReviewDate   *time.Time `db:"review_date" json:"review_date,omitempty"`
	// OverallRating is 1 to 5, 0 while the review is a draft without a score
	OverallRating int                `db:"overall_rating" json:"overall_rating"`
	Goals         string             `db:"goals" json:"goals"`
	Strengths     string             `db:"strengths" json:"strengths"`
	Improvements  string             `db:"improvements" json:"improvements"`
	Comments      string             `db:"comments" json:"comments"`
	Status        types.ReviewStatus `db:"status" json:"status"`

	Employee *employee.Employee `db:"-" json:"employee,omitempty"`
}

const (
	ColumnEmployeeID    = "employee_id"
	ColumnStatus        = "status"
	ColumnOverallRating = "overall_rating"
	ColumnReviewDate    = "review_date"
)

func (r *Review) Validate() error {
	if r.Status != "" && !r.Status.IsValid() {
		return ierr.NewError("invalid review status").
			WithHintf("Status %q is not supported", r.Status).
			Mark(ierr.ErrValidation)
	}
	if r.OverallRating != 0 && (r.OverallRating < types.MinReviewRating || r.OverallRating > types.MaxReviewRating) {
		return ierr.NewError("overall_rating must be between 1 and 5").
			WithHint("Ratings use a 1 to 5 scale").
			Mark(ierr.ErrValidation)
	}
	return nil
}
