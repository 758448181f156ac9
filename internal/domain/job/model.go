package job

import (
	"time"

	"github.com/shopspring/decimal"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/types"
)

const Table = "jobs"

// Job is an open or past position posted by the company
type Job struct {
	types.BaseModel

	Title          string               `db:"title" json:"title"`
	Department     string               `db:"department" json:"department"`
	Location       string               `db:"location" json:"location"`
	EmploymentType types.EmploymentType `db:"employment_type" json:"employment_type"`
	Description    string               `db:"description" json:"description"`
	Requirements   string               `db:"requirements" json:"requirements"`

	// SalaryMin and SalaryMax bound the advertised range. Zero means unset.
	SalaryMin decimal.Decimal `db:"salary_min" json:"salary_min"`
	SalaryMax decimal.Decimal `db:"salary_max" json:"salary_max"`

	Status      types.JobStatus `db:"status" json:"status"`
	PostedBy    *string         `db:"posted_by" json:"posted_by,omitempty"`
	ClosingDate *time.Time      `db:"closing_date" json:"closing_date,omitempty"`
}

const (
	ColumnTitle      = "title"
	ColumnDepartment = "department"
	ColumnLocation   = "location"
	ColumnStatus     = "status"
)

var SearchColumns = []string{ColumnTitle, ColumnDepartment, ColumnLocation}

func (j *Job) Validate() error {
	if j.Status != "" && !j.Status.IsValid() {
		return ierr.NewError("invalid job status").
			WithHintf("Status %q is not supported", j.Status).
			Mark(ierr.ErrValidation)
	}
	if j.EmploymentType != "" && !j.EmploymentType.IsValid() {
		return ierr.NewError("invalid employment type").
			WithHintf("Employment type %q is not supported", j.EmploymentType).
			Mark(ierr.ErrValidation)
	}
	if j.SalaryMin.IsNegative() || j.SalaryMax.IsNegative() {
		return ierr.NewError("salary range cannot be negative").
			WithHint("Salary bounds must be zero or more").
			Mark(ierr.ErrValidation)
	}
	if !j.SalaryMax.IsZero() && j.SalaryMax.LessThan(j.SalaryMin) {
		return ierr.NewError("salary_max must not be below salary_min").
			WithHint("Check the advertised salary range").
			Mark(ierr.ErrValidation)
	}
	return nil
}
