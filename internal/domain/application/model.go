package application

import (
	"time"

	"github.com/staffdesk/staffdesk/internal/domain/candidate"
	"github.com/staffdesk/staffdesk/internal/domain/job"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/types"
)

const Table = "applications"

// Application links a candidate to a job and tracks the hiring stage
type Application struct {
	types.BaseModel

	JobID       string                 `db:"job_id" json:"job_id"`
	CandidateID string                 `db:"candidate_id" json:"candidate_id"`
	Stage       types.ApplicationStage `db:"stage" json:"stage"`
	// Rating is the interviewer score, 0 when not rated
	Rating    int        `db:"rating" json:"rating"`
	Notes     string     `db:"notes" json:"notes"`
	AppliedAt *time.Time `db:"applied_at" json:"applied_at,omitempty"`

	// Read-time joins, never stored
	Job       *job.Job             `db:"-" json:"job,omitempty"`
	Candidate *candidate.Candidate `db:"-" json:"candidate,omitempty"`
}

const (
	ColumnJobID       = "job_id"
	ColumnCandidateID = "candidate_id"
	ColumnStage       = "stage"
	ColumnNotes       = "notes"
)

func (a *Application) Validate() error {
	if a.Stage != "" && !a.Stage.IsValid() {
		return ierr.NewError("invalid application stage").
			WithHintf("Stage %q is not supported", a.Stage).
			Mark(ierr.ErrValidation)
	}
	if a.Rating < 0 || a.Rating > 5 {
		return ierr.NewError("rating must be between 0 and 5").
			WithHint("Use 0 for unrated").
			Mark(ierr.ErrValidation)
	}
	return nil
}
