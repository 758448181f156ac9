package candidate

import (
	"github.com/staffdesk/staffdesk/internal/types"
)

const Table = "candidates"

// Candidate is a person applying to one or more jobs
type Candidate struct {
	types.BaseModel

	Name        string `db:"name" json:"name"`
	Email       string `db:"email" json:"email"`
	Phone       string `db:"phone" json:"phone"`
	ResumeURL   string `db:"resume_url" json:"resume_url"`
	LinkedInURL string `db:"linkedin_url" json:"linkedin_url"`
	// Source is where the candidate came from (referral, job board, ...)
	Source string `db:"source" json:"source"`
	Notes  string `db:"notes" json:"notes"`
}

var SearchColumns = []string{"name", "email", "source"}
