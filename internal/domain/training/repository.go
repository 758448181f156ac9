package training

import (
	"github.com/staffdesk/staffdesk/internal/domain/record"
)

// ProgramRepository defines data access for training programs
type ProgramRepository interface {
	record.Repository[*Program]
}

// EnrollmentRepository defines data access for enrollments
type EnrollmentRepository interface {
	record.Repository[*Enrollment]
}
