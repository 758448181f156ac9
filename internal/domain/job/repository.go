package job

import (
	"github.com/staffdesk/staffdesk/internal/domain/record"
)

// Repository defines the interface for job posting data access
type Repository interface {
	record.Repository[*Job]
}
