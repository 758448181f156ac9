package employee

import (
	"github.com/staffdesk/staffdesk/internal/domain/record"
)

// Repository defines the interface for employee data access
type Repository interface {
	record.Repository[*Employee]
}
