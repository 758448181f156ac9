package leave

import (
	"github.com/staffdesk/staffdesk/internal/domain/record"
)

// Repository defines the interface for leave request data access
type Repository interface {
	record.Repository[*Request]
}
