package candidate

import (
	"github.com/staffdesk/staffdesk/internal/domain/record"
)

type Repository interface {
	record.Repository[*Candidate]
}
