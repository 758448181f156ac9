package asset

import (
	"github.com/staffdesk/staffdesk/internal/domain/record"
)

type Repository interface {
	record.Repository[*Asset]
}
