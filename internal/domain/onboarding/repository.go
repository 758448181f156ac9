package onboarding

import (
	"github.com/staffdesk/staffdesk/internal/domain/record"
)

type Repository interface {
	record.Repository[*Task]
}
