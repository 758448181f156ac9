package memory

import (
	"time"

	"github.com/staffdesk/staffdesk/internal/config"
	"github.com/staffdesk/staffdesk/internal/domain/application"
	"github.com/staffdesk/staffdesk/internal/domain/asset"
	"github.com/staffdesk/staffdesk/internal/domain/candidate"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	"github.com/staffdesk/staffdesk/internal/domain/job"
	"github.com/staffdesk/staffdesk/internal/domain/leave"
	"github.com/staffdesk/staffdesk/internal/domain/onboarding"
	"github.com/staffdesk/staffdesk/internal/domain/performance"
	"github.com/staffdesk/staffdesk/internal/domain/profile"
	"github.com/staffdesk/staffdesk/internal/domain/training"
	"github.com/staffdesk/staffdesk/internal/logger"
	"github.com/staffdesk/staffdesk/internal/types"
)

// Store holds one table per entity
type Store struct {
	Employees   *Table[*employee.Employee]
	Jobs        *Table[*job.Job]
	Candidates  *Table[*candidate.Candidate]
	Apps        *Table[*application.Application]
	Leave       *Table[*leave.Request]
	Assets      *Table[*asset.Asset]
	Onboarding  *Table[*onboarding.Task]
	Programs    *Table[*training.Program]
	Enrollments *Table[*training.Enrollment]
	Reviews     *Table[*performance.Review]
	Profiles    *Table[*profile.Profile]
}

// NewStore creates the in-process tables. With the supabase backend the
// store is not needed and it returns nil.
func NewStore(cfg *config.Configuration, logger *logger.Logger) *Store {
	if cfg.Backend.Type != types.BackendMock {
		return nil
	}

	s := NewEmptyStore(logger, cfg.Mock.Delay)
	if cfg.Mock.Seed {
		s.Seed(time.Now().UTC())
		logger.Infow("seeded mock backend",
			"employees", s.Employees.Len(),
			"jobs", s.Jobs.Len(),
			"delay", cfg.Mock.Delay,
		)
	}
	return s
}

// NewEmptyStore creates tables with the given artificial delay
func NewEmptyStore(logger *logger.Logger, delay time.Duration) *Store {
	return &Store{
		Employees:   NewTable[*employee.Employee](logger, "employee", types.UUID_PREFIX_EMPLOYEE, delay),
		Jobs:        NewTable[*job.Job](logger, "job", types.UUID_PREFIX_JOB, delay),
		Candidates:  NewTable[*candidate.Candidate](logger, "candidate", types.UUID_PREFIX_CANDIDATE, delay),
		Apps:        NewTable[*application.Application](logger, "application", types.UUID_PREFIX_APPLICATION, delay),
		Leave:       NewTable[*leave.Request](logger, "leave request", types.UUID_PREFIX_LEAVE_REQUEST, delay),
		Assets:      NewTable[*asset.Asset](logger, "asset", types.UUID_PREFIX_ASSET, delay),
		Onboarding:  NewTable[*onboarding.Task](logger, "onboarding task", types.UUID_PREFIX_ONBOARDING_TASK, delay),
		Programs:    NewTable[*training.Program](logger, "training program", types.UUID_PREFIX_TRAINING_PROGRAM, delay),
		Enrollments: NewTable[*training.Enrollment](logger, "enrollment", types.UUID_PREFIX_TRAINING_ENROLLMENT, delay),
		Reviews:     NewTable[*performance.Review](logger, "performance review", types.UUID_PREFIX_PERFORMANCE_REVIEW, delay),
		Profiles:    NewTable[*profile.Profile](logger, "profile", types.UUID_PREFIX_PROFILE, delay),
	}
}
