package repository

import (
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
	"github.com/staffdesk/staffdesk/internal/postgres"
	memoryRepo "github.com/staffdesk/staffdesk/internal/repository/memory"
	postgresRepo "github.com/staffdesk/staffdesk/internal/repository/postgres"
	"github.com/staffdesk/staffdesk/internal/types"
)

// RepositoryParams holds what every repository constructor may need. Only
// one of DB and Store is set, depending on the configured backend.
type RepositoryParams struct {
	Config *config.Configuration
	Logger *logger.Logger
	DB     *postgres.DB
	Store  *memoryRepo.Store
}

func NewRepositoryParams(
	cfg *config.Configuration,
	logger *logger.Logger,
	db *postgres.DB,
	store *memoryRepo.Store,
) RepositoryParams {
	return RepositoryParams{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Store:  store,
	}
}

func (p RepositoryParams) isMock() bool {
	return p.Config.Backend.Type == types.BackendMock
}

func NewEmployeeRepository(p RepositoryParams) employee.Repository {
	if p.isMock() {
		return memoryRepo.NewEmployeeRepository(p.Store)
	}
	return postgresRepo.NewEmployeeRepository(p.DB, p.Logger)
}

func NewJobRepository(p RepositoryParams) job.Repository {
	if p.isMock() {
		return memoryRepo.NewJobRepository(p.Store)
	}
	return postgresRepo.NewJobRepository(p.DB, p.Logger)
}

func NewCandidateRepository(p RepositoryParams) candidate.Repository {
	if p.isMock() {
		return memoryRepo.NewCandidateRepository(p.Store)
	}
	return postgresRepo.NewCandidateRepository(p.DB, p.Logger)
}

func NewApplicationRepository(p RepositoryParams) application.Repository {
	if p.isMock() {
		return memoryRepo.NewApplicationRepository(p.Store)
	}
	return postgresRepo.NewApplicationRepository(p.DB, p.Logger)
}

func NewLeaveRepository(p RepositoryParams) leave.Repository {
	if p.isMock() {
		return memoryRepo.NewLeaveRepository(p.Store)
	}
	return postgresRepo.NewLeaveRepository(p.DB, p.Logger)
}

func NewAssetRepository(p RepositoryParams) asset.Repository {
	if p.isMock() {
		return memoryRepo.NewAssetRepository(p.Store)
	}
	return postgresRepo.NewAssetRepository(p.DB, p.Logger)
}

func NewOnboardingRepository(p RepositoryParams) onboarding.Repository {
	if p.isMock() {
		return memoryRepo.NewOnboardingRepository(p.Store)
	}
	return postgresRepo.NewOnboardingRepository(p.DB, p.Logger)
}

func NewTrainingProgramRepository(p RepositoryParams) training.ProgramRepository {
	if p.isMock() {
		return memoryRepo.NewTrainingProgramRepository(p.Store)
	}
	return postgresRepo.NewTrainingProgramRepository(p.DB, p.Logger)
}

func NewTrainingEnrollmentRepository(p RepositoryParams) training.EnrollmentRepository {
	if p.isMock() {
		return memoryRepo.NewTrainingEnrollmentRepository(p.Store)
	}
	return postgresRepo.NewTrainingEnrollmentRepository(p.DB, p.Logger)
}

func NewPerformanceRepository(p RepositoryParams) performance.Repository {
	if p.isMock() {
		return memoryRepo.NewPerformanceRepository(p.Store)
	}
	return postgresRepo.NewPerformanceRepository(p.DB, p.Logger)
}

func NewProfileRepository(p RepositoryParams) profile.Repository {
	if p.isMock() {
		return memoryRepo.NewProfileRepository(p.Store)
	}
	return postgresRepo.NewProfileRepository(p.DB, p.Logger)
}
