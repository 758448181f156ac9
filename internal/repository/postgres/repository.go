package postgres

import (
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
)

func NewEmployeeRepository(db *postgres.DB, logger *logger.Logger) employee.Repository {
	return NewTable[*employee.Employee](db, logger, employee.Table, "employee")
}

func NewJobRepository(db *postgres.DB, logger *logger.Logger) job.Repository {
	return NewTable[*job.Job](db, logger, job.Table, "job")
}

func NewCandidateRepository(db *postgres.DB, logger *logger.Logger) candidate.Repository {
	return NewTable[*candidate.Candidate](db, logger, candidate.Table, "candidate")
}

func NewApplicationRepository(db *postgres.DB, logger *logger.Logger) application.Repository {
	return NewTable[*application.Application](db, logger, application.Table, "application")
}

func NewLeaveRepository(db *postgres.DB, logger *logger.Logger) leave.Repository {
	return NewTable[*leave.Request](db, logger, leave.Table, "leave request")
}

func NewAssetRepository(db *postgres.DB, logger *logger.Logger) asset.Repository {
	return NewTable[*asset.Asset](db, logger, asset.Table, "asset")
}

func NewOnboardingRepository(db *postgres.DB, logger *logger.Logger) onboarding.Repository {
	return NewTable[*onboarding.Task](db, logger, onboarding.Table, "onboarding task")
}

func NewTrainingProgramRepository(db *postgres.DB, logger *logger.Logger) training.ProgramRepository {
	return NewTable[*training.Program](db, logger, training.ProgramTable, "training program")
}

func NewTrainingEnrollmentRepository(db *postgres.DB, logger *logger.Logger) training.EnrollmentRepository {
	return NewTable[*training.Enrollment](db, logger, training.EnrollmentTable, "enrollment")
}

func NewPerformanceRepository(db *postgres.DB, logger *logger.Logger) performance.Repository {
	return NewTable[*performance.Review](db, logger, performance.Table, "performance review")
}

func NewProfileRepository(db *postgres.DB, logger *logger.Logger) profile.Repository {
	return NewTable[*profile.Profile](db, logger, profile.Table, "profile")
}
