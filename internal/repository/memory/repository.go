package memory

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
)

func NewEmployeeRepository(s *Store) employee.Repository { return s.Employees }

func NewJobRepository(s *Store) job.Repository { return s.Jobs }

func NewCandidateRepository(s *Store) candidate.Repository { return s.Candidates }

func NewApplicationRepository(s *Store) application.Repository { return s.Apps }

func NewLeaveRepository(s *Store) leave.Repository { return s.Leave }

func NewAssetRepository(s *Store) asset.Repository { return s.Assets }

func NewOnboardingRepository(s *Store) onboarding.Repository { return s.Onboarding }

func NewTrainingProgramRepository(s *Store) training.ProgramRepository { return s.Programs }

func NewTrainingEnrollmentRepository(s *Store) training.EnrollmentRepository { return s.Enrollments }

func NewPerformanceRepository(s *Store) performance.Repository { return s.Reviews }

func NewProfileRepository(s *Store) profile.Repository { return s.Profiles }
