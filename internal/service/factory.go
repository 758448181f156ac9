package service

import (
	authProvider "github.com/staffdesk/staffdesk/internal/auth"
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
	"github.com/staffdesk/staffdesk/internal/metrics"
	"github.com/staffdesk/staffdesk/internal/sentry"
)

// ServiceParams holds common dependencies for services. The repositories
// are backed by whichever store the configuration selected.
type ServiceParams struct {
	Logger  *logger.Logger
	Config  *config.Configuration
	Sentry  *sentry.Service
	Metrics *metrics.Metrics
	Auth    authProvider.Provider

	// Repositories
	EmployeeRepo    employee.Repository
	JobRepo         job.Repository
	CandidateRepo   candidate.Repository
	ApplicationRepo application.Repository
	LeaveRepo       leave.Repository
	AssetRepo       asset.Repository
	OnboardingRepo  onboarding.Repository
	ProgramRepo     training.ProgramRepository
	EnrollmentRepo  training.EnrollmentRepository
	ReviewRepo      performance.Repository
	ProfileRepo     profile.Repository
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	sentryService *sentry.Service,
	metrics *metrics.Metrics,
	auth authProvider.Provider,
	employeeRepo employee.Repository,
	jobRepo job.Repository,
	candidateRepo candidate.Repository,
	applicationRepo application.Repository,
	leaveRepo leave.Repository,
	assetRepo asset.Repository,
	onboardingRepo onboarding.Repository,
	programRepo training.ProgramRepository,
	enrollmentRepo training.EnrollmentRepository,
	reviewRepo performance.Repository,
	profileRepo profile.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:          logger,
		Config:          config,
		Sentry:          sentryService,
		Metrics:         metrics,
		Auth:            auth,
		EmployeeRepo:    employeeRepo,
		JobRepo:         jobRepo,
		CandidateRepo:   candidateRepo,
		ApplicationRepo: applicationRepo,
		LeaveRepo:       leaveRepo,
		AssetRepo:       assetRepo,
		OnboardingRepo:  onboardingRepo,
		ProgramRepo:     programRepo,
		EnrollmentRepo:  enrollmentRepo,
		ReviewRepo:      reviewRepo,
		ProfileRepo:     profileRepo,
	}
}
