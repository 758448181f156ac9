package interfaces

import (
	"context"

	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/application"
	"github.com/staffdesk/staffdesk/internal/domain/asset"
	"github.com/staffdesk/staffdesk/internal/domain/candidate"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	"github.com/staffdesk/staffdesk/internal/domain/job"
	"github.com/staffdesk/staffdesk/internal/domain/leave"
	"github.com/staffdesk/staffdesk/internal/domain/onboarding"
	"github.com/staffdesk/staffdesk/internal/domain/performance"
	"github.com/staffdesk/staffdesk/internal/domain/training"
	"github.com/staffdesk/staffdesk/internal/types"
)

// CRUDService is the verb set every entity service exposes. Every verb
// returns the envelope and never panics; callers branch on Success.
type CRUDService[T any, C any, U any] interface {
	GetAll(ctx context.Context, pagination *types.Pagination, filters []*types.Filter) types.Response[[]T]
	GetByID(ctx context.Context, id string) types.Response[T]
	Create(ctx context.Context, req C) types.Response[T]
	Update(ctx context.Context, id string, req U) types.Response[T]
	Delete(ctx context.Context, id string) types.Response[bool]
}

// EmployeeService defines the interface for employee operations
type EmployeeService interface {
	CRUDService[*employee.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]
	Search(ctx context.Context, term string) types.Response[[]*employee.Employee]
	GetByDepartment(ctx context.Context, department string) types.Response[[]*employee.Employee]
	GetStats(ctx context.Context) types.Response[*dto.EmployeeStats]
}

// JobService defines the interface for job posting operations
type JobService interface {
	CRUDService[*job.Job, dto.CreateJobRequest, dto.UpdateJobRequest]
	Search(ctx context.Context, term string) types.Response[[]*job.Job]
	Publish(ctx context.Context, id string) types.Response[*job.Job]
	Close(ctx context.Context, id string) types.Response[*job.Job]
	GetStats(ctx context.Context) types.Response[*dto.JobStats]
}

type CandidateService interface {
	CRUDService[*candidate.Candidate, dto.CreateCandidateRequest, dto.UpdateCandidateRequest]
	Search(ctx context.Context, term string) types.Response[[]*candidate.Candidate]
}

type ApplicationService interface {
	CRUDService[*application.Application, dto.CreateApplicationRequest, dto.UpdateApplicationRequest]
	GetByJob(ctx context.Context, jobID string) types.Response[[]*application.Application]
	MoveToStage(ctx context.Context, id string, req dto.MoveToStageRequest) types.Response[*application.Application]
	GetStats(ctx context.Context) types.Response[*dto.ApplicationStats]
}

// LeaveService defines the interface for leave request operations. Only
// pending requests can be approved, rejected or cancelled.
type LeaveService interface {
	CRUDService[*leave.Request, dto.CreateLeaveRequest, dto.UpdateLeaveRequest]
	GetByEmployee(ctx context.Context, employeeID string) types.Response[[]*leave.Request]
	Approve(ctx context.Context, id string, req dto.LeaveDecisionRequest) types.Response[*leave.Request]
	Reject(ctx context.Context, id string, req dto.LeaveDecisionRequest) types.Response[*leave.Request]
	Cancel(ctx context.Context, id string) types.Response[*leave.Request]
	GetStats(ctx context.Context) types.Response[*dto.LeaveStats]
}

type AssetService interface {
	CRUDService[*asset.Asset, dto.CreateAssetRequest, dto.UpdateAssetRequest]
	Assign(ctx context.Context, id string, req dto.AssignAssetRequest) types.Response[*asset.Asset]
	Unassign(ctx context.Context, id string) types.Response[*asset.Asset]
	GetStats(ctx context.Context) types.Response[*dto.AssetStats]
}

type OnboardingService interface {
	CRUDService[*onboarding.Task, dto.CreateOnboardingTaskRequest, dto.UpdateOnboardingTaskRequest]
	GetByEmployee(ctx context.Context, employeeID string) types.Response[[]*onboarding.Task]
	Complete(ctx context.Context, id string) types.Response[*onboarding.Task]
	GetProgress(ctx context.Context, employeeID string) types.Response[*dto.OnboardingProgress]
}

type TrainingService interface {
	CRUDService[*training.Program, dto.CreateTrainingRequest, dto.UpdateTrainingRequest]
	Enroll(ctx context.Context, trainingID string, req dto.EnrollRequest) types.Response[*training.Enrollment]
	GetEnrollments(ctx context.Context, trainingID string) types.Response[[]*training.Enrollment]
	CompleteEnrollment(ctx context.Context, id string, req dto.CompleteEnrollmentRequest) types.Response[*training.Enrollment]
	GetStats(ctx context.Context) types.Response[*dto.TrainingStats]
}

type PerformanceService interface {
	CRUDService[*performance.Review, dto.CreateReviewRequest, dto.UpdateReviewRequest]
	GetByEmployee(ctx context.Context, employeeID string) types.Response[[]*performance.Review]
	Submit(ctx context.Context, id string) types.Response[*performance.Review]
	Acknowledge(ctx context.Context, id string) types.Response[*performance.Review]
	GetStats(ctx context.Context) types.Response[*dto.ReviewStats]
}

// AnalyticsService builds the dashboard from every module's group counts
type AnalyticsService interface {
	GetAnalytics(ctx context.Context) types.Response[*dto.Analytics]
}

type AuthService interface {
	GetCurrentUser(ctx context.Context, token string) types.Response[*dto.AuthUser]
	GetSession(ctx context.Context, token string) types.Response[*dto.Session]
	SignInWithPassword(ctx context.Context, req dto.SignInRequest) types.Response[*dto.Session]
	SignUp(ctx context.Context, req dto.SignUpRequest) types.Response[*dto.AuthUser]
	SignOut(ctx context.Context, token string) types.Response[bool]
}
