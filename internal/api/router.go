package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/staffdesk/staffdesk/internal/api/v1"
	"github.com/staffdesk/staffdesk/internal/auth"
	"github.com/staffdesk/staffdesk/internal/config"
	"github.com/staffdesk/staffdesk/internal/logger"
	"github.com/staffdesk/staffdesk/internal/metrics"
	"github.com/staffdesk/staffdesk/internal/rest/middleware"
	"github.com/staffdesk/staffdesk/internal/types"
)

type Handlers struct {
	Health      *v1.HealthHandler
	Auth        *v1.AuthHandler
	Employee    *v1.EmployeeHandler
	Job         *v1.JobHandler
	Candidate   *v1.CandidateHandler
	Application *v1.ApplicationHandler
	Leave       *v1.LeaveHandler
	Asset       *v1.AssetHandler
	Onboarding  *v1.OnboardingHandler
	Training    *v1.TrainingHandler
	Performance *v1.PerformanceHandler
	Analytics   *v1.AnalyticsHandler
}

func NewRouter(
	handlers Handlers,
	cfg *config.Configuration,
	logger *logger.Logger,
	provider auth.Provider,
	m *metrics.Metrics,
) *gin.Engine {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware(cfg),
		middleware.SentryMiddleware(cfg),
		middleware.LoggingMiddleware(logger),
		middleware.ErrorHandler(),
		gin.Recovery(),
	)

	router.GET("/health", handlers.Health.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Public routes
	public := router.Group("/v1")
	{
		authRoutes := public.Group("/auth")
		authRoutes.POST("/signup", handlers.Auth.SignUp)
		authRoutes.POST("/signin", handlers.Auth.SignIn)
		authRoutes.GET("/user", handlers.Auth.GetCurrentUser)
		authRoutes.GET("/session", handlers.Auth.GetSession)
		authRoutes.POST("/signout", handlers.Auth.SignOut)
	}

	// Private routes
	private := router.Group("/v1")
	private.Use(middleware.AuthenticateMiddleware(provider, logger))

	employees := private.Group("/employees")
	{
		employees.GET("/search", handlers.Employee.Search)
		employees.GET("/stats", handlers.Employee.GetStats)
		employees.GET("/department/:department", handlers.Employee.GetByDepartment)
		handlers.Employee.Register(employees)
		employees.GET("/:id/leave-requests", handlers.Leave.GetByEmployee)
		employees.GET("/:id/onboarding-tasks", handlers.Onboarding.GetByEmployee)
		employees.GET("/:id/onboarding-progress", handlers.Onboarding.GetProgress)
		employees.GET("/:id/reviews", handlers.Performance.GetByEmployee)
	}

	jobs := private.Group("/jobs")
	{
		jobs.GET("/search", handlers.Job.Search)
		jobs.GET("/stats", handlers.Job.GetStats)
		handlers.Job.Register(jobs)
		jobs.POST("/:id/publish", handlers.Job.Publish)
		jobs.POST("/:id/close", handlers.Job.Close)
		jobs.GET("/:id/applications", handlers.Application.GetByJob)
	}

	candidates := private.Group("/candidates")
	{
		candidates.GET("/search", handlers.Candidate.Search)
		handlers.Candidate.Register(candidates)
	}

	applications := private.Group("/applications")
	{
		applications.GET("/stats", handlers.Application.GetStats)
		handlers.Application.Register(applications)
		applications.POST("/:id/stage", handlers.Application.MoveToStage)
	}

	leave := private.Group("/leave-requests")
	{
		leave.GET("/stats", handlers.Leave.GetStats)
		handlers.Leave.Register(leave)
		leave.POST("/:id/approve", handlers.Leave.Approve)
		leave.POST("/:id/reject", handlers.Leave.Reject)
		leave.POST("/:id/cancel", handlers.Leave.Cancel)
	}

	assets := private.Group("/assets")
	{
		assets.GET("/stats", handlers.Asset.GetStats)
		handlers.Asset.Register(assets)
		assets.POST("/:id/assign", handlers.Asset.Assign)
		assets.POST("/:id/unassign", handlers.Asset.Unassign)
	}

	onboarding := private.Group("/onboarding-tasks")
	{
		handlers.Onboarding.Register(onboarding)
		onboarding.POST("/:id/complete", handlers.Onboarding.Complete)
	}

	trainings := private.Group("/trainings")
	{
		trainings.GET("/stats", handlers.Training.GetStats)
		handlers.Training.Register(trainings)
		trainings.POST("/:id/enrollments", handlers.Training.Enroll)
		trainings.GET("/:id/enrollments", handlers.Training.GetEnrollments)
	}
	private.POST("/enrollments/:id/complete", handlers.Training.CompleteEnrollment)

	reviews := private.Group("/reviews")
	{
		reviews.GET("/stats", handlers.Performance.GetStats)
		handlers.Performance.Register(reviews)
		reviews.POST("/:id/submit", handlers.Performance.Submit)
		reviews.POST("/:id/acknowledge", handlers.Performance.Acknowledge)
	}

	private.GET("/analytics", handlers.Analytics.GetAnalytics)

	return router
}
