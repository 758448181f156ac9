package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/api"
	v1 "github.com/staffdesk/staffdesk/internal/api/v1"
	"github.com/staffdesk/staffdesk/internal/auth"
	"github.com/staffdesk/staffdesk/internal/config"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/logger"
	"github.com/staffdesk/staffdesk/internal/metrics"
	"github.com/staffdesk/staffdesk/internal/postgres"
	"github.com/staffdesk/staffdesk/internal/repository"
	"github.com/staffdesk/staffdesk/internal/repository/memory"
	"github.com/staffdesk/staffdesk/internal/sentry"
	"github.com/staffdesk/staffdesk/internal/service"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/staffdesk/staffdesk/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// set the timezone to UTC
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	opts = append(opts,
		fx.Provide(
			// validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,
			metrics.NewMetrics,

			// Backends. Only the one the config selects is opened.
			postgres.NewDB,
			memory.NewStore,
			auth.NewProvider,

			// Repositories
			repository.NewRepositoryParams,
			repository.NewEmployeeRepository,
			repository.NewJobRepository,
			repository.NewCandidateRepository,
			repository.NewApplicationRepository,
			repository.NewLeaveRepository,
			repository.NewAssetRepository,
			repository.NewOnboardingRepository,
			repository.NewTrainingProgramRepository,
			repository.NewTrainingEnrollmentRepository,
			repository.NewPerformanceRepository,
			repository.NewProfileRepository,
		),
	)

	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewAuthService,
			service.NewEmployeeService,
			service.NewJobService,
			service.NewCandidateService,
			service.NewApplicationService,
			service.NewLeaveService,
			service.NewAssetService,
			service.NewOnboardingService,
			service.NewTrainingService,
			service.NewPerformanceService,
			service.NewAnalyticsService,
		),
	)

	opts = append(opts,
		fx.Provide(
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			postgres.RegisterHooks,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	cfg *config.Configuration,
	logger *logger.Logger,
	authService interfaces.AuthService,
	employeeService interfaces.EmployeeService,
	jobService interfaces.JobService,
	candidateService interfaces.CandidateService,
	applicationService interfaces.ApplicationService,
	leaveService interfaces.LeaveService,
	assetService interfaces.AssetService,
	onboardingService interfaces.OnboardingService,
	trainingService interfaces.TrainingService,
	performanceService interfaces.PerformanceService,
	analyticsService interfaces.AnalyticsService,
) api.Handlers {
	return api.Handlers{
		Health:      v1.NewHealthHandler(cfg, logger),
		Auth:        v1.NewAuthHandler(authService, logger),
		Employee:    v1.NewEmployeeHandler(employeeService, logger),
		Job:         v1.NewJobHandler(jobService, logger),
		Candidate:   v1.NewCandidateHandler(candidateService, logger),
		Application: v1.NewApplicationHandler(applicationService, logger),
		Leave:       v1.NewLeaveHandler(leaveService, logger),
		Asset:       v1.NewAssetHandler(assetService, logger),
		Onboarding:  v1.NewOnboardingHandler(onboardingService, logger),
		Training:    v1.NewTrainingHandler(trainingService, logger),
		Performance: v1.NewPerformanceHandler(performanceService, logger),
		Analytics:   v1.NewAnalyticsHandler(analyticsService, logger),
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...",
				"address", cfg.Server.Address,
				"backend", cfg.Backend.Type,
			)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return srv.Shutdown(ctx)
		},
	})
}
