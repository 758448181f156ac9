package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/staffdesk/staffdesk/internal/auth"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/logger"
	"github.com/staffdesk/staffdesk/internal/metrics"
	"github.com/staffdesk/staffdesk/internal/postgres"
	"github.com/staffdesk/staffdesk/internal/repository"
	"github.com/staffdesk/staffdesk/internal/repository/memory"
	"github.com/staffdesk/staffdesk/internal/sentry"
	"github.com/staffdesk/staffdesk/internal/service"
	"github.com/staffdesk/staffdesk/internal/types"
	"go.uber.org/fx"
)

// console holds the services a command can call
type console struct {
	employees    interfaces.EmployeeService
	jobs         interfaces.JobService
	candidates   interfaces.CandidateService
	applications interfaces.ApplicationService
	leave        interfaces.LeaveService
	assets       interfaces.AssetService
	onboarding   interfaces.OnboardingService
	trainings    interfaces.TrainingService
	reviews      interfaces.PerformanceService
	analytics    interfaces.AnalyticsService
}

func newConsole(
	employees interfaces.EmployeeService,
	jobs interfaces.JobService,
	candidates interfaces.CandidateService,
	applications interfaces.ApplicationService,
	leave interfaces.LeaveService,
	assets interfaces.AssetService,
	onboarding interfaces.OnboardingService,
	trainings interfaces.TrainingService,
	reviews interfaces.PerformanceService,
	analytics interfaces.AnalyticsService,
) *console {
	return &console{
		employees:    employees,
		jobs:         jobs,
		candidates:   candidates,
		applications: applications,
		leave:        leave,
		assets:       assets,
		onboarding:   onboarding,
		trainings:    trainings,
		reviews:      reviews,
		analytics:    analytics,
	}
}

// open builds the service graph for the configured backend. The returned
// stop func releases the backend.
func (o *rootOptions) open(ctx context.Context) (*console, func(), error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := o.applyOverrides(cfg); err != nil {
		return nil, nil, err
	}

	log := logger.NewNopLogger()
	if o.verbose {
		if log, err = logger.NewLogger(cfg); err != nil {
			return nil, nil, err
		}
	}

	var c *console
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg, log),
		fx.Provide(
			sentry.NewSentryService,
			metrics.NewNopMetrics,
			postgres.NewDB,
			memory.NewStore,
			auth.NewProvider,

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

			service.NewServiceParams,
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

			newConsole,
		),
		fx.Invoke(postgres.RegisterHooks),
		fx.Populate(&c),
	)
	if err := app.Start(ctx); err != nil {
		return nil, nil, err
	}

	stop := func() {
		if err := app.Stop(context.Background()); err != nil {
			log.Warnw("failed to stop", "error", err)
		}
	}
	return c, stop, nil
}

// run opens the console for the lifetime of fn
func (o *rootOptions) run(cmd *cobra.Command, fn func(ctx context.Context, c *console) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	c, stop, err := o.open(ctx)
	if err != nil {
		return err
	}
	defer stop()

	return fn(ctx, c)
}

// emit prints the envelope and turns a failed one into errCallFailed
func emit[T any](out io.Writer, resp types.Response[T]) error {
	b, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(b))
	if !resp.Success {
		return errCallFailed
	}
	return nil
}
