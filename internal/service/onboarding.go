package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/onboarding"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/types"
)

type onboardingService struct {
	crud[*onboarding.Task]
}

func NewOnboardingService(params ServiceParams) interfaces.OnboardingService {
	s := &onboardingService{
		crud: newCRUD(params, params.OnboardingRepo, "onboarding task", "onboarding tasks"),
	}
	s.join = s.withEmployee
	return s
}

func (s *onboardingService) withEmployee(ctx context.Context, items []*onboarding.Task) error {
	employees, err := lookup(ctx, s.EmployeeRepo, lo.Map(items, func(t *onboarding.Task, _ int) string {
		return t.EmployeeID
	}))
	if err != nil {
		return err
	}
	for _, t := range items {
		t.Employee = employees[t.EmployeeID]
	}
	return nil
}

func (s *onboardingService) Create(ctx context.Context, req dto.CreateOnboardingTaskRequest) types.Response[*onboarding.Task] {
	return run(ctx, s.ServiceParams, s.op("create"), "Failed to create onboarding task",
		func(ctx context.Context) (*onboarding.Task, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}
			if _, err := s.EmployeeRepo.Get(ctx, req.EmployeeID); err != nil {
				return nil, err
			}
			return s.insert(ctx, req.ToTask())
		})
}

// Update keeps completed_at in step with the status
func (s *onboardingService) Update(ctx context.Context, id string, req dto.UpdateOnboardingTaskRequest) types.Response[*onboarding.Task] {
	return s.update(ctx, id, &req, func(t *onboarding.Task, columns []string) []string {
		if req.Status == nil {
			return columns
		}
		if t.Status == types.OnboardingTaskStatusCompleted {
			if t.CompletedAt == nil {
				t.CompletedAt = lo.ToPtr(time.Now().UTC())
			}
		} else {
			t.CompletedAt = nil
		}
		return append(columns, onboarding.ColumnCompletedAt)
	})
}

func (s *onboardingService) GetByEmployee(ctx context.Context, employeeID string) types.Response[[]*onboarding.Task] {
	return s.listBy(ctx, "get_by_employee", onboarding.ColumnEmployeeID, employeeID)
}

// Complete marks a task done. Completing a completed task keeps its
// original completion time.
func (s *onboardingService) Complete(ctx context.Context, id string) types.Response[*onboarding.Task] {
	return run(ctx, s.ServiceParams, s.op("complete"), "Failed to complete onboarding task",
		func(ctx context.Context) (*onboarding.Task, error) {
			return s.mutate(ctx, id, func(t *onboarding.Task) ([]string, error) {
				if t.Status == types.OnboardingTaskStatusCompleted && t.CompletedAt != nil {
					return nil, nil
				}
				t.Status = types.OnboardingTaskStatusCompleted
				t.CompletedAt = lo.ToPtr(time.Now().UTC())
				return []string{onboarding.ColumnStatus, onboarding.ColumnCompletedAt}, nil
			})
		})
}

// GetProgress reports how much of an employee's checklist is done. An
// employee without tasks is at 0 percent.
func (s *onboardingService) GetProgress(ctx context.Context, employeeID string) types.Response[*dto.OnboardingProgress] {
	return run(ctx, s.ServiceParams, s.op("get_progress"), "Failed to fetch onboarding progress",
		func(ctx context.Context) (*dto.OnboardingProgress, error) {
			byStatus, err := s.repo.CountBy(ctx, onboarding.ColumnStatus, []*types.Filter{
				types.NewFilter(onboarding.ColumnEmployeeID, types.FilterOpEq, employeeID),
			})
			if err != nil {
				return nil, err
			}

			progress := &dto.OnboardingProgress{
				EmployeeID: employeeID,
				Total:      lo.Sum(lo.Values(byStatus)),
				Completed:  byStatus[string(types.OnboardingTaskStatusCompleted)],
			}
			if progress.Total > 0 {
				progress.Percent = progress.Completed * 100 / progress.Total
			}
			return progress, nil
		})
}
