package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/application"
	"github.com/staffdesk/staffdesk/internal/domain/asset"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	"github.com/staffdesk/staffdesk/internal/domain/job"
	"github.com/staffdesk/staffdesk/internal/domain/leave"
	"github.com/staffdesk/staffdesk/internal/domain/performance"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/types"
)

// analyticsMaxGoroutines bounds the dashboard fan-out
const analyticsMaxGoroutines = 4

type analyticsService struct {
	ServiceParams
}

func NewAnalyticsService(params ServiceParams) interfaces.AnalyticsService {
	return &analyticsService{ServiceParams: params}
}

// GetAnalytics runs one group count per dashboard tile concurrently. The
// first failure cancels the rest.
func (s *analyticsService) GetAnalytics(ctx context.Context) types.Response[*dto.Analytics] {
	return run(ctx, s.ServiceParams, "analytics.get_analytics", "Failed to fetch analytics",
		func(ctx context.Context) (*dto.Analytics, error) {
			out := &dto.Analytics{}
			var byRating map[string]int

			p := pool.New().
				WithMaxGoroutines(analyticsMaxGoroutines).
				WithErrors().
				WithContext(ctx).
				WithCancelOnError()

			countBy := func(dst *map[string]int, fn func(ctx context.Context) (map[string]int, error)) {
				p.Go(func(ctx context.Context) error {
					counts, err := fn(ctx)
					if err != nil {
						return err
					}
					*dst = counts
					return nil
				})
			}

			countBy(&out.EmployeesByStatus, func(ctx context.Context) (map[string]int, error) {
				return s.EmployeeRepo.CountBy(ctx, employee.ColumnStatus, nil)
			})
			countBy(&out.EmployeesByDepartment, func(ctx context.Context) (map[string]int, error) {
				return s.EmployeeRepo.CountBy(ctx, employee.ColumnDepartment, nil)
			})
			countBy(&out.JobsByStatus, func(ctx context.Context) (map[string]int, error) {
				return s.JobRepo.CountBy(ctx, job.ColumnStatus, nil)
			})
			countBy(&out.ApplicationsByStage, func(ctx context.Context) (map[string]int, error) {
				return s.ApplicationRepo.CountBy(ctx, application.ColumnStage, nil)
			})
			countBy(&out.LeaveByStatus, func(ctx context.Context) (map[string]int, error) {
				return s.LeaveRepo.CountBy(ctx, leave.ColumnStatus, nil)
			})
			countBy(&out.AssetsByStatus, func(ctx context.Context) (map[string]int, error) {
				return s.AssetRepo.CountBy(ctx, asset.ColumnStatus, nil)
			})
			countBy(&byRating, func(ctx context.Context) (map[string]int, error) {
				return s.ReviewRepo.CountBy(ctx, performance.ColumnOverallRating, nil)
			})

			if err := p.Wait(); err != nil {
				return nil, err
			}

			rated := scoredRatings(byRating)
			out.Headcount = lo.Sum(lo.Values(out.EmployeesByStatus))
			out.ReviewCount = lo.Sum(lo.Values(rated))
			out.AverageRating = averageRating(rated)
			return out, nil
		})
}
