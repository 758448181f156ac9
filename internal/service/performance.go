package service

import (
	"context"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/performance"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/types"
)

type performanceService struct {
	crud[*performance.Review]
}

func NewPerformanceService(params ServiceParams) interfaces.PerformanceService {
	s := &performanceService{
		crud: newCRUD(params, params.ReviewRepo, "performance review", "performance reviews"),
	}
	s.join = s.withEmployee
	return s
}

func (s *performanceService) withEmployee(ctx context.Context, items []*performance.Review) error {
	employees, err := lookup(ctx, s.EmployeeRepo, lo.Map(items, func(r *performance.Review, _ int) string {
		return r.EmployeeID
	}))
	if err != nil {
		return err
	}
	for _, r := range items {
		r.Employee = employees[r.EmployeeID]
	}
	return nil
}

func (s *performanceService) Create(ctx context.Context, req dto.CreateReviewRequest) types.Response[*performance.Review] {
	return run(ctx, s.ServiceParams, s.op("create"), "Failed to create performance review",
		func(ctx context.Context) (*performance.Review, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}
			if _, err := s.EmployeeRepo.Get(ctx, req.EmployeeID); err != nil {
				return nil, err
			}
			return s.insert(ctx, req.ToReview())
		})
}

// Update only edits drafts
func (s *performanceService) Update(ctx context.Context, id string, req dto.UpdateReviewRequest) types.Response[*performance.Review] {
	return run(ctx, s.ServiceParams, s.op("update"), "Failed to update performance review",
		func(ctx context.Context) (*performance.Review, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}
			return s.mutate(ctx, id, func(r *performance.Review) ([]string, error) {
				if r.Status != types.ReviewStatusDraft {
					return nil, ierr.NewError("performance review is already " + string(r.Status)).
						WithHint("Only draft reviews can be edited").
						Mark(ierr.ErrInvalidOperation)
				}
				return dto.Patch(&req, r), nil
			})
		})
}

func (s *performanceService) GetByEmployee(ctx context.Context, employeeID string) types.Response[[]*performance.Review] {
	return s.listBy(ctx, "get_by_employee", performance.ColumnEmployeeID, employeeID)
}

// Submit sends a scored draft to the employee
func (s *performanceService) Submit(ctx context.Context, id string) types.Response[*performance.Review] {
	return run(ctx, s.ServiceParams, s.op("submit"), "Failed to submit performance review",
		func(ctx context.Context) (*performance.Review, error) {
			return s.mutate(ctx, id, func(r *performance.Review) ([]string, error) {
				if r.Status != types.ReviewStatusDraft {
					return nil, ierr.NewError("performance review is already " + string(r.Status)).
						WithHint("Only draft reviews can be submitted").
						Mark(ierr.ErrInvalidOperation)
				}
				if r.OverallRating < types.MinReviewRating {
					return nil, ierr.NewError("overall_rating is required to submit").
						WithHintf("Rate the review from %d to %d first", types.MinReviewRating, types.MaxReviewRating).
						Mark(ierr.ErrValidation)
				}

				r.Status = types.ReviewStatusSubmitted
				columns := []string{performance.ColumnStatus}
				if r.ReviewDate == nil {
					r.ReviewDate = lo.ToPtr(time.Now().UTC())
					columns = append(columns, performance.ColumnReviewDate)
				}
				return columns, nil
			})
		})
}

// Acknowledge records that the employee has read a submitted review
func (s *performanceService) Acknowledge(ctx context.Context, id string) types.Response[*performance.Review] {
	return run(ctx, s.ServiceParams, s.op("acknowledge"), "Failed to acknowledge performance review",
		func(ctx context.Context) (*performance.Review, error) {
			return s.mutate(ctx, id, func(r *performance.Review) ([]string, error) {
				if r.Status != types.ReviewStatusSubmitted {
					return nil, ierr.NewError("performance review is " + string(r.Status)).
						WithHint("Only submitted reviews can be acknowledged").
						Mark(ierr.ErrInvalidOperation)
				}
				r.Status = types.ReviewStatusAcknowledged
				return []string{performance.ColumnStatus}, nil
			})
		})
}

func (s *performanceService) GetStats(ctx context.Context) types.Response[*dto.ReviewStats] {
	return run(ctx, s.ServiceParams, s.op("get_stats"), "Failed to fetch performance review stats",
		func(ctx context.Context) (*dto.ReviewStats, error) {
			byStatus, err := s.repo.CountBy(ctx, performance.ColumnStatus, nil)
			if err != nil {
				return nil, err
			}
			byRating, err := s.repo.CountBy(ctx, performance.ColumnOverallRating, nil)
			if err != nil {
				return nil, err
			}

			rated := scoredRatings(byRating)
			return &dto.ReviewStats{
				Total:         lo.Sum(lo.Values(byStatus)),
				ByStatus:      byStatus,
				ByRating:      rated,
				AverageRating: averageRating(rated),
			}, nil
		})
}

// scoredRatings drops unscored reviews from a rating histogram
func scoredRatings(byRating map[string]int) map[string]int {
	return lo.PickBy(byRating, func(key string, _ int) bool {
		rating, err := strconv.Atoi(key)
		return err == nil && rating >= types.MinReviewRating && rating <= types.MaxReviewRating
	})
}

// averageRating is the mean of a rating histogram, rounded to two places
func averageRating(rated map[string]int) decimal.Decimal {
	var sum, n int64
	for key, count := range rated {
		rating, _ := strconv.Atoi(key)
		sum += int64(rating * count)
		n += int64(count)
	}
	if n == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(n)).Round(2)
}
