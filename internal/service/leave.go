package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/leave"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/types"
)

type leaveService struct {
	crud[*leave.Request]
}

func NewLeaveService(params ServiceParams) interfaces.LeaveService {
	s := &leaveService{
		crud: newCRUD(params, params.LeaveRepo, "leave request", "leave requests"),
	}
	s.join = s.withEmployee
	return s
}

func (s *leaveService) withEmployee(ctx context.Context, items []*leave.Request) error {
	employees, err := lookup(ctx, s.EmployeeRepo, lo.Map(items, func(r *leave.Request, _ int) string {
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

func (s *leaveService) Create(ctx context.Context, req dto.CreateLeaveRequest) types.Response[*leave.Request] {
	return run(ctx, s.ServiceParams, s.op("create"), "Failed to create leave request",
		func(ctx context.Context) (*leave.Request, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}
			if _, err := s.EmployeeRepo.Get(ctx, req.EmployeeID); err != nil {
				return nil, err
			}
			return s.insert(ctx, req.ToLeaveRequest())
		})
}

// Update recomputes days whenever a date changes
func (s *leaveService) Update(ctx context.Context, id string, req dto.UpdateLeaveRequest) types.Response[*leave.Request] {
	return s.update(ctx, id, &req, func(r *leave.Request, columns []string) []string {
		if req.StartDate == nil && req.EndDate == nil {
			return columns
		}
		r.Days = leave.DaysBetween(r.StartDate, r.EndDate)
		return append(columns, leave.ColumnDays)
	})
}

func (s *leaveService) GetByEmployee(ctx context.Context, employeeID string) types.Response[[]*leave.Request] {
	return s.listBy(ctx, "get_by_employee", leave.ColumnEmployeeID, employeeID)
}

func (s *leaveService) Approve(ctx context.Context, id string, req dto.LeaveDecisionRequest) types.Response[*leave.Request] {
	return s.decide(ctx, "approve", "Failed to approve leave request", id, req, types.LeaveStatusApproved)
}

func (s *leaveService) Reject(ctx context.Context, id string, req dto.LeaveDecisionRequest) types.Response[*leave.Request] {
	return s.decide(ctx, "reject", "Failed to reject leave request", id, req, types.LeaveStatusRejected)
}

// decide moves a pending request to status and records who decided, when
// and why
func (s *leaveService) decide(
	ctx context.Context,
	verb, fallback, id string,
	req dto.LeaveDecisionRequest,
	status types.LeaveStatus,
) types.Response[*leave.Request] {
	return run(ctx, s.ServiceParams, s.op(verb), fallback,
		func(ctx context.Context) (*leave.Request, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}

			return s.mutate(ctx, id, func(r *leave.Request) ([]string, error) {
				if err := requirePending(r); err != nil {
					return nil, err
				}

				now := time.Now().UTC()
				r.Status = status
				r.ApproverID = lo.ToPtr(req.ApproverID)
				r.ApprovalDate = &now
				r.ApproverComments = req.Comments
				return []string{
					leave.ColumnStatus,
					leave.ColumnApproverID,
					leave.ColumnApprovalDate,
					leave.ColumnApproverComments,
				}, nil
			})
		})
}

func (s *leaveService) Cancel(ctx context.Context, id string) types.Response[*leave.Request] {
	return run(ctx, s.ServiceParams, s.op("cancel"), "Failed to cancel leave request",
		func(ctx context.Context) (*leave.Request, error) {
			return s.mutate(ctx, id, func(r *leave.Request) ([]string, error) {
				if err := requirePending(r); err != nil {
					return nil, err
				}
				r.Status = types.LeaveStatusCancelled
				return []string{leave.ColumnStatus}, nil
			})
		})
}

func requirePending(r *leave.Request) error {
	if r.Status == types.LeaveStatusPending {
		return nil
	}
	return ierr.NewError("leave request is already " + string(r.Status)).
		WithHint("Only pending leave requests can be decided or cancelled").
		WithReportableDetails(map[string]any{"status": r.Status}).
		Mark(ierr.ErrInvalidOperation)
}

func (s *leaveService) GetStats(ctx context.Context) types.Response[*dto.LeaveStats] {
	return run(ctx, s.ServiceParams, s.op("get_stats"), "Failed to fetch leave stats",
		func(ctx context.Context) (*dto.LeaveStats, error) {
			byStatus, err := s.repo.CountBy(ctx, leave.ColumnStatus, nil)
			if err != nil {
				return nil, err
			}
			byType, err := s.repo.CountBy(ctx, leave.ColumnLeaveType, nil)
			if err != nil {
				return nil, err
			}
			return &dto.LeaveStats{
				Total:    lo.Sum(lo.Values(byStatus)),
				ByStatus: byStatus,
				ByType:   byType,
			}, nil
		})
}
