package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/training"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/types"
)

type trainingService struct {
	crud[*training.Program]
	enrollments crud[*training.Enrollment]
}

func NewTrainingService(params ServiceParams) interfaces.TrainingService {
	s := &trainingService{
		crud:        newCRUD(params, params.ProgramRepo, "training program", "training programs"),
		enrollments: newCRUD(params, params.EnrollmentRepo, "enrollment", "enrollments"),
	}
	s.enrollments.join = s.withTrainingAndEmployee
	return s
}

func (s *trainingService) withTrainingAndEmployee(ctx context.Context, items []*training.Enrollment) error {
	programs, err := lookup(ctx, s.ProgramRepo, lo.Map(items, func(e *training.Enrollment, _ int) string {
		return e.TrainingID
	}))
	if err != nil {
		return err
	}
	employees, err := lookup(ctx, s.EmployeeRepo, lo.Map(items, func(e *training.Enrollment, _ int) string {
		return e.EmployeeID
	}))
	if err != nil {
		return err
	}

	for _, e := range items {
		e.Training = programs[e.TrainingID]
		e.Employee = employees[e.EmployeeID]
	}
	return nil
}

func (s *trainingService) Create(ctx context.Context, req dto.CreateTrainingRequest) types.Response[*training.Program] {
	return s.create(ctx, &req, req.ToProgram)
}

func (s *trainingService) Update(ctx context.Context, id string, req dto.UpdateTrainingRequest) types.Response[*training.Program] {
	return s.update(ctx, id, &req, nil)
}

// Enroll places an employee on a program that is still open. A program
// with a capacity refuses enrollments once its active seats are taken.
func (s *trainingService) Enroll(ctx context.Context, trainingID string, req dto.EnrollRequest) types.Response[*training.Enrollment] {
	return run(ctx, s.ServiceParams, s.enrollments.op("create"), "Failed to enroll employee",
		func(ctx context.Context) (*training.Enrollment, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}

			program, err := s.ProgramRepo.Get(ctx, trainingID)
			if err != nil {
				return nil, err
			}
			if program.Status == types.TrainingStatusCompleted || program.Status == types.TrainingStatusCancelled {
				return nil, ierr.NewError("training program is " + string(program.Status)).
					WithHint("Only scheduled or ongoing programs accept enrollments").
					Mark(ierr.ErrInvalidOperation)
			}
			if _, err := s.EmployeeRepo.Get(ctx, req.EmployeeID); err != nil {
				return nil, err
			}

			existing, err := s.EnrollmentRepo.CountBy(ctx, training.ColumnStatus, []*types.Filter{
				types.NewFilter(training.ColumnTrainingID, types.FilterOpEq, trainingID),
				types.NewFilter(training.ColumnEmployeeID, types.FilterOpEq, req.EmployeeID),
			})
			if err != nil {
				return nil, err
			}
			if existing[string(types.EnrollmentStatusEnrolled)] > 0 {
				return nil, ierr.NewError("employee is already enrolled").
					WithHint("The employee already holds a seat on this program").
					Mark(ierr.ErrAlreadyExists)
			}

			if program.Capacity > 0 {
				seats, err := s.EnrollmentRepo.CountBy(ctx, training.ColumnStatus, []*types.Filter{
					types.NewFilter(training.ColumnTrainingID, types.FilterOpEq, trainingID),
				})
				if err != nil {
					return nil, err
				}
				taken := seats[string(types.EnrollmentStatusEnrolled)] + seats[string(types.EnrollmentStatusCompleted)]
				if taken >= program.Capacity {
					return nil, ierr.NewError("training program is full").
						WithHintf("All %d seats are taken", program.Capacity).
						Mark(ierr.ErrInvalidOperation)
				}
			}

			now := time.Now().UTC()
			return s.enrollments.insert(ctx, &training.Enrollment{
				BaseModel:  types.BaseModel{CreatedAt: now, UpdatedAt: now},
				TrainingID: trainingID,
				EmployeeID: req.EmployeeID,
				Status:     types.EnrollmentStatusEnrolled,
			})
		})
}

func (s *trainingService) GetEnrollments(ctx context.Context, trainingID string) types.Response[[]*training.Enrollment] {
	return s.enrollments.listBy(ctx, "get_by_training", training.ColumnTrainingID, trainingID)
}

func (s *trainingService) CompleteEnrollment(ctx context.Context, id string, req dto.CompleteEnrollmentRequest) types.Response[*training.Enrollment] {
	return run(ctx, s.ServiceParams, s.enrollments.op("complete"), "Failed to complete enrollment",
		func(ctx context.Context) (*training.Enrollment, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}

			return s.enrollments.mutate(ctx, id, func(e *training.Enrollment) ([]string, error) {
				if e.Status != types.EnrollmentStatusEnrolled {
					return nil, ierr.NewError("enrollment is " + string(e.Status)).
						WithHint("Only active enrollments can be completed").
						Mark(ierr.ErrInvalidOperation)
				}

				e.Status = types.EnrollmentStatusCompleted
				e.Score = req.Score
				e.CompletedAt = lo.ToPtr(time.Now().UTC())
				return []string{training.ColumnStatus, training.ColumnScore, training.ColumnCompletedAt}, nil
			})
		})
}

func (s *trainingService) GetStats(ctx context.Context) types.Response[*dto.TrainingStats] {
	return run(ctx, s.ServiceParams, s.op("get_stats"), "Failed to fetch training stats",
		func(ctx context.Context) (*dto.TrainingStats, error) {
			byStatus, err := s.repo.CountBy(ctx, training.ColumnStatus, nil)
			if err != nil {
				return nil, err
			}
			enrollments, err := s.EnrollmentRepo.CountBy(ctx, training.ColumnStatus, nil)
			if err != nil {
				return nil, err
			}
			return &dto.TrainingStats{
				Total:       lo.Sum(lo.Values(byStatus)),
				ByStatus:    byStatus,
				Enrollments: enrollments,
			}, nil
		})
}
