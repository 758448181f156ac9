package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/application"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/types"
)

type applicationService struct {
	crud[*application.Application]
}

func NewApplicationService(params ServiceParams) interfaces.ApplicationService {
	s := &applicationService{
		crud: newCRUD(params, params.ApplicationRepo, "application", "applications"),
	}
	s.join = s.withJobAndCandidate
	return s
}

func (s *applicationService) withJobAndCandidate(ctx context.Context, items []*application.Application) error {
	jobs, err := lookup(ctx, s.JobRepo, lo.Map(items, func(a *application.Application, _ int) string {
		return a.JobID
	}))
	if err != nil {
		return err
	}
	candidates, err := lookup(ctx, s.CandidateRepo, lo.Map(items, func(a *application.Application, _ int) string {
		return a.CandidateID
	}))
	if err != nil {
		return err
	}

	for _, a := range items {
		a.Job = jobs[a.JobID]
		a.Candidate = candidates[a.CandidateID]
	}
	return nil
}

// Create checks that the job and the candidate exist before inserting
func (s *applicationService) Create(ctx context.Context, req dto.CreateApplicationRequest) types.Response[*application.Application] {
	return run(ctx, s.ServiceParams, s.op("create"), "Failed to create application",
		func(ctx context.Context) (*application.Application, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}
			if _, err := s.JobRepo.Get(ctx, req.JobID); err != nil {
				return nil, err
			}
			if _, err := s.CandidateRepo.Get(ctx, req.CandidateID); err != nil {
				return nil, err
			}
			return s.insert(ctx, req.ToApplication())
		})
}

func (s *applicationService) Update(ctx context.Context, id string, req dto.UpdateApplicationRequest) types.Response[*application.Application] {
	return s.update(ctx, id, &req, nil)
}

func (s *applicationService) GetByJob(ctx context.Context, jobID string) types.Response[[]*application.Application] {
	return s.listBy(ctx, "get_by_job", application.ColumnJobID, jobID)
}

// MoveToStage advances an application through the pipeline. Hired and
// rejected applications do not move.
func (s *applicationService) MoveToStage(ctx context.Context, id string, req dto.MoveToStageRequest) types.Response[*application.Application] {
	return run(ctx, s.ServiceParams, s.op("move_to_stage"), "Failed to move application",
		func(ctx context.Context) (*application.Application, error) {
			if !req.Stage.IsValid() {
				return nil, ierr.NewError("invalid application stage").
					WithHintf("Stage must be one of %v", types.ApplicationStages).
					Mark(ierr.ErrValidation)
			}

			return s.mutate(ctx, id, func(a *application.Application) ([]string, error) {
				if a.Stage.IsTerminal() && a.Stage != req.Stage {
					return nil, ierr.NewError("application is already " + string(a.Stage)).
						WithHint("Hired and rejected applications cannot change stage").
						Mark(ierr.ErrInvalidOperation)
				}

				a.Stage = req.Stage
				columns := []string{application.ColumnStage}
				if req.Notes != nil {
					a.Notes = *req.Notes
					columns = append(columns, application.ColumnNotes)
				}
				return columns, nil
			})
		})
}

func (s *applicationService) GetStats(ctx context.Context) types.Response[*dto.ApplicationStats] {
	return run(ctx, s.ServiceParams, s.op("get_stats"), "Failed to fetch application stats",
		func(ctx context.Context) (*dto.ApplicationStats, error) {
			byStage, err := s.repo.CountBy(ctx, application.ColumnStage, nil)
			if err != nil {
				return nil, err
			}
			return &dto.ApplicationStats{
				Total:   lo.Sum(lo.Values(byStage)),
				ByStage: byStage,
			}, nil
		})
}
