package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/job"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/types"
)

type jobService struct {
	crud[*job.Job]
}

func NewJobService(params ServiceParams) interfaces.JobService {
	return &jobService{
		crud: newCRUD(params, params.JobRepo, "job", "jobs"),
	}
}

func (s *jobService) Create(ctx context.Context, req dto.CreateJobRequest) types.Response[*job.Job] {
	return s.create(ctx, &req, req.ToJob)
}

func (s *jobService) Update(ctx context.Context, id string, req dto.UpdateJobRequest) types.Response[*job.Job] {
	return s.update(ctx, id, &req, nil)
}

func (s *jobService) Search(ctx context.Context, term string) types.Response[[]*job.Job] {
	return s.search(ctx, term, job.SearchColumns)
}

// Publish opens a draft or paused posting
func (s *jobService) Publish(ctx context.Context, id string) types.Response[*job.Job] {
	return s.transition(ctx, "publish", "Failed to publish job", id, types.JobStatusOpen,
		types.JobStatusDraft, types.JobStatusOnHold)
}

// Close ends a posting. Closing a closed job is an error.
func (s *jobService) Close(ctx context.Context, id string) types.Response[*job.Job] {
	return s.transition(ctx, "close", "Failed to close job", id, types.JobStatusClosed,
		types.JobStatusDraft, types.JobStatusOpen, types.JobStatusOnHold)
}

func (s *jobService) transition(ctx context.Context, verb, fallback, id string, to types.JobStatus, from ...types.JobStatus) types.Response[*job.Job] {
	return run(ctx, s.ServiceParams, s.op(verb), fallback,
		func(ctx context.Context) (*job.Job, error) {
			return s.mutate(ctx, id, func(j *job.Job) ([]string, error) {
				if !lo.Contains(from, j.Status) {
					return nil, ierr.NewError("job cannot move from "+string(j.Status)+" to "+string(to)).
						WithHintf("Only jobs in %v can move to %s", from, to).
						Mark(ierr.ErrInvalidOperation)
				}
				j.Status = to
				return []string{job.ColumnStatus}, nil
			})
		})
}

func (s *jobService) GetStats(ctx context.Context) types.Response[*dto.JobStats] {
	return run(ctx, s.ServiceParams, s.op("get_stats"), "Failed to fetch job stats",
		func(ctx context.Context) (*dto.JobStats, error) {
			byStatus, err := s.repo.CountBy(ctx, job.ColumnStatus, nil)
			if err != nil {
				return nil, err
			}
			return &dto.JobStats{
				Total:    lo.Sum(lo.Values(byStatus)),
				ByStatus: byStatus,
			}, nil
		})
}
