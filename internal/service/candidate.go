package service

import (
	"context"

	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/candidate"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/types"
)

type candidateService struct {
	crud[*candidate.Candidate]
}

func NewCandidateService(params ServiceParams) interfaces.CandidateService {
	return &candidateService{
		crud: newCRUD(params, params.CandidateRepo, "candidate", "candidates"),
	}
}

func (s *candidateService) Create(ctx context.Context, req dto.CreateCandidateRequest) types.Response[*candidate.Candidate] {
	return s.create(ctx, &req, req.ToCandidate)
}

func (s *candidateService) Update(ctx context.Context, id string, req dto.UpdateCandidateRequest) types.Response[*candidate.Candidate] {
	return s.update(ctx, id, &req, nil)
}

func (s *candidateService) Search(ctx context.Context, term string) types.Response[[]*candidate.Candidate] {
	return s.search(ctx, term, candidate.SearchColumns)
}
