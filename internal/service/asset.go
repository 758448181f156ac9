package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/asset"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/types"
)

type assetService struct {
	crud[*asset.Asset]
}

func NewAssetService(params ServiceParams) interfaces.AssetService {
	s := &assetService{
		crud: newCRUD(params, params.AssetRepo, "asset", "assets"),
	}
	s.join = s.withAssignee
	return s
}

func (s *assetService) withAssignee(ctx context.Context, items []*asset.Asset) error {
	employees, err := lookup(ctx, s.EmployeeRepo, lo.Map(items, func(a *asset.Asset, _ int) string {
		return lo.FromPtr(a.AssignedTo)
	}))
	if err != nil {
		return err
	}
	for _, a := range items {
		if a.AssignedTo != nil {
			a.Assignee = employees[*a.AssignedTo]
		}
	}
	return nil
}

func (s *assetService) Create(ctx context.Context, req dto.CreateAssetRequest) types.Response[*asset.Asset] {
	return s.create(ctx, &req, req.ToAsset)
}

func (s *assetService) Update(ctx context.Context, id string, req dto.UpdateAssetRequest) types.Response[*asset.Asset] {
	return s.update(ctx, id, &req, nil)
}

// Assign hands an available asset to an employee
func (s *assetService) Assign(ctx context.Context, id string, req dto.AssignAssetRequest) types.Response[*asset.Asset] {
	return run(ctx, s.ServiceParams, s.op("assign"), "Failed to assign asset",
		func(ctx context.Context) (*asset.Asset, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}
			if _, err := s.EmployeeRepo.Get(ctx, req.EmployeeID); err != nil {
				return nil, err
			}

			return s.mutate(ctx, id, func(a *asset.Asset) ([]string, error) {
				if a.Status != types.AssetStatusAvailable {
					return nil, ierr.NewError("asset is not available").
						WithHintf("Asset %s is %s", a.AssetTag, a.Status).
						Mark(ierr.ErrInvalidOperation)
				}

				now := time.Now().UTC()
				a.Status = types.AssetStatusAssigned
				a.AssignedTo = lo.ToPtr(req.EmployeeID)
				a.AssignedDate = &now
				return []string{asset.ColumnStatus, asset.ColumnAssignedTo, asset.ColumnAssignedDate}, nil
			})
		})
}

// Unassign returns an assigned asset to the pool
func (s *assetService) Unassign(ctx context.Context, id string) types.Response[*asset.Asset] {
	return run(ctx, s.ServiceParams, s.op("unassign"), "Failed to unassign asset",
		func(ctx context.Context) (*asset.Asset, error) {
			return s.mutate(ctx, id, func(a *asset.Asset) ([]string, error) {
				if a.Status != types.AssetStatusAssigned {
					return nil, ierr.NewError("asset is not assigned").
						WithHintf("Asset %s is %s", a.AssetTag, a.Status).
						Mark(ierr.ErrInvalidOperation)
				}

				a.Status = types.AssetStatusAvailable
				a.AssignedTo = nil
				a.AssignedDate = nil
				return []string{asset.ColumnStatus, asset.ColumnAssignedTo, asset.ColumnAssignedDate}, nil
			})
		})
}

func (s *assetService) GetStats(ctx context.Context) types.Response[*dto.AssetStats] {
	return run(ctx, s.ServiceParams, s.op("get_stats"), "Failed to fetch asset stats",
		func(ctx context.Context) (*dto.AssetStats, error) {
			byStatus, err := s.repo.CountBy(ctx, asset.ColumnStatus, nil)
			if err != nil {
				return nil, err
			}
			byCategory, err := s.repo.CountBy(ctx, asset.ColumnCategory, nil)
			if err != nil {
				return nil, err
			}
			return &dto.AssetStats{
				Total:      lo.Sum(lo.Values(byStatus)),
				ByStatus:   byStatus,
				ByCategory: byCategory,
			}, nil
		})
}
