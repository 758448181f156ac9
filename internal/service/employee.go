package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/types"
)

type employeeService struct {
	crud[*employee.Employee]
}

func NewEmployeeService(params ServiceParams) interfaces.EmployeeService {
	return &employeeService{
		crud: newCRUD(params, params.EmployeeRepo, "employee", "employees"),
	}
}

func (s *employeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) types.Response[*employee.Employee] {
	return s.create(ctx, &req, req.ToEmployee)
}

func (s *employeeService) Update(ctx context.Context, id string, req dto.UpdateEmployeeRequest) types.Response[*employee.Employee] {
	return s.update(ctx, id, &req, nil)
}

// Search matches name, email, department and position
func (s *employeeService) Search(ctx context.Context, term string) types.Response[[]*employee.Employee] {
	return s.search(ctx, term, employee.SearchColumns)
}

func (s *employeeService) GetByDepartment(ctx context.Context, department string) types.Response[[]*employee.Employee] {
	return s.listBy(ctx, "get_by_department", employee.ColumnDepartment, department)
}

func (s *employeeService) GetStats(ctx context.Context) types.Response[*dto.EmployeeStats] {
	return run(ctx, s.ServiceParams, s.op("get_stats"), "Failed to fetch employee stats",
		func(ctx context.Context) (*dto.EmployeeStats, error) {
			byStatus, err := s.repo.CountBy(ctx, employee.ColumnStatus, nil)
			if err != nil {
				return nil, err
			}
			byDepartment, err := s.repo.CountBy(ctx, employee.ColumnDepartment, nil)
			if err != nil {
				return nil, err
			}
			return &dto.EmployeeStats{
				Total:        lo.Sum(lo.Values(byStatus)),
				ByStatus:     byStatus,
				ByDepartment: byDepartment,
			}, nil
		})
}
