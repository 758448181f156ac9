package service

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/testutil"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/stretchr/testify/suite"
)

type EmployeeServiceSuite struct {
	testutil.BaseServiceTestSuite
	params  ServiceParams
	service *employeeService
}

func TestEmployeeService(t *testing.T) {
	suite.Run(t, new(EmployeeServiceSuite))
}

func (s *EmployeeServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.params = newTestParams(&s.BaseServiceTestSuite)
	s.service = NewEmployeeService(s.params).(*employeeService)
}

func (s *EmployeeServiceSuite) create(name, email string) *employee.Employee {
	resp := s.service.Create(s.GetContext(), dto.CreateEmployeeRequest{
		Name:       name,
		Email:      email,
		Department: "Eng",
		Position:   "Engineer",
	})
	s.Require().True(resp.Success, resp.Error)
	return resp.Data
}

func (s *EmployeeServiceSuite) TestCreateAndGet() {
	created := s.create("Ada", "ada@x.com")

	s.Regexp(`^emp_[0-9A-Z]{26}$`, created.ID)
	s.Equal(types.EmployeeStatusActive, created.Status)
	s.Equal(types.EmploymentTypeFullTime, created.EmploymentType)
	s.False(created.CreatedAt.IsZero())
	s.True(created.CreatedAt.Equal(created.UpdatedAt))

	got := s.service.GetByID(s.GetContext(), created.ID)
	s.Require().True(got.Success, got.Error)
	s.Empty(got.Error)
	s.Equal("Ada", got.Data.Name)
	s.Equal("ada@x.com", got.Data.Email)
	s.Equal("Eng", got.Data.Department)
	s.True(got.Data.CreatedAt.Equal(created.CreatedAt))
}

func (s *EmployeeServiceSuite) TestCreateValidation() {
	testCases := []struct {
		name    string
		request dto.CreateEmployeeRequest
	}{
		{
			name:    "missing_name",
			request: dto.CreateEmployeeRequest{Email: "ada@x.com"},
		},
		{
			name:    "invalid_email",
			request: dto.CreateEmployeeRequest{Name: "Ada", Email: "not-an-email"},
		},
		{
			name:    "invalid_status",
			request: dto.CreateEmployeeRequest{Name: "Ada", Email: "ada@x.com", Status: "retired"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp := s.service.Create(s.GetContext(), tc.request)
			s.False(resp.Success)
			s.NotEmpty(resp.Error)
			s.Nil(resp.Data)
			s.True(ierr.IsValidation(resp.Cause()))
		})
	}
	s.Equal(0, s.GetStore().Employees.Len())
}

func (s *EmployeeServiceSuite) TestUpdateKeepsUntouchedFields() {
	created := s.create("Ada", "ada@x.com")
	time.Sleep(2 * time.Millisecond)

	updated := s.service.Update(s.GetContext(), created.ID, dto.UpdateEmployeeRequest{
		Department: lo.ToPtr("R&D"),
	})
	s.Require().True(updated.Success, updated.Error)
	s.Equal("R&D", updated.Data.Department)
	s.True(updated.Data.UpdatedAt.After(created.UpdatedAt))
	s.True(updated.Data.CreatedAt.Equal(created.CreatedAt))

	got := s.service.GetByID(s.GetContext(), created.ID)
	s.Require().True(got.Success, got.Error)
	s.Equal("R&D", got.Data.Department)
	s.Equal("Ada", got.Data.Name)
	s.Equal("Engineer", got.Data.Position)
}

func (s *EmployeeServiceSuite) TestUpdateMissing() {
	resp := s.service.Update(s.GetContext(), "emp_missing", dto.UpdateEmployeeRequest{Name: lo.ToPtr("Bob")})
	s.False(resp.Success)
	s.Equal("employee not found", resp.Error)
}

func (s *EmployeeServiceSuite) TestSearch() {
	s.create("Ada", "ada@x.com")
	s.create("Bob", "bob@x.com")

	resp := s.service.Search(s.GetContext(), "ADA")
	s.Require().True(resp.Success, resp.Error)
	s.Require().Len(resp.Data, 1)
	s.Equal("ada@x.com", resp.Data[0].Email)

	none := s.service.Search(s.GetContext(), "carol")
	s.Require().True(none.Success, none.Error)
	s.NotNil(none.Data)
	s.Empty(none.Data)
}

func (s *EmployeeServiceSuite) TestPagination() {
	for i := 0; i < 25; i++ {
		s.create(fmt.Sprintf("Employee %02d", i), fmt.Sprintf("e%02d@x.com", i))
	}

	first := s.service.GetAll(s.GetContext(), types.NewPagination(1, 10), nil)
	s.Require().True(first.Success, first.Error)
	s.Len(first.Data, 10)
	s.Equal(25, first.GetCount())

	last := s.service.GetAll(s.GetContext(), types.NewPagination(3, 10), nil)
	s.Require().True(last.Success, last.Error)
	s.Len(last.Data, 5)
	s.Equal(25, last.GetCount())

	past := s.service.GetAll(s.GetContext(), types.NewPagination(4, 10), nil)
	s.Require().True(past.Success, past.Error)
	s.Empty(past.Data)

	all := s.service.GetAll(s.GetContext(), nil, nil)
	s.Require().True(all.Success, all.Error)
	s.Len(all.Data, 25)
	s.Nil(all.Count)

	// pages are disjoint and newest first
	seen := lo.Map(first.Data, func(e *employee.Employee, _ int) string { return e.ID })
	for _, e := range last.Data {
		s.NotContains(seen, e.ID)
	}
	for i := 1; i < len(first.Data); i++ {
		s.False(first.Data[i].CreatedAt.After(first.Data[i-1].CreatedAt))
	}
}

func (s *EmployeeServiceSuite) TestInvalidPagination() {
	resp := s.service.GetAll(s.GetContext(), types.NewPagination(0, 10), nil)
	s.False(resp.Success)
	s.Equal("page must be at least 1", resp.Error)

	huge := s.service.GetAll(s.GetContext(), &types.Pagination{Page: math.MaxInt/10 + 2, Limit: 10}, nil)
	s.False(huge.Success)
	s.Contains(huge.Error, "out of range")
	s.Nil(huge.Data)
}

func (s *EmployeeServiceSuite) TestFilters() {
	s.create("Ada", "ada@x.com")
	bob := s.create("Bob", "bob@x.com")
	s.Require().True(s.service.Update(s.GetContext(), bob.ID, dto.UpdateEmployeeRequest{
		Department: lo.ToPtr("Sales"),
	}).Success)

	eq := s.service.GetAll(s.GetContext(), nil, []*types.Filter{
		types.NewFilter(employee.ColumnDepartment, types.FilterOpEq, "Sales"),
	})
	s.Require().True(eq.Success, eq.Error)
	s.Require().Len(eq.Data, 1)
	s.Equal("Bob", eq.Data[0].Name)

	ilike := s.service.GetAll(s.GetContext(), types.NewPagination(1, 10), []*types.Filter{
		types.NewFilter(employee.ColumnName, types.FilterOpIlike, "%AD%"),
	})
	s.Require().True(ilike.Success, ilike.Error)
	s.Len(ilike.Data, 1)
	s.Equal(1, ilike.GetCount())
}

func (s *EmployeeServiceSuite) TestUnknownOperator() {
	s.create("Ada", "ada@x.com")

	resp := s.service.GetAll(s.GetContext(), nil, []*types.Filter{
		types.NewFilter(employee.ColumnName, types.FilterOperator("between"), "a"),
	})
	s.False(resp.Success)
	s.Contains(resp.Error, "unsupported filter operator")
	s.True(ierr.IsValidation(resp.Cause()))
}

func (s *EmployeeServiceSuite) TestUnknownColumn() {
	resp := s.service.GetAll(s.GetContext(), nil, []*types.Filter{
		types.NewFilter("shoe_size", types.FilterOpEq, "42"),
	})
	s.False(resp.Success)
	s.True(ierr.IsValidation(resp.Cause()))
}

func (s *EmployeeServiceSuite) TestDelete() {
	created := s.create("Ada", "ada@x.com")

	resp := s.service.Delete(s.GetContext(), created.ID)
	s.Require().True(resp.Success, resp.Error)
	s.True(resp.Data)

	got := s.service.GetByID(s.GetContext(), created.ID)
	s.False(got.Success)
	s.Equal("employee not found", got.Error)
	s.True(ierr.IsNotFound(got.Cause()))

	again := s.service.Delete(s.GetContext(), created.ID)
	s.False(again.Success)
	s.False(again.Data)
	s.Equal("employee not found", again.Error)
}

func (s *EmployeeServiceSuite) TestConcurrentCreates() {
	ids := make([]string, 2)
	var wg conc.WaitGroup
	for i := range ids {
		wg.Go(func() {
			resp := s.service.Create(s.GetContext(), dto.CreateEmployeeRequest{
				Name:  fmt.Sprintf("Twin %d", i),
				Email: fmt.Sprintf("twin%d@x.com", i),
			})
			if resp.Success {
				ids[i] = resp.Data.ID
			}
		})
	}
	wg.Wait()

	s.NotEmpty(ids[0])
	s.NotEmpty(ids[1])
	s.NotEqual(ids[0], ids[1])
	s.Equal(2, s.GetStore().Employees.Len())
}

func (s *EmployeeServiceSuite) TestGetByDepartment() {
	s.create("Ada", "ada@x.com")
	s.create("Grace", "grace@x.com")

	resp := s.service.GetByDepartment(s.GetContext(), "Eng")
	s.Require().True(resp.Success, resp.Error)
	s.Len(resp.Data, 2)

	none := s.service.GetByDepartment(s.GetContext(), "Legal")
	s.Require().True(none.Success, none.Error)
	s.NotNil(none.Data)
	s.Empty(none.Data)
}

func (s *EmployeeServiceSuite) TestGetStats() {
	s.create("Ada", "ada@x.com")
	s.create("Grace", "grace@x.com")
	bob := s.create("Bob", "bob@x.com")
	s.Require().True(s.service.Update(s.GetContext(), bob.ID, dto.UpdateEmployeeRequest{
		Department: lo.ToPtr("Sales"),
		Status:     lo.ToPtr(types.EmployeeStatusOnLeave),
	}).Success)

	resp := s.service.GetStats(s.GetContext())
	s.Require().True(resp.Success, resp.Error)
	s.Equal(3, resp.Data.Total)
	s.Equal(map[string]int{"active": 2, "on_leave": 1}, resp.Data.ByStatus)
	s.Equal(map[string]int{"Eng": 2, "Sales": 1}, resp.Data.ByDepartment)
}

func (s *EmployeeServiceSuite) TestPanicBecomesFixedMessage() {
	params := s.params
	params.EmployeeRepo = nil
	svc := NewEmployeeService(params)

	s.NotPanics(func() {
		resp := svc.GetAll(s.GetContext(), nil, nil)
		s.False(resp.Success)
		s.Equal("Failed to fetch employees", resp.Error)
		s.Nil(resp.Data)
		s.False(ierr.IsReported(resp.Cause()))
	})
}

func (s *EmployeeServiceSuite) TestInternalErrorBecomesFixedMessage() {
	params := s.params
	params.EmployeeRepo = &brokenEmployeeRepo{Repository: s.GetStore().Employees}
	svc := NewEmployeeService(params)

	resp := svc.GetAll(s.GetContext(), types.NewPagination(1, 10), nil)
	s.False(resp.Success)
	s.Equal("Failed to fetch employees", resp.Error)
	s.NotContains(resp.Error, "connection reset")
	s.Nil(resp.Count)
}

func (s *EmployeeServiceSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.GetContext())
	cancel()

	resp := s.service.GetAll(ctx, nil, nil)
	s.False(resp.Success)
	s.Equal(context.Canceled.Error(), resp.Error)
	s.True(ierr.IsDatabase(resp.Cause()))
}

func (s *EmployeeServiceSuite) TestCallsAreMeasured() {
	created := s.create("Ada", "ada@x.com")
	s.True(s.service.GetByID(s.GetContext(), created.ID).Success)
	s.False(s.service.GetByID(s.GetContext(), "emp_missing").Success)

	params := s.params
	params.EmployeeRepo = nil
	NewEmployeeService(params).GetAll(s.GetContext(), nil, nil)

	// create/success, get/success, get/failure and get_all/internal
	n, err := promtestutil.GatherAndCount(s.GetMetrics().Registry(), "staffdesk_service_calls_total")
	s.NoError(err)
	s.Equal(4, n)
}
