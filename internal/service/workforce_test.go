package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/testutil"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/stretchr/testify/suite"
)

// WorkforceServiceSuite covers the services that hang off an employee:
// leave, assets and onboarding
type WorkforceServiceSuite struct {
	testutil.BaseServiceTestSuite
	employees  interfaces.EmployeeService
	leave      interfaces.LeaveService
	assets     interfaces.AssetService
	onboarding interfaces.OnboardingService
	ada        *employee.Employee
	manager    *employee.Employee
}

func TestWorkforceServices(t *testing.T) {
	suite.Run(t, new(WorkforceServiceSuite))
}

func (s *WorkforceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestParams(&s.BaseServiceTestSuite)
	s.employees = NewEmployeeService(params)
	s.leave = NewLeaveService(params)
	s.assets = NewAssetService(params)
	s.onboarding = NewOnboardingService(params)

	s.ada = s.createEmployee("Ada", "ada@x.com")
	s.manager = s.createEmployee("Grace", "grace@x.com")
}

func (s *WorkforceServiceSuite) createEmployee(name, email string) *employee.Employee {
	resp := s.employees.Create(s.GetContext(), dto.CreateEmployeeRequest{Name: name, Email: email})
	s.Require().True(resp.Success, resp.Error)
	return resp.Data
}

func (s *WorkforceServiceSuite) day(offset int) time.Time {
	d := s.GetNow().Truncate(24 * time.Hour)
	return d.Add(time.Duration(offset) * 24 * time.Hour)
}

func (s *WorkforceServiceSuite) requestLeave() string {
	resp := s.leave.Create(s.GetContext(), dto.CreateLeaveRequest{
		EmployeeID: s.ada.ID,
		LeaveType:  types.LeaveTypeAnnual,
		StartDate:  s.day(7),
		EndDate:    s.day(11),
		Reason:     "Family trip",
	})
	s.Require().True(resp.Success, resp.Error)
	return resp.Data.ID
}

func (s *WorkforceServiceSuite) TestLeaveCreate() {
	resp := s.leave.Create(s.GetContext(), dto.CreateLeaveRequest{
		EmployeeID: s.ada.ID,
		LeaveType:  types.LeaveTypeAnnual,
		StartDate:  s.day(7),
		EndDate:    s.day(11),
	})
	s.Require().True(resp.Success, resp.Error)
	s.Equal(types.LeaveStatusPending, resp.Data.Status)
	s.Equal(5, resp.Data.Days)
	s.Require().NotNil(resp.Data.Employee)
	s.Equal("Ada", resp.Data.Employee.Name)

	backwards := s.leave.Create(s.GetContext(), dto.CreateLeaveRequest{
		EmployeeID: s.ada.ID,
		LeaveType:  types.LeaveTypeSick,
		StartDate:  s.day(3),
		EndDate:    s.day(1),
	})
	s.False(backwards.Success)
	s.Equal("end_date must not be before start_date", backwards.Error)

	orphan := s.leave.Create(s.GetContext(), dto.CreateLeaveRequest{
		EmployeeID: "emp_missing",
		LeaveType:  types.LeaveTypeSick,
		StartDate:  s.day(1),
		EndDate:    s.day(1),
	})
	s.False(orphan.Success)
	s.Equal("employee not found", orphan.Error)
}

func (s *WorkforceServiceSuite) TestLeaveUpdateRecomputesDays() {
	id := s.requestLeave()

	resp := s.leave.Update(s.GetContext(), id, dto.UpdateLeaveRequest{EndDate: lo.ToPtr(s.day(8))})
	s.Require().True(resp.Success, resp.Error)
	s.Equal(2, resp.Data.Days)
	s.Equal("Family trip", resp.Data.Reason)

	// the merged row is validated, not the patch alone
	bad := s.leave.Update(s.GetContext(), id, dto.UpdateLeaveRequest{StartDate: lo.ToPtr(s.day(9))})
	s.False(bad.Success)
	s.True(ierr.IsValidation(bad.Cause()))
}

func (s *WorkforceServiceSuite) TestLeaveApprove() {
	id := s.requestLeave()

	missingApprover := s.leave.Approve(s.GetContext(), id, dto.LeaveDecisionRequest{})
	s.False(missingApprover.Success)
	s.True(ierr.IsValidation(missingApprover.Cause()))

	resp := s.leave.Approve(s.GetContext(), id, dto.LeaveDecisionRequest{
		ApproverID: s.manager.ID,
		Comments:   lo.ToPtr("Enjoy"),
	})
	s.Require().True(resp.Success, resp.Error)
	s.Equal(types.LeaveStatusApproved, resp.Data.Status)
	s.Equal(s.manager.ID, lo.FromPtr(resp.Data.ApproverID))
	s.NotNil(resp.Data.ApprovalDate)
	s.Equal("Enjoy", lo.FromPtr(resp.Data.ApproverComments))

	twice := s.leave.Reject(s.GetContext(), id, dto.LeaveDecisionRequest{ApproverID: s.manager.ID})
	s.False(twice.Success)
	s.Equal("leave request is already approved", twice.Error)
	s.True(ierr.IsInvalidOperation(twice.Cause()))
}

func (s *WorkforceServiceSuite) TestLeaveRejectAndCancel() {
	rejected := s.leave.Reject(s.GetContext(), s.requestLeave(), dto.LeaveDecisionRequest{ApproverID: s.manager.ID})
	s.Require().True(rejected.Success, rejected.Error)
	s.Equal(types.LeaveStatusRejected, rejected.Data.Status)

	id := s.requestLeave()
	cancelled := s.leave.Cancel(s.GetContext(), id)
	s.Require().True(cancelled.Success, cancelled.Error)
	s.Equal(types.LeaveStatusCancelled, cancelled.Data.Status)

	again := s.leave.Cancel(s.GetContext(), id)
	s.False(again.Success)
	s.Equal("leave request is already cancelled", again.Error)

	mine := s.leave.GetByEmployee(s.GetContext(), s.ada.ID)
	s.Require().True(mine.Success, mine.Error)
	s.Len(mine.Data, 2)

	stats := s.leave.GetStats(s.GetContext())
	s.Require().True(stats.Success, stats.Error)
	s.Equal(2, stats.Data.Total)
	s.Equal(map[string]int{"rejected": 1, "cancelled": 1}, stats.Data.ByStatus)
	s.Equal(map[string]int{"annual": 2}, stats.Data.ByType)
}

func (s *WorkforceServiceSuite) TestAssetAssignment() {
	created := s.assets.Create(s.GetContext(), dto.CreateAssetRequest{
		Name:     "MacBook Pro 14",
		AssetTag: "LT-0042",
		Category: types.AssetCategoryLaptop,
	})
	s.Require().True(created.Success, created.Error)
	s.Equal(types.AssetStatusAvailable, created.Data.Status)
	id := created.Data.ID

	unassigned := s.assets.Unassign(s.GetContext(), id)
	s.False(unassigned.Success)
	s.Equal("asset is not assigned", unassigned.Error)

	nobody := s.assets.Assign(s.GetContext(), id, dto.AssignAssetRequest{EmployeeID: "emp_missing"})
	s.False(nobody.Success)
	s.Equal("employee not found", nobody.Error)

	assigned := s.assets.Assign(s.GetContext(), id, dto.AssignAssetRequest{EmployeeID: s.ada.ID})
	s.Require().True(assigned.Success, assigned.Error)
	s.Equal(types.AssetStatusAssigned, assigned.Data.Status)
	s.Equal(s.ada.ID, lo.FromPtr(assigned.Data.AssignedTo))
	s.NotNil(assigned.Data.AssignedDate)
	s.Require().NotNil(assigned.Data.Assignee)
	s.Equal("Ada", assigned.Data.Assignee.Name)

	taken := s.assets.Assign(s.GetContext(), id, dto.AssignAssetRequest{EmployeeID: s.manager.ID})
	s.False(taken.Success)
	s.Equal("asset is not available", taken.Error)

	returned := s.assets.Unassign(s.GetContext(), id)
	s.Require().True(returned.Success, returned.Error)
	s.Equal(types.AssetStatusAvailable, returned.Data.Status)
	s.Nil(returned.Data.AssignedTo)
	s.Nil(returned.Data.Assignee)

	stats := s.assets.GetStats(s.GetContext())
	s.Require().True(stats.Success, stats.Error)
	s.Equal(1, stats.Data.Total)
	s.Equal(map[string]int{"available": 1}, stats.Data.ByStatus)
	s.Equal(map[string]int{"laptop": 1}, stats.Data.ByCategory)
}

func (s *WorkforceServiceSuite) TestOnboardingProgress() {
	empty := s.onboarding.GetProgress(s.GetContext(), s.ada.ID)
	s.Require().True(empty.Success, empty.Error)
	s.Equal(0, empty.Data.Total)
	s.Equal(0, empty.Data.Percent)

	ids := make([]string, 0, 3)
	for _, title := range []string{"Laptop setup", "Payroll forms", "Meet the team"} {
		resp := s.onboarding.Create(s.GetContext(), dto.CreateOnboardingTaskRequest{EmployeeID: s.ada.ID, Title: title})
		s.Require().True(resp.Success, resp.Error)
		s.Equal(types.OnboardingTaskStatusPending, resp.Data.Status)
		ids = append(ids, resp.Data.ID)
	}
	other := s.onboarding.Create(s.GetContext(), dto.CreateOnboardingTaskRequest{EmployeeID: s.manager.ID, Title: "Laptop setup"})
	s.Require().True(other.Success, other.Error)

	done := s.onboarding.Complete(s.GetContext(), ids[0])
	s.Require().True(done.Success, done.Error)
	s.Equal(types.OnboardingTaskStatusCompleted, done.Data.Status)
	s.Require().NotNil(done.Data.CompletedAt)

	again := s.onboarding.Complete(s.GetContext(), ids[0])
	s.Require().True(again.Success, again.Error)
	s.True(done.Data.CompletedAt.Equal(*again.Data.CompletedAt))

	progress := s.onboarding.GetProgress(s.GetContext(), s.ada.ID)
	s.Require().True(progress.Success, progress.Error)
	s.Equal(s.ada.ID, progress.Data.EmployeeID)
	s.Equal(3, progress.Data.Total)
	s.Equal(1, progress.Data.Completed)
	s.Equal(33, progress.Data.Percent)

	reopened := s.onboarding.Update(s.GetContext(), ids[0], dto.UpdateOnboardingTaskRequest{
		Status: lo.ToPtr(types.OnboardingTaskStatusInProgress),
	})
	s.Require().True(reopened.Success, reopened.Error)
	s.Nil(reopened.Data.CompletedAt)

	tasks := s.onboarding.GetByEmployee(s.GetContext(), s.ada.ID)
	s.Require().True(tasks.Success, tasks.Error)
	s.Len(tasks.Data, 3)
	s.NotNil(tasks.Data[0].Employee)
}
