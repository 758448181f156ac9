package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/repository/memory"
	"github.com/staffdesk/staffdesk/internal/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

type AnalyticsServiceSuite struct {
	testutil.BaseServiceTestSuite
	service interfaces.AnalyticsService
}

func TestAnalyticsService(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceSuite))
}

func (s *AnalyticsServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.GetStore().Seed(s.GetNow())
	s.service = NewAnalyticsService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *AnalyticsServiceSuite) TestGetAnalytics() {
	defer goleak.VerifyNone(s.T(), goleak.IgnoreCurrent())

	resp := s.service.GetAnalytics(s.GetContext())
	s.Require().True(resp.Success, resp.Error)

	a := resp.Data
	s.Equal(5, a.Headcount)
	s.Equal(map[string]int{"active": 4, "on_leave": 1}, a.EmployeesByStatus)
	s.Equal(map[string]int{"Engineering": 2, "People": 1, "Sales": 1, "Design": 1}, a.EmployeesByDepartment)
	s.Equal(map[string]int{"open": 1, "draft": 1}, a.JobsByStatus)
	s.Equal(map[string]int{"interview": 1, "applied": 1}, a.ApplicationsByStage)
	s.Equal(map[string]int{"pending": 1, "approved": 1}, a.LeaveByStatus)
	s.Equal(map[string]int{"assigned": 1, "available": 1}, a.AssetsByStatus)
	s.Equal(2, a.ReviewCount)
	s.True(decimal.RequireFromString("3.5").Equal(a.AverageRating), a.AverageRating.String())
}

func (s *AnalyticsServiceSuite) TestGetAnalyticsWithLatency() {
	defer goleak.VerifyNone(s.T(), goleak.IgnoreCurrent())

	store := memory.NewEmptyStore(s.GetLogger(), 5*time.Millisecond)
	store.Seed(s.GetNow())
	params := newTestParams(&s.BaseServiceTestSuite)
	params.EmployeeRepo = store.Employees
	params.JobRepo = store.Jobs

	resp := NewAnalyticsService(params).GetAnalytics(s.GetContext())
	s.Require().True(resp.Success, resp.Error)
	s.Equal(5, resp.Data.Headcount)
	s.Equal(2, resp.Data.ReviewCount)
}

func (s *AnalyticsServiceSuite) TestCancelledContext() {
	defer goleak.VerifyNone(s.T(), goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(s.GetContext())
	cancel()

	resp := s.service.GetAnalytics(ctx)
	s.False(resp.Success)
	s.Nil(resp.Data)
	s.NotEmpty(resp.Error)
}

func (s *AnalyticsServiceSuite) TestEmptyStore() {
	params := newTestParams(&s.BaseServiceTestSuite)
	empty := memory.NewEmptyStore(s.GetLogger(), 0)
	params.EmployeeRepo = empty.Employees
	params.ReviewRepo = empty.Reviews

	resp := NewAnalyticsService(params).GetAnalytics(s.GetContext())
	s.Require().True(resp.Success, resp.Error)
	s.Equal(0, resp.Data.Headcount)
	s.Equal(0, resp.Data.ReviewCount)
	s.True(resp.Data.AverageRating.IsZero())
	s.NotNil(resp.Data.EmployeesByStatus)
}
