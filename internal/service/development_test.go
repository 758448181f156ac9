package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/testutil"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/stretchr/testify/suite"
)

type DevelopmentServiceSuite struct {
	testutil.BaseServiceTestSuite
	employees   interfaces.EmployeeService
	training    interfaces.TrainingService
	performance interfaces.PerformanceService
	ada         *employee.Employee
	bob         *employee.Employee
}

func TestDevelopmentServices(t *testing.T) {
	suite.Run(t, new(DevelopmentServiceSuite))
}

func (s *DevelopmentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestParams(&s.BaseServiceTestSuite)
	s.employees = NewEmployeeService(params)
	s.training = NewTrainingService(params)
	s.performance = NewPerformanceService(params)

	for _, e := range []struct {
		target **employee.Employee
		name   string
		email  string
	}{
		{&s.ada, "Ada", "ada@x.com"},
		{&s.bob, "Bob", "bob@x.com"},
	} {
		resp := s.employees.Create(s.GetContext(), dto.CreateEmployeeRequest{Name: e.name, Email: e.email})
		s.Require().True(resp.Success, resp.Error)
		*e.target = resp.Data
	}
}

func (s *DevelopmentServiceSuite) createProgram(capacity int) string {
	resp := s.training.Create(s.GetContext(), dto.CreateTrainingRequest{
		Title:    "Go for backend engineers",
		Trainer:  "Rob",
		Capacity: capacity,
	})
	s.Require().True(resp.Success, resp.Error)
	s.Equal(types.TrainingStatusScheduled, resp.Data.Status)
	return resp.Data.ID
}

func (s *DevelopmentServiceSuite) TestEnroll() {
	programID := s.createProgram(0)

	resp := s.training.Enroll(s.GetContext(), programID, dto.EnrollRequest{EmployeeID: s.ada.ID})
	s.Require().True(resp.Success, resp.Error)
	s.Equal(types.EnrollmentStatusEnrolled, resp.Data.Status)
	s.Require().NotNil(resp.Data.Training)
	s.Equal("Go for backend engineers", resp.Data.Training.Title)
	s.Require().NotNil(resp.Data.Employee)
	s.Equal("Ada", resp.Data.Employee.Name)

	duplicate := s.training.Enroll(s.GetContext(), programID, dto.EnrollRequest{EmployeeID: s.ada.ID})
	s.False(duplicate.Success)
	s.Equal("employee is already enrolled", duplicate.Error)
	s.True(ierr.IsAlreadyExists(duplicate.Cause()))

	missing := s.training.Enroll(s.GetContext(), "train_missing", dto.EnrollRequest{EmployeeID: s.ada.ID})
	s.False(missing.Success)
	s.Equal("training program not found", missing.Error)

	empty := s.training.Enroll(s.GetContext(), programID, dto.EnrollRequest{})
	s.False(empty.Success)
	s.True(ierr.IsValidation(empty.Cause()))

	list := s.training.GetEnrollments(s.GetContext(), programID)
	s.Require().True(list.Success, list.Error)
	s.Len(list.Data, 1)
}

func (s *DevelopmentServiceSuite) TestEnrollRespectsCapacity() {
	programID := s.createProgram(1)

	first := s.training.Enroll(s.GetContext(), programID, dto.EnrollRequest{EmployeeID: s.ada.ID})
	s.Require().True(first.Success, first.Error)

	full := s.training.Enroll(s.GetContext(), programID, dto.EnrollRequest{EmployeeID: s.bob.ID})
	s.False(full.Success)
	s.Equal("training program is full", full.Error)
	s.True(ierr.IsInvalidOperation(full.Cause()))
}

func (s *DevelopmentServiceSuite) TestEnrollClosedProgram() {
	programID := s.createProgram(0)
	cancelled := s.training.Update(s.GetContext(), programID, dto.UpdateTrainingRequest{
		Status: lo.ToPtr(types.TrainingStatusCancelled),
	})
	s.Require().True(cancelled.Success, cancelled.Error)

	resp := s.training.Enroll(s.GetContext(), programID, dto.EnrollRequest{EmployeeID: s.ada.ID})
	s.False(resp.Success)
	s.Equal("training program is cancelled", resp.Error)
}

func (s *DevelopmentServiceSuite) TestCompleteEnrollment() {
	programID := s.createProgram(0)
	enrolled := s.training.Enroll(s.GetContext(), programID, dto.EnrollRequest{EmployeeID: s.ada.ID})
	s.Require().True(enrolled.Success, enrolled.Error)

	tooHigh := s.training.CompleteEnrollment(s.GetContext(), enrolled.Data.ID, dto.CompleteEnrollmentRequest{Score: lo.ToPtr(101)})
	s.False(tooHigh.Success)
	s.True(ierr.IsValidation(tooHigh.Cause()))

	done := s.training.CompleteEnrollment(s.GetContext(), enrolled.Data.ID, dto.CompleteEnrollmentRequest{Score: lo.ToPtr(92)})
	s.Require().True(done.Success, done.Error)
	s.Equal(types.EnrollmentStatusCompleted, done.Data.Status)
	s.Equal(92, lo.FromPtr(done.Data.Score))
	s.NotNil(done.Data.CompletedAt)

	again := s.training.CompleteEnrollment(s.GetContext(), enrolled.Data.ID, dto.CompleteEnrollmentRequest{})
	s.False(again.Success)
	s.Equal("enrollment is completed", again.Error)

	// a completed seat does not block a new enrollment of the same employee
	reenroll := s.training.Enroll(s.GetContext(), programID, dto.EnrollRequest{EmployeeID: s.ada.ID})
	s.Require().True(reenroll.Success, reenroll.Error)

	stats := s.training.GetStats(s.GetContext())
	s.Require().True(stats.Success, stats.Error)
	s.Equal(1, stats.Data.Total)
	s.Equal(map[string]int{"scheduled": 1}, stats.Data.ByStatus)
	s.Equal(map[string]int{"completed": 1, "enrolled": 1}, stats.Data.Enrollments)
}

func (s *DevelopmentServiceSuite) createReview(e *employee.Employee, rating int) string {
	resp := s.performance.Create(s.GetContext(), dto.CreateReviewRequest{
		EmployeeID:    e.ID,
		ReviewPeriod:  "2026-H1",
		OverallRating: rating,
	})
	s.Require().True(resp.Success, resp.Error)
	s.Equal(types.ReviewStatusDraft, resp.Data.Status)
	return resp.Data.ID
}

func (s *DevelopmentServiceSuite) TestReviewLifecycle() {
	id := s.createReview(s.ada, 0)

	unscored := s.performance.Submit(s.GetContext(), id)
	s.False(unscored.Success)
	s.Equal("overall_rating is required to submit", unscored.Error)

	early := s.performance.Acknowledge(s.GetContext(), id)
	s.False(early.Success)
	s.Equal("performance review is draft", early.Error)

	scored := s.performance.Update(s.GetContext(), id, dto.UpdateReviewRequest{
		OverallRating: lo.ToPtr(4),
		Strengths:     lo.ToPtr("Clear written communication"),
	})
	s.Require().True(scored.Success, scored.Error)
	s.Equal(4, scored.Data.OverallRating)

	submitted := s.performance.Submit(s.GetContext(), id)
	s.Require().True(submitted.Success, submitted.Error)
	s.Equal(types.ReviewStatusSubmitted, submitted.Data.Status)
	s.NotNil(submitted.Data.ReviewDate)
	s.Equal("Clear written communication", submitted.Data.Strengths)
	s.Require().NotNil(submitted.Data.Employee)
	s.Equal("Ada", submitted.Data.Employee.Name)

	locked := s.performance.Update(s.GetContext(), id, dto.UpdateReviewRequest{OverallRating: lo.ToPtr(5)})
	s.False(locked.Success)
	s.Equal("performance review is already submitted", locked.Error)

	acknowledged := s.performance.Acknowledge(s.GetContext(), id)
	s.Require().True(acknowledged.Success, acknowledged.Error)
	s.Equal(types.ReviewStatusAcknowledged, acknowledged.Data.Status)

	mine := s.performance.GetByEmployee(s.GetContext(), s.ada.ID)
	s.Require().True(mine.Success, mine.Error)
	s.Len(mine.Data, 1)
}

func (s *DevelopmentServiceSuite) TestReviewStats() {
	empty := s.performance.GetStats(s.GetContext())
	s.Require().True(empty.Success, empty.Error)
	s.True(empty.Data.AverageRating.IsZero())

	s.createReview(s.ada, 4)
	s.createReview(s.ada, 5)
	s.createReview(s.bob, 3)
	s.createReview(s.bob, 0)

	resp := s.performance.GetStats(s.GetContext())
	s.Require().True(resp.Success, resp.Error)
	s.Equal(4, resp.Data.Total)
	s.Equal(map[string]int{"draft": 4}, resp.Data.ByStatus)
	s.Equal(map[string]int{"3": 1, "4": 1, "5": 1}, resp.Data.ByRating)
	s.True(decimal.NewFromInt(4).Equal(resp.Data.AverageRating), resp.Data.AverageRating.String())
}

func (s *DevelopmentServiceSuite) TestAverageRatingRounds() {
	avg := averageRating(map[string]int{"4": 2, "5": 1})
	s.Equal("4.33", avg.StringFixed(2))
	s.True(averageRating(nil).IsZero())
}
