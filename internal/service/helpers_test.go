package service

import (
	"context"

	"github.com/cockroachdb/errors"
	authProvider "github.com/staffdesk/staffdesk/internal/auth"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	"github.com/staffdesk/staffdesk/internal/testutil"
	"github.com/staffdesk/staffdesk/internal/types"
)

// newTestParams wires the services against the suite's in-memory store
func newTestParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	store := s.GetStore()
	return NewServiceParams(
		s.GetLogger(),
		s.GetConfig(),
		nil,
		s.GetMetrics(),
		authProvider.NewMockAuth(s.GetConfig()),
		store.Employees,
		store.Jobs,
		store.Candidates,
		store.Apps,
		store.Leave,
		store.Assets,
		store.Onboarding,
		store.Programs,
		store.Enrollments,
		store.Reviews,
		store.Profiles,
	)
}

// brokenEmployeeRepo fails list calls with an error nobody marked
type brokenEmployeeRepo struct {
	employee.Repository
}

func (r *brokenEmployeeRepo) List(ctx context.Context, params *types.ListParams) ([]*employee.Employee, error) {
	return nil, errors.New("connection reset by peer")
}
