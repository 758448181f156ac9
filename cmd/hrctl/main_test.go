package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/config"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/stretchr/testify/suite"
)

type HrctlSuite struct {
	suite.Suite
}

func TestHrctl(t *testing.T) {
	suite.Run(t, new(HrctlSuite))
}

// execute runs hrctl against a freshly seeded mock backend
func (s *HrctlSuite) execute(args ...string) ([]byte, error) {
	opts := &rootOptions{
		loadConfig: func() (*config.Configuration, error) {
			cfg := config.GetDefaultConfig()
			cfg.Mock.Delay = 0
			return cfg, nil
		},
	}
	cmd := newRootCmd(opts)
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.Bytes(), err
}

func decode[T any](s *HrctlSuite, b []byte) types.Response[T] {
	var resp types.Response[T]
	s.Require().NoError(json.Unmarshal(b, &resp), string(b))
	return resp
}

func (s *HrctlSuite) TestListAll() {
	out, err := s.execute("employees", "list")
	s.Require().NoError(err)

	resp := decode[[]*employee.Employee](s, out)
	s.True(resp.Success)
	s.Len(resp.Data, 5)
	s.Nil(resp.Count)
}

func (s *HrctlSuite) TestListPageAndFilter() {
	out, err := s.execute("employees", "list", "--limit", "1", "--filter", "department:eq:Engineering")
	s.Require().NoError(err)

	resp := decode[[]*employee.Employee](s, out)
	s.True(resp.Success)
	s.Len(resp.Data, 1)
	s.Equal(2, resp.GetCount())
	s.Equal("Engineering", resp.Data[0].Department)
}

func (s *HrctlSuite) TestListRejectsUnknownOperator() {
	out, err := s.execute("emp", "list", "--filter", "department:between:a")
	s.True(errors.Is(err, errCallFailed))

	resp := decode[any](s, out)
	s.False(resp.Success)
	s.Contains(resp.Error, "unsupported filter operator")
}

func (s *HrctlSuite) TestGetMissing() {
	out, err := s.execute("employees", "get", "emp_missing")
	s.True(errors.Is(err, errCallFailed))

	resp := decode[*employee.Employee](s, out)
	s.False(resp.Success)
	s.Equal("employee not found", resp.Error)
}

func (s *HrctlSuite) TestSearchJoinsArguments() {
	out, err := s.execute("employees", "search", "sarah", "chen")
	s.Require().NoError(err)

	resp := decode[[]*employee.Employee](s, out)
	s.Require().Len(resp.Data, 1)
	s.Equal("emp_seed_1", resp.Data[0].ID)
}

func (s *HrctlSuite) TestStats() {
	out, err := s.execute("employees", "stats")
	s.Require().NoError(err)

	resp := decode[*dto.EmployeeStats](s, out)
	s.Require().True(resp.Success)
	s.Equal(5, resp.Data.Total)
	s.Equal(2, resp.Data.ByDepartment["Engineering"])
}

func (s *HrctlSuite) TestOnboardingProgress() {
	out, err := s.execute("onboarding", "progress", "emp_seed_5")
	s.Require().NoError(err)

	resp := decode[*dto.OnboardingProgress](s, out)
	s.Require().True(resp.Success)
	s.Equal(2, resp.Data.Total)
	s.Equal(50, resp.Data.Percent)
}

func (s *HrctlSuite) TestAnalytics() {
	out, err := s.execute("analytics")
	s.Require().NoError(err)

	resp := decode[*dto.Analytics](s, out)
	s.Require().True(resp.Success)
	s.Equal(5, resp.Data.Headcount)
}

func (s *HrctlSuite) TestUnknownBackend() {
	_, err := s.execute("--backend", "sqlite", "employees", "list")
	s.Error(err)
	s.False(errors.Is(err, errCallFailed))
}
