package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	v1 "github.com/staffdesk/staffdesk/internal/api/v1"
	"github.com/staffdesk/staffdesk/internal/auth"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	"github.com/staffdesk/staffdesk/internal/service"
	"github.com/staffdesk/staffdesk/internal/testutil"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/stretchr/testify/suite"
)

type RouterSuite struct {
	testutil.BaseServiceTestSuite
	router *gin.Engine
	token  string
}

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	cfg := s.GetConfig()
	log := s.GetLogger()
	store := s.GetStore()
	provider := auth.NewMockAuth(cfg)

	params := service.NewServiceParams(log, cfg, nil, s.GetMetrics(), provider,
		store.Employees, store.Jobs, store.Candidates, store.Apps, store.Leave, store.Assets,
		store.Onboarding, store.Programs, store.Enrollments, store.Reviews, store.Profiles)

	handlers := Handlers{
		Health:      v1.NewHealthHandler(cfg, log),
		Auth:        v1.NewAuthHandler(service.NewAuthService(params), log),
		Employee:    v1.NewEmployeeHandler(service.NewEmployeeService(params), log),
		Job:         v1.NewJobHandler(service.NewJobService(params), log),
		Candidate:   v1.NewCandidateHandler(service.NewCandidateService(params), log),
		Application: v1.NewApplicationHandler(service.NewApplicationService(params), log),
		Leave:       v1.NewLeaveHandler(service.NewLeaveService(params), log),
		Asset:       v1.NewAssetHandler(service.NewAssetService(params), log),
		Onboarding:  v1.NewOnboardingHandler(service.NewOnboardingService(params), log),
		Training:    v1.NewTrainingHandler(service.NewTrainingService(params), log),
		Performance: v1.NewPerformanceHandler(service.NewPerformanceService(params), log),
		Analytics:   v1.NewAnalyticsHandler(service.NewAnalyticsService(params), log),
	}
	s.router = NewRouter(handlers, cfg, log, provider, s.GetMetrics())
	s.token = s.signIn()
}

func (s *RouterSuite) do(method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set(types.HeaderAuthorization, "Bearer "+s.token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") != "" &&
		bytes.HasPrefix(bytes.TrimSpace(rec.Body.Bytes()), []byte("{")) {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func (s *RouterSuite) signIn() string {
	s.token = ""
	rec, _ := s.do(http.MethodPost, "/v1/auth/signup", map[string]string{
		"email": "hr@x.com", "password": "correct horse", "full_name": "HR Admin",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec, body := s.do(http.MethodPost, "/v1/auth/signin", map[string]string{
		"email": "hr@x.com", "password": "correct horse",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	data := body["data"].(map[string]any)
	return data["access_token"].(string)
}

func (s *RouterSuite) createEmployee(name, email string) string {
	rec, body := s.do(http.MethodPost, "/v1/employees", map[string]string{"name": name, "email": email})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return body["data"].(map[string]any)["id"].(string)
}

func (s *RouterSuite) TestHealth() {
	rec, body := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", body["status"])
	s.NotEmpty(rec.Header().Get(types.HeaderRequestID))
}

func (s *RouterSuite) TestRequiresToken() {
	s.token = ""
	rec, body := s.do(http.MethodGet, "/v1/employees", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(false, body["success"])
	s.Equal("Unauthorized", body["error"])

	s.token = "garbage"
	rec, _ = s.do(http.MethodGet, "/v1/employees", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterSuite) TestEmployeeRoundTrip() {
	id := s.createEmployee("Ada", "ada@x.com")

	rec, body := s.do(http.MethodPatch, "/v1/employees/"+id, map[string]string{"department": "R&D"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec, body = s.do(http.MethodGet, "/v1/employees/"+id, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(true, body["success"])
	s.NotContains(body, "error")
	data := body["data"].(map[string]any)
	s.Equal("R&D", data["department"])
	s.Equal("Ada", data["name"])

	rec, body = s.do(http.MethodDelete, "/v1/employees/"+id, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(true, body["data"])

	rec, body = s.do(http.MethodGet, "/v1/employees/"+id, nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(false, body["success"])
	s.Equal("employee not found", body["error"])
	s.NotContains(body, "data")
}

func (s *RouterSuite) TestListWithPaginationAndFilters() {
	for _, name := range []string{"Ada", "Bob", "Carol"} {
		s.createEmployee(name, name+"@x.com")
	}

	rec, body := s.do(http.MethodGet, "/v1/employees?page=1&limit=2", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Len(body["data"], 2)
	s.Equal(float64(3), body["count"])

	rec, body = s.do(http.MethodGet, "/v1/employees?filter=name:ilike:%25ar%25", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Len(body["data"], 1)
	s.NotContains(body, "count")

	rec, body = s.do(http.MethodGet, "/v1/employees?filter=name:between:a", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(false, body["success"])
	s.Contains(body["error"], "unsupported filter operator")

	rec, _ = s.do(http.MethodGet, "/v1/employees?page=0", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestSearchAndStats() {
	s.createEmployee("Ada", "ada@x.com")
	s.createEmployee("Bob", "bob@x.com")

	rec, body := s.do(http.MethodGet, "/v1/employees/search?q=ada", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Len(body["data"], 1)

	rec, body = s.do(http.MethodGet, "/v1/employees/stats", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(float64(2), body["data"].(map[string]any)["total"])
}

func (s *RouterSuite) TestMalformedBody() {
	rec, body := s.do(http.MethodPost, "/v1/employees", "{not json")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(false, body["success"])
	s.NotEmpty(body["error"])

	rec, body = s.do(http.MethodPost, "/v1/employees", map[string]string{"name": "Ada"})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(false, body["success"])
}

func (s *RouterSuite) TestInvalidTransitionIsBadRequest() {
	rec, body := s.do(http.MethodPost, "/v1/jobs", map[string]string{"title": "Recruiter", "department": "People"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	id := body["data"].(map[string]any)["id"].(string)

	rec, _ = s.do(http.MethodPost, "/v1/jobs/"+id+"/close", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec, body = s.do(http.MethodPost, "/v1/jobs/"+id+"/close", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("job cannot move from closed to closed", body["error"])
}

func (s *RouterSuite) TestCurrentUserAndSignOut() {
	rec, body := s.do(http.MethodGet, "/v1/auth/user", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	user := body["data"].(map[string]any)
	s.Equal("hr@x.com", user["email"])
	s.Equal("HR Admin", user["profile"].(map[string]any)["full_name"])

	rec, _ = s.do(http.MethodPost, "/v1/auth/signout", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec, _ = s.do(http.MethodGet, "/v1/employees", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterSuite) TestMetrics() {
	s.do(http.MethodGet, "/v1/employees", nil)

	rec, _ := s.do(http.MethodGet, "/metrics", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `operation="employee.get_all"`)
}

func (s *RouterSuite) TestAnalytics() {
	s.GetStore().Employees.Insert(&employee.Employee{Name: "Seeded", Status: types.EmployeeStatusActive})

	rec, body := s.do(http.MethodGet, "/v1/analytics", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal(float64(1), body["data"].(map[string]any)["headcount"])
}
