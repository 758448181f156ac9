package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/logger"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/stretchr/testify/suite"
)

type TableSuite struct {
	suite.Suite
	ctx   context.Context
	table *Table[*employee.Employee]
}

func TestTable(t *testing.T) {
	suite.Run(t, new(TableSuite))
}

func (s *TableSuite) SetupTest() {
	s.ctx = context.Background()
	s.table = NewTable[*employee.Employee](logger.NewNopLogger(), "employee", types.UUID_PREFIX_EMPLOYEE, 0)
}

func (s *TableSuite) create(e *employee.Employee) *employee.Employee {
	out, err := s.table.Create(s.ctx, e)
	s.Require().NoError(err)
	return out
}

func (s *TableSuite) seed(n int) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		e := &employee.Employee{
			Name:       fmt.Sprintf("Employee %02d", i),
			Email:      fmt.Sprintf("e%02d@x.com", i),
			Department: lo.Ternary(i%2 == 0, "Eng", "Ops"),
			Status:     types.EmployeeStatusActive,
		}
		e.Touch(start.Add(time.Duration(i) * time.Minute))
		s.create(e)
	}
}

func (s *TableSuite) TestCreateAssignsPrefixedID() {
	e := s.create(&employee.Employee{Name: "Ada"})
	s.Regexp(`^emp_[0-9A-Z]{26}$`, e.ID)
	s.False(e.CreatedAt.IsZero())
	s.Equal(e.CreatedAt, e.UpdatedAt)
}

func (s *TableSuite) TestCreateDoesNotAliasCallerValue() {
	in := &employee.Employee{Name: "Ada"}
	out := s.create(in)
	out.Name = "changed"

	got, err := s.table.Get(s.ctx, out.ID)
	s.Require().NoError(err)
	s.Equal("Ada", got.Name)
	s.Empty(in.ID)
}

func (s *TableSuite) TestConcurrentCreatesGetDistinctIDs() {
	const n = 200
	ids := make([]string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e, err := s.table.Create(s.ctx, &employee.Employee{Name: "same"})
			s.NoError(err)
			ids[i] = e.ID
		}(i)
	}
	wg.Wait()

	s.Len(lo.Uniq(ids), n)
	s.Equal(n, s.table.Len())
}

func (s *TableSuite) TestPagination() {
	s.seed(25)

	page1, err := s.table.List(s.ctx, &types.ListParams{Pagination: types.NewPagination(1, 10)})
	s.Require().NoError(err)
	s.Len(page1, 10)

	page2, err := s.table.List(s.ctx, &types.ListParams{Pagination: types.NewPagination(2, 10)})
	s.Require().NoError(err)
	s.Len(page2, 10)

	page3, err := s.table.List(s.ctx, &types.ListParams{Pagination: types.NewPagination(3, 10)})
	s.Require().NoError(err)
	s.Len(page3, 5)

	page4, err := s.table.List(s.ctx, &types.ListParams{Pagination: types.NewPagination(4, 10)})
	s.Require().NoError(err)
	s.Empty(page4)

	// newest first, no row repeated or skipped across pages
	all := append(append(page1, page2...), page3...)
	s.Len(lo.UniqBy(all, func(e *employee.Employee) string { return e.ID }), 25)
	s.Equal("Employee 24", page1[0].Name)
	s.Equal("Employee 15", page1[9].Name)
	s.Equal("Employee 14", page2[0].Name)
	s.Equal("Employee 00", page3[4].Name)

	count, err := s.table.Count(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(25, count)
}

func (s *TableSuite) TestOrderAscendingWithTiebreak() {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"emp_c", "emp_a", "emp_b"} {
		e := &employee.Employee{Name: "tie"}
		e.ID = id
		e.Touch(at)
		s.create(e)
	}

	rows, err := s.table.List(s.ctx, &types.ListParams{
		Pagination: &types.Pagination{Page: 1, Limit: 10, OrderBy: "name", Ascending: true},
	})
	s.Require().NoError(err)
	s.Equal([]string{"emp_a", "emp_b", "emp_c"}, lo.Map(rows, func(e *employee.Employee, _ int) string { return e.ID }))
}

func (s *TableSuite) TestFilters() {
	s.seed(6)
	s.create(&employee.Employee{Name: "Ada Lovelace", Email: "ADA@x.com", Department: "R&D"})

	tests := []struct {
		name    string
		filters []*types.Filter
		want    int
	}{
		{"eq", []*types.Filter{types.NewFilter("department", types.FilterOpEq, "Eng")}, 3},
		{"eq is a conjunction", []*types.Filter{
			types.NewFilter("department", types.FilterOpEq, "Eng"),
			types.NewFilter("name", types.FilterOpEq, "Employee 02"),
		}, 1},
		{"like is case sensitive", []*types.Filter{types.NewFilter("email", types.FilterOpLike, "ada%")}, 0},
		{"ilike ignores case", []*types.Filter{types.NewFilter("email", types.FilterOpIlike, "ada%")}, 1},
		{"underscore matches one character", []*types.Filter{types.NewFilter("name", types.FilterOpLike, "Employee 0_")}, 6},
		{"pattern metacharacters are literal", []*types.Filter{types.NewFilter("department", types.FilterOpLike, "R&D")}, 1},
		// the mock only narrows on eq, like and ilike
		{"neq matches everything", []*types.Filter{types.NewFilter("department", types.FilterOpNeq, "Eng")}, 7},
		{"gt matches everything", []*types.Filter{types.NewFilter("name", types.FilterOpGt, "Z")}, 7},
		{"in matches everything", []*types.Filter{types.NewFilter("department", types.FilterOpIn, []string{"none"})}, 7},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			n, err := s.table.Count(s.ctx, tt.filters)
			s.Require().NoError(err)
			s.Equal(tt.want, n)

			rows, err := s.table.List(s.ctx, &types.ListParams{Filters: tt.filters})
			s.Require().NoError(err)
			s.Len(rows, tt.want)
		})
	}
}

func (s *TableSuite) TestUnknownOperatorIsRejected() {
	_, err := s.table.List(s.ctx, &types.ListParams{
		Filters: []*types.Filter{types.NewFilter("name", types.FilterOperator("between"), "a")},
	})
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *TableSuite) TestCountBy() {
	s.seed(5)
	counts, err := s.table.CountBy(s.ctx, "department", nil)
	s.Require().NoError(err)
	s.Equal(map[string]int{"Eng": 3, "Ops": 2}, counts)

	_, err = s.table.CountBy(s.ctx, "password", nil)
	s.True(ierr.IsValidation(err))
}

func (s *TableSuite) TestSearch() {
	s.create(&employee.Employee{Name: "Ada", Email: "ada@x.com"})
	s.create(&employee.Employee{Name: "Bob", Email: "bob@x.com"})

	rows, err := s.table.Search(s.ctx, "ADA", []string{"name", "email"}, types.SearchLimit)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("ada@x.com", rows[0].Email)

	s.seed(25)
	rows, err = s.table.Search(s.ctx, "employee", []string{"name"}, types.SearchLimit)
	s.Require().NoError(err)
	s.Len(rows, types.SearchLimit)
}

func (s *TableSuite) TestUpdateWritesOnlyGivenColumns() {
	created := s.create(&employee.Employee{Name: "Ada", Email: "ada@x.com", Department: "Eng"})

	patch := &employee.Employee{Department: "R&D", Name: "ignored"}
	patch.UpdatedAt = created.UpdatedAt.Add(time.Second)
	patch.CreatedAt = created.CreatedAt.Add(time.Hour)

	updated, err := s.table.Update(s.ctx, created.ID, patch, []string{"department", "created_at", "id"})
	s.Require().NoError(err)
	s.Equal("R&D", updated.Department)
	s.Equal("Ada", updated.Name)
	s.Equal(created.ID, updated.ID)
	s.Equal(created.CreatedAt, updated.CreatedAt)
	s.Equal(patch.UpdatedAt, updated.UpdatedAt)
}

func (s *TableSuite) TestUpdateNeverMovesUpdatedAtBack() {
	created := s.create(&employee.Employee{Name: "Ada"})

	patch := &employee.Employee{Name: "Ada L"}
	patch.UpdatedAt = created.UpdatedAt.Add(-time.Hour)

	updated, err := s.table.Update(s.ctx, created.ID, patch, []string{"name"})
	s.Require().NoError(err)
	s.False(updated.UpdatedAt.Before(created.UpdatedAt))
}

func (s *TableSuite) TestMissingRows() {
	_, err := s.table.Get(s.ctx, "emp_missing")
	s.True(ierr.IsNotFound(err))
	s.Equal("employee not found", err.Error())

	_, err = s.table.Update(s.ctx, "emp_missing", &employee.Employee{}, []string{"name"})
	s.True(ierr.IsNotFound(err))

	err = s.table.Delete(s.ctx, "emp_missing")
	s.True(ierr.IsNotFound(err))
}

func (s *TableSuite) TestDelete() {
	created := s.create(&employee.Employee{Name: "Ada"})
	s.Require().NoError(s.table.Delete(s.ctx, created.ID))

	_, err := s.table.Get(s.ctx, created.ID)
	s.True(ierr.IsNotFound(err))
}

func (s *TableSuite) TestDelayIsApplied() {
	table := NewTable[*employee.Employee](logger.NewNopLogger(), "employee", types.UUID_PREFIX_EMPLOYEE, 30*time.Millisecond)

	start := time.Now()
	_, err := table.Count(s.ctx, nil)
	s.Require().NoError(err)
	s.GreaterOrEqual(time.Since(start), 30*time.Millisecond)
}

func (s *TableSuite) TestDelayHonoursCancellation() {
	table := NewTable[*employee.Employee](logger.NewNopLogger(), "employee", types.UUID_PREFIX_EMPLOYEE, time.Minute)

	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := table.Create(ctx, &employee.Employee{Name: "Ada"})
	s.Require().Error(err)
	s.Less(time.Since(start), time.Second)
	s.Equal(0, table.Len())
}

func (s *TableSuite) TestSeed() {
	store := NewEmptyStore(logger.NewNopLogger(), 0)
	store.Seed(time.Now().UTC())

	s.Equal(5, store.Employees.Len())
	e, err := store.Employees.Get(s.ctx, "emp_seed_2")
	s.Require().NoError(err)
	s.Equal("emp_seed_1", lo.FromPtr(e.ManagerID))
}
