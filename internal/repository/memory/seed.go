package memory

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk/internal/domain/application"
	"github.com/staffdesk/staffdesk/internal/domain/asset"
	"github.com/staffdesk/staffdesk/internal/domain/candidate"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	"github.com/staffdesk/staffdesk/internal/domain/job"
	"github.com/staffdesk/staffdesk/internal/domain/leave"
	"github.com/staffdesk/staffdesk/internal/domain/onboarding"
	"github.com/staffdesk/staffdesk/internal/domain/performance"
	"github.com/staffdesk/staffdesk/internal/domain/training"
	"github.com/staffdesk/staffdesk/internal/types"
)

func base(id string, at time.Time) types.BaseModel {
	return types.BaseModel{ID: id, CreatedAt: at, UpdatedAt: at}
}

// Seed loads a small, consistent data set for UI development
func (s *Store) Seed(now time.Time) {
	day := 24 * time.Hour
	at := func(daysAgo int) time.Time { return now.Add(-time.Duration(daysAgo) * day) }

	s.Employees.Insert(
		&employee.Employee{BaseModel: base("emp_seed_1", at(400)), Name: "Sarah Chen", Email: "sarah.chen@staffdesk.dev",
			Department: "Engineering", Position: "Engineering Manager", HireDate: lo.ToPtr(at(400)),
			Salary: decimal.NewFromInt(165000), EmploymentType: types.EmploymentTypeFullTime,
			Location: "San Francisco", Status: types.EmployeeStatusActive},
		&employee.Employee{BaseModel: base("emp_seed_2", at(300)), Name: "Marcus Johnson", Email: "marcus.johnson@staffdesk.dev",
			Department: "Engineering", Position: "Senior Engineer", ManagerID: lo.ToPtr("emp_seed_1"), HireDate: lo.ToPtr(at(300)),
			Salary: decimal.NewFromInt(142000), EmploymentType: types.EmploymentTypeFullTime,
			Location: "Remote", Status: types.EmployeeStatusActive},
		&employee.Employee{BaseModel: base("emp_seed_3", at(200)), Name: "Priya Patel", Email: "priya.patel@staffdesk.dev",
			Department: "People", Position: "HR Business Partner", HireDate: lo.ToPtr(at(200)),
			Salary: decimal.NewFromInt(98000), EmploymentType: types.EmploymentTypeFullTime,
			Location: "New York", Status: types.EmployeeStatusActive},
		&employee.Employee{BaseModel: base("emp_seed_4", at(90)), Name: "Tom Alvarez", Email: "tom.alvarez@staffdesk.dev",
			Department: "Sales", Position: "Account Executive", HireDate: lo.ToPtr(at(90)),
			Salary: decimal.NewFromInt(85000), EmploymentType: types.EmploymentTypeFullTime,
			Location: "Austin", Status: types.EmployeeStatusOnLeave},
		&employee.Employee{BaseModel: base("emp_seed_5", at(20)), Name: "Lena Fischer", Email: "lena.fischer@staffdesk.dev",
			Department: "Design", Position: "Product Designer", HireDate: lo.ToPtr(at(20)),
			Salary: decimal.NewFromInt(60000), EmploymentType: types.EmploymentTypeContract,
			Location: "Berlin", Status: types.EmployeeStatusActive},
	)

	s.Jobs.Insert(
		&job.Job{BaseModel: base("job_seed_1", at(30)), Title: "Backend Engineer", Department: "Engineering",
			Location: "Remote", EmploymentType: types.EmploymentTypeFullTime,
			SalaryMin: decimal.NewFromInt(120000), SalaryMax: decimal.NewFromInt(150000),
			Status: types.JobStatusOpen, PostedBy: lo.ToPtr("emp_seed_1")},
		&job.Job{BaseModel: base("job_seed_2", at(10)), Title: "Recruiter", Department: "People",
			Location: "New York", EmploymentType: types.EmploymentTypeFullTime,
			Status: types.JobStatusDraft, PostedBy: lo.ToPtr("emp_seed_3")},
	)

	s.Candidates.Insert(
		&candidate.Candidate{BaseModel: base("cand_seed_1", at(25)), Name: "Ada Lovelace", Email: "ada@example.com", Source: "referral"},
		&candidate.Candidate{BaseModel: base("cand_seed_2", at(15)), Name: "Alan Turing", Email: "alan@example.com", Source: "linkedin"},
	)

	s.Apps.Insert(
		&application.Application{BaseModel: base("app_seed_1", at(24)), JobID: "job_seed_1", CandidateID: "cand_seed_1",
			Stage: types.ApplicationStageInterview, Rating: 4, AppliedAt: lo.ToPtr(at(24))},
		&application.Application{BaseModel: base("app_seed_2", at(14)), JobID: "job_seed_1", CandidateID: "cand_seed_2",
			Stage: types.ApplicationStageApplied, AppliedAt: lo.ToPtr(at(14))},
	)

	s.Leave.Insert(
		&leave.Request{BaseModel: base("leave_seed_1", at(5)), EmployeeID: "emp_seed_2", LeaveType: types.LeaveTypeAnnual,
			StartDate: now.Add(7 * day), EndDate: now.Add(11 * day), Days: 5, Reason: "Family trip",
			Status: types.LeaveStatusPending},
		&leave.Request{BaseModel: base("leave_seed_2", at(40)), EmployeeID: "emp_seed_4", LeaveType: types.LeaveTypePaternity,
			StartDate: at(10), EndDate: now.Add(20 * day), Days: 31, Status: types.LeaveStatusApproved,
			ApproverID: lo.ToPtr("emp_seed_3"), ApprovalDate: lo.ToPtr(at(38))},
	)

	s.Assets.Insert(
		&asset.Asset{BaseModel: base("asset_seed_1", at(300)), Name: "MacBook Pro 14", AssetTag: "LT-0001",
			Category: types.AssetCategoryLaptop, Status: types.AssetStatusAssigned, Condition: "good",
			PurchaseCost: decimal.NewFromInt(2499), AssignedTo: lo.ToPtr("emp_seed_2"), AssignedDate: lo.ToPtr(at(300))},
		&asset.Asset{BaseModel: base("asset_seed_2", at(100)), Name: "Dell U2723QE", AssetTag: "MN-0007",
			Category: types.AssetCategoryMonitor, Status: types.AssetStatusAvailable, Condition: "new",
			PurchaseCost: decimal.NewFromInt(579)},
	)

	s.Onboarding.Insert(
		&onboarding.Task{BaseModel: base("onb_seed_1", at(20)), EmployeeID: "emp_seed_5", Title: "Sign contract",
			Category: "paperwork", Status: types.OnboardingTaskStatusCompleted, CompletedAt: lo.ToPtr(at(19))},
		&onboarding.Task{BaseModel: base("onb_seed_2", at(20)), EmployeeID: "emp_seed_5", Title: "Set up laptop",
			Category: "it", Status: types.OnboardingTaskStatusPending, DueDate: lo.ToPtr(now.Add(2 * day))},
	)

	s.Programs.Insert(
		&training.Program{BaseModel: base("trn_seed_1", at(60)), Title: "Security Awareness", Category: "compliance",
			Trainer: "Priya Patel", StartDate: lo.ToPtr(now.Add(14 * day)), EndDate: lo.ToPtr(now.Add(14 * day)),
			Capacity: 30, Status: types.TrainingStatusScheduled},
	)
	s.Enrollments.Insert(
		&training.Enrollment{BaseModel: base("enr_seed_1", at(50)), TrainingID: "trn_seed_1", EmployeeID: "emp_seed_2",
			Status: types.EnrollmentStatusEnrolled},
	)

	s.Reviews.Insert(
		&performance.Review{BaseModel: base("rev_seed_1", at(60)), EmployeeID: "emp_seed_2", ReviewerID: lo.ToPtr("emp_seed_1"),
			ReviewPeriod: "H1", OverallRating: 4, Status: types.ReviewStatusAcknowledged},
		&performance.Review{BaseModel: base("rev_seed_2", at(3)), EmployeeID: "emp_seed_4", ReviewerID: lo.ToPtr("emp_seed_3"),
			ReviewPeriod: "H1", OverallRating: 3, Status: types.ReviewStatusSubmitted},
	)
}
