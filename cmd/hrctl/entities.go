package main

import (
	"github.com/spf13/cobra"
	"github.com/staffdesk/staffdesk/internal/api/dto"
	"github.com/staffdesk/staffdesk/internal/domain/application"
	"github.com/staffdesk/staffdesk/internal/domain/asset"
	"github.com/staffdesk/staffdesk/internal/domain/candidate"
	"github.com/staffdesk/staffdesk/internal/domain/employee"
	"github.com/staffdesk/staffdesk/internal/domain/job"
	"github.com/staffdesk/staffdesk/internal/domain/leave"
	"github.com/staffdesk/staffdesk/internal/domain/onboarding"
	"github.com/staffdesk/staffdesk/internal/domain/performance"
	"github.com/staffdesk/staffdesk/internal/domain/training"
)

func employeesCmd(opts *rootOptions) *cobra.Command {
	return groupCmd("employees", "Employee records", []string{"employee", "emp"},
		listCommand(opts, func(c *console) listFunc[*employee.Employee] { return c.employees.GetAll }),
		argCommand(opts, "get <id>", "Show one employee", func(c *console) argFunc[*employee.Employee] {
			return c.employees.GetByID
		}),
		argCommand(opts, "search <term>", "Search name, email, department and position", func(c *console) argFunc[[]*employee.Employee] {
			return c.employees.Search
		}),
		argCommand(opts, "department <name>", "List the employees of a department", func(c *console) argFunc[[]*employee.Employee] {
			return c.employees.GetByDepartment
		}),
		noArgCommand(opts, "stats", "Headcount by status and department", func(c *console) noArgFunc[*dto.EmployeeStats] {
			return c.employees.GetStats
		}),
	)
}

func jobsCmd(opts *rootOptions) *cobra.Command {
	return groupCmd("jobs", "Job postings", []string{"job"},
		listCommand(opts, func(c *console) listFunc[*job.Job] { return c.jobs.GetAll }),
		argCommand(opts, "get <id>", "Show one job posting", func(c *console) argFunc[*job.Job] {
			return c.jobs.GetByID
		}),
		argCommand(opts, "search <term>", "Search title, department and location", func(c *console) argFunc[[]*job.Job] {
			return c.jobs.Search
		}),
		noArgCommand(opts, "stats", "Job postings by status", func(c *console) noArgFunc[*dto.JobStats] {
			return c.jobs.GetStats
		}),
	)
}

func candidatesCmd(opts *rootOptions) *cobra.Command {
	return groupCmd("candidates", "Candidates", []string{"candidate", "cand"},
		listCommand(opts, func(c *console) listFunc[*candidate.Candidate] { return c.candidates.GetAll }),
		argCommand(opts, "get <id>", "Show one candidate", func(c *console) argFunc[*candidate.Candidate] {
			return c.candidates.GetByID
		}),
		argCommand(opts, "search <term>", "Search name and email", func(c *console) argFunc[[]*candidate.Candidate] {
			return c.candidates.Search
		}),
	)
}

func applicationsCmd(opts *rootOptions) *cobra.Command {
	return groupCmd("applications", "Job applications", []string{"application", "app"},
		listCommand(opts, func(c *console) listFunc[*application.Application] { return c.applications.GetAll }),
		argCommand(opts, "get <id>", "Show one application", func(c *console) argFunc[*application.Application] {
			return c.applications.GetByID
		}),
		argCommand(opts, "by-job <job-id>", "List the applications of a job posting", func(c *console) argFunc[[]*application.Application] {
			return c.applications.GetByJob
		}),
		noArgCommand(opts, "stats", "Applications by stage", func(c *console) noArgFunc[*dto.ApplicationStats] {
			return c.applications.GetStats
		}),
	)
}

func leaveCmd(opts *rootOptions) *cobra.Command {
	return groupCmd("leave", "Leave requests", []string{"leave-requests"},
		listCommand(opts, func(c *console) listFunc[*leave.Request] { return c.leave.GetAll }),
		argCommand(opts, "get <id>", "Show one leave request", func(c *console) argFunc[*leave.Request] {
			return c.leave.GetByID
		}),
		argCommand(opts, "by-employee <employee-id>", "List the leave requests of an employee", func(c *console) argFunc[[]*leave.Request] {
			return c.leave.GetByEmployee
		}),
		noArgCommand(opts, "stats", "Leave requests by status and type", func(c *console) noArgFunc[*dto.LeaveStats] {
			return c.leave.GetStats
		}),
	)
}

func assetsCmd(opts *rootOptions) *cobra.Command {
	return groupCmd("assets", "Company assets", []string{"asset"},
		listCommand(opts, func(c *console) listFunc[*asset.Asset] { return c.assets.GetAll }),
		argCommand(opts, "get <id>", "Show one asset", func(c *console) argFunc[*asset.Asset] {
			return c.assets.GetByID
		}),
		noArgCommand(opts, "stats", "Assets by status and category", func(c *console) noArgFunc[*dto.AssetStats] {
			return c.assets.GetStats
		}),
	)
}

func onboardingCmd(opts *rootOptions) *cobra.Command {
	return groupCmd("onboarding", "Onboarding tasks", []string{"onboarding-tasks"},
		listCommand(opts, func(c *console) listFunc[*onboarding.Task] { return c.onboarding.GetAll }),
		argCommand(opts, "get <id>", "Show one onboarding task", func(c *console) argFunc[*onboarding.Task] {
			return c.onboarding.GetByID
		}),
		argCommand(opts, "progress <employee-id>", "Show the onboarding progress of an employee", func(c *console) argFunc[*dto.OnboardingProgress] {
			return c.onboarding.GetProgress
		}),
	)
}

func trainingsCmd(opts *rootOptions) *cobra.Command {
	return groupCmd("trainings", "Training programs", []string{"training"},
		listCommand(opts, func(c *console) listFunc[*training.Program] { return c.trainings.GetAll }),
		argCommand(opts, "get <id>", "Show one training program", func(c *console) argFunc[*training.Program] {
			return c.trainings.GetByID
		}),
		argCommand(opts, "enrollments <training-id>", "List the enrollments of a program", func(c *console) argFunc[[]*training.Enrollment] {
			return c.trainings.GetEnrollments
		}),
		noArgCommand(opts, "stats", "Programs by status and enrollments by status", func(c *console) noArgFunc[*dto.TrainingStats] {
			return c.trainings.GetStats
		}),
	)
}

func reviewsCmd(opts *rootOptions) *cobra.Command {
	return groupCmd("reviews", "Performance reviews", []string{"review", "performance"},
		listCommand(opts, func(c *console) listFunc[*performance.Review] { return c.reviews.GetAll }),
		argCommand(opts, "get <id>", "Show one performance review", func(c *console) argFunc[*performance.Review] {
			return c.reviews.GetByID
		}),
		noArgCommand(opts, "stats", "Reviews by status and rating", func(c *console) noArgFunc[*dto.ReviewStats] {
			return c.reviews.GetStats
		}),
	)
}

func analyticsCmd(opts *rootOptions) *cobra.Command {
	cmd := noArgCommand(opts, "analytics", "Dashboard figures across every module", func(c *console) noArgFunc[*dto.Analytics] {
		return c.analytics.GetAnalytics
	})
	return cmd
}
