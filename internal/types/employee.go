package types

import "github.com/samber/lo"

// EmployeeStatus is the employment state of an employee
type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "active"
	EmployeeStatusOnLeave    EmployeeStatus = "on_leave"
	EmployeeStatusInactive   EmployeeStatus = "inactive"
	EmployeeStatusTerminated EmployeeStatus = "terminated"
)

func (s EmployeeStatus) IsValid() bool {
	return lo.Contains([]EmployeeStatus{
		EmployeeStatusActive,
		EmployeeStatusOnLeave,
		EmployeeStatusInactive,
		EmployeeStatusTerminated,
	}, s)
}

// EmploymentType is shared by employees and job postings
type EmploymentType string

const (
	EmploymentTypeFullTime   EmploymentType = "full_time"
	EmploymentTypePartTime   EmploymentType = "part_time"
	EmploymentTypeContract   EmploymentType = "contract"
	EmploymentTypeInternship EmploymentType = "internship"
)

func (t EmploymentType) IsValid() bool {
	return lo.Contains([]EmploymentType{
		EmploymentTypeFullTime,
		EmploymentTypePartTime,
		EmploymentTypeContract,
		EmploymentTypeInternship,
	}, t)
}
