package types

import "github.com/samber/lo"

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypePersonal  LeaveType = "personal"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypePaternity LeaveType = "paternity"
	LeaveTypeUnpaid    LeaveType = "unpaid"
)

func (t LeaveType) IsValid() bool {
	return lo.Contains([]LeaveType{
		LeaveTypeAnnual,
		LeaveTypeSick,
		LeaveTypePersonal,
		LeaveTypeMaternity,
		LeaveTypePaternity,
		LeaveTypeUnpaid,
	}, t)
}

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusCancelled LeaveStatus = "cancelled"
)

func (s LeaveStatus) IsValid() bool {
	return lo.Contains([]LeaveStatus{
		LeaveStatusPending,
		LeaveStatusApproved,
		LeaveStatusRejected,
		LeaveStatusCancelled,
	}, s)
}
