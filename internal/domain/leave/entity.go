package leave

import "time"

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "PaidLeave"
	LeaveTypeSick   LeaveType = "SickLeave"
	LeaveTypeUnpaid LeaveType = "UnpaidLeave"
)

type LeaveStatus string

// Pending is the only non-terminal status; a request is reviewed exactly once.
const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType

	// StartDate and EndDate are inclusive calendar days.
	StartDate    time.Time
	EndDate      time.Time
	NumberOfDays int

	Reason        string
	AttachmentURL *string

	Status         LeaveStatus
	ReviewedBy     *string
	ReviewedAt     *time.Time
	ReviewComments *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	EmployeeName  *string
	ReviewerLogin *string
}

// NumberOfDaysBetween derives the inclusive day count of a leave range.
// Both bounds are midnight-truncated calendar days.
func NumberOfDaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
