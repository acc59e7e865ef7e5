package attendance

import "time"

// Status is always derived from the record's timestamps or from leave
// approval; callers never set it directly.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusOnLeave Status = "OnLeave"
)

// Attendance is one record per employee per calendar day. Date is truncated
// to midnight UTC; the (employee_id, date) pair is unique.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	WorkHours    float64
	ExtraHours   float64
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses
	EmployeeName *string
}
