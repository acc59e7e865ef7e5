package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance record. A concurrent insert for the
	// same (employee, date) surfaces as ErrAlreadyCheckedIn via the unique
	// constraint.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one day.
	// Returns (nil, nil) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update rewrites the mutable fields of an existing record
	Update(ctx context.Context, att Attendance) error

	// MarkOnLeave upserts the record for (employeeID, date) with status
	// OnLeave, leaving any recorded clock times in place.
	MarkOnLeave(ctx context.Context, employeeID string, date time.Time) error

	// ListByEmployee retrieves an employee's records, newest date first
	ListByEmployee(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, error)

	// List retrieves records across employees with filters, newest date first
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	// ListForMonth retrieves an employee's records within one calendar month
	ListForMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Attendance, error)

	// CountPayableDays counts records in the month with status Present or
	// OnLeave; leave days are payable.
	CountPayableDays(ctx context.Context, employeeID string, year int, month time.Month) (int, error)
}
