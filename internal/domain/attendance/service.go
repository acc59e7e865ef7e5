package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the authenticated employee's check-in for today
	CheckIn(ctx context.Context) (AttendanceResponse, error)

	// CheckOut records the authenticated employee's check-out for today
	CheckOut(ctx context.Context) (AttendanceResponse, error)

	// GetMyAttendance retrieves the authenticated employee's history
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) ([]AttendanceResponse, error)

	// List retrieves attendance records with filters (Admin/HR)
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)

	// Summary aggregates one employee's records for a month
	Summary(ctx context.Context, employeeID string, month time.Month, year int) (SummaryResponse, error)
}
