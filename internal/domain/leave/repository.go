package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	// Create inserts a new request in Pending status
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByEmployee retrieves an employee's requests, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// List retrieves requests across employees with filters, newest first
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, error)

	// UpdateReview writes the terminal review outcome
	UpdateReview(ctx context.Context, id string, status LeaveStatus, reviewedBy string, reviewedAt time.Time, comments *string) error

	// HasApprovedLeaveOn reports whether the employee has an approved request
	// covering the given date.
	HasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
