package leave

import (
	"context"
	"io"

	"github.com/oijdod/hrms-backend-go/internal/domain/employee"
)

// LeaveService defines business logic for leave requests and balances
type LeaveService interface {
	// Apply submits a new leave request for the authenticated employee.
	// Paid and sick leave are validated against the remaining balance;
	// unpaid leave is never balance-checked.
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)

	// MyLeaves retrieves the authenticated employee's requests
	MyLeaves(ctx context.Context) ([]LeaveResponse, error)

	// Balance retrieves the authenticated employee's leave balances
	Balance(ctx context.Context) (employee.LeaveBalances, error)

	// List retrieves requests with filters (Admin/HR)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, error)

	// Review approves or rejects a pending request. Approval debits the
	// balance and marks every day in the range OnLeave.
	Review(ctx context.Context, req ReviewLeaveRequest) (LeaveResponse, error)

	// UploadAttachment stores a supporting document and returns its URL
	UploadAttachment(ctx context.Context, file io.Reader, filename string) (string, error)
}
