package employee

import (
	"context"
	"io"
)

// EmployeeService defines business logic for employee management
type EmployeeService interface {
	// List retrieves all active employees
	List(ctx context.Context) ([]EmployeeResponse, error)

	// ListWithTodayStatus retrieves active employees with their presence today
	ListWithTodayStatus(ctx context.Context) ([]EmployeeWithStatusResponse, error)

	// Get retrieves a single employee
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// Update applies a partial profile update
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate marks an employee inactive (soft delete)
	Deactivate(ctx context.Context, id string) error

	// UploadProfilePicture stores a profile picture for the authenticated employee
	UploadProfilePicture(ctx context.Context, file io.Reader, filename string) (string, error)

	// UploadResume stores a resume document for the authenticated employee
	UploadResume(ctx context.Context, file io.Reader, filename string) (string, error)
}
