package employee

import "context"

type EmployeeRepository interface {
	// Create creates a new employee record
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves all active employees
	List(ctx context.Context) ([]Employee, error)

	// Update applies a partial update to an employee record
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)

	// Deactivate flips isActive to false; employees are never deleted
	Deactivate(ctx context.Context, id string) error

	// NextSerialNumber returns the next free serial number
	NextSerialNumber(ctx context.Context) (int, error)

	// GetLeaveBalances returns the employee's current leave balances
	GetLeaveBalances(ctx context.Context, id string) (LeaveBalances, error)

	// DebitLeaveBalance subtracts days from the balance for leaveType,
	// flooring at zero. Unknown leave types are an error.
	DebitLeaveBalance(ctx context.Context, id string, leaveType string, days int) error

	// SetProfilePictureURL stores the uploaded picture location
	SetProfilePictureURL(ctx context.Context, id string, url string) error

	// SetResumeURL stores the uploaded resume location
	SetResumeURL(ctx context.Context, id string, url string) error

	// SetUserID links the employee to its user account
	SetUserID(ctx context.Context, id string, userID string) error
}
