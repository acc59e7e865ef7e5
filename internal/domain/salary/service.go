package salary

import "context"

// SalaryService defines business logic for salary structures and payroll
type SalaryService interface {
	// Save creates or updates an employee's structure and recomputes every
	// derived value from scratch.
	Save(ctx context.Context, req SaveSalaryRequest) (SalaryResponse, error)

	// Get retrieves one employee's structure
	Get(ctx context.Context, employeeID string) (SalaryResponse, error)

	// List retrieves all structures (Admin)
	List(ctx context.Context) ([]SalaryResponse, error)

	// Delete removes an employee's structure
	Delete(ctx context.Context, employeeID string) error

	// CalculatePayroll combines a month's attendance with the salary
	// structure into a payable amount. Computed on demand, never stored.
	CalculatePayroll(ctx context.Context, req PayrollRequest) (PayrollResponse, error)

	// GeneratePayslip renders the payroll breakdown to a PDF, stores it and
	// returns its URL.
	GeneratePayslip(ctx context.Context, req PayrollRequest) (string, error)
}
