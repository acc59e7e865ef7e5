package salary

import "context"

type SalaryRepository interface {
	// Upsert creates or replaces the structure for its employee; at most one
	// structure exists per employee.
	Upsert(ctx context.Context, s SalaryStructure) (SalaryStructure, error)

	// GetByEmployeeID retrieves the structure for an employee
	GetByEmployeeID(ctx context.Context, employeeID string) (SalaryStructure, error)

	// List retrieves all salary structures
	List(ctx context.Context) ([]SalaryStructure, error)

	// DeleteByEmployeeID removes the structure for an employee
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
