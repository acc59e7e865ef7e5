package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oijdod/hrms-backend-go/internal/domain/salary"
	"github.com/oijdod/hrms-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

const salaryColumns = `
	s.id, s.employee_id, s.base_wage, s.components, s.deductions,
	s.total_salary, s.monthly_salary, s.created_at, s.updated_at`

func scanSalary(row pgx.Row, withEmployee bool) (salary.SalaryStructure, error) {
	var s salary.SalaryStructure
	dest := []interface{}{
		&s.ID, &s.EmployeeID, &s.BaseWage, &s.Components, &s.Deductions,
		&s.TotalSalary, &s.MonthlySalary, &s.CreatedAt, &s.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &s.EmployeeName)
	}
	if err := row.Scan(dest...); err != nil {
		return salary.SalaryStructure{}, err
	}
	return s, nil
}

// Upsert implements salary.SalaryRepository.
func (r *salaryRepository) Upsert(ctx context.Context, s salary.SalaryStructure) (salary.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaries (
			employee_id, base_wage, components, deductions, total_salary, monthly_salary
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id)
		DO UPDATE SET
			base_wage = EXCLUDED.base_wage,
			components = EXCLUDED.components,
			deductions = EXCLUDED.deductions,
			total_salary = EXCLUDED.total_salary,
			monthly_salary = EXCLUDED.monthly_salary,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.BaseWage, s.Components, s.Deductions, s.TotalSalary, s.MonthlySalary,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return salary.SalaryStructure{}, fmt.Errorf("failed to upsert salary structure: %w", err)
	}

	return s, nil
}

// GetByEmployeeID implements salary.SalaryRepository.
func (r *salaryRepository) GetByEmployeeID(ctx context.Context, employeeID string) (salary.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + salaryColumns + `
		FROM salaries s
		WHERE s.employee_id = $1
	`

	s, err := scanSalary(q.QueryRow(ctx, query, employeeID), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.SalaryStructure{}, salary.ErrSalaryNotConfigured
		}
		return salary.SalaryStructure{}, fmt.Errorf("failed to get salary structure: %w", err)
	}

	return s, nil
}

// List implements salary.SalaryRepository.
func (r *salaryRepository) List(ctx context.Context) ([]salary.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + salaryColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM salaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE e.is_active = TRUE
		ORDER BY e.serial_number
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary structures: %w", err)
	}
	defer rows.Close()

	var structures []salary.SalaryStructure
	for rows.Next() {
		s, err := scanSalary(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary structure: %w", err)
		}
		structures = append(structures, s)
	}

	return structures, nil
}

// DeleteByEmployeeID implements salary.SalaryRepository.
func (r *salaryRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM salaries WHERE employee_id = $1`

	commandTag, err := q.Exec(ctx, query, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete salary structure: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return salary.ErrSalaryNotConfigured
	}

	return nil
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}
