package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/oijdod/hrms-backend-go/internal/domain/employee"
	"github.com/oijdod/hrms-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

const employeeColumns = `
	e.id, e.first_name, e.last_name, e.initials, e.email, e.phone,
	e.date_of_birth, e.gender, e.nationality,
	e.company, e.department, e.position, e.manager_id, e.date_of_joining, e.serial_number,
	e.address, e.bank_details, e.profile_picture_url, e.resume_url,
	e.paid_leave_balance, e.sick_leave_balance, e.unpaid_leave_balance,
	e.is_active, e.user_id, e.created_at, e.updated_at`

func scanEmployee(row pgx.Row, withManager bool) (employee.Employee, error) {
	var emp employee.Employee
	dest := []interface{}{
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Initials, &emp.Email, &emp.Phone,
		&emp.DateOfBirth, &emp.Gender, &emp.Nationality,
		&emp.Company, &emp.Department, &emp.Position, &emp.ManagerID, &emp.DateOfJoining, &emp.SerialNumber,
		&emp.Address, &emp.BankDetails, &emp.ProfilePictureURL, &emp.ResumeURL,
		&emp.LeaveBalances.PaidLeave, &emp.LeaveBalances.SickLeave, &emp.LeaveBalances.UnpaidLeave,
		&emp.IsActive, &emp.UserID, &emp.CreatedAt, &emp.UpdatedAt,
	}
	if withManager {
		dest = append(dest, &emp.ManagerName)
	}
	if err := row.Scan(dest...); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			first_name, last_name, initials, email, phone,
			date_of_birth, gender, nationality,
			company, department, position, manager_id, date_of_joining, serial_number,
			address, bank_details,
			paid_leave_balance, sick_leave_balance, unpaid_leave_balance,
			is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.Initials, emp.Email, emp.Phone,
		emp.DateOfBirth, emp.Gender, emp.Nationality,
		emp.Company, emp.Department, emp.Position, emp.ManagerID, emp.DateOfJoining, emp.SerialNumber,
		emp.Address, emp.BankDetails,
		emp.LeaveBalances.PaidLeave, emp.LeaveBalances.SickLeave, emp.LeaveBalances.UnpaidLeave,
		emp.IsActive,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if IsUniqueViolation(err, "employees_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + employeeColumns + `,
			m.first_name || ' ' || m.last_name AS manager_name
		FROM employees e
		LEFT JOIN employees m ON m.id = e.manager_id
		WHERE e.id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + employeeColumns + `,
			m.first_name || ' ' || m.last_name AS manager_name
		FROM employees e
		LEFT JOIN employees m ON m.id = e.manager_id
		WHERE e.is_active = TRUE
		ORDER BY e.serial_number
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	appendUpdate := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.FirstName != nil {
		appendUpdate("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		appendUpdate("last_name", *req.LastName)
	}
	if req.Email != nil {
		appendUpdate("email", *req.Email)
	}
	if req.Phone != nil {
		appendUpdate("phone", *req.Phone)
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to parse date of birth: %w", err)
		}
		appendUpdate("date_of_birth", dob)
	}
	if req.Gender != nil {
		appendUpdate("gender", *req.Gender)
	}
	if req.Nationality != nil {
		appendUpdate("nationality", *req.Nationality)
	}
	if req.Department != nil {
		appendUpdate("department", *req.Department)
	}
	if req.Position != nil {
		appendUpdate("position", *req.Position)
	}
	if req.ManagerID != nil {
		appendUpdate("manager_id", *req.ManagerID)
	}
	if req.Address != nil {
		appendUpdate("address", *req.Address)
	}
	if req.BankDetails != nil {
		appendUpdate("bank_details", *req.BankDetails)
	}

	if len(updates) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.ID)

	query := "UPDATE employees SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if IsUniqueViolation(err, "employees_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return r.GetByID(ctx, req.ID)
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// NextSerialNumber implements employee.EmployeeRepository.
func (r *employeeRepository) NextSerialNumber(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COALESCE(MAX(serial_number), 0) + 1 FROM employees`

	var next int
	if err := q.QueryRow(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to get next serial number: %w", err)
	}

	return next, nil
}

// GetLeaveBalances implements employee.EmployeeRepository.
func (r *employeeRepository) GetLeaveBalances(ctx context.Context, id string) (employee.LeaveBalances, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT paid_leave_balance, sick_leave_balance, unpaid_leave_balance
		FROM employees
		WHERE id = $1
	`

	var balances employee.LeaveBalances
	err := q.QueryRow(ctx, query, id).Scan(&balances.PaidLeave, &balances.SickLeave, &balances.UnpaidLeave)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.LeaveBalances{}, employee.ErrEmployeeNotFound
		}
		return employee.LeaveBalances{}, fmt.Errorf("failed to get leave balances: %w", err)
	}

	return balances, nil
}

// DebitLeaveBalance implements employee.EmployeeRepository.
// The balance floors at zero so a race between check and debit can never
// drive it negative.
func (r *employeeRepository) DebitLeaveBalance(ctx context.Context, id string, leaveType string, days int) error {
	q := GetQuerier(ctx, r.db)

	var column string
	switch leaveType {
	case "PaidLeave":
		column = "paid_leave_balance"
	case "SickLeave":
		column = "sick_leave_balance"
	case "UnpaidLeave":
		column = "unpaid_leave_balance"
	default:
		return fmt.Errorf("unknown leave type: %s", leaveType)
	}

	query := fmt.Sprintf(
		"UPDATE employees SET %s = GREATEST(0, %s - $1), updated_at = NOW() WHERE id = $2",
		column, column,
	)

	commandTag, err := q.Exec(ctx, query, days, id)
	if err != nil {
		return fmt.Errorf("failed to debit leave balance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SetProfilePictureURL implements employee.EmployeeRepository.
func (r *employeeRepository) SetProfilePictureURL(ctx context.Context, id string, url string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET profile_picture_url = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, url, id)
	if err != nil {
		return fmt.Errorf("failed to set profile picture URL: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SetResumeURL implements employee.EmployeeRepository.
func (r *employeeRepository) SetResumeURL(ctx context.Context, id string, url string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET resume_url = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, url, id)
	if err != nil {
		return fmt.Errorf("failed to set resume URL: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SetUserID implements employee.EmployeeRepository.
func (r *employeeRepository) SetUserID(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET user_id = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("failed to link user account: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
