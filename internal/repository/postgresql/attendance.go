package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/oijdod/hrms-backend-go/internal/domain/attendance"
	"github.com/oijdod/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time,
	a.work_hours, a.extra_hours, a.status, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row, withEmployee bool) (attendance.Attendance, error) {
	var att attendance.Attendance
	dest := []interface{}{
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
		&att.WorkHours, &att.ExtraHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &att.EmployeeName)
	}
	if err := row.Scan(dest...); err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, check_in_time, check_out_time,
			work_hours, extra_hours, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.CheckInTime, att.CheckOutTime,
		att.WorkHours, att.ExtraHours, att.Status,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if IsUniqueViolation(err, "attendances_employee_id_date_key") {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_in_time = $1, check_out_time = $2,
			work_hours = $3, extra_hours = $4, status = $5,
			updated_at = NOW()
		WHERE id = $6
	`

	commandTag, err := q.Exec(ctx, query,
		att.CheckInTime, att.CheckOutTime,
		att.WorkHours, att.ExtraHours, att.Status,
		att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// MarkOnLeave implements attendance.AttendanceRepository.
// Existing clock times survive the upsert; only the status flips.
func (r *attendanceRepository) MarkOnLeave(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeID, date, attendance.StatusOnLeave); err != nil {
		return fmt.Errorf("failed to mark on leave: %w", err)
	}

	return nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"a.employee_id = $1"}
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.Month != nil && filter.Year != nil {
		conditions = append(conditions,
			fmt.Sprintf("EXTRACT(MONTH FROM a.date) = $%d", argIdx),
			fmt.Sprintf("EXTRACT(YEAR FROM a.date) = $%d", argIdx+1),
		)
		args = append(args, *filter.Month, *filter.Year)
		argIdx += 2
	}

	query := `
		SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY a.date DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}

	return records, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", argIdx))
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := `
		SELECT` + attendanceColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY a.date DESC, e.serial_number
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}

	return records, nil
}

// ListForMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListForMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
			AND EXTRACT(YEAR FROM a.date) = $2
			AND EXTRACT(MONTH FROM a.date) = $3
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records for month: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}

	return records, nil
}

// CountPayableDays implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountPayableDays(ctx context.Context, employeeID string, year int, month time.Month) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendances a
		WHERE a.employee_id = $1
			AND EXTRACT(YEAR FROM a.date) = $2
			AND EXTRACT(MONTH FROM a.date) = $3
			AND a.status IN ($4, $5)
	`

	var count int
	err := q.QueryRow(ctx, query, employeeID, year, int(month),
		attendance.StatusPresent, attendance.StatusOnLeave).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count payable days: %w", err)
	}

	return count, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
