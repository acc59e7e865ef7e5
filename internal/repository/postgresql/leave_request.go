package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/oijdod/hrms-backend-go/internal/domain/leave"
	"github.com/oijdod/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

const leaveColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.number_of_days,
	l.reason, l.attachment_url, l.status,
	l.reviewed_by, l.reviewed_at, l.review_comments,
	l.created_at, l.updated_at`

func scanLeaveRequest(row pgx.Row, withJoins bool) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	dest := []interface{}{
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.NumberOfDays,
		&req.Reason, &req.AttachmentURL, &req.Status,
		&req.ReviewedBy, &req.ReviewedAt, &req.ReviewComments,
		&req.CreatedAt, &req.UpdatedAt,
	}
	if withJoins {
		dest = append(dest, &req.EmployeeName, &req.ReviewerLogin)
	}
	if err := row.Scan(dest...); err != nil {
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, leave_type, start_date, end_date, number_of_days,
			reason, attachment_url, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate, req.NumberOfDays,
		req.Reason, req.AttachmentURL, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + leaveColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name,
			u.login_id AS reviewer_login
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		LEFT JOIN users u ON u.id = l.reviewed_by
		WHERE l.id = $1
	`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return req, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + leaveColumns + `
		FROM leave_requests l
		WHERE l.employee_id = $1
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("l.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	query := `
		SELECT` + leaveColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name,
			u.login_id AS reviewer_login
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		LEFT JOIN users u ON u.id = l.reviewed_by
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// UpdateReview implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateReview(ctx context.Context, id string, status leave.LeaveStatus, reviewedBy string, reviewedAt time.Time, comments *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, reviewed_by = $2, reviewed_at = $3, review_comments = $4,
			updated_at = NOW()
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, status, reviewedBy, reviewedAt, comments, id)
	if err != nil {
		return fmt.Errorf("failed to update leave review: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// HasApprovedLeaveOn implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) HasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
				AND status = $2
				AND start_date <= $3
				AND end_date >= $3
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, leave.LeaveStatusApproved, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check approved leave: %w", err)
	}

	return exists, nil
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}
