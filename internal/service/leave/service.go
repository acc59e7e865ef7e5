package leave

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/oijdod/hrms-backend-go/internal/domain/attendance"
	"github.com/oijdod/hrms-backend-go/internal/domain/employee"
	"github.com/oijdod/hrms-backend-go/internal/domain/leave"
	"github.com/oijdod/hrms-backend-go/internal/pkg/database"
	"github.com/oijdod/hrms-backend-go/internal/pkg/jwt"
	"github.com/oijdod/hrms-backend-go/internal/repository/postgresql"
	"github.com/oijdod/hrms-backend-go/internal/service/file"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository
	fileService file.FileService

	// runInTx wraps fn in a database transaction exposed through the context.
	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	fileService file.FileService,
) leave.LeaveService {
	s := &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRepo,
		EmployeeRepository:     employeeRepo,
		AttendanceRepository:   attendanceRepo,
		fileService:            fileService,
	}
	s.runInTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			return fn(context.WithValue(ctx, "tx", tx))
		})
	}
	return s
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func toResponse(req leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:             req.ID,
		EmployeeID:     req.EmployeeID,
		EmployeeName:   req.EmployeeName,
		LeaveType:      string(req.LeaveType),
		StartDate:      req.StartDate.Format("2006-01-02"),
		EndDate:        req.EndDate.Format("2006-01-02"),
		NumberOfDays:   req.NumberOfDays,
		Reason:         req.Reason,
		AttachmentURL:  req.AttachmentURL,
		Status:         string(req.Status),
		ReviewedBy:     req.ReviewedBy,
		ReviewerLogin:  req.ReviewerLogin,
		ReviewedAt:     timePtrToString(req.ReviewedAt),
		ReviewComments: req.ReviewComments,
	}
}

// remainingBalance maps a leave type to its current balance.
func remainingBalance(balances employee.LeaveBalances, leaveType leave.LeaveType) int {
	switch leaveType {
	case leave.LeaveTypePaid:
		return balances.PaidLeave
	case leave.LeaveTypeSick:
		return balances.SickLeave
	default:
		return 0
	}
}

// Apply implements leave.LeaveService.
func (l *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if claims.EmployeeID == nil {
		return leave.LeaveResponse{}, fmt.Errorf("employee_id claim is missing")
	}
	employeeID := *claims.EmployeeID

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if endDate.Before(startDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	leaveType := leave.LeaveType(req.LeaveType)
	numberOfDays := leave.NumberOfDaysBetween(startDate, endDate)

	// Unpaid leave is never balance-checked.
	if leaveType != leave.LeaveTypeUnpaid {
		balances, err := l.EmployeeRepository.GetLeaveBalances(ctx, employeeID)
		if err != nil {
			return leave.LeaveResponse{}, fmt.Errorf("failed to get leave balances: %w", err)
		}

		if numberOfDays > remainingBalance(balances, leaveType) {
			return leave.LeaveResponse{}, leave.ErrInsufficientBalance
		}
	}

	created, err := l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID:    employeeID,
		LeaveType:     leaveType,
		StartDate:     startDate,
		EndDate:       endDate,
		NumberOfDays:  numberOfDays,
		Reason:        req.Reason,
		AttachmentURL: req.AttachmentURL,
		Status:        leave.LeaveStatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(created), nil
}

// MyLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) MyLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if claims.EmployeeID == nil {
		return nil, fmt.Errorf("employee_id claim is missing")
	}

	requests, err := l.LeaveRequestRepository.ListByEmployee(ctx, *claims.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}

	return responses, nil
}

// Balance implements leave.LeaveService.
func (l *LeaveServiceImpl) Balance(ctx context.Context) (employee.LeaveBalances, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return employee.LeaveBalances{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if claims.EmployeeID == nil {
		return employee.LeaveBalances{}, fmt.Errorf("employee_id claim is missing")
	}

	balances, err := l.EmployeeRepository.GetLeaveBalances(ctx, *claims.EmployeeID)
	if err != nil {
		return employee.LeaveBalances{}, fmt.Errorf("failed to get leave balances: %w", err)
	}

	return balances, nil
}

// List implements leave.LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}

	return responses, nil
}

// Review implements leave.LeaveService.
func (l *LeaveServiceImpl) Review(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if request.Status != leave.LeaveStatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyReviewed
	}

	status := leave.LeaveStatus(req.Status)
	now := time.Now().UTC()

	if status == leave.LeaveStatusApproved {
		// Approval debits the balance and marks the days in one transaction.
		err = l.runInTx(ctx, func(txCtx context.Context) error {
			if err := l.LeaveRequestRepository.UpdateReview(txCtx, request.ID, status, claims.UserID, now, req.ReviewComments); err != nil {
				return err
			}

			// Unpaid leave has no balance to debit.
			if request.LeaveType != leave.LeaveTypeUnpaid {
				if err := l.EmployeeRepository.DebitLeaveBalance(txCtx, request.EmployeeID, string(request.LeaveType), request.NumberOfDays); err != nil {
					return err
				}
			}

			for day := 0; day < request.NumberOfDays; day++ {
				date := request.StartDate.AddDate(0, 0, day)
				if err := l.AttendanceRepository.MarkOnLeave(txCtx, request.EmployeeID, date); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return leave.LeaveResponse{}, fmt.Errorf("failed to approve leave request: %w", err)
		}
	} else {
		if err := l.LeaveRequestRepository.UpdateReview(ctx, request.ID, status, claims.UserID, now, req.ReviewComments); err != nil {
			return leave.LeaveResponse{}, err
		}
	}

	reviewed, err := l.LeaveRequestRepository.GetByID(ctx, request.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(reviewed), nil
}

// UploadAttachment implements leave.LeaveService.
func (l *LeaveServiceImpl) UploadAttachment(ctx context.Context, f io.Reader, filename string) (string, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if claims.EmployeeID == nil {
		return "", fmt.Errorf("employee_id claim is missing")
	}

	return l.fileService.UploadLeaveAttachment(ctx, *claims.EmployeeID, f, filename)
}
