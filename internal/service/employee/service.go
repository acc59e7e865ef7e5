package employee

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/oijdod/hrms-backend-go/internal/domain/attendance"
	"github.com/oijdod/hrms-backend-go/internal/domain/auth"
	"github.com/oijdod/hrms-backend-go/internal/domain/employee"
	"github.com/oijdod/hrms-backend-go/internal/domain/leave"
	"github.com/oijdod/hrms-backend-go/internal/pkg/jwt"
	"github.com/oijdod/hrms-backend-go/internal/service/file"
)

// StatusNotCheckedIn is the overview status for employees without any
// attendance record today.
const StatusNotCheckedIn = "NotCheckedIn"

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	leave.LeaveRequestRepository
	fileService file.FileService
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	fileService file.FileService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository:     employeeRepo,
		AttendanceRepository:   attendanceRepo,
		LeaveRequestRepository: leaveRepo,
		fileService:            fileService,
	}
}

func timePtrToDateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02")
	return &format
}

// ToResponse converts an employee record to its API shape.
func ToResponse(emp employee.Employee) employee.EmployeeResponse {
	var gender *string
	if emp.Gender != nil {
		g := string(*emp.Gender)
		gender = &g
	}

	return employee.EmployeeResponse{
		ID:                emp.ID,
		FirstName:         emp.FirstName,
		LastName:          emp.LastName,
		FullName:          emp.FullName(),
		Initials:          emp.Initials,
		Email:             emp.Email,
		Phone:             emp.Phone,
		DateOfBirth:       timePtrToDateString(emp.DateOfBirth),
		Gender:            gender,
		Nationality:       emp.Nationality,
		Company:           emp.Company,
		Department:        emp.Department,
		Position:          emp.Position,
		ManagerID:         emp.ManagerID,
		ManagerName:       emp.ManagerName,
		DateOfJoining:     emp.DateOfJoining.Format("2006-01-02"),
		SerialNumber:      emp.SerialNumber,
		Address:           emp.Address,
		BankDetails:       emp.BankDetails,
		ProfilePictureURL: emp.ProfilePictureURL,
		ResumeURL:         emp.ResumeURL,
		LeaveBalances:     emp.LeaveBalances,
		IsActive:          emp.IsActive,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, ToResponse(emp))
	}

	return responses, nil
}

// ListWithTodayStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListWithTodayStatus(ctx context.Context) ([]employee.EmployeeWithStatusResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	responses := make([]employee.EmployeeWithStatusResponse, 0, len(employees))
	for _, emp := range employees {
		status := StatusNotCheckedIn

		// Approved leave covering today outranks any same-day attendance row.
		onLeave, err := s.LeaveRequestRepository.HasApprovedLeaveOn(ctx, emp.ID, today)
		if err != nil {
			return nil, fmt.Errorf("failed to check approved leave: %w", err)
		}
		if onLeave {
			status = string(attendance.StatusOnLeave)
		} else {
			record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, today)
			if err != nil {
				return nil, fmt.Errorf("failed to get today's attendance: %w", err)
			}
			if record != nil {
				status = string(record.Status)
			}
		}

		responses = append(responses, employee.EmployeeWithStatusResponse{
			EmployeeResponse: ToResponse(emp),
			AttendanceStatus: status,
		})
	}

	return responses, nil
}

// Get implements employee.EmployeeService. Employees may only read their own
// record; Admin and HR may read anyone's.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if !claims.CanAccessEmployee(id) {
		return employee.EmployeeResponse{}, auth.ErrForbidden
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return ToResponse(emp), nil
}

// Update implements employee.EmployeeService. Employees may only update their
// own profile; Admin and HR may update anyone's.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if !claims.CanAccessEmployee(req.ID) {
		return employee.EmployeeResponse{}, auth.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return ToResponse(updated), nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.EmployeeRepository.Deactivate(ctx, id)
}

// UploadProfilePicture implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadProfilePicture(ctx context.Context, f io.Reader, filename string) (string, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if claims.EmployeeID == nil {
		return "", fmt.Errorf("employee_id claim is missing")
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, *claims.EmployeeID)
	if err != nil {
		return "", err
	}

	url, err := s.fileService.UploadAvatar(ctx, emp.ID, f, filename)
	if err != nil {
		return "", err
	}

	if err := s.EmployeeRepository.SetProfilePictureURL(ctx, emp.ID, url); err != nil {
		return "", err
	}

	// The replaced object is removed; a missing old object is not an error.
	if emp.ProfilePictureURL != nil {
		_ = s.fileService.DeleteFile(ctx, *emp.ProfilePictureURL)
	}

	return url, nil
}

// UploadResume implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadResume(ctx context.Context, f io.Reader, filename string) (string, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if claims.EmployeeID == nil {
		return "", fmt.Errorf("employee_id claim is missing")
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, *claims.EmployeeID)
	if err != nil {
		return "", err
	}

	url, err := s.fileService.UploadResume(ctx, emp.ID, f, filename)
	if err != nil {
		return "", err
	}

	if err := s.EmployeeRepository.SetResumeURL(ctx, emp.ID, url); err != nil {
		return "", err
	}

	if emp.ResumeURL != nil {
		_ = s.fileService.DeleteFile(ctx, *emp.ResumeURL)
	}

	return url, nil
}
