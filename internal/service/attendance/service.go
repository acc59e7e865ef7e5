package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/oijdod/hrms-backend-go/internal/domain/attendance"
	"github.com/oijdod/hrms-backend-go/internal/pkg/database"
	"github.com/oijdod/hrms-backend-go/internal/pkg/jwt"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		Date:         att.Date.Format("2006-01-02"),
		CheckInTime:  timePtrToString(att.CheckInTime),
		CheckOutTime: timePtrToString(att.CheckOutTime),
		WorkHours:    att.WorkHours,
		ExtraHours:   att.ExtraHours,
		Status:       string(att.Status),
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if claims.EmployeeID == nil {
		return "", fmt.Errorf("employee_id claim is missing")
	}
	return *claims.EmployeeID, nil
}

// today returns the current calendar day truncated to midnight UTC.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now().UTC()
	date := today()

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if existing != nil {
		if existing.CheckInTime != nil {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}

		// A leave approval may have created today's record without clock
		// times; checking in fills them and re-derives the status.
		existing.CheckInTime = &now
		applyDerivedFields(existing)

		if err := a.AttendanceRepository.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
		}

		return toResponse(*existing), nil
	}

	att := attendance.Attendance{
		EmployeeID:  employeeID,
		Date:        date,
		CheckInTime: &now,
	}
	applyDerivedFields(&att)

	created, err := a.AttendanceRepository.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now().UTC()

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today())
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if existing == nil || existing.CheckInTime == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	if existing.CheckOutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	existing.CheckOutTime = &now
	applyDerivedFields(existing)

	if err := a.AttendanceRepository.Update(ctx, *existing); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return toResponse(*existing), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toResponse(att))
	}

	return responses, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toResponse(att))
	}

	return responses, nil
}

// Summary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Summary(ctx context.Context, employeeID string, month time.Month, year int) (attendance.SummaryResponse, error) {
	records, err := a.AttendanceRepository.ListForMonth(ctx, employeeID, year, month)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to list attendance records for month: %w", err)
	}

	summary := attendance.SummaryResponse{
		EmployeeID: employeeID,
		Month:      int(month),
		Year:       year,
		TotalDays:  daysInMonth(year, month),
	}

	for _, att := range records {
		switch att.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusOnLeave:
			summary.LeaveDays++
		}
		summary.TotalWorkHours += att.WorkHours
		summary.TotalExtraHours += att.ExtraHours
	}

	// Days without a Present or OnLeave record count as absent.
	summary.AbsentDays = summary.TotalDays - summary.PresentDays - summary.LeaveDays

	return summary, nil
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
