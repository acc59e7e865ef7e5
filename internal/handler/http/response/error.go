package response

import (
	"errors"
	"net/http"

	"github.com/oijdod/hrms-backend-go/internal/domain/attendance"
	"github.com/oijdod/hrms-backend-go/internal/domain/auth"
	"github.com/oijdod/hrms-backend-go/internal/domain/employee"
	"github.com/oijdod/hrms-backend-go/internal/domain/leave"
	"github.com/oijdod/hrms-backend-go/internal/domain/salary"
	"github.com/oijdod/hrms-backend-go/internal/domain/user"
	"github.com/oijdod/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid login ID or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "Access denied")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrLoginIDExists):
		Conflict(w, "Login ID already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Not checked in yet", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date precedes start date", nil)
	case errors.Is(err, leave.ErrAlreadyReviewed):
		Conflict(w, "Leave request already reviewed")

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotConfigured):
		NotFound(w, "Salary structure not configured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
