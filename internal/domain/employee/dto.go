package employee

import (
	"github.com/oijdod/hrms-backend-go/internal/pkg/validator"
)

type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Nationality *string `json:"nationality,omitempty"`

	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	ManagerID  *string `json:"manager_id,omitempty"`

	Address     *Address     `json:"address,omitempty"`
	BankDetails *BankDetails `json:"bank_details,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}

	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid email address",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is not a valid phone number",
		})
	}

	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{"Male", "Female", "Other"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of Male, Female, Other",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                string        `json:"id"`
	FirstName         string        `json:"first_name"`
	LastName          string        `json:"last_name"`
	FullName          string        `json:"full_name"`
	Initials          string        `json:"initials"`
	Email             string        `json:"email"`
	Phone             *string       `json:"phone,omitempty"`
	DateOfBirth       *string       `json:"date_of_birth,omitempty"`
	Gender            *string       `json:"gender,omitempty"`
	Nationality       *string       `json:"nationality,omitempty"`
	Company           string        `json:"company"`
	Department        *string       `json:"department,omitempty"`
	Position          *string       `json:"position,omitempty"`
	ManagerID         *string       `json:"manager_id,omitempty"`
	ManagerName       *string       `json:"manager_name,omitempty"`
	DateOfJoining     string        `json:"date_of_joining"`
	SerialNumber      int           `json:"serial_number"`
	Address           Address       `json:"address"`
	BankDetails       BankDetails   `json:"bank_details"`
	ProfilePictureURL *string       `json:"profile_picture_url,omitempty"`
	ResumeURL         *string       `json:"resume_url,omitempty"`
	LeaveBalances     LeaveBalances `json:"leave_balances"`
	IsActive          bool          `json:"is_active"`
}

// TodayStatus is the employee's presence for the current day, used by the
// staff overview: Present, Absent, OnLeave or NotCheckedIn.
type EmployeeWithStatusResponse struct {
	EmployeeResponse
	AttendanceStatus string `json:"attendance_status"`
}
