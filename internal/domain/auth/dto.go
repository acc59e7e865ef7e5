package auth

import (
	"github.com/oijdod/hrms-backend-go/internal/domain/employee"
	"github.com/oijdod/hrms-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LoginID) {
		errs = append(errs, validator.ValidationError{
			Field:   "login_id",
			Message: "login_id is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   int64        `json:"expires_at"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID           string                     `json:"id"`
	LoginID      string                     `json:"login_id"`
	Role         string                     `json:"role"`
	IsFirstLogin bool                       `json:"is_first_login"`
	Employee     *employee.EmployeeResponse `json:"employee,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "current_password",
			Message: "current_password is required",
		})
	}

	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateEmployeeRequest struct {
	FirstName     string                `json:"first_name"`
	LastName      string                `json:"last_name"`
	Email         string                `json:"email"`
	Phone         *string               `json:"phone,omitempty"`
	DateOfBirth   *string               `json:"date_of_birth,omitempty"`
	Gender        *string               `json:"gender,omitempty"`
	Nationality   *string               `json:"nationality,omitempty"`
	Department    *string               `json:"department,omitempty"`
	Position      *string               `json:"position,omitempty"`
	ManagerID     *string               `json:"manager_id,omitempty"`
	DateOfJoining string                `json:"date_of_joining"`
	Address       *employee.Address     `json:"address,omitempty"`
	BankDetails   *employee.BankDetails `json:"bank_details,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid email address",
		})
	}

	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be in YYYY-MM-DD format",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is not a valid phone number",
		})
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

// CreatedEmployeeResponse carries the generated credentials back to the
// administrator; the temporary password is shown exactly once.
type CreatedEmployeeResponse struct {
	Employee    employee.EmployeeResponse `json:"employee"`
	Credentials Credentials               `json:"credentials"`
}

type Credentials struct {
	LoginID      string `json:"login_id"`
	TempPassword string `json:"temp_password"`
}
