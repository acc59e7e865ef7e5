package auth

import "context"

// AuthService defines authentication and account provisioning logic
type AuthService interface {
	// Login verifies credentials and issues an access token
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// ChangePassword replaces the authenticated user's password and clears
	// the first-login flag
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// CreateEmployee provisions an employee record plus a user account with
	// generated login ID and temporary password (Admin/HR)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (CreatedEmployeeResponse, error)

	// Profile returns the authenticated user with its employee record
	Profile(ctx context.Context) (UserResponse, error)
}
