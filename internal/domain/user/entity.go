package user

import "time"

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleHR       Role = "HR"
	RoleEmployee Role = "Employee"
)

type User struct {
	ID           string
	LoginID      string
	PasswordHash string
	Role         Role
	IsFirstLogin bool
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
