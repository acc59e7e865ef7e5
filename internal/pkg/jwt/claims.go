package jwt

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"

	"github.com/oijdod/hrms-backend-go/internal/domain/user"
)

var ErrNoClaims = errors.New("no token claims in context")

// Claims is the decoded access token payload.
type Claims struct {
	UserID     string
	LoginID    string
	EmployeeID *string
	Role       user.Role
}

// CanAccessEmployee reports whether the claims may read or modify the given
// employee's records: Admin and HR always, everyone else only their own.
func (c Claims) CanAccessEmployee(employeeID string) bool {
	if c.Role == user.RoleAdmin || c.Role == user.RoleHR {
		return true
	}
	return c.EmployeeID != nil && *c.EmployeeID == employeeID
}

// ClaimsFromContext extracts the verified token claims placed in the request
// context by the jwtauth middleware.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, raw, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, err
	}

	claims := Claims{}

	if v, ok := raw["user_id"].(string); ok {
		claims.UserID = v
	}
	if v, ok := raw["login_id"].(string); ok {
		claims.LoginID = v
	}
	if v, ok := raw["employee_id"].(string); ok && v != "" {
		claims.EmployeeID = &v
	}
	if v, ok := raw["role"].(string); ok {
		claims.Role = user.Role(v)
	}

	if claims.UserID == "" {
		return Claims{}, ErrNoClaims
	}

	return claims, nil
}
