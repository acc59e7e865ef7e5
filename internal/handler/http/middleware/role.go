package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/oijdod/hrms-backend-go/internal/domain/user"
	"github.com/oijdod/hrms-backend-go/internal/handler/http/response"
)

func roleFromContext(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}

	return user.Role(roleStr), true
}

// AdminOnly requires the Admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || role != user.RoleAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminOrHR requires the Admin or HR role
func AdminOrHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || (role != user.RoleAdmin && role != user.RoleHR) {
			response.Forbidden(w, "Admin or HR access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
