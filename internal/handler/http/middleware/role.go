package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/role"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/user"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/handler/http/response"
)

// RolesFromClaims extracts the roles claim. The token decoder hands arrays
// back as []interface{}.
func RolesFromClaims(claims map[string]interface{}) []string {
	raw, ok := claims["roles"].([]interface{})
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if name, ok := r.(string); ok {
			roles = append(roles, name)
		}
	}
	return roles
}

// RequireAdmin requires the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		for _, name := range RolesFromClaims(claims) {
			if name == role.Admin {
				next.ServeHTTP(w, r)
				return
			}
		}
		response.HandleError(w, user.ErrAdminAccessRequired)
	})
}

// RequireManager requires the manager or admin role.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		if !role.CanApprove(RolesFromClaims(claims)) {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
