package response

import (
	"errors"
	"net/http"

	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/approval"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/auth"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/company"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/entry"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/role"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/user"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/workingday"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/validator"
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
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User and company errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")

	// Attendance errors
	case errors.Is(err, entry.ErrEntryNotFound):
		NotFound(w, "Entry not found")
	case errors.Is(err, entry.ErrDuplicateEntryInMinute):
		Conflict(w, "An entry already exists for this minute")
	case errors.Is(err, workingday.ErrWorkingDayNotFound):
		NotFound(w, "Working day not found")
	case errors.Is(err, approval.ErrApprovalNotFound):
		NotFound(w, "Entry approval not found")
	case errors.Is(err, approval.ErrApprovalAlreadyResolved):
		Conflict(w, "Entry approval already resolved")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
