package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/role"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/user"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/workingday"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/handler/http/middleware"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/handler/http/response"
)

type WorkingDayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type WorkingDayHandlerImpl struct {
	workingDayService workingday.WorkingDayService
}

func NewWorkingDayHandler(workingDayService workingday.WorkingDayService) WorkingDayHandler {
	return &WorkingDayHandlerImpl{workingDayService: workingDayService}
}

// List implements WorkingDayHandler. Returns the caller's working days,
// optionally bounded by start_date and end_date. A user_id query parameter
// naming someone else requires the manager or admin role.
func (h *WorkingDayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.Unauthorized(w, "user_id claim is missing")
		return
	}

	if target := r.URL.Query().Get("user_id"); target != "" && target != userID {
		if !role.CanApprove(middleware.RolesFromClaims(claims)) {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}
		userID = target
	}

	filter := workingday.ListWorkingDaysFilter{UserID: userID}
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		filter.StartDate = &raw
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		filter.EndDate = &raw
	}

	days, err := h.workingDayService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List working days service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, days)
}
