package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/entry"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/role"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/user"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/handler/http/middleware"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/handler/http/response"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/clock"
)

type EntryHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	ListForDate(w http.ResponseWriter, r *http.Request)
}

type EntryHandlerImpl struct {
	entryService entry.EntryService
	clock        clock.Clock
}

func NewEntryHandler(entryService entry.EntryService, clk clock.Clock) EntryHandler {
	return &EntryHandlerImpl{
		entryService: entryService,
		clock:        clk,
	}
}

// Register implements EntryHandler. The user and company come from the access
// token, never from the body, so nobody registers entries for someone else.
func (e *EntryHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq entry.RegisterEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

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
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		response.Unauthorized(w, "company_id claim is missing")
		return
	}
	registerReq.UserID = userID
	registerReq.CompanyID = companyID

	created, err := e.entryService.RegisterEntry(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register entry service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Entry registered successfully", created)
}

// ListForDate implements EntryHandler. The date query parameter defaults to
// the current business day. A user_id query parameter naming someone else
// requires the manager or admin role.
func (e *EntryHandlerImpl) ListForDate(w http.ResponseWriter, r *http.Request) {
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

	date := e.clock.Today()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, e.clock.Location())
		if err != nil {
			response.BadRequest(w, "date must be formatted as YYYY-MM-DD", nil)
			return
		}
		date = parsed
	}

	entries, err := e.entryService.ListEntriesForUserOnDate(r.Context(), userID, date)
	if err != nil {
		slog.Error("List entries service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}
