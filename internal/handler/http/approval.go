package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/approval"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/handler/http/response"
)

type ApprovalHandler interface {
	ListPending(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type ApprovalHandlerImpl struct {
	approvalService approval.ApprovalService
}

func NewApprovalHandler(approvalService approval.ApprovalService) ApprovalHandler {
	return &ApprovalHandlerImpl{approvalService: approvalService}
}

// ListPending implements ApprovalHandler. Scoped to the caller's company.
func (a *ApprovalHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		response.Unauthorized(w, "company_id claim is missing")
		return
	}

	pending, err := a.approvalService.ListPending(r.Context(), companyID)
	if err != nil {
		slog.Error("List pending approvals service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, pending)
}

// Resolve implements ApprovalHandler. The approver is the caller.
func (a *ApprovalHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	var resolveReq approval.ResolveApprovalRequest

	if err := json.NewDecoder(r.Body).Decode(&resolveReq); err != nil {
		slog.Error("Resolve approval decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	approverID, ok := claims["user_id"].(string)
	if !ok || approverID == "" {
		response.Unauthorized(w, "user_id claim is missing")
		return
	}
	resolveReq.ID = chi.URLParam(r, "id")
	resolveReq.ApprovalUserID = approverID

	resolved, err := a.approvalService.ResolveApproval(r.Context(), resolveReq)
	if err != nil {
		slog.Error("Resolve approval service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Entry approval resolved successfully", resolved)
}
