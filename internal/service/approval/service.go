package approval

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/approval"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/entry"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/role"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/user"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/clock"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/database"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/repository/postgresql"
)

type ApprovalServiceImpl struct {
	db *database.DB
	approval.ApprovalRepository
	entry.EntryRepository
	user.UserRepository
	clock clock.Clock
	// allowReResolve lets a second manager overwrite an already-resolved
	// approval. Off by default; the overwrite re-stamps approver and date.
	allowReResolve bool
}

func NewApprovalService(
	db *database.DB,
	approvalRepo approval.ApprovalRepository,
	entryRepo entry.EntryRepository,
	userRepo user.UserRepository,
	clk clock.Clock,
	allowReResolve bool,
) approval.ApprovalService {
	return &ApprovalServiceImpl{
		db:                 db,
		ApprovalRepository: approvalRepo,
		EntryRepository:    entryRepo,
		UserRepository:     userRepo,
		clock:              clk,
		allowReResolve:     allowReResolve,
	}
}

// CreatePendingApproval implements approval.ApprovalService.
func (a *ApprovalServiceImpl) CreatePendingApproval(ctx context.Context, entryID string) (approval.EntryApproval, error) {
	pending, err := a.ApprovalRepository.Create(ctx, approval.EntryApproval{
		ID:      uuid.New().String(),
		EntryID: entryID,
	})
	if err != nil {
		return approval.EntryApproval{}, fmt.Errorf("failed to create pending approval: %w", err)
	}
	return pending, nil
}

// ResolveApproval implements approval.ApprovalService.
func (a *ApprovalServiceImpl) ResolveApproval(ctx context.Context, req approval.ResolveApprovalRequest) (approval.EntryApprovalResponse, error) {
	if err := req.Validate(); err != nil {
		return approval.EntryApprovalResponse{}, err
	}

	approver, err := a.UserRepository.GetByID(ctx, req.ApprovalUserID)
	if err != nil {
		return approval.EntryApprovalResponse{}, fmt.Errorf("failed to load approver: %w", err)
	}
	if !role.CanApprove(approver.Roles) {
		return approval.EntryApprovalResponse{}, user.ErrManagerAccessRequired
	}

	now := a.clock.Now()

	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		onlyPending := !a.allowReResolve
		if err := a.ApprovalRepository.Resolve(txCtx, req.ID, req.ApprovalUserID, now, req.Justificative, onlyPending); err != nil {
			return err
		}

		resolved, err := a.ApprovalRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		return a.EntryRepository.SetApproved(txCtx, resolved.EntryID)
	})
	if err != nil {
		return approval.EntryApprovalResponse{}, err
	}

	resolved, err := a.ApprovalRepository.GetByID(ctx, req.ID)
	if err != nil {
		return approval.EntryApprovalResponse{}, fmt.Errorf("failed to reload resolved approval: %w", err)
	}
	return toResponse(resolved), nil
}

// ListPending implements approval.ApprovalService.
func (a *ApprovalServiceImpl) ListPending(ctx context.Context, companyID string) ([]approval.EntryApprovalResponse, error) {
	pending, err := a.ApprovalRepository.ListPendingByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}

	responses := make([]approval.EntryApprovalResponse, 0, len(pending))
	for _, ap := range pending {
		responses = append(responses, toResponse(ap))
	}
	return responses, nil
}

func toResponse(ap approval.EntryApproval) approval.EntryApprovalResponse {
	resp := approval.EntryApprovalResponse{
		ID:            ap.ID,
		EntryID:       ap.EntryID,
		Justificative: ap.Justificative,
	}
	resp.ApprovalUserID = ap.ApprovalUserID
	if ap.ApprovalDate != nil {
		formatted := ap.ApprovalDate.Format("2006-01-02 15:04:05")
		resp.ApprovalDate = &formatted
	}
	return resp
}
