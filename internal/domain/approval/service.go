package approval

import "context"

type ApprovalService interface {
	// CreatePendingApproval opens a null-resolved approval for an entry that
	// was admitted out of range. Called from entry admission only, inside the
	// admission transaction; the entry is guaranteed to exist.
	CreatePendingApproval(ctx context.Context, entryID string) (EntryApproval, error)

	// ResolveApproval signs off a pending approval and flips the linked
	// entry's is_approved flag. Both updates happen in one transaction.
	ResolveApproval(ctx context.Context, req ResolveApprovalRequest) (EntryApprovalResponse, error)

	ListPending(ctx context.Context, companyID string) ([]EntryApprovalResponse, error)
}
