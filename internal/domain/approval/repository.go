package approval

import (
	"context"
	"time"
)

type ApprovalRepository interface {
	Create(ctx context.Context, newApproval EntryApproval) (EntryApproval, error)
	GetByID(ctx context.Context, id string) (EntryApproval, error)

	// Resolve sets the approver, date and justificative on a pending
	// approval. When onlyPending is true, a row whose approval_date is
	// already set is left untouched and ErrApprovalAlreadyResolved returned.
	Resolve(ctx context.Context, id string, approvalUserID string, approvalDate time.Time, justificative string, onlyPending bool) error

	// ListPendingByCompany returns unresolved approvals for entries whose
	// working day belongs to the given company.
	ListPendingByCompany(ctx context.Context, companyID string) ([]EntryApproval, error)
}
