package approval

import "time"

type EntryApproval struct {
	ID             string
	EntryID        string
	ApprovalUserID *string
	ApprovalDate   *time.Time
	Justificative  *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Resolved reports whether a manager has already signed off this approval.
func (a *EntryApproval) Resolved() bool {
	return a.ApprovalDate != nil
}
