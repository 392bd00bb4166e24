package approval

import (
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/validator"
)

type ResolveApprovalRequest struct {
	ID             string `json:"id"`
	ApprovalUserID string `json:"approval_user_id"`
	Justificative  string `json:"justificative"`
}

func (r *ResolveApprovalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	} else if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	if validator.IsEmpty(r.ApprovalUserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "approval_user_id",
			Message: "approval_user_id is required",
		})
	} else if !validator.IsValidUUID(r.ApprovalUserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "approval_user_id",
			Message: "approval_user_id must be a valid UUID",
		})
	}
	if validator.IsEmpty(r.Justificative) {
		errs = append(errs, validator.ValidationError{
			Field:   "justificative",
			Message: "justificative is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryApprovalResponse struct {
	ID             string  `json:"id"`
	EntryID        string  `json:"entry_id"`
	ApprovalUserID *string `json:"approval_user_id,omitempty"`
	ApprovalDate   *string `json:"approval_date,omitempty"`
	Justificative  *string `json:"justificative,omitempty"`
}
