package approval

import "errors"

var (
	ErrApprovalNotFound        = errors.New("entry approval not found")
	ErrApprovalAlreadyResolved = errors.New("entry approval has already been resolved")
)
