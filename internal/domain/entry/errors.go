package entry

import "errors"

var (
	ErrEntryNotFound          = errors.New("entry not found")
	ErrDuplicateEntryInMinute = errors.New("cannot create multiple entries within the same minute")
)
