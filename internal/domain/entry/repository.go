package entry

import (
	"context"
	"time"
)

type EntryRepository interface {
	// Create inserts a new entry. A unique-violation on the per-minute index
	// surfaces as ErrDuplicateEntryInMinute.
	Create(ctx context.Context, newEntry Entry) (Entry, error)

	GetByID(ctx context.Context, id string) (Entry, error)

	// ExistsForUserBetween reports whether the user already has an entry with
	// entry_time in [start, end], bounds inclusive.
	ExistsForUserBetween(ctx context.Context, userID string, start, end time.Time) (bool, error)

	// ListForUserBetween returns the user's entries with entry_time in
	// [start, end], ascending by entry_time.
	ListForUserBetween(ctx context.Context, userID string, start, end time.Time) ([]Entry, error)

	// ListApprovedByWorkingDay returns a working day's approved entries,
	// ascending by entry_time.
	ListApprovedByWorkingDay(ctx context.Context, workingDayID string) ([]Entry, error)

	// SetApproved flips an entry's is_approved flag to true.
	SetApproved(ctx context.Context, id string) error
}
