package entry

import (
	"context"
	"time"
)

type EntryService interface {
	// RegisterEntry admits a clock-in/clock-out event: rejects a second entry
	// within the same business-timezone minute, lazily creates the day's
	// working day, validates the caller's location against the company
	// geofence and opens a pending approval when out of range.
	RegisterEntry(ctx context.Context, req RegisterEntryRequest) (EntryResponse, error)

	// ListEntriesForUserOnDate returns the user's entries within the
	// business-timezone bounds of the given date, ascending by entry_time.
	ListEntriesForUserOnDate(ctx context.Context, userID string, date time.Time) ([]EntryResponse, error)

	// ValidateLocation reports whether the given coordinates fall inside the
	// company's geofence. Permissive when the company allows out-of-range
	// entries or has no geofence center configured; an entry with missing
	// coordinates against a configured geofence is always out of range.
	ValidateLocation(ctx context.Context, companyID string, latitude, longitude *string) (bool, error)
}
