package workingday

import (
	"context"
	"time"
)

type WorkingDayRepository interface {
	// GetOpenByUserAndDate returns the unfinished working day for a user on
	// the given date, or ErrWorkingDayNotFound.
	GetOpenByUserAndDate(ctx context.Context, userID string, workedDate time.Time) (WorkingDay, error)

	// Create inserts a new working day. A unique-violation on the open-day
	// index surfaces as ErrOpenDayExists so callers can re-fetch the winner.
	Create(ctx context.Context, day WorkingDay) (WorkingDay, error)

	// ListUnfinishedBefore returns every unfinished working day with
	// worked_date strictly before the given date.
	ListUnfinishedBefore(ctx context.Context, date time.Time) ([]WorkingDay, error)

	// Finish marks a working day finished with the given worked minutes.
	Finish(ctx context.Context, id string, workedMinutes int) error

	List(ctx context.Context, filter ListWorkingDaysFilter) ([]WorkingDay, error)
}
