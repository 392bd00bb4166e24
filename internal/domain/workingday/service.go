package workingday

import (
	"context"
	"time"
)

type WorkingDayService interface {
	// EnsureWorkingDay returns the open working day for the user on the given
	// date, creating it when absent. Concurrent calls for the same user and
	// date converge on a single row. The user and company are not verified to
	// exist; callers check them first (entry registration does) and the
	// foreign keys reject unknown ids.
	EnsureWorkingDay(ctx context.Context, userID string, companyID string, workedDate time.Time) (WorkingDay, error)

	// CloseoutStaleDays finishes every unfinished working day dated strictly
	// before asOf, computing worked minutes from the day's approved entries.
	// Per-day failures are logged and skipped; the batch always runs to the
	// end. Returns the number of days closed.
	CloseoutStaleDays(ctx context.Context, asOf time.Time) (int, error)

	List(ctx context.Context, filter ListWorkingDaysFilter) ([]WorkingDayResponse, error)
}
