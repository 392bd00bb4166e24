package clock

import "time"

// Clock is the business-timezone time source. Every timestamp the attendance
// core works with (entry times, working-day dates, closeout cutoffs) comes
// from here, so server-local time never leaks into date arithmetic.
type Clock interface {
	// Now returns the current wall time in the business timezone.
	Now() time.Time
	// Today returns midnight of the current day in the business timezone.
	Today() time.Time
	Location() *time.Location
}

type businessClock struct {
	loc *time.Location
}

// New returns a Clock pinned to the given IANA timezone name.
func New(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &businessClock{loc: loc}, nil
}

func (c *businessClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *businessClock) Today() time.Time {
	return StartOfDay(c.Now())
}

func (c *businessClock) Location() *time.Location {
	return c.loc
}

// Fixed is a Clock frozen at a single instant, for tests.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time           { return f.Time }
func (f Fixed) Today() time.Time         { return StartOfDay(f.Time) }
func (f Fixed) Location() *time.Location { return f.Time.Location() }

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// MinuteBounds returns the inclusive start and end of the minute containing t.
func MinuteBounds(t time.Time) (time.Time, time.Time) {
	start := t.Truncate(time.Minute)
	return start, start.Add(time.Minute - time.Nanosecond)
}

// FormatDate renders t as the YYYY-MM-DD key used for worked_date columns.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
