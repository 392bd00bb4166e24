package entry

import "time"

type Entry struct {
	ID           string
	UserID       string
	WorkingDayID string
	EntryTime    time.Time
	Latitude     *string
	Longitude    *string
	IsApproved   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
