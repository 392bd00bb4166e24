package workingday

import "time"

type WorkingDay struct {
	ID         string
	UserID     string
	CompanyID  string
	WorkedDate time.Time
	WorkedTime int
	Finished   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SumWorkedMinutes pairs consecutive entry times as clock-in/clock-out
// (first and second form a pair, third and fourth, and so on) and sums whole
// minutes across pairs. A trailing unpaired entry contributes nothing; this
// mirrors the assumption that entries strictly alternate in and out, and an
// odd count silently drops the last one. Negative pairs contribute zero.
func SumWorkedMinutes(entryTimes []time.Time) int {
	total := 0
	for i := 0; i+1 < len(entryTimes); i += 2 {
		minutes := int(entryTimes[i+1].Sub(entryTimes[i]).Minutes())
		if minutes > 0 {
			total += minutes
		}
	}
	return total
}
