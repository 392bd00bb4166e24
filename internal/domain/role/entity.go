package role

import "time"

const (
	Admin    = "admin"
	Manager  = "manager"
	Employee = "employee"
)

type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// CanApprove reports whether a set of role names may resolve entry approvals.
func CanApprove(roles []string) bool {
	for _, r := range roles {
		if r == Admin || r == Manager {
			return true
		}
	}
	return false
}
