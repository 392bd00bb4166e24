package auth

import "time"

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type AuthToken struct {
	ID        string
	Token     string
	UserID    string
	Type      string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}
