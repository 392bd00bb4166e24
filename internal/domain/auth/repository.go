package auth

import "context"

type AuthTokenRepository interface {
	Create(ctx context.Context, token AuthToken) error
	GetByToken(ctx context.Context, token string, tokenType string) (AuthToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
