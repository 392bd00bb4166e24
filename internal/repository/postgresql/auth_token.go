package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/auth"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/database"
)

type authTokenRepositoryImpl struct {
	db *database.DB
}

func NewAuthTokenRepository(db *database.DB) auth.AuthTokenRepository {
	return &authTokenRepositoryImpl{db: db}
}

// Create implements auth.AuthTokenRepository.
func (a *authTokenRepositoryImpl) Create(ctx context.Context, token auth.AuthToken) error {
	q := GetQuerier(ctx, a.db)

	_, err := q.Exec(ctx, `
		INSERT INTO auth_tokens (id, token, user_id, type, expires_at, revoked)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, token.ID, token.Token, token.UserID, token.Type, token.ExpiresAt, token.Revoked)
	if err != nil {
		return fmt.Errorf("failed to create auth token: %w", err)
	}
	return nil
}

// GetByToken implements auth.AuthTokenRepository.
func (a *authTokenRepositoryImpl) GetByToken(ctx context.Context, token string, tokenType string) (auth.AuthToken, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, token, user_id, type, expires_at, revoked, created_at
		FROM auth_tokens
		WHERE token = $1 AND type = $2
	`

	var found auth.AuthToken
	err := q.QueryRow(ctx, query, token, tokenType).Scan(
		&found.ID, &found.Token, &found.UserID, &found.Type,
		&found.ExpiresAt, &found.Revoked, &found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AuthToken{}, auth.ErrInvalidToken
		}
		return auth.AuthToken{}, fmt.Errorf("failed to get auth token: %w", err)
	}
	return found, nil
}

// Revoke implements auth.AuthTokenRepository.
func (a *authTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `UPDATE auth_tokens SET revoked = TRUE WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to revoke auth token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrInvalidToken
	}
	return nil
}

// RevokeAllForUser implements auth.AuthTokenRepository.
func (a *authTokenRepositoryImpl) RevokeAllForUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, a.db)

	_, err := q.Exec(ctx, `UPDATE auth_tokens SET revoked = TRUE WHERE user_id = $1 AND NOT revoked`, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke auth tokens for user: %w", err)
	}
	return nil
}
