package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/auth"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/user"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/database"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/jwt"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	auth.AuthTokenRepository
	user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(
	db *database.DB,
	authTokenRepo auth.AuthTokenRepository,
	userRepo user.UserRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                  db,
		AuthTokenRepository: authTokenRepo,
		UserRepository:      userRepo,
		jwtService:          jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to load user for login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, account)
}

// Refresh implements auth.AuthService. The old refresh token is revoked and
// a new one issued, so a stolen token stops working after its first use.
func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenResponse, error) {
	if req.RefreshToken == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	stored, err := a.AuthTokenRepository.GetByToken(ctx, req.RefreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if stored.Revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	account, err := a.UserRepository.GetByID(ctx, stored.UserID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to load user for refresh: %w", err)
	}

	var response auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.AuthTokenRepository.Revoke(txCtx, stored.Token); err != nil {
			return err
		}
		response, err = a.issueTokens(txCtx, account)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return response, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, userID string) error {
	if err := a.AuthTokenRepository.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke tokens on logout: %w", err)
	}
	return nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, account user.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := a.jwtService.GenerateAccessToken(account.ID, account.Email, account.CompanyID, account.Roles)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := a.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	err = a.AuthTokenRepository.Create(ctx, auth.AuthToken{
		ID:        uuid.New().String(),
		Token:     refreshToken,
		UserID:    account.ID,
		Type:      auth.TokenTypeRefresh,
		ExpiresAt: time.Unix(refreshExp, 0),
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
		User: auth.UserSummary{
			ID:    account.ID,
			Name:  account.Name,
			Email: account.Email,
			Roles: account.Roles,
		},
	}, nil
}
