package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/auth"
	"github.com/guardtrack/guardtrack-backend-go/internal/domain/guard"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/jwt"
	"github.com/guardtrack/guardtrack-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	guardRepo guard.GuardRepository
	jwt.Service
	jwtRepo postgresql.JWTRepository
}

func NewAuthService(guardRepo guard.GuardRepository, jwtService jwt.Service, jwtRepo postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		guardRepo: guardRepo,
		Service:   jwtService,
		jwtRepo:   jwtRepo,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	g, err := a.guardRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get guard by email: %w", err)
	}

	if g.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*g.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var resp auth.TokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.GenerateAccessToken(g.ID, g.Email, g.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	resp.RefreshToken, resp.RefreshTokenExpiresIn, err = a.GenerateRefreshToken(g.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	if err := a.jwtRepo.CreateRefreshToken(ctx, g.ID, resp.RefreshToken, resp.RefreshTokenExpiresIn); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return resp, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context) error {
	token, _, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.ErrInvalidToken
	}

	guardID, ok := token.Get("guard_id")
	if !ok {
		return auth.ErrInvalidToken
	}
	id, ok := guardID.(string)
	if !ok || id == "" {
		return auth.ErrInvalidToken
	}

	if err := a.jwtRepo.RevokeRefreshTokensForGuard(ctx, id); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	guardID, err := a.DecodeRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := a.jwtRepo.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	g, err := a.guardRepo.GetByID(ctx, guardID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrUserNotFound
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.GenerateAccessToken(g.ID, g.Email, g.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return resp, nil
}

// GetProfile implements auth.AuthService.
func (a *AuthServiceImpl) GetProfile(ctx context.Context) (auth.ProfileResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.ProfileResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	guardID, ok := claims["guard_id"].(string)
	if !ok || guardID == "" {
		return auth.ProfileResponse{}, auth.ErrInvalidToken
	}

	g, err := a.guardRepo.GetByID(ctx, guardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.ProfileResponse{}, auth.ErrUserNotFound
		}
		return auth.ProfileResponse{}, fmt.Errorf("failed to get guard: %w", err)
	}

	return auth.ProfileResponse{
		ID:           g.ID,
		Email:        g.Email,
		FullName:     g.FullName,
		Role:         string(g.Role),
		AvatarURL:    g.AvatarURL,
		LocationName: g.LocationName,
	}, nil
}
