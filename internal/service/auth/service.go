package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/workpulse/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/jwt"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/oauth"
	auditService "github.com/workpulse/workpulse-backend-go/internal/service/audit"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	user.RefreshTokenRepository
	employee.EmployeeRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
	auditor       auditService.Recorder
}

func NewAuthService(
	userRepo user.UserRepository,
	refreshTokenRepo user.RefreshTokenRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
	auditor auditService.Recorder,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:         userRepo,
		RefreshTokenRepository: refreshTokenRepo,
		EmployeeRepository:     employeeRepo,
		jwtService:             jwtService,
		googleService:          googleService,
		auditor:                auditor,
	}
}

// Register implements auth.AuthService. An unknown role falls back to
// EMPLOYEE rather than failing the registration.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	role := user.RoleEmployee
	if user.IsValidRole(req.Role) {
		role = user.Role(req.Role)
	}

	if req.EmployeeID != nil {
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.EmployeeID); err != nil {
			return auth.TokenResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		EmployeeID:   req.EmployeeID,
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	s.auditor.Record(ctx, "auth.register", "user", created.ID, created.Email)

	return s.issueTokens(ctx, created)
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	found, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		// Do not leak which part was wrong.
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, found)
}

// LoginWithGoogle implements auth.AuthService.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to verify google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrGoogleEmailUnverified
	}

	found, err := s.UserRepository.GetByGoogleID(ctx, info.GoogleID)
	if err == nil {
		return s.issueTokens(ctx, found)
	}

	// Fall back to the email; link the google id on first OAuth login.
	found, err = s.UserRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrUserNotFound
	}

	found.GoogleID = &info.GoogleID
	if err := s.UserRepository.Update(ctx, found); err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(ctx, found)
}

// Refresh implements auth.AuthService. Rotation: the presented token is
// revoked and a fresh pair is issued.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	active, err := s.RefreshTokenRepository.IsActive(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !active {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	found, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrUserNotFound
	}

	if err := s.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.issueTokens(ctx, found)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := s.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	s.jwtService.RevokeToken(refreshToken)

	return nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.RefreshTokenRepository.Store(ctx, u.ID, refreshToken, refreshExpiresAt); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		ExpiresAt:             expiresAt,
		UserID:                u.ID,
		Email:                 u.Email,
		Role:                  string(u.Role),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}
