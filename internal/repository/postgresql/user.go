package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, role, employee_id, google_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.Role, u.EmployeeID, u.GoogleID,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getBy(ctx, "email = $1", email)
}

// GetByGoogleID implements user.UserRepository.
func (r *userRepository) GetByGoogleID(ctx context.Context, googleID string) (user.User, error) {
	return r.getBy(ctx, "google_id = $1", googleID)
}

func (r *userRepository) getBy(ctx context.Context, where string, arg any) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, role, employee_id, google_id, created_at, updated_at
		FROM users
		WHERE ` + where

	var u user.User
	err := q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.EmployeeID, &u.GoogleID,
		&u.CreatedAt, &u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = $2, password_hash = $3, role = $4, employee_id = $5,
		    google_id = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.Role, u.EmployeeID, u.GoogleID,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.ErrEmailExists
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

type refreshTokenRepository struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) user.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Store implements user.RefreshTokenRepository.
func (r *refreshTokenRepository) Store(ctx context.Context, userID string, token string, expiresAt int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at)
		VALUES ($1, $2, to_timestamp($3))
	`

	if _, err := q.Exec(ctx, query, token, userID, expiresAt); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// IsActive implements user.RefreshTokenRepository.
func (r *refreshTokenRepository) IsActive(ctx context.Context, token string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM refresh_tokens
			WHERE token = $1
			  AND revoked_at IS NULL
			  AND expires_at > NOW()
		)
	`

	var active bool
	if err := q.QueryRow(ctx, query, token).Scan(&active); err != nil {
		return false, fmt.Errorf("failed to check refresh token: %w", err)
	}
	return active, nil
}

// Revoke implements user.RefreshTokenRepository.
func (r *refreshTokenRepository) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE refresh_tokens SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`
	if _, err := q.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RevokeAllForUser implements user.RefreshTokenRepository.
func (r *refreshTokenRepository) RevokeAllForUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE refresh_tokens SET revoked_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL`
	if _, err := q.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}
