package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByGoogleID(ctx context.Context, googleID string) (User, error)
	Update(ctx context.Context, u User) error
}

// RefreshTokenRepository persists issued refresh tokens so logout can revoke
// them server-side.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID string, token string, expiresAt int64) error
	IsActive(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
