package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
)

func TestGenerateAndParseRefreshToken(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", "15m", "168h")

	token, expiresAt, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	userID, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseRefreshToken_RejectsAccessToken(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", "15m", "168h")

	empID := "emp-1"
	token, _, err := svc.GenerateAccessToken("user-1", "user@example.com", &empID, user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(token)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", "15m", "168h")

	svc.RevokeToken("revoked-token")

	assert.True(t, svc.IsTokenRevoked("revoked-token"))
	assert.False(t, svc.IsTokenRevoked("other-token"))
}

func TestRevokeToken_PrunesExpiredEntries(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", "15m", "168h").(*JWTService)

	// A revocation whose retention window has already lapsed must not
	// survive the next insert, and must not read as revoked either.
	svc.mu.Lock()
	svc.revokedTokens["stale"] = time.Now().Add(-time.Minute).Unix()
	svc.mu.Unlock()

	assert.False(t, svc.IsTokenRevoked("stale"))

	svc.RevokeToken("fresh")

	svc.mu.RLock()
	_, staleKept := svc.revokedTokens["stale"]
	size := len(svc.revokedTokens)
	svc.mu.RUnlock()

	assert.False(t, staleKept)
	assert.Equal(t, 1, size)
	assert.True(t, svc.IsTokenRevoked("fresh"))
}
