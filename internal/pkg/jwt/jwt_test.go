package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/guard"
)

func newTestService() Service {
	return NewJWTService("test-secret-key-for-jwt", "1h", "24h")
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService()

	tokenString, expiresAt, err := svc.GenerateAccessToken("guard-1", "guard@example.com", guard.RoleSecurity)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	guardID, ok := token.Get("guard_id")
	require.True(t, ok)
	assert.Equal(t, "guard-1", guardID)

	role, ok := token.Get("role")
	require.True(t, ok)
	assert.Equal(t, "security", role)

	tokenType, ok := token.Get("type")
	require.True(t, ok)
	assert.Equal(t, "access", tokenType)
}

func TestDecodeRefreshToken_RoundTrip(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("guard-2")
	require.NoError(t, err)

	guardID, err := svc.DecodeRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "guard-2", guardID)
}

func TestDecodeRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("guard-3", "guard@example.com", guard.RoleSupervisor)
	require.NoError(t, err)

	_, err = svc.DecodeRefreshToken(tokenString)
	assert.Error(t, err)
}

func TestDecodeRefreshToken_RejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.DecodeRefreshToken("not-a-token")
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()

	cookie := svc.RefreshTokenCookie("some-token", 1700000000)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	assert.False(t, svc.IsTokenRevoked("tok"))
	svc.RevokeToken("tok")
	assert.True(t, svc.IsTokenRevoked("tok"))
}
