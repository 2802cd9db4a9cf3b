package jwt

import (
	"testing"
	"time"

	"go-clinic-management/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestJWTRoundTrip(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	token, tokenID, err := service.GenerateAccessToken(userID, "ada@example.com", "Ada Brown", 2)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada Brown", claims.FullName)
	assert.Equal(t, 2, claims.RoleID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestJWTTokenTypes(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	access, _, err := service.GenerateAccessToken(userID, "ada@example.com", "Ada Brown", 3)
	require.NoError(t, err)
	refresh, _, err := service.GenerateRefreshToken(userID, "ada@example.com", "Ada Brown", 3)
	require.NoError(t, err)

	accessClaims, err := service.ValidateToken(access)
	require.NoError(t, err)
	refreshClaims, err := service.ValidateToken(refresh)
	require.NoError(t, err)

	assert.Equal(t, AccessToken, accessClaims.TokenType)
	assert.Equal(t, RefreshToken, refreshClaims.TokenType)
	assert.NotEqual(t, accessClaims.TokenID, refreshClaims.TokenID)
}

func TestJWTWrongSecret(t *testing.T) {
	token, _, err := newTestService().GenerateAccessToken(uuid.New(), "ada@example.com", "Ada Brown", 1)
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{
		Secret:        "a-different-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTGarbageToken(t *testing.T) {
	_, err := newTestService().ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTExpiries(t *testing.T) {
	service := newTestService()

	assert.Equal(t, 15*time.Minute, service.GetAccessExpiry())
	assert.Equal(t, 24*time.Hour, service.GetRefreshExpiry())
}
