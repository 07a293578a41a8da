package auth

import (
	"testing"
	"time"

	"github.com/bistro/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-that-is-long-enough-123",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "bistro-test",
	})
}

func TestJWTService_GenerateTokenPair(t *testing.T) {
	service := newTestService()

	pair, err := service.GenerateTokenPair(GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "alice",
		Roles:    []string{"manager"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	pair, err := service.GenerateTokenPair(GenerateTokenInput{
		UserID:   userID,
		Username: "alice",
		Roles:    []string{"delivery_crew"},
	})
	require.NoError(t, err)

	t.Run("accepts valid access token", func(t *testing.T) {
		claims, err := service.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)

		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, []string{"delivery_crew"}, claims.Roles)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
	})

	t.Run("rejects refresh token as access token", func(t *testing.T) {
		_, err := service.ValidateAccessToken(pair.RefreshToken)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := service.ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                 "a-completely-different-secret-value",
			AccessTokenExpiration:  15 * time.Minute,
			RefreshTokenExpiration: 24 * time.Hour,
			Issuer:                 "bistro-test",
		})
		otherPair, err := other.GenerateTokenPair(GenerateTokenInput{UserID: userID, Username: "alice"})
		require.NoError(t, err)

		_, err = service.ValidateAccessToken(otherPair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestJWTService_ValidateRefreshToken(t *testing.T) {
	service := newTestService()

	pair, err := service.GenerateTokenPair(GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "alice",
	})
	require.NoError(t, err)

	claims, err := service.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)

	_, err = service.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-that-is-long-enough-123",
		AccessTokenExpiration:  -time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "bistro-test",
	})

	pair, err := service.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Username: "alice"})
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
