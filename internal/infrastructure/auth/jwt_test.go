package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockdesk/backend/internal/infrastructure/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret-test-secret-test-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "stockdesk-test",
		MaxRefreshCount:        3,
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := NewJWTService(testJWTConfig())
	userID := uuid.New()
	roleID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: userID, Email: "a@b.com", RoleID: roleID})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, roleID.String(), claims.RoleID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refreshClaims, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	svc := NewJWTService(testJWTConfig())
	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenExpiration = -time.Minute
	svc := NewJWTService(cfg)

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	svc := NewJWTService(testJWTConfig())
	_, err := svc.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenPair_CountsRefreshes(t *testing.T) {
	svc := NewJWTService(testJWTConfig())
	input := GenerateTokenInput{UserID: uuid.New(), Email: "a@b.com", RoleID: uuid.New()}

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	refreshToken := pair.RefreshToken
	for i := 0; i < 3; i++ {
		pair, err = svc.RefreshTokenPair(refreshToken, input)
		require.NoError(t, err, "refresh %d", i+1)
		refreshToken = pair.RefreshToken
	}

	_, err = svc.RefreshTokenPair(refreshToken, input)
	assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
}

func TestInMemoryTokenBlacklist(t *testing.T) {
	bl := NewInMemoryTokenBlacklist()
	ctx := context.Background()

	blacklisted, err := bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, bl.Add(ctx, "jti-1", time.Minute))
	blacklisted, err = bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	// Entries with no remaining lifetime are never stored
	require.NoError(t, bl.Add(ctx, "jti-2", -time.Second))
	blacklisted, err = bl.IsBlacklisted(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}
