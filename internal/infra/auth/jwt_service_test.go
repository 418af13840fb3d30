package auth

import (
	"testing"
	"time"

	"gestao/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{SessionTTL: ttl},
	}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateSessionToken(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	sessionID := uuid.New()
	identityID := uuid.New()

	token, err := jwtService.GenerateSessionToken(sessionID, identityID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateSessionToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, identityID, claims.IdentityID)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig(time.Hour))
	require.NoError(t, err)

	claims, err := jwtService.ValidateSessionToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	first, err := NewJWTService(testTokenConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := testTokenConfig(time.Hour)
	otherCfg.SecretKey.Session = "a_completely_different_secret_key_for_testing"
	second, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := first.GenerateSessionToken(uuid.New(), uuid.New())
	require.NoError(t, err)

	claims, err := second.ValidateSessionToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "session token secret must be provided")
}

func TestJWTService_SessionDuration(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig(2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, jwtService.GetSessionDuration())

	// Zero config falls back to the default.
	jwtService, err = NewJWTService(testTokenConfig(0))
	require.NoError(t, err)
	assert.Equal(t, defaultSessionTTL, jwtService.GetSessionDuration())
}

func TestJWTService_HashTokenIsStableAndOpaque(t *testing.T) {
	jwtService, err := NewJWTService(testTokenConfig(time.Hour))
	require.NoError(t, err)

	token, err := jwtService.GenerateSessionToken(uuid.New(), uuid.New())
	require.NoError(t, err)

	hash := jwtService.HashToken(token)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, token, hash)
	assert.Equal(t, hash, jwtService.HashToken(token))
	assert.NotEqual(t, hash, jwtService.HashToken(token+"x"))
}
