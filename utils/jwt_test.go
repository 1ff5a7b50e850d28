package utils

import (
	"testing"

	"github.com/Makai-Stern/shoppingify-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWTConfig(t *testing.T) {
	t.Helper()
	config.C.JWTSecret = "test-secret"
	config.C.JWTExpireHours = 1
}

func TestJWTRoundTrip(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateJWT("user-123")
	require.NoError(t, err)

	userID, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestParseJWTRejectsTampering(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateJWT("user-123")
	require.NoError(t, err)

	_, err = ParseJWT(token + "x")
	assert.Error(t, err)

	_, err = ParseJWT("not-a-token")
	assert.Error(t, err)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateJWT("user-123")
	require.NoError(t, err)

	config.C.JWTSecret = "another-secret"
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestParseJWTRejectsExpired(t *testing.T) {
	setupJWTConfig(t)
	config.C.JWTExpireHours = -1

	token, err := GenerateJWT("user-123")
	require.NoError(t, err)

	_, err = ParseJWT(token)
	assert.Error(t, err)
}
