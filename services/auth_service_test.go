package services

import (
	"testing"

	"github.com/Makai-Stern/shoppingify-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserReportsBothConflicts(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "a@example.com", "alice")

	_, err := RegisterUser("a@example.com", "alice", "secret123")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Email is taken.", conflict.Fields["email"])
	assert.Equal(t, "Username is taken.", conflict.Fields["username"])
}

func TestRegisterUserReportsSingleConflict(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "a@example.com", "alice")

	_, err := RegisterUser("a@example.com", "other", "secret123")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Fields, "email")
	assert.NotContains(t, conflict.Fields, "username")
}

func TestRegisterUserStoresHash(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "alice")

	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, utils.CheckPasswordHash("secret123", user.Password))
	assert.NotContains(t, user.ToMap(), "password")
}

func TestAuthenticateUserByEmailOrUsername(t *testing.T) {
	setupTestDB(t)
	registered := createTestUser(t, "a@example.com", "alice")

	byEmail, token, err := AuthenticateUser("a@example.com", "", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byEmail.ID)
	assert.NotEmpty(t, token)

	byUsername, _, err := AuthenticateUser("", "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byUsername.ID)

	userID, err := utils.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
}

func TestAuthenticateUserFailuresAreGeneric(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "a@example.com", "alice")

	_, _, wrongPassword := AuthenticateUser("a@example.com", "", "nope")
	_, _, unknownUser := AuthenticateUser("ghost@example.com", "", "secret123")
	_, _, noIdentifier := AuthenticateUser("", "", "secret123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.ErrorIs(t, noIdentifier, ErrInvalidCredentials)
	// The wrong-password and unknown-user cases are indistinguishable.
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestChangePassword(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "alice")

	err := ChangePassword(user, "wrong", "newsecret")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Password is incorrect.", conflict.Fields["currentPassword"])

	require.NoError(t, ChangePassword(user, "secret123", "newsecret"))

	_, _, err = AuthenticateUser("a@example.com", "", "newsecret")
	assert.NoError(t, err)
	_, _, err = AuthenticateUser("a@example.com", "", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
